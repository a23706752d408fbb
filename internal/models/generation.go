package models

import (
	"path"
	"strings"
)

// JavaExtension is the extension of every generated source file
const JavaExtension = ".java"

// Sub-packages below the base package, one per generated file kind
const (
	ControllerPackage  = "controller"
	RepositoryPackage  = "repository"
	ServicePackage     = "service"
	ServiceImplPackage = "service.impl"
	EntityPackage      = "entity"
	DTOPackage         = "dto"
)

// LogicalFile is one generated file before it is written anywhere
type LogicalFile struct {
	Role         Role   `json:"role" yaml:"role"`                 // role of the class that produced the file
	RelativePath string `json:"relativePath" yaml:"relativePath"` // slash separated, rooted at the base package directory
	Content      string `json:"content" yaml:"content"`           // final file content
}

// QualifiedPackage joins the base package and a sub-package
func QualifiedPackage(basePackage, subPackage string) string {
	if subPackage == "" {
		return basePackage
	}
	if basePackage == "" {
		return subPackage
	}
	return basePackage + "." + subPackage
}

// QualifiedName returns the fully qualified name of a generated type
func QualifiedName(basePackage, subPackage, typeName string) string {
	return QualifiedPackage(basePackage, subPackage) + "." + typeName
}

// OutputPath computes the relative path of a generated type. It depends only on
// the base package, the sub-package and the type name.
func OutputPath(basePackage, subPackage, typeName string) string {
	pkg := QualifiedPackage(basePackage, subPackage)
	dir := strings.ReplaceAll(pkg, ".", "/")
	return path.Join(dir, typeName+JavaExtension)
}
