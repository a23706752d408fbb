// Package scaffold produces the build files of a generated Java project.
package scaffold

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
)

// Default versions written to build.gradle
const (
	SpringBootVersion = "3.1.0"
	JavaVersion       = "17"
	ProjectVersion    = "1.0.0"
)

const buildGradleTemplate = `plugins {
    id 'java'
    id 'org.springframework.boot' version {{ .SpringBoot | squote }}
    id 'io.spring.dependency-management' version '1.1.0'
}

group = {{ .Group | squote }}
version = {{ .Version | squote }}
sourceCompatibility = {{ .Java | squote }}

repositories {
    mavenCentral()
}

dependencies {
{{- range .Dependencies }}
    {{ .Scope }} {{ .Coordinate | squote }}
{{- end }}
}
`

const settingsGradleTemplate = `rootProject.name = {{ .Project | squote }}
`

const applicationPropertiesTemplate = `spring.application.name={{ .Project | snakecase | replace "_" "-" }}
`

type dependency struct {
	Scope      string
	Coordinate string
}

type buildData struct {
	Group        string
	Version      string
	Java         string
	SpringBoot   string
	Project      string
	Dependencies []dependency
}

var dependencies = []dependency{
	{"implementation", "org.springframework.boot:spring-boot-starter-web"},
	{"implementation", "org.springframework.boot:spring-boot-starter-data-jpa"},
	{"compileOnly", "org.projectlombok:lombok"},
	{"annotationProcessor", "org.projectlombok:lombok"},
	{"testImplementation", "org.springframework.boot:spring-boot-starter-test"},
}

var files = []struct {
	path     string
	template *template.Template
}{
	{"build.gradle", parse("build.gradle", buildGradleTemplate)},
	{"settings.gradle", parse("settings.gradle", settingsGradleTemplate)},
	{"src/main/resources/application.properties", parse("application.properties", applicationPropertiesTemplate)},
}

func parse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(sprig.TxtFuncMap()).Parse(text))
}

// Gradle returns the build files for a project, with paths relative to the output root
func Gradle(opts models.Options) ([]models.LogicalFile, error) {
	group := opts.BasePackage
	if group == "" {
		group = models.DefaultBasePackage
	}

	data := buildData{
		Group:        group,
		Version:      ProjectVersion,
		Java:         JavaVersion,
		SpringBoot:   SpringBootVersion,
		Project:      opts.Project(),
		Dependencies: dependencies,
	}

	out := make([]models.LogicalFile, 0, len(files))
	for _, f := range files {
		var buf bytes.Buffer
		if err := f.template.Execute(&buf, data); err != nil {
			return nil, errors.WrapTemplateError(f.path, "execute", err)
		}
		out = append(out, models.LogicalFile{
			Role:         models.RoleUnclassified,
			RelativePath: f.path,
			Content:      buf.String(),
		})
	}
	return out, nil
}
