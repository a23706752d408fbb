package templates

import (
	"bytes"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/toyz/stratum/internal/errors"
)

// JavaFileTemplate lays out a Java source file from its structured form
const JavaFileTemplate = `{{with .Header}}{{.}}
{{end}}package {{.Package}};
{{if .Imports}}
{{range .Imports}}import {{.}};
{{end}}{{end}}
{{with .Doc}}/**
{{range .}} * {{.}}
{{end}} */
{{end}}{{range .Annotations}}{{.}}
{{end}}{{.Declaration}} {
{{- range .Members}}

{{. | indent 4}}
{{- end}}
}
`

type fileView struct {
	Header      string
	Package     string
	Imports     []string
	Doc         []string
	Annotations []string
	Declaration string
	Members     []string
}

// Renderer renders JavaFile values to text. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a renderer around the Java file template
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("java-file").Funcs(sprig.TxtFuncMap()).Parse(JavaFileTemplate)
	if err != nil {
		return nil, errors.WrapTemplateError("java-file", "parse", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MustNewRenderer creates a renderer, panicking if the template does not parse
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render renders file. Imports listed on the file are emitted as given.
func (r *Renderer) Render(file *JavaFile) (string, error) {
	view := fileView{
		Header:      file.Header,
		Package:     file.Package,
		Imports:     file.Imports,
		Doc:         file.Doc,
		Annotations: file.Annotations,
		Declaration: file.declaration(),
		Members:     file.members(),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", errors.WrapTemplateError("java-file", "execute", err)
	}
	return buf.String(), nil
}
