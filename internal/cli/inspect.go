package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/toyz/stratum/internal/classifier"
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/parser"
)

// BuildIR loads the inputs and builds one IR class per descriptor.
// Malformed descriptors are reported and left out of the result; the returned
// error collects them. A nil slice means the inputs could not be loaded.
func (g *Generator) BuildIR(inputs []string) ([]*models.Class, error) {
	descriptors, _, err := g.Load(inputs)
	if err != nil {
		g.reporter.ReportError(err)
		return nil, err
	}

	built, buildErr := parser.BuildAll(descriptors)
	if buildErr != nil {
		g.reporter.ReportError(buildErr)
	}

	classes := make([]*models.Class, 0, len(built))
	for _, cls := range built {
		if cls != nil {
			classes = append(classes, cls)
		}
	}
	return classes, buildErr
}

// WriteIR writes classes as a YAML sequence
func WriteIR(w io.Writer, classes []*models.Class) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(classes); err != nil {
		return err
	}
	return encoder.Close()
}

// WriteClassifications writes one "name  role  (rule)" line per class
func WriteClassifications(w io.Writer, classifications []classifier.Classification) error {
	width := 0
	for _, c := range classifications {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}

	for _, c := range classifications {
		if _, err := fmt.Fprintf(w, "%-*s  %-12s (%s)\n", width, c.Name, c.Role, c.Rule); err != nil {
			return err
		}
	}
	return nil
}
