package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/rules"
)

// YAML writes a YAML report, mirroring JSON's document shape.
func YAML(w io.Writer, result model.Result, violations []rules.Violation) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(document{
		UsageEvents:     result.UsageEvents,
		DependencyEdges: result.DependencyEdges,
		Violations:      violations,
	})
}
