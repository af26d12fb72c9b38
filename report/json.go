package report

import (
	"encoding/json"
	"io"

	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/rules"
)

// document is the JSON/YAML wire shape bundling a pipeline result with its
// rule violations.
type document struct {
	UsageEvents     []model.UsageEvent     `json:"usageEvents" yaml:"usageEvents"`
	DependencyEdges []model.DependencyEdge `json:"dependencyEdges" yaml:"dependencyEdges"`
	Violations      []rules.Violation      `json:"violations" yaml:"violations"`
}

// JSON writes an indented JSON report.
func JSON(w io.Writer, result model.Result, violations []rules.Violation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(document{
		UsageEvents:     result.UsageEvents,
		DependencyEdges: result.DependencyEdges,
		Violations:      violations,
	})
}
