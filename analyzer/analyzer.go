// Package analyzer is the top-level entrypoint: it wires the AST Facade,
// Symbol Index, Setter Binding Resolver, One-Hop Forwarder, Store-B Handle
// Detector, Event Extractors and Dependency Extractor into a single
// Analyzer value configured through functional options.
package analyzer

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/impact"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/pipeline"
	"github.com/viant/stateaudit/analyzer/rules"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

// Analyzer runs the pipeline over a set of parsed files under a configured
// capability profile and rule selection.
type Analyzer struct {
	profile model.CapabilityProfile
	ruleIDs []rules.ID
}

// New builds an Analyzer. With no options it runs the core profile (every
// capability off) and all four rules.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{profile: model.CoreProfile()}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Report bundles a full analysis run: the pipeline's raw output, the
// symbols it was computed over, and the rule violations found against it.
type Report struct {
	Symbols    []model.StateSymbol
	Result     model.Result
	Violations []rules.Violation
}

// Analyze parses nothing itself — it consumes an already-parsed, already
// sorted file set (see project.Load) and runs the full pipeline plus rule
// evaluation against it.
func (a *Analyzer) Analyze(files []*facade.File) Report {
	idx := symbolindex.Build(files)
	result := pipeline.Analyze(files, a.profile)
	violations := rules.Evaluate(a.ruleIDs, idx.States, result.UsageEvents, result.DependencyEdges)
	return Report{Symbols: idx.States, Result: result, Violations: violations}
}

// Impact runs a reverse-impact BFS query against a previously computed
// result, without re-running the pipeline.
func (a *Analyzer) Impact(stateID string, result model.Result) impact.Result {
	return impact.Query(stateID, result.DependencyEdges, result.UsageEvents)
}
