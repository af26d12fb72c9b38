// Package pipeline composes the Symbol Index, Setter Binding Resolver, One-Hop
// Forwarder, Store-B Handle Detector, Event Extractors and Dependency
// Extractor under a capability profile into the analyzer's deterministic
// output, per §4.8.
package pipeline

import (
	"github.com/viant/stateaudit/analyzer/deps"
	"github.com/viant/stateaudit/analyzer/events"
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/forward"
	"github.com/viant/stateaudit/analyzer/handle"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/setterbind"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

// Analyze runs the full pipeline over an already-parsed, already-sorted set
// of files under the given capability profile.
func Analyze(files []*facade.File, profile model.CapabilityProfile) model.Result {
	idx := symbolindex.Build(files)

	var handles handle.Set
	if profile.HandleAPI {
		handles = handle.Build(files)
	} else {
		handles = handle.Set{}
	}

	bindings := setterbind.Build(files, idx, profile.Wrappers)
	if profile.Forwarding {
		bindings.Merge(forward.Build(files, bindings))
	}

	var allEvents []model.UsageEvent
	allEvents = append(allEvents, events.Extract(files, idx, bindings, handles, profile)...)

	depResult := deps.Extract(idx, handles)
	allEvents = append(allEvents, depResult.Events...)

	return model.Result{
		UsageEvents:     model.DedupEvents(allEvents),
		DependencyEdges: model.DedupEdges(depResult.Edges),
	}
}
