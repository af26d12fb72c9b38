package analyzer

import (
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/rules"
)

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithCapabilityProfile sets which of the four extended extractors run.
func WithCapabilityProfile(profile model.CapabilityProfile) Option {
	return func(a *Analyzer) {
		a.profile = profile
	}
}

// WithExtendedCapabilities turns every capability on (callbacks, wrappers,
// forwarding, handleApi).
func WithExtendedCapabilities() Option {
	return WithCapabilityProfile(model.ExtendedProfile())
}

// WithRules restricts rule evaluation to the given rule ids. With no call,
// every rule runs.
func WithRules(ids ...rules.ID) Option {
	return func(a *Analyzer) {
		a.ruleIDs = ids
	}
}
