// Package symbolindex performs the one-pass scan over a project's files
// that produces the set of state symbols the rest of the pipeline reasons
// about: atoms, selectors, families and derived atoms belonging to either
// of the two coexisting reactive-state libraries.
package symbolindex

import "github.com/viant/stateaudit/analyzer/hooks"

// Re-exported for readability at call sites within this package; the
// module/name contract itself lives in analyzer/hooks, shared with
// setterbind, forward, events and deps.
const (
	StoreAModule      = hooks.StoreAModule
	StoreBModule      = hooks.StoreBModule
	StoreBUtilsModule = hooks.StoreBUtilsModule

	FnAtom            = hooks.FnAtom
	FnSelector        = hooks.FnSelector
	FnAtomFamily      = hooks.FnAtomFamily
	FnSelectorFamily  = hooks.FnSelectorFamily
	FnAtomWithDefault = hooks.FnAtomWithDefault
)
