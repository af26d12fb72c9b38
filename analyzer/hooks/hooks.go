// Package hooks centralizes the "factory identities recognized" contract of
// the analyzer's external interface: the module paths and exported names of
// the two reactive-state libraries, and classification of a call's callee
// into the role it plays (read hook, setter hook, tuple hook, callback
// factory, imperative handle factory, UI-library memo wrap). State
// factories are classified by the symbol index, not here.
package hooks

import "github.com/viant/stateaudit/analyzer/facade"

const (
	StoreAModule      = "recoil"
	StoreBModule      = "jotai"
	StoreBUtilsModule = "jotai/utils"
	UILibraryModule   = "react"
)

// Store-A names.
const (
	FnAtom           = "atom"
	FnSelector       = "selector"
	FnAtomFamily     = "atomFamily"
	FnSelectorFamily = "selectorFamily"
	FnUseValue       = "useValue"
	FnUseValueLoad   = "useValueLoadable"
	FnUseTuple       = "useTuple"
	FnUseTupleLoad   = "useTupleLoadable"
	FnUseSet         = "useSet"
	FnUseReset       = "useReset"
	FnUseCallback    = "useCallback"
)

// Store-B names (main module).
const (
	FnUseAtomValue = "useAtomValue"
	FnUseAtom      = "useAtom"
	FnCreateStore  = "createStore"
)

// Store-B names (utilities module).
const (
	FnAtomWithDefault = "atomWithDefault"
)

// Role classifies what a resolved (module, name) pair does.
type Role int

const (
	RoleNone Role = iota
	RoleReadHook
	RoleSetterFactory
	RoleTupleFactory
	RoleCallbackFactory
	RoleHandleFactory
	RoleMemoWrap
)

// Resolved is the (module, originalName) a local identifier was imported
// under, following aliasing — the unit hook classification works on.
type Resolved struct {
	Module   string
	Original string
}

// ResolveCallee flattens a call_expression's callee to an identifier and
// looks it up in the file's import map. ok is false for locally declared
// callees (wrapper hooks) or non-identifier callees.
func ResolveCallee(f *facade.File, call *facade.Node) (Resolved, bool) {
	callee := call.ChildByFieldName("function")
	if callee.IsNil() || callee.Type() != "identifier" {
		return Resolved{}, false
	}
	binding, ok := f.Imports[callee.Text()]
	if !ok {
		return Resolved{}, false
	}
	original := binding.Named
	if original == "" {
		original = callee.Text()
	}
	return Resolved{Module: binding.Module, Original: original}, true
}

// ClassifyRole returns the role a resolved hook plays.
func ClassifyRole(r Resolved) Role {
	switch r.Module {
	case StoreAModule:
		switch r.Original {
		case FnUseValue, FnUseValueLoad:
			return RoleReadHook
		case FnUseTuple, FnUseTupleLoad:
			return RoleTupleFactory
		case FnUseSet, FnUseReset:
			return RoleSetterFactory
		case FnUseCallback:
			return RoleCallbackFactory
		}
	case StoreBModule:
		switch r.Original {
		case FnUseAtomValue:
			return RoleReadHook
		case FnUseAtom:
			return RoleTupleFactory
		case FnUseSet:
			return RoleSetterFactory
		case FnCreateStore:
			return RoleHandleFactory
		}
	case StoreBUtilsModule:
		if r.Original == FnUseCallback {
			return RoleCallbackFactory
		}
	case UILibraryModule:
		if r.Original == "useCallback" {
			return RoleMemoWrap
		}
	}
	return RoleNone
}

// IsResetHook reports whether a resolved hook is store-A's useReset — reset
// writes get the "reset-call" via tag rather than "setter-call".
func IsResetHook(r Resolved) bool {
	return r.Module == StoreAModule && r.Original == FnUseReset
}
