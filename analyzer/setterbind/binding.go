// Package setterbind builds the mapping from a local identifier to the
// state it is known to set — the spec's Setter Binding Resolver.
package setterbind

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

// Binding is a single setter-binding map entry: the state id a name is bound
// to set, plus whether that binding originates from store-A's useReset hook
// rather than a plain setter hook — reset writes get the "reset-call" via
// tag instead of "setter-call".
type Binding struct {
	StateID string
	IsReset bool
}

// Map is a setter binding map: key -> Binding, where key is either a
// canonical symbol key (declaration-file + declaration-start + name) or a
// file-scoped fallback key ("file|name"). Every binding is written under
// both where possible; lookups try both.
type Map map[string]Binding

// Bind records name, declared at declSite within file, as a setter of
// stateID, under both the canonical symbol key and the file-scoped
// fallback key.
func (m Map) Bind(file *facade.File, declSite *facade.Node, name, stateID string, isReset bool) {
	if declSite.IsNil() || name == "" || stateID == "" {
		return
	}
	b := Binding{StateID: stateID, IsReset: isReset}
	m[facade.SymbolKey(file, declSite.StartByte(), name)] = b
	m[fallbackKey(file.Path, name)] = b
}

func fallbackKey(file, name string) string { return file + "|" + name }

// Lookup resolves a reference identifier to the binding it is bound to set,
// trying the canonical symbol key first and falling back to the file-scoped
// name key when resolution fails (unresolvable alias, type-only position).
func (m Map) Lookup(ref *facade.Node) (Binding, bool) {
	if ref.IsNil() {
		return Binding{}, false
	}
	if decl := facade.ResolveIdentifier(ref); !decl.IsNil() {
		if b, ok := m[facade.SymbolKey(ref.File(), decl.StartByte(), ref.Text())]; ok {
			return b, true
		}
	}
	b, ok := m[fallbackKey(ref.File().Path, ref.Text())]
	return b, ok
}

// Merge copies every entry of other into m, without overwriting existing
// entries — used to layer forwarded bindings on top of direct ones without
// letting a forwarded binding shadow a more specific direct one.
func (m Map) Merge(other Map) {
	for k, v := range other {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
}

// resolveStateArg resolves a call argument expression to the id of the
// state symbol it names, via the symbol index's declaration lookup.
func resolveStateArg(idx *symbolindex.Index, arg *facade.Node) (string, bool) {
	if arg.IsNil() || arg.Type() != "identifier" {
		return "", false
	}
	decl := facade.ResolveIdentifier(arg)
	if decl.IsNil() {
		return "", false
	}
	sym := idx.StateByDeclarationNode(arg.File(), decl, arg.Text())
	if sym == nil {
		return "", false
	}
	return sym.ID, true
}
