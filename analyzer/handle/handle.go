// Package handle detects identifiers holding a store-B imperative store
// handle (createStore()-equivalent), so the event extractors can recognize
// handle.get(...) / handle.set(...) call sites.
package handle

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/hooks"
)

// Set records every local name known to hold a store handle, under both the
// canonical symbol key and the file-scoped fallback key.
type Set map[string]bool

func key(file, name string) string { return file + "|" + name }

// bind records name as a known handle, written under the symbol key and
// the file-scoped fallback key, matching the setter binding map's idiom.
func (s Set) bind(file *facade.File, declSite *facade.Node, name string) {
	s[facade.SymbolKey(file, declSite.StartByte(), name)] = true
	s[key(file.Path, name)] = true
}

// Has reports whether ref names a known store handle.
func (s Set) Has(ref *facade.Node) bool {
	if ref.IsNil() {
		return false
	}
	if decl := facade.ResolveIdentifier(ref); !decl.IsNil() {
		if s[facade.SymbolKey(ref.File(), decl.StartByte(), ref.Text())] {
			return true
		}
	}
	return s[key(ref.File().Path, ref.Text())]
}

// Build scans every file for variable declarations initialized by the
// store-B handle factory.
func Build(files []*facade.File) Set {
	s := Set{}
	for _, f := range files {
		f.Root().Walk(func(n *facade.Node) bool {
			if n.Type() != "variable_declarator" {
				return true
			}
			name := n.ChildByFieldName("name")
			init := n.ChildByFieldName("value")
			if name.IsNil() || name.Type() != "identifier" || init.IsNil() || init.Type() != "call_expression" {
				return true
			}
			resolved, ok := hooks.ResolveCallee(f, init)
			if !ok || hooks.ClassifyRole(resolved) != hooks.RoleHandleFactory {
				return true
			}
			s.bind(f, n, name.Text())
			return true
		})
	}
	return s
}
