package setterbind

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/hooks"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

// Build produces the setter binding map for the given files. When wrappers
// is false, only direct factory bindings are computed (the "core" profile's
// direct-only mode); when true, wrapper-aware resolution also runs.
func Build(files []*facade.File, idx *symbolindex.Index, wrappers bool) Map {
	m := Map{}
	r := newResolver(idx)
	for _, f := range files {
		f.Root().Walk(func(n *facade.Node) bool {
			if n.Type() != "variable_declarator" {
				return true
			}
			bindDeclarator(m, r, idx, f, n, wrappers)
			return true
		})
	}
	return m
}

func bindDeclarator(m Map, r *resolver, idx *symbolindex.Index, f *facade.File, decl *facade.Node, wrappers bool) {
	name := decl.ChildByFieldName("name")
	init := decl.ChildByFieldName("value")
	if name.IsNil() || init.IsNil() || init.Type() != "call_expression" {
		return
	}
	resolved, ok := hooks.ResolveCallee(f, init)
	if ok {
		args := facade.CallArguments(init)
		if len(args) == 0 {
			return
		}
		switch hooks.ClassifyRole(resolved) {
		case hooks.RoleSetterFactory:
			if id, ok := resolveStateArg(idx, args[0]); ok && name.Type() == "identifier" {
				m.Bind(f, decl, name.Text(), id, hooks.IsResetHook(resolved))
			}
		case hooks.RoleTupleFactory:
			if id, ok := resolveStateArg(idx, args[0]); ok && name.Type() == "array_pattern" {
				elems := name.NamedChildren()
				if len(elems) >= 2 && elems[1].Type() == "identifier" {
					m.Bind(f, decl, elems[1].Text(), id, false)
				}
			}
		}
		return
	}
	if !wrappers {
		return
	}
	callee := init.ChildByFieldName("function")
	target := facade.FunctionLikeOf(callee)
	if target.IsNil() {
		return
	}
	result := r.resolve(target)
	if result == nil {
		return
	}
	switch {
	case result.isSetter:
		switch name.Type() {
		case "identifier":
			m.Bind(f, decl, name.Text(), result.stateID, result.isReset)
		case "array_pattern":
			elems := name.NamedChildren()
			if len(elems) >= 2 && elems[1].Type() == "identifier" {
				m.Bind(f, decl, elems[1].Text(), result.stateID, result.isReset)
			}
		}
	case result.props != nil && name.Type() == "object_pattern":
		for propName, localName := range facade.ObjectPatternProperties(name) {
			if b, ok := result.props[propName]; ok {
				m.Bind(f, decl, localName, b.StateID, b.IsReset)
			}
		}
	}
}
