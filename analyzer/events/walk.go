package events

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/hooks"
)

// bodyCallExpressions collects every call_expression reachable from fn's
// body without descending into a nested function-like node — the scope a
// callback-body or dependency-scope walk operates over.
func bodyCallExpressions(fn *facade.Node) []*facade.Node {
	body := fn.ChildByFieldName("body")
	if body.IsNil() {
		return nil
	}
	var out []*facade.Node
	var walk func(n *facade.Node)
	walk = func(n *facade.Node) {
		if n.IsNil() {
			return
		}
		switch n.Type() {
		case "function_declaration", "function", "arrow_function", "method_definition", "class_declaration":
			return
		case "call_expression":
			out = append(out, n)
		}
		for _, c := range n.NamedChildren() {
			walk(c)
		}
	}
	walk(body)
	return out
}

// unwrapMemo unwraps a single optional intermediate generic memo-wrap
// (react's useCallback(fn, deps)) around a callback factory argument.
func unwrapMemo(fnArg *facade.Node) *facade.Node {
	if fnArg.IsNil() || fnArg.Type() != "call_expression" {
		return fnArg
	}
	resolved, ok := hooks.ResolveCallee(fnArg.File(), fnArg)
	if !ok || hooks.ClassifyRole(resolved) != hooks.RoleMemoWrap {
		return fnArg
	}
	args := facade.CallArguments(fnArg)
	if len(args) == 0 {
		return fnArg
	}
	return args[0]
}
