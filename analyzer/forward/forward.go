// Package forward implements the one-hop forwarder: extending a setter
// binding map by exactly one call-argument or JSX-prop boundary.
package forward

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/setterbind"
)

// Build returns a new map of forwarded bindings only, computed strictly
// from direct (never already-forwarded) bindings — forwarding is
// intentionally not transitive. Callers merge the result onto direct with
// setterbind.Map.Merge.
func Build(files []*facade.File, direct setterbind.Map) setterbind.Map {
	out := setterbind.Map{}
	for _, f := range files {
		forwardArguments(out, direct, f)
		forwardJSXProps(out, direct, f)
	}
	return out
}

func forwardArguments(out, direct setterbind.Map, f *facade.File) {
	f.Root().Walk(func(n *facade.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		callee := n.ChildByFieldName("function")
		target := facade.FunctionLikeOf(callee)
		if target.IsNil() {
			return true
		}
		params := facade.Parameters(target)
		for i, arg := range facade.CallArguments(n) {
			if arg.Type() != "identifier" || i >= len(params) {
				continue
			}
			b, ok := direct.Lookup(arg)
			if !ok {
				continue
			}
			param := params[i]
			for _, name := range facade.BindingNames(param) {
				out.Bind(target.File(), param, name, b.StateID, b.IsReset)
			}
		}
		return true
	})
}

func forwardJSXProps(out, direct setterbind.Map, f *facade.File) {
	f.Root().Walk(func(n *facade.Node) bool {
		if n.Type() != "jsx_attribute" {
			return true
		}
		value := facade.JSXAttributeValue(n)
		if value.IsNil() || value.Type() != "identifier" {
			return true
		}
		b, ok := direct.Lookup(value)
		if !ok {
			return true
		}
		element := n.Parent()
		nameNode := facade.JSXNameNode(element)
		target := facade.FunctionLikeOf(nameNode)
		if target.IsNil() {
			return true
		}
		attrName := facade.AttributeName(n)
		bindJSXTargetProp(out, target, attrName, b.StateID, b.IsReset)
		return true
	})
}

func bindJSXTargetProp(out setterbind.Map, target *facade.Node, attrName, stateID string, isReset bool) {
	first := facade.FirstParameterNode(target)
	if first.IsNil() {
		return
	}
	switch first.Type() {
	case "object_pattern":
		for propName, localName := range facade.ObjectPatternProperties(first) {
			if propName == attrName {
				out.Bind(target.File(), first, localName, stateID, isReset)
			}
		}
	case "identifier":
		propsVar := first.Text()
		for _, decl := range innerDeclarators(target) {
			init := decl.ChildByFieldName("value")
			name := decl.ChildByFieldName("name")
			if init.IsNil() || init.Type() != "identifier" || init.Text() != propsVar {
				continue
			}
			if name.IsNil() || name.Type() != "object_pattern" {
				continue
			}
			for propName, localName := range facade.ObjectPatternProperties(name) {
				if propName == attrName {
					out.Bind(target.File(), name, localName, stateID, isReset)
				}
			}
		}
	}
}

// innerDeclarators returns every variable_declarator directly reachable
// from fn's body without descending into a nested function-like node.
func innerDeclarators(fn *facade.Node) []*facade.Node {
	body := fn.ChildByFieldName("body")
	if body.IsNil() || body.Type() != "statement_block" {
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
		case "variable_declarator":
			out = append(out, n)
			return
		}
		for _, c := range n.NamedChildren() {
			walk(c)
		}
	}
	walk(body)
	return out
}
