package events

import (
	"strings"

	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/model"
)

// inInitContext implements §4.6's init-context classification: walking
// parents, is any of (a) a jsx_attribute named initializeState, (b) an
// object property named initializeState, or (c) an enclosing function-like
// declaration whose identifiable name begins with "initialize" found?
func inInitContext(n *facade.Node) bool {
	for cur := n; !cur.IsNil(); cur = cur.Parent() {
		switch cur.Type() {
		case "jsx_attribute":
			if facade.AttributeName(cur) == "initializeState" {
				return true
			}
		case "pair":
			if key := cur.ChildByFieldName("key"); !key.IsNil() && key.Text() == "initializeState" {
				return true
			}
		case "function_declaration", "function", "arrow_function", "method_definition":
			if name := functionName(cur); strings.HasPrefix(name, "initialize") {
				return true
			}
		}
	}
	return false
}

// functionName returns the best-effort identifiable name of a
// function-like node: its own name field, or the name of the variable
// declarator / object property it is the initializer of.
func functionName(fn *facade.Node) string {
	switch fn.Type() {
	case "function_declaration", "method_definition":
		if n := fn.ChildByFieldName("name"); !n.IsNil() {
			return n.Text()
		}
	}
	parent := fn.Parent()
	if parent.IsNil() {
		return ""
	}
	switch parent.Type() {
	case "variable_declarator":
		if n := parent.ChildByFieldName("name"); !n.IsNil() && n.Type() == "identifier" {
			return n.Text()
		}
	case "pair":
		if n := parent.ChildByFieldName("key"); !n.IsNil() {
			return n.Text()
		}
	}
	return ""
}

// prefixVia decorates via with "init:" when inInit is true, per §4.6.
func prefixVia(via string, inInit bool) string {
	if inInit {
		return "init:" + via
	}
	return via
}

func writeEventType(inInit bool) model.EventType {
	if inInit {
		return model.InitWrite
	}
	return model.RuntimeWrite
}
