package facade

import "strings"

// JSXTagName returns the tag/component name of a jsx_element's opening tag,
// or of a jsx_self_closing_element directly. Works for both plain tags
// (div) and member-expression component references (Recoil.Provider).
func JSXTagName(element *Node) string {
	if element.IsNil() {
		return ""
	}
	switch element.Type() {
	case "jsx_self_closing_element":
		return jsxNameText(element.ChildByFieldName("name"))
	case "jsx_element":
		return JSXTagName(element.ChildByFieldName("open_tag"))
	case "jsx_opening_element":
		return jsxNameText(element.ChildByFieldName("name"))
	}
	return ""
}

func jsxNameText(n *Node) string {
	if n.IsNil() {
		return ""
	}
	switch n.Type() {
	case "jsx_member_expression":
		return ExpressionName(n)
	default:
		return n.Text()
	}
}

// jsxAttributes returns the jsx_attribute/jsx_expression (spread) children
// of an opening or self-closing element's attribute list.
func jsxAttributes(element *Node) []*Node {
	if element.IsNil() {
		return nil
	}
	var attrs *Node
	switch element.Type() {
	case "jsx_self_closing_element", "jsx_opening_element":
		attrs = element
	case "jsx_element":
		attrs = element.ChildByFieldName("open_tag")
	}
	if attrs.IsNil() {
		return nil
	}
	var out []*Node
	for _, c := range attrs.NamedChildren() {
		if c.Type() == "jsx_attribute" || c.Type() == "jsx_expression" {
			out = append(out, c)
		}
	}
	return out
}

// JSXAttributeValue returns the value expression of a jsx_attribute: the
// inner expression of a {expr} value, the string literal node for a plain
// string value, or nil for a valueless boolean attribute.
func JSXAttributeValue(attr *Node) *Node {
	if attr.IsNil() {
		return nil
	}
	// jsx_attribute carries no field names: its first named child is the
	// attribute name, the second (when present) the value.
	val := attr.NamedChild(1)
	if val.IsNil() {
		return nil
	}
	if val.Type() == "jsx_expression" {
		return firstNamedChild(val)
	}
	return val
}

// JSXEventAttributes returns every on*-prefixed jsx_attribute on an element,
// e.g. onClick, onChange — the spec's "JSX on* attribute" usage shape.
func JSXEventAttributes(element *Node) []*Node {
	var out []*Node
	for _, attr := range jsxAttributes(element) {
		if attr.Type() != "jsx_attribute" {
			continue
		}
		n := AttributeName(attr)
		if len(n) > 2 && strings.HasPrefix(n, "on") && n[2] >= 'A' && n[2] <= 'Z' {
			out = append(out, attr)
		}
	}
	return out
}

// AttributeName returns the name of a jsx_attribute node.
func AttributeName(attr *Node) string {
	if attr.IsNil() {
		return ""
	}
	return attr.NamedChild(0).Text()
}

// EnclosingFunctionLike walks up from n to the nearest function-like
// ancestor (function_declaration, function expression, arrow_function,
// method_definition's value).
func EnclosingFunctionLike(n *Node) *Node {
	for cur := n.Parent(); !cur.IsNil(); cur = cur.Parent() {
		switch cur.Type() {
		case "function_declaration", "function", "arrow_function", "method_definition":
			return cur
		}
	}
	return nil
}

// CallArguments returns the argument expressions of a call_expression.
func CallArguments(call *Node) []*Node {
	if call.IsNil() {
		return nil
	}
	args := call.ChildByFieldName("arguments")
	if args.IsNil() {
		return nil
	}
	return args.NamedChildren()
}
