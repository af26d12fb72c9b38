package facade

// JSXNameNode returns the raw name node of a jsx_element/self-closing
// element's opening tag — the node identifier/function-like resolution
// operates on, as opposed to JSXTagName's flattened text.
func JSXNameNode(element *Node) *Node {
	if element.IsNil() {
		return nil
	}
	switch element.Type() {
	case "jsx_self_closing_element", "jsx_opening_element":
		return element.ChildByFieldName("name")
	case "jsx_element":
		return JSXNameNode(element.ChildByFieldName("open_tag"))
	}
	return nil
}
