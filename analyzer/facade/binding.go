package facade

// BindingNames collects every local name bound by a binding pattern:
// a bare identifier, an array pattern (possibly nested), or an object
// pattern (possibly nested, including renamed and default-valued elements).
func BindingNames(pattern *Node) []string {
	var names []string
	collectBindingNames(pattern, &names)
	return names
}

func collectBindingNames(n *Node, out *[]string) {
	if n.IsNil() {
		return
	}
	switch n.Type() {
	case "identifier", "shorthand_property_identifier_pattern":
		*out = append(*out, n.Text())
	case "array_pattern":
		for _, c := range n.NamedChildren() {
			collectBindingNames(c, out)
		}
	case "object_pattern":
		for _, c := range n.NamedChildren() {
			switch c.Type() {
			case "shorthand_property_identifier_pattern":
				*out = append(*out, c.Text())
			case "pair_pattern":
				collectBindingNames(c.ChildByFieldName("value"), out)
			case "object_assignment_pattern":
				collectBindingNames(c.ChildByFieldName("left"), out)
			case "rest_pattern":
				collectBindingNames(firstNamedChild(c), out)
			default:
				collectBindingNames(c, out)
			}
		}
	case "assignment_pattern", "object_assignment_pattern":
		collectBindingNames(n.ChildByFieldName("left"), out)
	case "rest_pattern":
		collectBindingNames(firstNamedChild(n), out)
	case "required_parameter", "optional_parameter":
		collectBindingNames(n.ChildByFieldName("pattern"), out)
	}
}

func firstNamedChild(n *Node) *Node {
	if n.IsNil() || n.NamedChildCount() == 0 {
		return nil
	}
	return n.NamedChild(0)
}

// ObjectPatternProperties returns, for an object_pattern node, pairs of
// (propertyName, boundLocalName) — identical for shorthand properties,
// divergent for renamed (`{ get: getter }`) ones. Default values and
// rest elements are ignored (the spec's shapes never require them).
func ObjectPatternProperties(pattern *Node) map[string]string {
	out := map[string]string{}
	if pattern.IsNil() || pattern.Type() != "object_pattern" {
		return out
	}
	for _, c := range pattern.NamedChildren() {
		switch c.Type() {
		case "shorthand_property_identifier_pattern":
			out[c.Text()] = c.Text()
		case "pair_pattern":
			key := c.ChildByFieldName("key")
			val := c.ChildByFieldName("value")
			if key.IsNil() || val.IsNil() {
				continue
			}
			names := BindingNames(val)
			if len(names) == 1 {
				out[key.Text()] = names[0]
			}
		}
	}
	return out
}

// FirstParameterNode returns the first formal parameter of a function-like
// node (arrow_function, function_declaration, function, method_definition's
// value), handling both the parenthesized ("parameters") and bare
// single-identifier ("parameter") arrow-function shapes.
func FirstParameterNode(fn *Node) *Node {
	if fn.IsNil() {
		return nil
	}
	if p := fn.ChildByFieldName("parameter"); !p.IsNil() {
		return p
	}
	params := fn.ChildByFieldName("parameters")
	if params.IsNil() {
		return nil
	}
	for _, c := range params.NamedChildren() {
		switch c.Type() {
		case "required_parameter", "optional_parameter":
			if pat := c.ChildByFieldName("pattern"); !pat.IsNil() {
				return pat
			}
		default:
			return c
		}
	}
	return nil
}

// Parameters returns every formal-parameter pattern node of a function-like
// node, in declaration order, unwrapping TS required/optional wrappers.
func Parameters(fn *Node) []*Node {
	if fn.IsNil() {
		return nil
	}
	if p := fn.ChildByFieldName("parameter"); !p.IsNil() {
		return []*Node{p}
	}
	params := fn.ChildByFieldName("parameters")
	if params.IsNil() {
		return nil
	}
	var out []*Node
	for _, c := range params.NamedChildren() {
		switch c.Type() {
		case "required_parameter", "optional_parameter":
			if pat := c.ChildByFieldName("pattern"); !pat.IsNil() {
				out = append(out, pat)
			}
		default:
			out = append(out, c)
		}
	}
	return out
}
