package facade

import "strings"

// SymbolKey returns the canonical (file, declaration-start, name) key the
// spec uses to identify a declaration site regardless of how many times it
// is subsequently referenced.
func SymbolKey(file *File, startByte uint32, name string) string {
	return file.Path + "::" + itoa(int(startByte)) + "::" + name
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// ResolveIdentifier looks an identifier reference up among its file's
// top-level declarations (File.DeclarationOf) and returns the declarator or
// declaration node bound to that name. Returns nil (fail-soft) for names
// declared only inside a function body or only imported; callers treat that
// as unresolved (the setter-binding and handle maps then use their
// file-scoped name keys).
func ResolveIdentifier(n *Node) *Node {
	if n.IsNil() {
		return nil
	}
	f := n.File()
	if f == nil {
		return nil
	}
	return f.DeclarationOf(n.Text())
}

// InitializerOf returns the right-hand-side expression of a
// variable_declarator, or nil for declarations that bind without one
// (function/class declarations return themselves — callers should check
// Type() first).
func InitializerOf(decl *Node) *Node {
	if decl.IsNil() {
		return nil
	}
	switch decl.Type() {
	case "variable_declarator":
		return decl.ChildByFieldName("value")
	case "function_declaration", "class_declaration", "function", "arrow_function":
		return decl
	}
	return nil
}

// FunctionLikeOf resolves a reference expression (an identifier, or a call
// expression's callee) to the ultimate function-like declaration it names:
// a function_declaration, a function expression, or an arrow_function bound
// to a variable — unwrapping simple re-export/alias chains
// (`const b = a; export { b }` or `const b = a`) along the way. Returns nil
// when the chain doesn't bottom out in a function-like node within this
// file, which is the common case for imported wrapper hooks the facade
// cannot see across files; callers treat that as "unresolved", not an error.
func FunctionLikeOf(ref *Node) *Node {
	if ref.IsNil() {
		return nil
	}
	seen := map[string]bool{}
	cur := ref
	for i := 0; i < 32; i++ {
		switch cur.Type() {
		case "function_declaration", "function", "arrow_function", "method_definition":
			return cur
		case "identifier":
			key := cur.File().Path + "::" + cur.Text()
			if seen[key] {
				return nil
			}
			seen[key] = true
			decl := ResolveIdentifier(cur)
			if decl.IsNil() {
				return nil
			}
			if decl.Type() == "function_declaration" {
				return decl
			}
			init := InitializerOf(decl)
			if init.IsNil() {
				return nil
			}
			cur = init
		case "parenthesized_expression":
			cur = firstNamedChild(cur)
			if cur.IsNil() {
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

// CalleeName returns the flattened dotted name of a call expression's
// callee: "foo" for foo(), "a.b" for a.b(), "" when the callee isn't a
// simple identifier/member-access chain (e.g. a computed member or an
// immediately-invoked function expression).
func CalleeName(call *Node) string {
	if call.IsNil() || call.Type() != "call_expression" {
		return ""
	}
	return ExpressionName(call.ChildByFieldName("function"))
}

// CalleeBaseIdentifier returns the leftmost identifier node of a call
// expression's callee chain: the node for "h" in both "h()" and
// "h.set()". Returns nil when the callee isn't a simple identifier/member
// chain.
func CalleeBaseIdentifier(call *Node) *Node {
	if call.IsNil() || call.Type() != "call_expression" {
		return nil
	}
	n := call.ChildByFieldName("function")
	for !n.IsNil() && n.Type() == "member_expression" {
		n = n.ChildByFieldName("object")
	}
	if n.IsNil() || n.Type() != "identifier" {
		return nil
	}
	return n
}

// ExpressionName flattens an identifier or non-computed member_expression
// chain into a dotted string; returns "" for anything else.
func ExpressionName(n *Node) string {
	if n.IsNil() {
		return ""
	}
	switch n.Type() {
	case "identifier", "property_identifier", "this":
		return n.Text()
	case "member_expression":
		obj := ExpressionName(n.ChildByFieldName("object"))
		prop := n.ChildByFieldName("property")
		if obj == "" || prop.IsNil() {
			return ""
		}
		return obj + "." + prop.Text()
	}
	return ""
}

// LastSegment returns the final dotted segment of a flattened expression
// name, e.g. "set" for "snapshot.set" and "useState" for "useState".
func LastSegment(dotted string) string {
	if idx := strings.LastIndexByte(dotted, '.'); idx >= 0 {
		return dotted[idx+1:]
	}
	return dotted
}

// ReturnExpressions collects every expression a function-like node can
// return along its direct control-flow paths: the expression body of a
// concise arrow function, plus the argument of every return_statement in a
// block body (not descending into nested function-like nodes).
func ReturnExpressions(fn *Node) []*Node {
	if fn.IsNil() {
		return nil
	}
	body := fn.ChildByFieldName("body")
	if body.IsNil() {
		return nil
	}
	if body.Type() != "statement_block" {
		// concise arrow body: the body IS the returned expression.
		return []*Node{body}
	}
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsNil() {
			return
		}
		switch n.Type() {
		case "function_declaration", "function", "arrow_function", "method_definition", "class_declaration":
			return
		case "return_statement":
			if arg := firstNamedChild(n); !arg.IsNil() {
				out = append(out, arg)
			}
			return
		}
		for _, c := range n.NamedChildren() {
			walk(c)
		}
	}
	walk(body)
	return out
}
