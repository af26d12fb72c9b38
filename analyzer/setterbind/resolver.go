package setterbind

import (
	"strconv"

	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/hooks"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

// wrapperResult is what a wrapper function-like body resolves to: either a
// single setter state, or an object literal whose properties name setters.
type wrapperResult struct {
	isSetter bool
	stateID  string
	isReset  bool
	props    map[string]Binding // property name -> binding, for object-returning wrappers
}

// resolver performs the wrapper-aware analysis of §4.3, memoized by
// (file, function-start) and cycle-guarded against self-referential
// wrappers.
type resolver struct {
	idx      *symbolindex.Index
	cache    map[string]*wrapperResult
	inflight map[string]bool
}

func newResolver(idx *symbolindex.Index) *resolver {
	return &resolver{idx: idx, cache: map[string]*wrapperResult{}, inflight: map[string]bool{}}
}

func funcKey(fn *facade.Node) string {
	return fn.File().Path + "::" + strconv.FormatUint(uint64(fn.StartByte()), 10)
}

// resolveCall classifies what a call expression (direct factory call,
// wrapper-hook call, or plain call) resolves to as a wrapper-shaped value.
func (r *resolver) resolveCall(call *facade.Node) *wrapperResult {
	f := call.File()
	resolved, ok := hooks.ResolveCallee(f, call)
	if ok {
		args := facade.CallArguments(call)
		if len(args) == 0 {
			return nil
		}
		switch hooks.ClassifyRole(resolved) {
		case hooks.RoleSetterFactory:
			if id, ok := resolveStateArg(r.idx, args[0]); ok {
				return &wrapperResult{isSetter: true, stateID: id, isReset: hooks.IsResetHook(resolved)}
			}
			return nil
		case hooks.RoleTupleFactory:
			if id, ok := resolveStateArg(r.idx, args[0]); ok {
				return &wrapperResult{isSetter: true, stateID: id}
			}
			return nil
		}
		return nil
	}
	callee := call.ChildByFieldName("function")
	target := facade.FunctionLikeOf(callee)
	if target.IsNil() {
		return nil
	}
	return r.resolve(target)
}

// resolve runs the wrapper-aware analysis over a function-like declaration.
func (r *resolver) resolve(fn *facade.Node) *wrapperResult {
	key := funcKey(fn)
	if cached, ok := r.cache[key]; ok {
		return cached
	}
	if r.inflight[key] {
		return nil
	}
	r.inflight[key] = true
	defer delete(r.inflight, key)

	localValues := map[string]*wrapperResult{}
	localSetterNames := map[string]Binding{}
	for _, decl := range innerDeclarators(fn) {
		name := decl.ChildByFieldName("name")
		init := decl.ChildByFieldName("value")
		if init.IsNil() || init.Type() != "call_expression" {
			continue
		}
		result := r.resolveCall(init)
		if result == nil || !result.isSetter {
			continue
		}
		binding := Binding{StateID: result.stateID, IsReset: result.isReset}
		switch name.Type() {
		case "identifier":
			localValues[name.Text()] = result
			localSetterNames[name.Text()] = binding
		case "array_pattern":
			elems := name.NamedChildren()
			if len(elems) >= 2 && elems[1].Type() == "identifier" {
				localValues[elems[1].Text()] = result
				localSetterNames[elems[1].Text()] = binding
			}
		}
	}

	var out *wrapperResult
	for _, ret := range facade.ReturnExpressions(fn) {
		switch ret.Type() {
		case "call_expression":
			out = r.resolveCall(ret)
		case "identifier":
			if lv, ok := localValues[ret.Text()]; ok {
				out = lv
			}
		case "object":
			props := objectSetterProps(ret, localSetterNames)
			if len(props) > 0 {
				out = &wrapperResult{props: props}
			}
		}
		if out != nil {
			break
		}
	}
	r.cache[key] = out
	return out
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

func objectSetterProps(obj *facade.Node, localSetterNames map[string]Binding) map[string]Binding {
	props := map[string]Binding{}
	for _, c := range obj.NamedChildren() {
		switch c.Type() {
		case "pair":
			key := c.ChildByFieldName("key")
			val := c.ChildByFieldName("value")
			if key.IsNil() || val.IsNil() || val.Type() != "identifier" {
				continue
			}
			if b, ok := localSetterNames[val.Text()]; ok {
				props[key.Text()] = b
			}
		case "shorthand_property_identifier":
			if b, ok := localSetterNames[c.Text()]; ok {
				props[c.Text()] = b
			}
		}
	}
	return props
}
