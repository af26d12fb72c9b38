// Package deps implements the dependency extractor of §4.7: state->state
// edges from selector/selectorFamily get functions, atom-with-selector
// defaults, store-B derived atoms/atomWithDefault, and store-B atom
// families whose factories return derived atoms. Every edge is paired with
// a dependency-phase read event at the same location and via.
package deps

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/handle"
	"github.com/viant/stateaudit/analyzer/hooks"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

// Result bundles the edges and their paired dependency-phase read events.
type Result struct {
	Edges  []model.DependencyEdge
	Events []model.UsageEvent
}

func Extract(idx *symbolindex.Index, handles handle.Set) Result {
	var res Result
	for i := range idx.States {
		sym := idx.States[i]
		switch {
		case sym.Store == model.StoreA && (sym.Kind == model.Selector || sym.Kind == model.SelectorFamily):
			res.append(selectorOwnerEdges(idx, handles, sym.ID, sym.Name, idx.InitCallOf(sym.ID)))
		case sym.Store == model.StoreA && sym.Kind == model.Atom && !sym.IsPlainAtomA:
			res.append(atomWithSelectorDefaultEdges(idx, handles, sym))
		case sym.Store == model.StoreB && (sym.Kind == model.DerivedAtom || sym.Kind == model.AtomWithDefault):
			res.append(storeBDerivedEdges(idx, sym.ID, idx.InitCallOf(sym.ID)))
		case sym.Store == model.StoreB && sym.Kind == model.AtomFamily:
			res.append(storeBFamilyEdges(idx, sym.ID, idx.InitCallOf(sym.ID)))
		}
	}
	return res
}

func (r *Result) append(other Result) {
	r.Edges = append(r.Edges, other.Edges...)
	r.Events = append(r.Events, other.Events...)
}

func emitEdge(ownerID, toID string, loc facade.Location, via, ownerName string) (model.DependencyEdge, model.UsageEvent) {
	l := model.Location{File: loc.File, Line: loc.Line, Column: loc.Column}
	edge := model.DependencyEdge{FromStateID: ownerID, ToStateID: toID, Location: l, Via: via}
	event := model.UsageEvent{
		Type: model.Read, Phase: model.PhaseDependency, StateID: toID,
		ActorType: model.ActorState, ActorName: ownerName, ActorStateID: ownerID,
		Location: l, Via: via,
	}
	return edge, event
}

func resolveStateArg(idx *symbolindex.Index, arg *facade.Node) (*model.StateSymbol, bool) {
	if arg.IsNil() || arg.Type() != "identifier" {
		return nil, false
	}
	decl := facade.ResolveIdentifier(arg)
	if decl.IsNil() {
		return nil, false
	}
	sym := idx.StateByDeclarationNode(arg.File(), decl, arg.Text())
	if sym == nil {
		return nil, false
	}
	return sym, true
}

// bodyCallExpressions collects every call_expression reachable from fn's
// body without descending into a nested function-like node.
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

// nestedFunctionDeclarations collects every function_declaration anywhere
// within fn — the "inner helpers" §4.7 case 1 says to also treat as read
// scopes.
func nestedFunctionDeclarations(fn *facade.Node) []*facade.Node {
	var out []*facade.Node
	body := fn.ChildByFieldName("body")
	if body.IsNil() {
		return nil
	}
	body.Walk(func(n *facade.Node) bool {
		if n.Type() == "function_declaration" {
			out = append(out, n)
		}
		return true
	})
	return out
}

// selectorOwnerEdges implements case 1: a selector/selectorFamily's get
// function (plus nested helper function declarations) as read scopes.
func selectorOwnerEdges(idx *symbolindex.Index, handles handle.Set, ownerID, ownerName string, call *facade.Node) Result {
	var res Result
	if call.IsNil() {
		return res
	}
	args := facade.CallArguments(call)
	if len(args) == 0 || args[0].Type() != "object" {
		return res
	}
	getNode := symbolindex.ObjectProperty(args[0], "get")
	rootFn := asFunctionLike(getNode)
	if rootFn.IsNil() {
		return res
	}
	scopes := append([]*facade.Node{rootFn}, nestedFunctionDeclarations(rootFn)...)
	for _, scope := range scopes {
		res.append(getScopeEdges(idx, handles, ownerID, ownerName, scope))
	}
	return res
}

func asFunctionLike(n *facade.Node) *facade.Node {
	if n.IsNil() {
		return nil
	}
	switch n.Type() {
	case "method_definition":
		return n
	case "arrow_function", "function":
		return n
	}
	return nil
}

func getScopeEdges(idx *symbolindex.Index, handles handle.Set, ownerID, ownerName string, scope *facade.Node) Result {
	var res Result
	contextName, getNames := bindGetNames(scope)
	for _, call := range bodyCallExpressions(scope) {
		args := facade.CallArguments(call)
		if len(args) == 0 {
			continue
		}
		calleeName := facade.CalleeName(call)
		base := facade.CalleeBaseIdentifier(call)

		switch {
		case base != nil && containsName(getNames, base.Text()) && calleeName == base.Text():
			toSym, ok := resolveStateArg(idx, args[0])
			if !ok {
				continue
			}
			edge, event := emitEdge(ownerID, toSym.ID, call.Location(), model.ViaStoreAGet, ownerName)
			res.Edges = append(res.Edges, edge)
			res.Events = append(res.Events, event)
		case contextName != "" && calleeName == contextName+".get":
			toSym, ok := resolveStateArg(idx, args[0])
			if !ok {
				continue
			}
			edge, event := emitEdge(ownerID, toSym.ID, call.Location(), model.ViaStoreAGet, ownerName)
			res.Edges = append(res.Edges, edge)
			res.Events = append(res.Events, event)
		case base != nil && handles.Has(base) && facade.LastSegment(calleeName) == "get":
			toSym, ok := resolveStateArg(idx, args[0])
			if !ok {
				continue
			}
			edge, event := emitEdge(ownerID, toSym.ID, call.Location(), model.ViaStoreBHandleGet, ownerName)
			res.Edges = append(res.Edges, edge)
			res.Events = append(res.Events, event)
		}
	}
	return res
}

func bindGetNames(scope *facade.Node) (string, []string) {
	first := facade.FirstParameterNode(scope)
	if first.IsNil() {
		return "", nil
	}
	if first.Type() == "identifier" {
		return first.Text(), nil
	}
	if first.Type() != "object_pattern" {
		return "", nil
	}
	var names []string
	for _, c := range first.NamedChildren() {
		switch c.Type() {
		case "shorthand_property_identifier_pattern":
			if c.Text() == "get" {
				names = append(names, "get")
			}
		case "pair_pattern":
			key := c.ChildByFieldName("key")
			val := c.ChildByFieldName("value")
			if !key.IsNil() && key.Text() == "get" && !val.IsNil() && val.Type() == "identifier" {
				names = append(names, val.Text())
			}
		}
	}
	return "", names
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// atomWithSelectorDefaultEdges implements case 2.
func atomWithSelectorDefaultEdges(idx *symbolindex.Index, handles handle.Set, atom model.StateSymbol) Result {
	var res Result
	call := idx.InitCallOf(atom.ID)
	if call.IsNil() {
		return res
	}
	args := facade.CallArguments(call)
	if len(args) == 0 || args[0].Type() != "object" {
		return res
	}
	defaultVal := symbolindex.ObjectProperty(args[0], "default")
	if defaultVal.IsNil() {
		return res
	}
	var selectorCall *facade.Node
	switch defaultVal.Type() {
	case "call_expression":
		resolved, ok := hooks.ResolveCallee(defaultVal.File(), defaultVal)
		if ok && resolved.Module == hooks.StoreAModule && (resolved.Original == hooks.FnSelector || resolved.Original == hooks.FnSelectorFamily) {
			selectorCall = defaultVal
		}
	case "identifier":
		decl := facade.ResolveIdentifier(defaultVal)
		if !decl.IsNil() {
			if sym := idx.StateByDeclarationNode(defaultVal.File(), decl, defaultVal.Text()); sym != nil &&
				sym.Store == model.StoreA && (sym.Kind == model.Selector || sym.Kind == model.SelectorFamily) {
				selectorCall = idx.InitCallOf(sym.ID)
			}
		}
	}
	if selectorCall.IsNil() {
		return res
	}
	return selectorOwnerEdges(idx, handles, atom.ID, atom.Name, selectorCall)
}

// storeBDerivedEdges implements case 3.
func storeBDerivedEdges(idx *symbolindex.Index, ownerID string, call *facade.Node) Result {
	var res Result
	if call.IsNil() {
		return res
	}
	args := facade.CallArguments(call)
	if len(args) == 0 {
		return res
	}
	readFn := args[0]
	if readFn.Type() != "arrow_function" && readFn.Type() != "function" {
		return res
	}
	ownerName := idx.StateByID(ownerID).Name
	getName := "get"
	if p := facade.FirstParameterNode(readFn); !p.IsNil() && p.Type() == "identifier" {
		getName = p.Text()
	}
	for _, call := range bodyCallExpressions(readFn) {
		callee := call.ChildByFieldName("function")
		if callee.IsNil() || callee.Type() != "identifier" || callee.Text() != getName {
			continue
		}
		args := facade.CallArguments(call)
		if len(args) == 0 {
			continue
		}
		toSym, ok := resolveStateArg(idx, args[0])
		if !ok {
			continue
		}
		edge, event := emitEdge(ownerID, toSym.ID, call.Location(), model.ViaStoreBGet, ownerName)
		res.Edges = append(res.Edges, edge)
		res.Events = append(res.Events, event)
	}
	return res
}

// storeBFamilyEdges implements case 4.
func storeBFamilyEdges(idx *symbolindex.Index, ownerID string, call *facade.Node) Result {
	var res Result
	if call.IsNil() {
		return res
	}
	args := facade.CallArguments(call)
	if len(args) == 0 {
		return res
	}
	factory := args[0]
	if factory.Type() != "arrow_function" && factory.Type() != "function" {
		return res
	}
	for _, ret := range facade.ReturnExpressions(factory) {
		if ret.Type() != "call_expression" {
			continue
		}
		resolved, ok := hooks.ResolveCallee(ret.File(), ret)
		if !ok {
			continue
		}
		isDerived := resolved.Module == hooks.StoreBModule && resolved.Original == hooks.FnAtom
		isWithDefault := resolved.Module == hooks.StoreBUtilsModule && resolved.Original == hooks.FnAtomWithDefault
		if !isDerived && !isWithDefault {
			continue
		}
		res.append(storeBDerivedEdges(idx, ownerID, ret))
	}
	return res
}
