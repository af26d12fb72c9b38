// Package events implements the usage-event extractors of §4.6: direct
// read hooks, setter call/reference sites, callback-body reads and writes,
// imperative handle writes, and the bare set/reset mutation heuristic.
package events

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/handle"
	"github.com/viant/stateaudit/analyzer/hooks"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/setterbind"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

// Extract runs every extractor gated by profile against every file.
func Extract(files []*facade.File, idx *symbolindex.Index, bindings setterbind.Map, handles handle.Set, profile model.CapabilityProfile) []model.UsageEvent {
	var out []model.UsageEvent
	for _, f := range files {
		out = append(out, directHookReads(f, idx)...)
		out = append(out, setterCallWrites(f, bindings)...)
		out = append(out, setterJSXReferences(f, bindings)...)
		out = append(out, directMutationCalls(f, idx, handles)...)
		if profile.HandleAPI {
			out = append(out, handleWrites(f, idx, handles)...)
		}
		if profile.Callbacks {
			out = append(out, storeACallbackEvents(f, idx)...)
			out = append(out, storeBCallbackEvents(f, idx)...)
		}
	}
	return out
}

func resolveStateByArg(idx *symbolindex.Index, arg *facade.Node) (*model.StateSymbol, bool) {
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

// directHookReads implements the "Direct hooks" paragraph.
func directHookReads(f *facade.File, idx *symbolindex.Index) []model.UsageEvent {
	var out []model.UsageEvent
	f.Root().Walk(func(n *facade.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		resolved, ok := hooks.ResolveCallee(f, n)
		if !ok {
			return true
		}
		via, isReadHook := readHookVia(resolved)
		if !isReadHook {
			return true
		}
		args := facade.CallArguments(n)
		if len(args) == 0 {
			return true
		}
		sym, ok := resolveStateByArg(idx, args[0])
		if !ok {
			return true
		}
		actorType, actorName := actorOf(n)
		out = append(out, model.UsageEvent{
			Type: model.Read, Phase: model.PhaseRuntime, StateID: sym.ID,
			ActorType: actorType, ActorName: actorName,
			Location: toLocation(n.Location()), Via: via,
		})
		return true
	})
	return out
}

func readHookVia(r hooks.Resolved) (string, bool) {
	if r.Module == hooks.StoreAModule {
		switch r.Original {
		case hooks.FnUseValue:
			return model.ViaStoreAUseValue, true
		case hooks.FnUseValueLoad:
			return model.ViaStoreAUseValueLoad, true
		case hooks.FnUseTuple:
			return model.ViaStoreAUseTuple, true
		case hooks.FnUseTupleLoad:
			return model.ViaStoreAUseTupleLoad, true
		}
	}
	if r.Module == hooks.StoreBModule {
		switch r.Original {
		case hooks.FnUseAtomValue:
			return model.ViaStoreBUseAtomValue, true
		case hooks.FnUseAtom:
			return model.ViaStoreBUseAtom, true
		}
	}
	return "", false
}

// setterCallWrites implements the "Setter calls" paragraph. A binding that
// originates from store-A's useReset hook tags the write "reset-call"
// instead of "setter-call".
func setterCallWrites(f *facade.File, bindings setterbind.Map) []model.UsageEvent {
	var out []model.UsageEvent
	f.Root().Walk(func(n *facade.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		callee := n.ChildByFieldName("function")
		if callee.IsNil() || callee.Type() != "identifier" {
			return true
		}
		b, ok := bindings.Lookup(callee)
		if !ok {
			return true
		}
		inInit := inInitContext(n)
		actorType, actorName := actorOf(n)
		out = append(out, model.UsageEvent{
			Type: writeEventType(inInit), Phase: model.PhaseRuntime, StateID: b.StateID,
			ActorType: actorType, ActorName: actorName,
			Location: toLocation(n.Location()), Via: prefixVia(setterCallVia(b), inInit),
		})
		return true
	})
	return out
}

func setterCallVia(b setterbind.Binding) string {
	if b.IsReset {
		return model.ViaResetCall
	}
	return model.ViaSetterCall
}

// setterJSXReferences implements "Setter references in JSX event handlers".
func setterJSXReferences(f *facade.File, bindings setterbind.Map) []model.UsageEvent {
	var out []model.UsageEvent
	f.Root().Walk(func(n *facade.Node) bool {
		switch n.Type() {
		case "jsx_element", "jsx_self_closing_element":
		default:
			return true
		}
		for _, attr := range facade.JSXEventAttributes(n) {
			value := facade.JSXAttributeValue(attr)
			if value.IsNil() || value.Type() != "identifier" {
				continue
			}
			b, ok := bindings.Lookup(value)
			if !ok {
				continue
			}
			inInit := inInitContext(attr)
			actorType, actorName := actorOf(attr)
			out = append(out, model.UsageEvent{
				Type: writeEventType(inInit), Phase: model.PhaseRuntime, StateID: b.StateID,
				ActorType: actorType, ActorName: actorName,
				Location: toLocation(value.Location()), Via: prefixVia(model.ViaSetterReference, inInit),
			})
		}
		return true
	})
	return out
}

// handleWrites implements "Imperative handle writes".
func handleWrites(f *facade.File, idx *symbolindex.Index, handles handle.Set) []model.UsageEvent {
	var out []model.UsageEvent
	f.Root().Walk(func(n *facade.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		if facade.LastSegment(facade.CalleeName(n)) != "set" {
			return true
		}
		base := facade.CalleeBaseIdentifier(n)
		if base.IsNil() || !handles.Has(base) {
			return true
		}
		args := facade.CallArguments(n)
		if len(args) == 0 {
			return true
		}
		sym, ok := resolveStateByArg(idx, args[0])
		if !ok {
			return true
		}
		inInit := inInitContext(n)
		actorType, actorName := actorOf(n)
		out = append(out, model.UsageEvent{
			Type: writeEventType(inInit), Phase: model.PhaseRuntime, StateID: sym.ID,
			ActorType: actorType, ActorName: actorName,
			Location: toLocation(n.Location()), Via: prefixVia(model.ViaStoreBHandleSet, inInit),
		})
		return true
	})
	return out
}

// directMutationCalls implements the reproduced Open Question heuristic:
// any call whose callee is literally "set" or "reset", not a store-B
// handle set, whose first argument resolves to a known state.
func directMutationCalls(f *facade.File, idx *symbolindex.Index, handles handle.Set) []model.UsageEvent {
	var out []model.UsageEvent
	f.Root().Walk(func(n *facade.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		last := facade.LastSegment(facade.CalleeName(n))
		if last != "set" && last != "reset" {
			return true
		}
		base := facade.CalleeBaseIdentifier(n)
		if !base.IsNil() && handles.Has(base) {
			return true // already counted as an imperative handle write
		}
		args := facade.CallArguments(n)
		if len(args) == 0 {
			return true
		}
		sym, ok := resolveStateByArg(idx, args[0])
		if !ok {
			return true
		}
		inInit := inInitContext(n)
		actorType, actorName := actorOf(n)
		out = append(out, model.UsageEvent{
			Type: writeEventType(inInit), Phase: model.PhaseRuntime, StateID: sym.ID,
			ActorType: actorType, ActorName: actorName,
			Location: toLocation(n.Location()), Via: prefixVia(last, inInit),
		})
		return true
	})
	return out
}
