package events

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/hooks"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

var snapshotReadMethods = map[string]bool{"get": true, "getPromise": true, "getLoadable": true}

type storeACallbackBinding struct {
	contextName         string
	setName             string
	resetName           string
	snapshotName        string
	snapshotMethodLocal map[string]string // local identifier -> method name
}

func storeACallbackEvents(f *facade.File, idx *symbolindex.Index) []model.UsageEvent {
	var out []model.UsageEvent
	f.Root().Walk(func(n *facade.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		resolved, ok := hooks.ResolveCallee(f, n)
		if !ok || resolved.Module != hooks.StoreAModule || hooks.ClassifyRole(resolved) != hooks.RoleCallbackFactory {
			return true
		}
		args := facade.CallArguments(n)
		if len(args) == 0 {
			return true
		}
		fn := unwrapMemo(args[0])
		if fn.Type() != "arrow_function" && fn.Type() != "function" {
			return true
		}
		binding := bindStoreACallbackContext(fn)
		out = append(out, walkStoreACallbackBody(idx, fn, binding)...)
		return true
	})
	return out
}

func bindStoreACallbackContext(fn *facade.Node) storeACallbackBinding {
	var b storeACallbackBinding
	b.snapshotMethodLocal = map[string]string{}
	first := facade.FirstParameterNode(fn)
	if first.IsNil() {
		return b
	}
	if first.Type() == "identifier" {
		b.contextName = first.Text()
		return b
	}
	if first.Type() != "object_pattern" {
		return b
	}
	for _, c := range first.NamedChildren() {
		switch c.Type() {
		case "shorthand_property_identifier_pattern":
			switch c.Text() {
			case "set":
				b.setName = "set"
			case "reset":
				b.resetName = "reset"
			case "snapshot":
				b.snapshotName = "snapshot"
			}
		case "pair_pattern":
			key := c.ChildByFieldName("key")
			val := c.ChildByFieldName("value")
			if key.IsNil() || val.IsNil() {
				continue
			}
			switch key.Text() {
			case "set":
				if val.Type() == "identifier" {
					b.setName = val.Text()
				}
			case "reset":
				if val.Type() == "identifier" {
					b.resetName = val.Text()
				}
			case "snapshot":
				switch val.Type() {
				case "identifier":
					b.snapshotName = val.Text()
				case "object_pattern":
					for propName, localName := range facade.ObjectPatternProperties(val) {
						if snapshotReadMethods[propName] {
							b.snapshotMethodLocal[localName] = propName
						}
					}
				}
			}
		}
	}
	return b
}

func walkStoreACallbackBody(idx *symbolindex.Index, fn *facade.Node, b storeACallbackBinding) []model.UsageEvent {
	var out []model.UsageEvent
	for _, call := range bodyCallExpressions(fn) {
		calleeName := facade.CalleeName(call)
		base := facade.CalleeBaseIdentifier(call)
		args := facade.CallArguments(call)
		if len(args) == 0 {
			continue
		}
		if method, ok := readMethod(b, calleeName, base); ok {
			sym, ok := resolveStateByArg(idx, args[0])
			if !ok {
				continue
			}
			actorType, actorName := actorOf(call)
			out = append(out, model.UsageEvent{
				Type: model.Read, Phase: model.PhaseRuntime, StateID: sym.ID,
				ActorType: actorType, ActorName: actorName,
				Location: toLocation(call.Location()), Via: model.ViaSnapshotPrefix + method,
			})
			continue
		}
		if isStoreACallbackWrite(b, calleeName) {
			sym, ok := resolveStateByArg(idx, args[0])
			if !ok {
				continue
			}
			inInit := inInitContext(call)
			actorType, actorName := actorOf(call)
			out = append(out, model.UsageEvent{
				Type: writeEventType(inInit), Phase: model.PhaseRuntime, StateID: sym.ID,
				ActorType: actorType, ActorName: actorName,
				Location: toLocation(call.Location()), Via: prefixVia(model.ViaSetterCall, inInit),
			})
		}
	}
	return out
}

func readMethod(b storeACallbackBinding, calleeName string, base *facade.Node) (string, bool) {
	if !base.IsNil() {
		if method, ok := b.snapshotMethodLocal[base.Text()]; ok && calleeName == base.Text() {
			return method, true
		}
	}
	if b.snapshotName != "" {
		for method := range snapshotReadMethods {
			if calleeName == b.snapshotName+"."+method {
				return method, true
			}
		}
	}
	if b.contextName != "" {
		for method := range snapshotReadMethods {
			if calleeName == b.contextName+".snapshot."+method {
				return method, true
			}
		}
	}
	return "", false
}

func isStoreACallbackWrite(b storeACallbackBinding, calleeName string) bool {
	if b.setName != "" && calleeName == b.setName {
		return true
	}
	if b.resetName != "" && calleeName == b.resetName {
		return true
	}
	if b.contextName != "" && (calleeName == b.contextName+".set" || calleeName == b.contextName+".reset") {
		return true
	}
	return false
}
