package events

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/hooks"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

func storeBCallbackEvents(f *facade.File, idx *symbolindex.Index) []model.UsageEvent {
	var out []model.UsageEvent
	f.Root().Walk(func(n *facade.Node) bool {
		if n.Type() != "call_expression" {
			return true
		}
		resolved, ok := hooks.ResolveCallee(f, n)
		if !ok || resolved.Module != hooks.StoreBUtilsModule || hooks.ClassifyRole(resolved) != hooks.RoleCallbackFactory {
			return true
		}
		args := facade.CallArguments(n)
		if len(args) == 0 {
			return true
		}
		fn := args[0]
		if fn.Type() != "arrow_function" && fn.Type() != "function" {
			return true
		}
		getName, setName := bindStoreBCallbackParams(fn)
		out = append(out, walkStoreBCallbackBody(idx, fn, getName, setName)...)
		return true
	})
	return out
}

func bindStoreBCallbackParams(fn *facade.Node) (string, string) {
	params := facade.Parameters(fn)
	get, set := "get", "set"
	if len(params) > 0 && params[0].Type() == "identifier" {
		get = params[0].Text()
	}
	if len(params) > 1 && params[1].Type() == "identifier" {
		set = params[1].Text()
	}
	return get, set
}

func walkStoreBCallbackBody(idx *symbolindex.Index, fn *facade.Node, getName, setName string) []model.UsageEvent {
	var out []model.UsageEvent
	for _, call := range bodyCallExpressions(fn) {
		callee := call.ChildByFieldName("function")
		if callee.IsNil() || callee.Type() != "identifier" {
			continue
		}
		args := facade.CallArguments(call)
		if len(args) == 0 {
			continue
		}
		sym, ok := resolveStateByArg(idx, args[0])
		if !ok {
			continue
		}
		actorType, actorName := actorOf(call)
		switch callee.Text() {
		case getName:
			out = append(out, model.UsageEvent{
				Type: model.Read, Phase: model.PhaseRuntime, StateID: sym.ID,
				ActorType: actorType, ActorName: actorName,
				Location: toLocation(call.Location()), Via: model.ViaStoreBGet,
			})
		case setName:
			out = append(out, model.UsageEvent{
				Type: model.RuntimeWrite, Phase: model.PhaseRuntime, StateID: sym.ID,
				ActorType: actorType, ActorName: actorName,
				Location: toLocation(call.Location()), Via: model.ViaSetterCall,
			})
		}
	}
	return out
}
