package events

import (
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/model"
)

// actorOf reports the function-typed actor enclosing n, or the unknown
// actor when n sits outside any identifiable function.
func actorOf(n *facade.Node) (model.ActorType, string) {
	fn := facade.EnclosingFunctionLike(n)
	if fn.IsNil() {
		return model.ActorUnknown, ""
	}
	if name := functionName(fn); name != "" {
		return model.ActorFunction, name
	}
	return model.ActorUnknown, ""
}

func toLocation(l facade.Location) model.Location {
	return model.Location{File: l.File, Line: l.Line, Column: l.Column}
}
