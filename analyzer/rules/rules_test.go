package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/rules"
)

func TestEvaluate_CrossStoreDependency(t *testing.T) {
	symbols := []model.StateSymbol{
		{ID: "f::illegalSel", Store: model.StoreA, Kind: model.Selector},
		{ID: "f::sharedAtomB", Store: model.StoreB, Kind: model.Atom},
	}
	edges := []model.DependencyEdge{
		{FromStateID: "f::illegalSel", ToStateID: "f::sharedAtomB", Via: model.ViaStoreAGet},
	}
	out := rules.Evaluate(nil, symbols, nil, edges)
	assert.Len(t, out, 1)
	assert.Equal(t, rules.R001CrossStoreDependency, out[0].Rule)
	assert.Equal(t, "f::illegalSel", out[0].StateID)
}

func TestEvaluate_ZeroDependencyEdges(t *testing.T) {
	symbols := []model.StateSymbol{
		{ID: "f::deadSel", Store: model.StoreA, Kind: model.Selector},
	}
	out := rules.Evaluate([]rules.ID{rules.R002ZeroDependencyEdges}, symbols, nil, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, rules.R002ZeroDependencyEdges, out[0].Rule)
}

func TestEvaluate_WriteOnlyState(t *testing.T) {
	symbols := []model.StateSymbol{{ID: "f::counter", Store: model.StoreA, Kind: model.Atom}}
	events := []model.UsageEvent{
		{Type: model.RuntimeWrite, Phase: model.PhaseRuntime, StateID: "f::counter"},
	}
	out := rules.Evaluate([]rules.ID{rules.R003WriteOnlyState}, symbols, events, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, rules.R003WriteOnlyState, out[0].Rule)
}

func TestEvaluate_ReadWithoutWrite(t *testing.T) {
	symbols := []model.StateSymbol{{ID: "f::counter", Store: model.StoreA, Kind: model.Atom, IsPlainAtomA: true}}
	events := []model.UsageEvent{
		{Type: model.Read, Phase: model.PhaseRuntime, StateID: "f::counter"},
	}
	out := rules.Evaluate([]rules.ID{rules.R004ReadWithoutWrite}, symbols, events, nil)
	assert.Len(t, out, 1)
	assert.Equal(t, rules.R004ReadWithoutWrite, out[0].Rule)

	events = append(events, model.UsageEvent{Type: model.RuntimeWrite, Phase: model.PhaseRuntime, StateID: "f::counter"})
	out = rules.Evaluate([]rules.ID{rules.R004ReadWithoutWrite}, symbols, events, nil)
	assert.Len(t, out, 0)
}

func TestEvaluate_InitWriteIgnoredByR004(t *testing.T) {
	symbols := []model.StateSymbol{{ID: "f::counter", Store: model.StoreA, Kind: model.Atom, IsPlainAtomA: true}}
	events := []model.UsageEvent{
		{Type: model.Read, Phase: model.PhaseRuntime, StateID: "f::counter"},
		{Type: model.InitWrite, Phase: model.PhaseRuntime, StateID: "f::counter"},
	}
	out := rules.Evaluate([]rules.ID{rules.R004ReadWithoutWrite}, symbols, events, nil)
	assert.Len(t, out, 1)
}
