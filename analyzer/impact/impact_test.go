package impact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer/impact"
	"github.com/viant/stateaudit/analyzer/model"
)

func TestQuery_BreadthOrder(t *testing.T) {
	edges := []model.DependencyEdge{
		{FromStateID: "sel1", ToStateID: "atomA", Via: model.ViaStoreAGet},
		{FromStateID: "sel2", ToStateID: "sel1", Via: model.ViaStoreAGet},
	}
	events := []model.UsageEvent{
		{StateID: "atomA", Type: model.Read},
		{StateID: "sel1", Type: model.Read},
		{StateID: "unrelated", Type: model.Read},
	}
	res := impact.Query("atomA", edges, events)

	assert.NotEmpty(t, res.QueryID)
	assert.Equal(t, "atomA", res.StateID)
	if assert.Len(t, res.Hops, 2) {
		assert.Equal(t, "sel1", res.Hops[0].StateID)
		assert.Equal(t, 1, res.Hops[0].Depth)
		assert.Equal(t, "sel2", res.Hops[1].StateID)
		assert.Equal(t, 2, res.Hops[1].Depth)
	}
	assert.Len(t, res.Actors, 2)
}

func TestQuery_NoDependents(t *testing.T) {
	res := impact.Query("lonely", nil, nil)
	assert.Empty(t, res.Hops)
	assert.Empty(t, res.Actors)
}
