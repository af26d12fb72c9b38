package deps_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer/deps"
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/handle"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

func TestExtract_SelectorReadsStoreBAtomViaContextGet(t *testing.T) {
	src := `import { atom as atomB } from 'jotai';
import { selector } from 'recoil';
const sharedAtomB = atomB(0);
const illegalSel = selector({ key: "illegalSel", get: ({get}) => get(sharedAtomB) });
`
	f, err := facade.Parse("cross.tsx", []byte(src))
	assert.NoError(t, err)
	idx := symbolindex.Build([]*facade.File{f})
	res := deps.Extract(idx, handle.Set{})

	fromID := idx.StateByID("cross.tsx::illegalSel").ID
	toID := idx.StateByID("cross.tsx::sharedAtomB").ID
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, fromID, res.Edges[0].FromStateID)
	assert.Equal(t, toID, res.Edges[0].ToStateID)
	assert.Equal(t, model.ViaStoreAGet, res.Edges[0].Via)
	assert.Len(t, res.Events, 1)
	assert.Equal(t, model.PhaseDependency, res.Events[0].Phase)
}

func TestExtract_SelectorUsesStoreBImperativeHandle(t *testing.T) {
	src := `import { atom as atomB, createStore } from 'jotai';
import { selector } from 'recoil';
const sharedAtomB = atomB(0);
const handle = createStore();
const illegalSel2 = selector({ key: "illegalSel2", get() { return handle.get(sharedAtomB); } });
`
	f, err := facade.Parse("handle.tsx", []byte(src))
	assert.NoError(t, err)
	idx := symbolindex.Build([]*facade.File{f})
	handles := handle.Build([]*facade.File{f})
	res := deps.Extract(idx, handles)

	fromID := idx.StateByID("handle.tsx::illegalSel2").ID
	toID := idx.StateByID("handle.tsx::sharedAtomB").ID
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, fromID, res.Edges[0].FromStateID)
	assert.Equal(t, toID, res.Edges[0].ToStateID)
	assert.Equal(t, model.ViaStoreBHandleGet, res.Edges[0].Via)
}

func TestExtract_StoreBDerivedAtom(t *testing.T) {
	src := `import { atom } from 'jotai';
const count = atom(0);
const doubled = atom((get) => get(count) * 2);
`
	f, err := facade.Parse("derived.tsx", []byte(src))
	assert.NoError(t, err)
	idx := symbolindex.Build([]*facade.File{f})
	res := deps.Extract(idx, handle.Set{})

	fromID := idx.StateByID("derived.tsx::doubled").ID
	toID := idx.StateByID("derived.tsx::count").ID
	assert.Len(t, res.Edges, 1)
	assert.Equal(t, fromID, res.Edges[0].FromStateID)
	assert.Equal(t, toID, res.Edges[0].ToStateID)
	assert.Equal(t, model.ViaStoreBGet, res.Edges[0].Via)
}
