package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer/events"
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/forward"
	"github.com/viant/stateaudit/analyzer/handle"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/setterbind"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

func buildAll(t *testing.T, path, src string, profile model.CapabilityProfile) ([]model.UsageEvent, *symbolindex.Index) {
	t.Helper()
	f, err := facade.Parse(path, []byte(src))
	assert.NoError(t, err)
	files := []*facade.File{f}
	idx := symbolindex.Build(files)
	direct := setterbind.Build(files, idx, profile.Wrappers)
	bindings := direct
	if profile.Forwarding {
		bindings = setterbind.Map{}
		for k, v := range direct {
			bindings[k] = v
		}
		bindings.Merge(forward.Build(files, direct))
	}
	handles := handle.Set{}
	if profile.HandleAPI {
		handles = handle.Build(files)
	}
	return events.Extract(files, idx, bindings, handles, profile), idx
}

func TestExtract_DirectHookRead(t *testing.T) {
	out, idx := buildAll(t, "read.tsx", `import { atom, useValue } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
function Component() {
  const value = useValue(counter);
}
`, model.CoreProfile())
	stateID := idx.StateByID("read.tsx::counter").ID
	assert.Len(t, out, 1)
	assert.Equal(t, model.Read, out[0].Type)
	assert.Equal(t, stateID, out[0].StateID)
	assert.Equal(t, model.ViaStoreAUseValue, out[0].Via)
}

func TestExtract_WrapperHiddenSetterCall(t *testing.T) {
	out, idx := buildAll(t, "wrapper.tsx", `import { atom, useSet } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
const useSetCounter = () => useSet(counter);
function Component() {
  const set = useSetCounter();
  const onClick = () => set(1);
}
`, model.ExtendedProfile())
	stateID := idx.StateByID("wrapper.tsx::counter").ID
	var write *model.UsageEvent
	for i := range out {
		if out[i].Type == model.RuntimeWrite {
			write = &out[i]
		}
	}
	assert.NotNil(t, write)
	assert.Equal(t, stateID, write.StateID)
	assert.Equal(t, model.ViaSetterCall, write.Via)
}

func TestExtract_ResetCallTaggedResetNotSetter(t *testing.T) {
	out, idx := buildAll(t, "reset.tsx", `import { atom, useReset } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
function Component() {
  const resetCounter = useReset(counter);
  const onClick = () => resetCounter();
}
`, model.CoreProfile())
	stateID := idx.StateByID("reset.tsx::counter").ID
	var write *model.UsageEvent
	for i := range out {
		if out[i].Type == model.RuntimeWrite {
			write = &out[i]
		}
	}
	assert.NotNil(t, write)
	assert.Equal(t, stateID, write.StateID)
	assert.Equal(t, model.ViaResetCall, write.Via)
}

func TestExtract_InitWriteExcludedFromRuntime(t *testing.T) {
	out, idx := buildAll(t, "init.tsx", `import { atom } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
function initializeCounter(set) {
  set(counter, 1);
}
function App() {
  return <Root initializeState={({set}) => initializeCounter(set)} />;
}
`, model.ExtendedProfile())
	stateID := idx.StateByID("init.tsx::counter").ID
	var initWrites, runtimeWrites int
	for _, e := range out {
		if e.StateID != stateID {
			continue
		}
		switch e.Type {
		case model.InitWrite:
			initWrites++
		case model.RuntimeWrite:
			runtimeWrites++
		}
	}
	assert.Equal(t, 1, initWrites)
	assert.Equal(t, 0, runtimeWrites)
}

func TestExtract_ImperativeHandleWrite(t *testing.T) {
	out, idx := buildAll(t, "handle.tsx", `import { atom, createStore } from 'jotai';
const shared = atom(0);
const handle = createStore();
function Component() {
  handle.set(shared, 1);
}
`, model.ExtendedProfile())
	stateID := idx.StateByID("handle.tsx::shared").ID
	found := false
	for _, e := range out {
		if e.StateID == stateID && e.Via == model.ViaStoreBHandleSet {
			found = true
		}
	}
	assert.True(t, found)
}
