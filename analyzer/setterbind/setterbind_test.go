package setterbind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/setterbind"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

func build(t *testing.T, path, src string, wrappers bool) (setterbind.Map, *symbolindex.Index, *facade.File) {
	t.Helper()
	f, err := facade.Parse(path, []byte(src))
	assert.NoError(t, err)
	idx := symbolindex.Build([]*facade.File{f})
	return setterbind.Build([]*facade.File{f}, idx, wrappers), idx, f
}

func TestBuild_DirectSetter(t *testing.T) {
	m, idx, _ := build(t, "direct.tsx", `import { atom, useSet } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
function Component() {
  const setCounter = useSet(counter);
}
`, false)
	stateID := idx.StateByID("direct.tsx::counter").ID
	b, ok := m["direct.tsx|setCounter"]
	assert.True(t, ok)
	assert.Equal(t, stateID, b.StateID)
	assert.False(t, b.IsReset)
}

func TestBuild_DirectResetHook(t *testing.T) {
	m, idx, _ := build(t, "reset.tsx", `import { atom, useReset } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
function Component() {
  const resetCounter = useReset(counter);
}
`, false)
	stateID := idx.StateByID("reset.tsx::counter").ID
	b, ok := m["reset.tsx|resetCounter"]
	assert.True(t, ok)
	assert.Equal(t, stateID, b.StateID)
	assert.True(t, b.IsReset)
}

func TestBuild_WrapperHiddenSetter(t *testing.T) {
	m, idx, _ := build(t, "wrapper.tsx", `import { atom, useSet } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
const useSetCounter = () => useSet(counter);
function Component() {
  const set = useSetCounter();
  const onClick = () => set(1);
}
`, true)
	stateID := idx.StateByID("wrapper.tsx::counter").ID
	b, ok := m["wrapper.tsx|set"]
	assert.True(t, ok)
	assert.Equal(t, stateID, b.StateID)
}

func TestBuild_ObjectReturningWrapper(t *testing.T) {
	m, idx, _ := build(t, "objwrap.tsx", `import { atom, useTuple } from 'recoil';
const titleState = atom({ key: 'titleState', default: '' });
function useTitle() {
  const [title, setTitle] = useTuple(titleState);
  return { title, setTitle };
}
function Consumer() {
  const { setTitle } = useTitle();
  const onChange = (e) => setTitle(e.target.value);
}
`, true)
	stateID := idx.StateByID("objwrap.tsx::titleState").ID
	b, ok := m["objwrap.tsx|setTitle"]
	assert.True(t, ok)
	assert.Equal(t, stateID, b.StateID)
}
