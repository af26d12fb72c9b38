package forward_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/forward"
	"github.com/viant/stateaudit/analyzer/setterbind"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

func TestBuild_JSXPropForwarding(t *testing.T) {
	src := `import { atom, useTuple } from 'recoil';
const toggle = atom({ key: 'toggle', default: false });
function Parent() {
  const [enabled, setEnabled] = useTuple(toggle);
  return <Switch onChecked={setEnabled} />;
}
function Switch({ onChecked }) {
  onChecked(true);
}
`
	f, err := facade.Parse("toggle.tsx", []byte(src))
	assert.NoError(t, err)
	idx := symbolindex.Build([]*facade.File{f})
	direct := setterbind.Build([]*facade.File{f}, idx, false)
	forwarded := forward.Build([]*facade.File{f}, direct)

	stateID := idx.StateByID("toggle.tsx::toggle").ID
	b, ok := forwarded["toggle.tsx|onChecked"]
	assert.True(t, ok)
	assert.Equal(t, stateID, b.StateID)
}

func TestBuild_ArgumentForwarding(t *testing.T) {
	src := `import { atom, useSet } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
function bump(setter) {
  setter(1);
}
function Component() {
  const setCounter = useSet(counter);
  bump(setCounter);
}
`
	f, err := facade.Parse("bump.tsx", []byte(src))
	assert.NoError(t, err)
	idx := symbolindex.Build([]*facade.File{f})
	direct := setterbind.Build([]*facade.File{f}, idx, false)
	forwarded := forward.Build([]*facade.File{f}, direct)

	stateID := idx.StateByID("bump.tsx::counter").ID
	b, ok := forwarded["bump.tsx|setter"]
	assert.True(t, ok)
	assert.Equal(t, stateID, b.StateID)
	assert.False(t, b.IsReset)
}
