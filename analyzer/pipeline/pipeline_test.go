package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/pipeline"
	"github.com/viant/stateaudit/analyzer/rules"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

func parseAll(t *testing.T, srcs map[string]string) []*facade.File {
	t.Helper()
	var files []*facade.File
	for path, src := range srcs {
		f, err := facade.Parse(path, []byte(src))
		assert.NoError(t, err)
		files = append(files, f)
	}
	return files
}

func TestAnalyze_CrossStoreSelectorViaContextGet(t *testing.T) {
	files := parseAll(t, map[string]string{
		"cross.tsx": `import { atom as atomB } from 'jotai';
import { selector } from 'recoil';
const sharedAtomB = atomB(0);
const illegalSel = selector({ key: "illegalSel", get: ({get}) => get(sharedAtomB) });
`,
	})
	res := pipeline.Analyze(files, model.CoreProfile())
	assert.Len(t, res.DependencyEdges, 1)
	assert.Equal(t, model.ViaStoreAGet, res.DependencyEdges[0].Via)

	violations := rules.Evaluate(nil, symbolsOf(files), res.UsageEvents, res.DependencyEdges)
	assert.True(t, hasViolation(violations, rules.R001CrossStoreDependency))
}

func TestAnalyze_ImperativeHandleCrossStore(t *testing.T) {
	files := parseAll(t, map[string]string{
		"handle.tsx": `import { atom as atomB, createStore } from 'jotai';
import { selector } from 'recoil';
const sharedAtomB = atomB(0);
const handle = createStore();
const illegalSel2 = selector({ key: "illegalSel2", get() { return handle.get(sharedAtomB); } });
`,
	})
	res := pipeline.Analyze(files, model.ExtendedProfile())
	assert.Len(t, res.DependencyEdges, 1)
	assert.Equal(t, model.ViaStoreBHandleGet, res.DependencyEdges[0].Via)
}

func TestAnalyze_WrapperHiddenSetterSatisfiesR004(t *testing.T) {
	files := parseAll(t, map[string]string{
		"wrapper.tsx": `import { atom, useValue, useSet } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
const useSetCounter = () => useSet(counter);
function Component() {
  const value = useValue(counter);
  const set = useSetCounter();
  const onClick = () => set(1);
}
`,
	})
	res := pipeline.Analyze(files, model.ExtendedProfile())
	violations := rules.Evaluate([]rules.ID{rules.R004ReadWithoutWrite}, symbolsOf(files), res.UsageEvents, res.DependencyEdges)
	assert.False(t, hasViolation(violations, rules.R004ReadWithoutWrite))
}

func TestAnalyze_OneHopPropForwardingSatisfiesR004(t *testing.T) {
	files := parseAll(t, map[string]string{
		"forward.tsx": `import { atom, useValue, useSet } from 'recoil';
const toggle = atom({ key: 'toggle', default: false });
function Parent() {
  const enabled = useValue(toggle);
  const setEnabled = useSet(toggle);
  return <Switch onChecked={setEnabled}/>;
}
function Switch({onChecked}) {
  onChecked(true);
}
`,
	})
	res := pipeline.Analyze(files, model.ExtendedProfile())
	violations := rules.Evaluate([]rules.ID{rules.R004ReadWithoutWrite}, symbolsOf(files), res.UsageEvents, res.DependencyEdges)
	assert.False(t, hasViolation(violations, rules.R004ReadWithoutWrite))
}

func TestAnalyze_InitWriteExcludedLeavesR004Violation(t *testing.T) {
	files := parseAll(t, map[string]string{
		"init.tsx": `import { atom, useValue } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
function initializeCounter(set) {
  set(counter, 1);
}
function App() {
  const value = useValue(counter);
  return <Root initializeState={({set}) => initializeCounter(set)} />;
}
`,
	})
	res := pipeline.Analyze(files, model.ExtendedProfile())
	violations := rules.Evaluate([]rules.ID{rules.R004ReadWithoutWrite}, symbolsOf(files), res.UsageEvents, res.DependencyEdges)
	assert.True(t, hasViolation(violations, rules.R004ReadWithoutWrite))
}

func TestAnalyze_StoreBDerivedAtomDependency(t *testing.T) {
	files := parseAll(t, map[string]string{
		"derived.tsx": `import { atom } from 'jotai';
const count = atom(0);
const doubled = atom((get) => get(count) * 2);
`,
	})
	res := pipeline.Analyze(files, model.CoreProfile())
	assert.Len(t, res.DependencyEdges, 1)
	assert.Equal(t, model.ViaStoreBGet, res.DependencyEdges[0].Via)
}

func TestAnalyze_Deterministic(t *testing.T) {
	files := parseAll(t, map[string]string{
		"a.tsx": `import { atom, useValue } from 'recoil';
const counter = atom({ key: 'counter', default: 0 });
function Component() {
  const value = useValue(counter);
}
`,
	})
	first := pipeline.Analyze(files, model.ExtendedProfile())
	second := pipeline.Analyze(files, model.ExtendedProfile())
	assert.Equal(t, first, second)
}

func symbolsOf(files []*facade.File) []model.StateSymbol {
	return symbolindex.Build(files).States
}

func hasViolation(violations []rules.Violation, id rules.ID) bool {
	for _, v := range violations {
		if v.Rule == id {
			return true
		}
	}
	return false
}
