package symbolindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/symbolindex"
)

type testCase struct {
	name      string
	source    string
	file      string
	expectLen int
	check     func(t *testing.T, idx *symbolindex.Index)
}

func parseOne(t *testing.T, file, src string) *facade.File {
	t.Helper()
	f, err := facade.Parse(file, []byte(src))
	assert.NoError(t, err)
	return f
}

func TestBuild(t *testing.T) {
	testCases := []testCase{
		{
			name: "plain store-A atom",
			file: "counter.tsx",
			source: `import { atom } from 'recoil';
export const counter = atom({ key: 'counter', default: 0 });
`,
			expectLen: 1,
			check: func(t *testing.T, idx *symbolindex.Index) {
				sym := idx.StateByID("counter.tsx::counter")
				assert.NotNil(t, sym)
				assert.Equal(t, model.StoreA, sym.Store)
				assert.Equal(t, model.Atom, sym.Kind)
				assert.True(t, sym.IsPlainAtomA)
				assert.True(t, sym.Exported)
			},
		},
		{
			name: "store-A atom with selector default is not plain",
			file: "withdefault.tsx",
			source: `import { atom, selector } from 'recoil';
const base = selector({ key: 'base', get: () => 1 });
const derived = atom({ key: 'derived', default: base });
`,
			expectLen: 2,
			check: func(t *testing.T, idx *symbolindex.Index) {
				sym := idx.StateByID("withdefault.tsx::derived")
				assert.NotNil(t, sym)
				assert.False(t, sym.IsPlainAtomA)
			},
		},
		{
			name: "store-B derived atom distinguished from plain atom",
			file: "jotaiatoms.tsx",
			source: `import { atom } from 'jotai';
const count = atom(0);
const doubled = atom((get) => get(count) * 2);
`,
			expectLen: 2,
			check: func(t *testing.T, idx *symbolindex.Index) {
				plain := idx.StateByID("jotaiatoms.tsx::count")
				derived := idx.StateByID("jotaiatoms.tsx::doubled")
				assert.Equal(t, model.Atom, plain.Kind)
				assert.Equal(t, model.DerivedAtom, derived.Kind)
			},
		},
		{
			name: "store-B utilities atomFamily and atomWithDefault",
			file: "families.tsx",
			source: `import { atomFamily, atomWithDefault } from 'jotai/utils';
const itemFamily = atomFamily((id) => id);
const withDefault = atomWithDefault((get) => 0);
`,
			expectLen: 2,
			check: func(t *testing.T, idx *symbolindex.Index) {
				fam := idx.StateByID("families.tsx::itemFamily")
				def := idx.StateByID("families.tsx::withDefault")
				assert.Equal(t, model.AtomFamily, fam.Kind)
				assert.Equal(t, model.StoreB, fam.Store)
				assert.Equal(t, model.AtomWithDefault, def.Kind)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := parseOne(t, tc.file, tc.source)
			idx := symbolindex.Build([]*facade.File{f})
			assert.Len(t, idx.States, tc.expectLen)
			if tc.check != nil {
				tc.check(t, idx)
			}
		})
	}
}

func TestBuild_SortedByFileLineName(t *testing.T) {
	f := parseOne(t, "multi.tsx", `import { atom } from 'recoil';
const z = atom({ key: 'z', default: 0 });
const a = atom({ key: 'a', default: 0 });
`)
	idx := symbolindex.Build([]*facade.File{f})
	assert.Len(t, idx.States, 2)
	assert.Equal(t, "z", idx.States[0].Name)
	assert.Equal(t, "a", idx.States[1].Name)
}
