package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/stateaudit/analyzer"
	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/rules"
)

func TestAnalyzer_AnalyzeAndImpact(t *testing.T) {
	src := `import { atom as atomB } from 'jotai';
import { selector } from 'recoil';
const sharedAtomB = atomB(0);
const illegalSel = selector({ key: "illegalSel", get: ({get}) => get(sharedAtomB) });
`
	f, err := facade.Parse("cross.tsx", []byte(src))
	assert.NoError(t, err)

	a := analyzer.New(analyzer.WithExtendedCapabilities())
	report := a.Analyze([]*facade.File{f})

	assert.Len(t, report.Result.DependencyEdges, 1)
	found := false
	for _, v := range report.Violations {
		if v.Rule == rules.R001CrossStoreDependency {
			found = true
		}
	}
	assert.True(t, found)

	var fromID string
	for _, s := range report.Symbols {
		if s.Name == "sharedAtomB" {
			fromID = s.ID
		}
	}
	imp := a.Impact(fromID, report.Result)
	assert.Len(t, imp.Hops, 1)
}
