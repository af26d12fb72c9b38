// Package report renders an analysis report in text, JSON or YAML form.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/viant/stateaudit/analyzer/model"
	"github.com/viant/stateaudit/analyzer/rules"
)

// Text writes a human-readable tabular report: usage events, dependency
// edges, then rule violations, each as its own tabwriter-aligned block.
func Text(w io.Writer, result model.Result, violations []rules.Violation) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TYPE\tPHASE\tSTATE\tACTOR\tVIA\tLOCATION")
	for _, e := range result.UsageEvents {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Type, e.Phase, e.StateID, e.ActorName, e.Via, locationOf(e.Location))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(tw, "FROM\tTO\tVIA\tLOCATION")
	for _, d := range result.DependencyEdges {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.FromStateID, d.ToStateID, d.Via, locationOf(d.Location))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(violations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(tw, "RULE\tSTATE\tDETAIL\tLOCATION")
		for _, v := range violations {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Rule, v.StateID, v.Detail, locationOf(v.Location))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func locationOf(l model.Location) string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}
