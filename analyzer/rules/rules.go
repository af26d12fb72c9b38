// Package rules implements the four migration-safety rule evaluators as
// pure reductions over the event and edge arrays the pipeline produces.
package rules

import (
	"sort"

	"github.com/viant/stateaudit/analyzer/model"
)

// ID identifies one of the four rule evaluators.
type ID string

const (
	R001CrossStoreDependency ID = "R001"
	R002ZeroDependencyEdges  ID = "R002"
	R003WriteOnlyState       ID = "R003"
	R004ReadWithoutWrite     ID = "R004"
)

// IDs lists the four rule identifiers in a stable order, for `stateaudit rules`.
func IDs() []ID {
	return []ID{R001CrossStoreDependency, R002ZeroDependencyEdges, R003WriteOnlyState, R004ReadWithoutWrite}
}

// Violation reports a single rule failure against a state symbol.
type Violation struct {
	Rule     ID             `yaml:"rule" json:"rule"`
	StateID  string         `yaml:"stateId" json:"stateId"`
	Location model.Location `yaml:"location" json:"location"`
	Detail   string         `yaml:"detail" json:"detail"`
}

// Evaluate runs the named rules (all four if ids is empty) against the
// given symbols, events and edges, returning violations sorted by
// (stateId, rule).
func Evaluate(ids []ID, symbols []model.StateSymbol, events []model.UsageEvent, edges []model.DependencyEdge) []Violation {
	enabled := enabledSet(ids)
	byID := make(map[string]model.StateSymbol, len(symbols))
	for _, s := range symbols {
		byID[s.ID] = s
	}

	var out []Violation
	if enabled[R001CrossStoreDependency] {
		out = append(out, crossStoreDependency(byID, edges)...)
	}
	if enabled[R002ZeroDependencyEdges] {
		out = append(out, zeroDependencyEdges(byID, edges)...)
	}
	if enabled[R003WriteOnlyState] {
		out = append(out, writeOnlyState(symbols, events)...)
	}
	if enabled[R004ReadWithoutWrite] {
		out = append(out, readWithoutWrite(symbols, events)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StateID != out[j].StateID {
			return out[i].StateID < out[j].StateID
		}
		return out[i].Rule < out[j].Rule
	})
	return out
}

func enabledSet(ids []ID) map[ID]bool {
	if len(ids) == 0 {
		m := make(map[ID]bool, len(IDs()))
		for _, id := range IDs() {
			m[id] = true
		}
		return m
	}
	m := make(map[ID]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// crossStoreDependency flags a dependency edge whose owner and target belong
// to different stores: a store-A owner reading store-B state, or a store-B
// owner reading store-A state, whichever via tag the edge carries.
func crossStoreDependency(byID map[string]model.StateSymbol, edges []model.DependencyEdge) []Violation {
	var out []Violation
	for _, e := range edges {
		owner, ok := byID[e.FromStateID]
		if !ok {
			continue
		}
		target, ok := byID[e.ToStateID]
		if !ok || target.Store == owner.Store {
			continue
		}
		switch owner.Store {
		case model.StoreA:
			out = append(out, Violation{Rule: R001CrossStoreDependency, StateID: e.FromStateID, Location: e.Location, Detail: "store-A selector reads store-B state via " + e.Via})
		case model.StoreB:
			out = append(out, Violation{Rule: R001CrossStoreDependency, StateID: e.FromStateID, Location: e.Location, Detail: "store-B derived atom reads store-A state via " + e.Via})
		}
	}
	return out
}

// zeroDependencyEdges flags a selector/derived atom with no outgoing edges.
func zeroDependencyEdges(byID map[string]model.StateSymbol, edges []model.DependencyEdge) []Violation {
	hasEdge := make(map[string]bool, len(edges))
	for _, e := range edges {
		hasEdge[e.FromStateID] = true
	}
	var out []Violation
	for id, sym := range byID {
		if sym.Kind != model.Selector && sym.Kind != model.SelectorFamily && sym.Kind != model.DerivedAtom {
			continue
		}
		if hasEdge[id] {
			continue
		}
		out = append(out, Violation{Rule: R002ZeroDependencyEdges, StateID: id, Location: sym.Location, Detail: "derived state has zero outgoing dependency edges"})
	}
	return out
}

// writeOnlyState flags a symbol with write events but no read events.
func writeOnlyState(symbols []model.StateSymbol, events []model.UsageEvent) []Violation {
	var reads, writes = counts(events)
	var out []Violation
	for _, sym := range symbols {
		if writes[sym.ID] > 0 && reads[sym.ID] == 0 {
			out = append(out, Violation{Rule: R003WriteOnlyState, StateID: sym.ID, Location: sym.Location, Detail: "state is written but never read"})
		}
	}
	return out
}

// readWithoutWrite flags a plain store-A atom with runtime reads but no
// runtime writes. Init writes are ignored per §8's worked example.
func readWithoutWrite(symbols []model.StateSymbol, events []model.UsageEvent) []Violation {
	runtimeReads := make(map[string]int)
	runtimeWrites := make(map[string]int)
	for _, e := range events {
		if e.Phase != model.PhaseRuntime {
			continue
		}
		switch e.Type {
		case model.Read:
			runtimeReads[e.StateID]++
		case model.RuntimeWrite:
			runtimeWrites[e.StateID]++
		}
	}
	var out []Violation
	for _, sym := range symbols {
		if !sym.IsPlainAtomA {
			continue
		}
		if runtimeReads[sym.ID] > 0 && runtimeWrites[sym.ID] == 0 {
			out = append(out, Violation{Rule: R004ReadWithoutWrite, StateID: sym.ID, Location: sym.Location, Detail: "plain store-A atom is read at runtime but never written at runtime"})
		}
	}
	return out
}

func counts(events []model.UsageEvent) (reads, writes map[string]int) {
	reads = make(map[string]int)
	writes = make(map[string]int)
	for _, e := range events {
		switch e.Type {
		case model.Read:
			reads[e.StateID]++
		case model.RuntimeWrite, model.InitWrite:
			writes[e.StateID]++
		}
	}
	return reads, writes
}
