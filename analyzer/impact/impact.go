// Package impact answers reverse-impact queries: given a state id, which
// other states and actors are affected if it changes. It walks the
// dependency edges in reverse breadth-first order and folds in every usage
// event that touches an affected state directly.
package impact

import (
	"github.com/google/uuid"

	"github.com/viant/stateaudit/analyzer/model"
)

// Hop records one breadth-first step away from the queried state.
type Hop struct {
	StateID string `yaml:"stateId" json:"stateId"`
	Depth   int    `yaml:"depth" json:"depth"`
	Via     string `yaml:"via" json:"via"`
}

// Result is the outcome of a single impact query.
type Result struct {
	QueryID string             `yaml:"queryId" json:"queryId"`
	StateID string             `yaml:"stateId" json:"stateId"`
	Hops    []Hop              `yaml:"hops" json:"hops"`
	Actors  []model.UsageEvent `yaml:"actors" json:"actors"`
}

// Query builds the reverse-dependency adjacency from edges (to -> from) and
// performs a breadth-first walk starting at stateID, reporting every
// transitively dependent state in breadth order plus every usage event
// whose actor touches one of the affected states directly. Each call is
// tagged with a fresh request-scoped correlation id for log correlation.
func Query(stateID string, edges []model.DependencyEdge, events []model.UsageEvent) Result {
	reverse := make(map[string][]model.DependencyEdge)
	for _, e := range edges {
		reverse[e.ToStateID] = append(reverse[e.ToStateID], e)
	}

	res := Result{QueryID: uuid.NewString(), StateID: stateID}
	visited := map[string]bool{stateID: true}
	queue := []string{stateID}
	depth := 0
	for len(queue) > 0 {
		var next []string
		depth++
		for _, id := range queue {
			for _, e := range reverse[id] {
				if visited[e.FromStateID] {
					continue
				}
				visited[e.FromStateID] = true
				res.Hops = append(res.Hops, Hop{StateID: e.FromStateID, Depth: depth, Via: e.Via})
				next = append(next, e.FromStateID)
			}
		}
		queue = next
	}

	for _, e := range events {
		if visited[e.StateID] {
			res.Actors = append(res.Actors, e)
		}
	}
	return res
}
