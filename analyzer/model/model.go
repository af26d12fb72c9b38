package model

import "sort"

// Location pinpoints a position in a source file.
type Location struct {
	File   string `yaml:"file" json:"file"`
	Line   int    `yaml:"line" json:"line"`
	Column int    `yaml:"column" json:"column"`
}

func (l Location) less(o Location) (bool, bool) {
	if l.File != o.File {
		return l.File < o.File, true
	}
	if l.Line != o.Line {
		return l.Line < o.Line, true
	}
	if l.Column != o.Column {
		return l.Column < o.Column, true
	}
	return false, false
}

// StateSymbol represents an atom, selector, family, or derived atom.
type StateSymbol struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Store        Store    `yaml:"store" json:"store"`
	Kind         Kind     `yaml:"kind" json:"kind"`
	Location     Location `yaml:"location" json:"location"`
	Exported     bool     `yaml:"exported" json:"exported"`
	IsPlainAtomA bool     `yaml:"isPlainAtomA,omitempty" json:"isPlainAtomA,omitempty"`
}

// MakeStateID builds the canonical `filePath::name` state identifier.
func MakeStateID(file, name string) string {
	return file + "::" + name
}

// UsageEvent is an immutable record of a read or write against a state symbol.
type UsageEvent struct {
	Type         EventType `yaml:"type" json:"type"`
	Phase        Phase     `yaml:"phase" json:"phase"`
	StateID      string    `yaml:"stateId" json:"stateId"`
	ActorType    ActorType `yaml:"actorType" json:"actorType"`
	ActorName    string    `yaml:"actorName" json:"actorName"`
	ActorStateID string    `yaml:"actorStateId,omitempty" json:"actorStateId,omitempty"`
	Location     Location  `yaml:"location" json:"location"`
	Via          string    `yaml:"via" json:"via"`
}

// identity is the deduplication tuple from §3 of the spec.
type eventIdentity struct {
	typ       EventType
	phase     Phase
	stateID   string
	actorType ActorType
	actorName string
	file      string
	line      int
	column    int
	via       string
}

func (e UsageEvent) identity() eventIdentity {
	return eventIdentity{e.Type, e.Phase, e.StateID, e.ActorType, e.ActorName, e.Location.File, e.Location.Line, e.Location.Column, e.Via}
}

// DependencyEdge is a directed from->to relation between two states.
type DependencyEdge struct {
	FromStateID string   `yaml:"fromStateId" json:"fromStateId"`
	ToStateID   string   `yaml:"toStateId" json:"toStateId"`
	Location    Location `yaml:"location" json:"location"`
	Via         string   `yaml:"via" json:"via"`
}

type edgeIdentity struct {
	from, to, file string
	line, column   int
	via            string
}

func (e DependencyEdge) identity() edgeIdentity {
	return edgeIdentity{e.FromStateID, e.ToStateID, e.Location.File, e.Location.Line, e.Location.Column, e.Via}
}

// DedupEvents removes exact-identity duplicates and returns the result sorted
// by the canonical total order: (file, line, column, type, stateId).
func DedupEvents(events []UsageEvent) []UsageEvent {
	seen := make(map[eventIdentity]bool, len(events))
	out := make([]UsageEvent, 0, len(events))
	for _, e := range events {
		id := e.identity()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if less, ok := a.Location.less(b.Location); ok {
			return less
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		return a.StateID < b.StateID
	})
	return out
}

// DedupEdges removes exact-identity duplicates and returns the result sorted
// by the canonical total order: (file, line, column, fromStateId, toStateId).
func DedupEdges(edges []DependencyEdge) []DependencyEdge {
	seen := make(map[edgeIdentity]bool, len(edges))
	out := make([]DependencyEdge, 0, len(edges))
	for _, e := range edges {
		id := e.identity()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if less, ok := a.Location.less(b.Location); ok {
			return less
		}
		if a.FromStateID != b.FromStateID {
			return a.FromStateID < b.FromStateID
		}
		return a.ToStateID < b.ToStateID
	})
	return out
}

// CapabilityProfile gates which extended extractors run (§4.8).
type CapabilityProfile struct {
	Callbacks  bool `yaml:"callbacks" json:"callbacks"`
	Wrappers   bool `yaml:"wrappers" json:"wrappers"`
	Forwarding bool `yaml:"forwarding" json:"forwarding"`
	HandleAPI  bool `yaml:"handleApi" json:"handleApi"`
}

// CoreProfile turns every capability off.
func CoreProfile() CapabilityProfile { return CapabilityProfile{} }

// ExtendedProfile turns every capability on.
func ExtendedProfile() CapabilityProfile {
	return CapabilityProfile{Callbacks: true, Wrappers: true, Forwarding: true, HandleAPI: true}
}

// Result is the pipeline's final, deterministic output.
type Result struct {
	UsageEvents     []UsageEvent     `yaml:"usageEvents" json:"usageEvents"`
	DependencyEdges []DependencyEdge `yaml:"dependencyEdges" json:"dependencyEdges"`
}
