// Package model holds the data types that flow between analyzer stages:
// state symbols, usage events and dependency edges.
package model

// Store identifies which of the two coexisting reactive-state libraries a
// symbol belongs to.
type Store string

const (
	StoreA Store = "storeA"
	StoreB Store = "storeB"
)

// Kind classifies a state symbol by its declaration shape.
type Kind string

const (
	Atom            Kind = "atom"
	Selector        Kind = "selector"
	AtomFamily      Kind = "atomFamily"
	SelectorFamily  Kind = "selectorFamily"
	DerivedAtom     Kind = "derivedAtom"
	AtomWithDefault Kind = "atomWithDefault"
)

// EventType classifies a usage event.
type EventType string

const (
	Read         EventType = "read"
	RuntimeWrite EventType = "runtimeWrite"
	InitWrite    EventType = "initWrite"
)

// Phase distinguishes a runtime usage event from one synthesized for a
// selector/derived dependency read.
type Phase string

const (
	PhaseRuntime    Phase = "runtime"
	PhaseDependency Phase = "dependency"
)

// ActorType classifies who performed a usage event.
type ActorType string

const (
	ActorState    ActorType = "state"
	ActorFunction ActorType = "function"
	ActorUnknown  ActorType = "unknown"
)

// Via tags used across events and edges. Not an exhaustive enum — extractors
// may compose additional via strings (e.g. "init:" prefixed) at runtime.
const (
	ViaStoreAUseValue        = "storeA:useValue"
	ViaStoreAUseValueLoad    = "storeA:useValueLoadable"
	ViaStoreAUseTuple        = "storeA:useTuple"
	ViaStoreAUseTupleLoad    = "storeA:useTupleLoadable"
	ViaStoreBUseAtomValue    = "storeB:useAtomValue"
	ViaStoreBUseAtom         = "storeB:useAtom"
	ViaStoreAGet             = "storeA:get"
	ViaStoreBGet             = "storeB:get"
	ViaStoreBHandleGet       = "storeB:handle.get"
	ViaStoreBHandleSet       = "storeB:handle.set"
	ViaSetterCall            = "setter-call"
	ViaSetterReference       = "setter-reference"
	ViaInitSet               = "init:set"
	ViaResetCall             = "reset-call"
	ViaInitPrefix            = "init:"
	ViaSnapshotPrefix        = "snapshot."
)
