package symbolindex

import (
	"sort"

	"github.com/viant/stateaudit/analyzer/facade"
	"github.com/viant/stateaudit/analyzer/hooks"
	"github.com/viant/stateaudit/analyzer/model"
)

// Index is the symbol index's output: every state symbol discovered across
// the scoped project, plus the lookups the later stages need.
type Index struct {
	States []model.StateSymbol

	stateByID       map[string]*model.StateSymbol
	declByStateID   map[string]*facade.Node
	initCallByState map[string]*facade.Node
	stateByDeclKey  map[string]*model.StateSymbol
}

// StateByID returns the symbol with the given id, or nil.
func (idx *Index) StateByID(id string) *model.StateSymbol { return idx.stateByID[id] }

// DeclarationOf returns the declaration node (the variable_declarator) that
// introduced the given state id.
func (idx *Index) DeclarationOf(id string) *facade.Node { return idx.declByStateID[id] }

// InitCallOf returns the factory call_expression that defined the state.
func (idx *Index) InitCallOf(id string) *facade.Node { return idx.initCallByState[id] }

// StateByDeclaration answers "is this declaration node a state symbol?" by
// the canonical declaration key (file + declarator-start + name).
func (idx *Index) StateByDeclaration(key string) *model.StateSymbol { return idx.stateByDeclKey[key] }

// StateByDeclarationNode is a convenience wrapper computing the key itself.
func (idx *Index) StateByDeclarationNode(file *facade.File, decl *facade.Node, name string) *model.StateSymbol {
	return idx.stateByDeclKey[facade.SymbolKey(file, decl.StartByte(), name)]
}

type candidate struct {
	file     *facade.File
	name     string
	declNode *facade.Node
	callNode *facade.Node
	store    model.Store
	kind     model.Kind
	exported bool
}

// Build scans every file (already sorted by path by the project loader) and
// produces the symbol index.
func Build(files []*facade.File) *Index {
	idx := &Index{
		stateByID:       map[string]*model.StateSymbol{},
		declByStateID:   map[string]*facade.Node{},
		initCallByState: map[string]*facade.Node{},
		stateByDeclKey:  map[string]*model.StateSymbol{},
	}

	var candidates []candidate
	for _, f := range files {
		candidates = append(candidates, scanFile(f)...)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.file.Path != b.file.Path {
			return a.file.Path < b.file.Path
		}
		if la, lb := a.declNode.Line(), b.declNode.Line(); la != lb {
			return la < lb
		}
		return a.name < b.name
	})

	idx.States = make([]model.StateSymbol, len(candidates))
	for i, c := range candidates {
		id := model.MakeStateID(c.file.Path, c.name)
		idx.States[i] = model.StateSymbol{
			ID:       id,
			Name:     c.name,
			Store:    c.store,
			Kind:     c.kind,
			Location: toModelLocation(c.declNode.Location()),
			Exported: c.exported,
		}
	}
	for i, c := range candidates {
		s := &idx.States[i]
		idx.stateByID[s.ID] = s
		idx.declByStateID[s.ID] = c.declNode
		idx.initCallByState[s.ID] = c.callNode
		key := facade.SymbolKey(c.file, c.declNode.StartByte(), c.name)
		idx.stateByDeclKey[key] = s
	}

	classifyPlainAtomA(idx)
	return idx
}

func toModelLocation(l facade.Location) model.Location {
	return model.Location{File: l.File, Line: l.Line, Column: l.Column}
}

func scanFile(f *facade.File) []candidate {
	var out []candidate
	for _, stmt := range f.Root().NamedChildren() {
		out = append(out, scanStatement(f, stmt, isTopExported(stmt))...)
	}
	return out
}

func isTopExported(stmt *facade.Node) bool {
	return stmt.Type() == "export_statement"
}

func scanStatement(f *facade.File, stmt *facade.Node, exported bool) []candidate {
	if stmt.Type() == "export_statement" {
		var out []candidate
		for _, child := range stmt.NamedChildren() {
			out = append(out, scanStatement(f, child, true)...)
		}
		return out
	}
	if stmt.Type() != "lexical_declaration" && stmt.Type() != "variable_declaration" {
		return nil
	}
	var out []candidate
	for _, d := range stmt.NamedChildren() {
		if d.Type() != "variable_declarator" {
			continue
		}
		name := d.ChildByFieldName("name")
		if name.IsNil() || name.Type() != "identifier" {
			continue
		}
		value := d.ChildByFieldName("value")
		if value.IsNil() || value.Type() != "call_expression" {
			continue
		}
		store, kind, ok := classifyCall(f, value)
		if !ok {
			continue
		}
		out = append(out, candidate{
			file: f, name: name.Text(), declNode: d, callNode: value,
			store: store, kind: kind, exported: exported,
		})
	}
	return out
}

// classifyCall classifies a factory call_expression per §4.2.
func classifyCall(f *facade.File, call *facade.Node) (model.Store, model.Kind, bool) {
	resolved, ok := hooks.ResolveCallee(f, call)
	if !ok {
		return "", "", false
	}
	original := resolved.Original
	switch resolved.Module {
	case StoreAModule:
		switch original {
		case FnAtom:
			return model.StoreA, model.Atom, true
		case FnSelector:
			return model.StoreA, model.Selector, true
		case FnAtomFamily:
			return model.StoreA, model.AtomFamily, true
		case FnSelectorFamily:
			return model.StoreA, model.SelectorFamily, true
		}
	case StoreBModule:
		if original == "atom" {
			args := facade.CallArguments(call)
			if len(args) > 0 && isFunctionLikeArg(args[0]) {
				return model.StoreB, model.DerivedAtom, true
			}
			return model.StoreB, model.Atom, true
		}
	case StoreBUtilsModule:
		switch original {
		case FnAtomFamily:
			return model.StoreB, model.AtomFamily, true
		case FnAtomWithDefault:
			return model.StoreB, model.AtomWithDefault, true
		}
	}
	return "", "", false
}

func isFunctionLikeArg(n *facade.Node) bool {
	switch n.Type() {
	case "arrow_function", "function", "function_declaration":
		return true
	}
	return false
}

// classifyPlainAtomA implements §3's isPlainAtomA rule: a store-A atom is
// plain unless its options object's `default` property is, or resolves to,
// a store-A selector/selectorFamily.
func classifyPlainAtomA(idx *Index) {
	for i := range idx.States {
		s := &idx.States[i]
		if s.Store != model.StoreA || s.Kind != model.Atom {
			continue
		}
		call := idx.initCallByState[s.ID]
		s.IsPlainAtomA = !hasSelectorDefault(idx, call)
	}
}

func hasSelectorDefault(idx *Index, call *facade.Node) bool {
	args := facade.CallArguments(call)
	if len(args) == 0 || args[0].Type() != "object" {
		return false
	}
	defaultVal := objectProperty(args[0], "default")
	if defaultVal.IsNil() {
		return false
	}
	switch defaultVal.Type() {
	case "call_expression":
		f := defaultVal.File()
		store, kind, ok := classifyCall(f, defaultVal)
		if ok && store == model.StoreA && (kind == model.Selector || kind == model.SelectorFamily) {
			return true
		}
	case "identifier":
		decl := facade.ResolveIdentifier(defaultVal)
		if decl.IsNil() {
			return false
		}
		sym := idx.StateByDeclarationNode(defaultVal.File(), decl, defaultVal.Text())
		if sym != nil && sym.Store == model.StoreA && (sym.Kind == model.Selector || sym.Kind == model.SelectorFamily) {
			return true
		}
	}
	return false
}

// objectProperty returns the value expression of a property named name in
// an object literal, handling both `key: value` and shorthand forms.
func objectProperty(obj *facade.Node, name string) *facade.Node {
	if obj.IsNil() || obj.Type() != "object" {
		return nil
	}
	for _, c := range obj.NamedChildren() {
		switch c.Type() {
		case "pair":
			key := c.ChildByFieldName("key")
			if !key.IsNil() && key.Text() == name {
				return c.ChildByFieldName("value")
			}
		case "shorthand_property_identifier":
			if c.Text() == name {
				return c
			}
		case "method_definition":
			nameNode := c.ChildByFieldName("name")
			if !nameNode.IsNil() && nameNode.Text() == name {
				return c
			}
		}
	}
	return nil
}

// ObjectProperty exposes objectProperty for sibling packages that need the
// same "find a property by name on an object-literal options argument"
// operation (the dependency extractor's `get` lookup).
func ObjectProperty(obj *facade.Node, name string) *facade.Node { return objectProperty(obj, name) }
