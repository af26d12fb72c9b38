package facade

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Location mirrors model.Location without importing analyzer/model, keeping
// the facade dependency-free of the upper layers.
type Location struct {
	File   string
	Line   int
	Column int
}

// ImportBinding describes how a locally-bound name entered scope.
type ImportBinding struct {
	Named     string // imported/original name, empty for default or namespace imports
	Module    string
	Namespace bool
	Default   bool
}

// ImportMap maps a file-local name to the module it was imported from.
type ImportMap map[string]ImportBinding

// File is a parsed source file exposing facade operations.
type File struct {
	Path      string
	src       []byte
	tree      *sitter.Tree
	root      *Node
	Imports   ImportMap
	// declByName indexes top-level declaration sites by the name they bind,
	// used for same-file "declaration-site recovery".
	declByName map[string]*Node
}

// Parse parses src as the language implied by the file extension of path
// (.tsx/.jsx -> tsx grammar, .ts -> typescript grammar, else javascript).
func Parse(path string, src []byte) (*File, error) {
	lang := languageFor(path)
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("facade: failed to parse %s: %w", path, err)
	}
	f := &File{Path: path, src: src, tree: tree, Imports: ImportMap{}, declByName: map[string]*Node{}}
	f.root = wrap(tree.RootNode(), f)
	f.indexImports()
	f.indexDeclarations()
	return f, nil
}

func languageFor(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx", ".jsx":
		return tsx.GetLanguage()
	case ".ts":
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Root returns the file's root (program) node.
func (f *File) Root() *Node { return f.root }

// Source returns the raw file bytes.
func (f *File) Source() []byte { return f.src }

func (f *File) indexImports() {
	f.root.Walk(func(n *Node) bool {
		if n.Type() == "import_statement" {
			parseImportStatement(n, f.Imports)
			return false
		}
		return true
	})
}

func parseImportStatement(stmt *Node, imports ImportMap) {
	var module string
	var clause *Node
	for _, child := range stmt.NamedChildren() {
		switch child.Type() {
		case "string":
			module = unquote(child.Text())
		case "import_clause":
			clause = child
		}
	}
	if clause == nil || module == "" {
		return
	}
	walkImportClause(clause, module, imports)
}

func walkImportClause(clause *Node, module string, imports ImportMap) {
	for _, child := range clause.NamedChildren() {
		switch child.Type() {
		case "identifier":
			// default import: import Foo from '...'
			imports[child.Text()] = ImportBinding{Module: module, Default: true}
		case "namespace_import":
			for _, id := range child.NamedChildren() {
				if id.Type() == "identifier" {
					imports[id.Text()] = ImportBinding{Module: module, Namespace: true}
				}
			}
		case "named_imports":
			for _, spec := range child.NamedChildren() {
				if spec.Type() != "import_specifier" {
					continue
				}
				names := spec.NamedChildren()
				if len(names) == 1 {
					imports[names[0].Text()] = ImportBinding{Named: names[0].Text(), Module: module}
				} else if len(names) >= 2 {
					// original name [as] local alias
					imports[names[1].Text()] = ImportBinding{Named: names[0].Text(), Module: module}
				}
			}
		}
	}
}

func unquote(s string) string {
	return strings.Trim(s, "'\"`")
}

// indexDeclarations records the top-level statement/declarator that binds
// each name, used as the "declaration site" in symbol-key computation.
func (f *File) indexDeclarations() {
	for _, stmt := range f.root.NamedChildren() {
		f.indexDeclarationStatement(stmt)
	}
}

func (f *File) indexDeclarationStatement(stmt *Node) {
	switch stmt.Type() {
	case "lexical_declaration", "variable_declaration":
		for _, d := range stmt.NamedChildren() {
			if d.Type() != "variable_declarator" {
				continue
			}
			for _, name := range BindingNames(d.ChildByFieldName("name")) {
				f.declByName[name] = d
			}
		}
	case "function_declaration", "class_declaration":
		if name := stmt.ChildByFieldName("name"); !name.IsNil() {
			f.declByName[name.Text()] = stmt
		}
	case "export_statement":
		for _, child := range stmt.NamedChildren() {
			f.indexDeclarationStatement(child)
		}
	}
}

// DeclarationOf returns the declaration-site node for a locally bound name,
// or nil if this file has no such top-level binding.
func (f *File) DeclarationOf(name string) *Node {
	return f.declByName[name]
}
