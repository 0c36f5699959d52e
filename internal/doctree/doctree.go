// Package doctree arranges a flat symbol stream into a tree of module pages
// mirroring the Python package layout, and decides where each page lands on
// disk.
package doctree

import (
	"path"
	"sort"
	"strings"

	"pydocgen/internal/walker"
)

// ModuleDoc is one documentation page: a module, its docstring record, and
// the classes, functions and methods it defines.
type ModuleDoc struct {
	Module    string
	Doc       *walker.Symbol
	Classes   []*walker.Symbol
	Functions []*walker.Symbol
	Methods   map[string][]*walker.Symbol
	Children  []*ModuleDoc
}

// Tree is the whole package's documentation, indexed by dotted module path.
type Tree struct {
	Root     *ModuleDoc
	byModule map[string]*ModuleDoc
}

// Build groups symbols by module and wires up the parent/child hierarchy.
// Members keep source order within a module; children are sorted by name so
// output is deterministic regardless of scan order.
func Build(symbols []*walker.Symbol) *Tree {
	t := &Tree{byModule: map[string]*ModuleDoc{}}

	for _, sym := range symbols {
		m := t.ensure(sym.Module)
		switch sym.Kind {
		case walker.KindModule:
			m.Doc = sym
		case walker.KindClass:
			m.Classes = append(m.Classes, sym)
		case walker.KindFunction:
			m.Functions = append(m.Functions, sym)
		case walker.KindMethod:
			class, _, _ := strings.Cut(sym.Qualified, ".")
			m.Methods[class] = append(m.Methods[class], sym)
		}
	}

	for _, m := range t.byModule {
		sortByLine(m.Classes)
		sortByLine(m.Functions)
		for _, methods := range m.Methods {
			sortByLine(methods)
		}
		sort.Slice(m.Children, func(i, j int) bool {
			return m.Children[i].Module < m.Children[j].Module
		})
	}

	return t
}

// ensure returns the node for a dotted module path, creating it and its
// ancestors on first sight.
func (t *Tree) ensure(module string) *ModuleDoc {
	if m, ok := t.byModule[module]; ok {
		return m
	}
	m := &ModuleDoc{Module: module, Methods: map[string][]*walker.Symbol{}}
	t.byModule[module] = m

	if i := strings.LastIndex(module, "."); i >= 0 {
		parent := t.ensure(module[:i])
		parent.Children = append(parent.Children, m)
	} else if t.Root == nil {
		t.Root = m
	}
	return m
}

// Module looks a page up by dotted path.
func (t *Tree) Module(module string) *ModuleDoc {
	return t.byModule[module]
}

// Modules returns every page sorted by dotted path.
func (t *Tree) Modules() []*ModuleDoc {
	out := make([]*ModuleDoc, 0, len(t.byModule))
	for _, m := range t.byModule {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Module < out[j].Module })
	return out
}

// Name is the last component of the module path.
func (m *ModuleDoc) Name() string {
	if i := strings.LastIndex(m.Module, "."); i >= 0 {
		return m.Module[i+1:]
	}
	return m.Module
}

// IsPackage reports whether this page has submodule pages below it.
func (m *ModuleDoc) IsPackage() bool {
	return len(m.Children) > 0
}

// MethodsOf returns a class's methods in source order.
func (m *ModuleDoc) MethodsOf(class *walker.Symbol) []*walker.Symbol {
	return m.Methods[class.Name]
}

// OutputPath is the page's file path relative to the output root, mirroring
// the package directory structure. Packages become directories with an
// "index" page; leaf modules become files next to their siblings.
func (m *ModuleDoc) OutputPath(ext string) string {
	rel := strings.ReplaceAll(m.Module, ".", "/")
	if m.IsPackage() {
		return path.Join(rel, "index"+ext)
	}
	return rel + ext
}

func sortByLine(symbols []*walker.Symbol) {
	sort.Slice(symbols, func(i, j int) bool {
		if symbols[i].StartLine != symbols[j].StartLine {
			return symbols[i].StartLine < symbols[j].StartLine
		}
		return symbols[i].Qualified < symbols[j].Qualified
	})
}
