package walker

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"pydocgen/internal/docstring"
)

// symbolQuery captures every class and def in a file. Nesting is filtered
// afterwards: only module-level classes/functions and direct class methods
// become symbols, matching what a documentation page actually lists.
const symbolQuery = `
	(class_definition) @class
	(function_definition) @func
`

// ExtractSource parses Python source and returns the symbols it defines,
// each with its docstring already parsed. The module symbol comes first,
// remaining symbols follow in source order.
func ExtractSource(src []byte, path, module string) ([]*Symbol, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()

	moduleSym := &Symbol{
		ID:        symbolID(path, module, 1),
		Module:    module,
		Name:      lastComponent(module),
		Qualified: module,
		Kind:      KindModule,
		Filepath:  path,
		StartLine: 1,
		EndLine:   int(root.EndPoint().Row + 1),
		Docstring: blockDocstring(root, src),
	}
	moduleSym.Doc = docstring.Parse(moduleSym.Docstring)
	symbols := []*Symbol{moduleSym}

	query, err := sitter.NewQuery([]byte(symbolQuery), python.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("failed to create query: %w", err)
	}
	defer query.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, root)

	for {
		m, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range m.Captures {
			var sym *Symbol
			switch query.CaptureNameForId(c.Index) {
			case "class":
				sym = extractClass(c.Node, src, path, module)
			case "func":
				sym = extractFunction(c.Node, src, path, module)
			}
			if sym != nil {
				symbols = append(symbols, sym)
			}
		}
	}

	return symbols, nil
}

func extractClass(node *sitter.Node, src []byte, path, module string) *Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	// Only module-level classes are documented.
	if scope := enclosingScope(node); scope == nil || scope.Type() != "module" {
		return nil
	}

	name := nameNode.Content(src)
	raw := blockDocstring(node.ChildByFieldName("body"), src)
	sym := &Symbol{
		ID:        symbolID(path, name, int(node.StartPoint().Row+1)),
		Module:    module,
		Name:      name,
		Qualified: name,
		Kind:      KindClass,
		Filepath:  path,
		StartLine: int(node.StartPoint().Row + 1),
		EndLine:   int(node.EndPoint().Row + 1),
		Signature: classSignature(node, src),
		Docstring: raw,
		Doc:       docstring.Parse(raw),
	}
	return sym
}

func extractFunction(node *sitter.Node, src []byte, path, module string) *Symbol {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	kind := KindFunction
	qualified := nameNode.Content(src)

	scope := enclosingScope(node)
	switch {
	case scope == nil:
		return nil
	case scope.Type() == "class_definition":
		// Methods count only when their class sits at module level.
		if outer := enclosingScope(scope); outer == nil || outer.Type() != "module" {
			return nil
		}
		kind = KindMethod
		if className := scope.ChildByFieldName("name"); className != nil {
			qualified = className.Content(src) + "." + qualified
		}
	case scope.Type() != "module":
		// Nested defs are implementation detail, not API surface.
		return nil
	}

	raw := blockDocstring(node.ChildByFieldName("body"), src)
	sym := &Symbol{
		ID:        symbolID(path, qualified, int(node.StartPoint().Row+1)),
		Module:    module,
		Name:      nameNode.Content(src),
		Qualified: qualified,
		Kind:      kind,
		Filepath:  path,
		StartLine: int(node.StartPoint().Row + 1),
		EndLine:   int(node.EndPoint().Row + 1),
		Signature: defSignature(node, src),
		Params:    extractSigParams(node.ChildByFieldName("parameters"), src),
		Docstring: raw,
		Doc:       docstring.Parse(raw),
	}
	return sym
}

// enclosingScope walks up to the nearest module, class or function node,
// skipping the block and decorator wrappers in between.
func enclosingScope(node *sitter.Node) *sitter.Node {
	for p := node.Parent(); p != nil; p = p.Parent() {
		switch p.Type() {
		case "module", "class_definition", "function_definition":
			return p
		}
	}
	return nil
}

// blockDocstring returns the raw docstring literal of a module or block
// node: the string expression that is its first statement, unquoted.
func blockDocstring(body *sitter.Node, src []byte) string {
	if body == nil || body.NamedChildCount() == 0 {
		return ""
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return ""
	}
	str := first.NamedChild(0)
	if str.Type() != "string" && str.Type() != "concatenated_string" {
		return ""
	}
	return unquoteString(str.Content(src))
}

// unquoteString strips string prefixes (r, b, u, f) and the surrounding
// single, double or triple quotes from a Python string literal.
func unquoteString(lit string) string {
	s := strings.TrimLeft(lit, "rRbBuUfF")
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return s[len(q) : len(s)-len(q)]
		}
	}
	return s
}

// defSignature is the def line(s) up to the body, without the trailing colon.
func defSignature(node *sitter.Node, src []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil {
		return strings.TrimSpace(node.Content(src))
	}
	sig := string(src[node.StartByte():body.StartByte()])
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sig), ":"))
}

// classSignature is the class line including superclasses.
func classSignature(node *sitter.Node, src []byte) string {
	body := node.ChildByFieldName("body")
	if body == nil {
		return strings.TrimSpace(node.Content(src))
	}
	sig := string(src[node.StartByte():body.StartByte()])
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(sig), ":"))
}

// extractSigParams reads the parameters node of a def, covering plain,
// typed, defaulted and splat forms. Separator markers (* and /) are skipped.
func extractSigParams(params *sitter.Node, src []byte) []SigParam {
	if params == nil {
		return nil
	}
	var out []SigParam
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		switch child.Type() {
		case "identifier":
			out = append(out, SigParam{Name: child.Content(src)})
		case "typed_parameter":
			p := SigParam{Name: splatName(child.NamedChild(0), src)}
			if t := child.ChildByFieldName("type"); t != nil {
				p.Type = t.Content(src)
			}
			out = append(out, p)
		case "default_parameter":
			p := SigParam{}
			if n := child.ChildByFieldName("name"); n != nil {
				p.Name = splatName(n, src)
			}
			if v := child.ChildByFieldName("value"); v != nil {
				p.Default = v.Content(src)
			}
			out = append(out, p)
		case "typed_default_parameter":
			p := SigParam{}
			if n := child.ChildByFieldName("name"); n != nil {
				p.Name = splatName(n, src)
			}
			if t := child.ChildByFieldName("type"); t != nil {
				p.Type = t.Content(src)
			}
			if v := child.ChildByFieldName("value"); v != nil {
				p.Default = v.Content(src)
			}
			out = append(out, p)
		case "list_splat_pattern", "dictionary_splat_pattern":
			out = append(out, SigParam{Name: splatName(child, src)})
		}
	}
	return out
}

// splatName renders a parameter pattern, keeping the * / ** prefixes.
func splatName(node *sitter.Node, src []byte) string {
	if node == nil {
		return ""
	}
	return strings.TrimSpace(node.Content(src))
}

func lastComponent(module string) string {
	if i := strings.LastIndex(module, "."); i >= 0 {
		return module[i+1:]
	}
	return module
}
