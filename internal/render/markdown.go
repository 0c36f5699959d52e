package render

import (
	"fmt"
	"strings"

	"pydocgen/internal/docstring"
	"pydocgen/internal/doctree"
	"pydocgen/internal/walker"
)

// Markdown renders MDX-safe Markdown pages, one per module.
type Markdown struct{}

func (r *Markdown) Name() string { return "markdown" }
func (r *Markdown) Ext() string  { return ".md" }

func (r *Markdown) RenderModule(m *doctree.ModuleDoc, opts Options) ([]OutputFile, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", m.Module)

	if m.Doc != nil && m.Doc.Doc != nil {
		writeLeadText(&b, m.Doc.Doc)
	}

	if len(m.Classes)+len(m.Functions) > 0 {
		b.WriteString(tableOfContents(m))
	}

	writeMemberGroup(&b, m, "Classes", m.Classes, opts)
	writeMemberGroup(&b, m, "Functions", m.Functions, opts)

	return []OutputFile{{Path: m.OutputPath(r.Ext()), Data: []byte(b.String())}}, nil
}

func (r *Markdown) RenderIndex(tree *doctree.Tree, opts Options) ([]OutputFile, error) {
	var b strings.Builder
	if tree.Root != nil {
		fmt.Fprintf(&b, "# %s API Reference\n\n", tree.Root.Module)
	} else {
		b.WriteString("# API Reference\n\n")
	}

	for _, m := range tree.Modules() {
		depth := strings.Count(m.Module, ".")
		fmt.Fprintf(&b, "%s* [%s](%s)\n", strings.Repeat("  ", depth), m.Name(), m.OutputPath(r.Ext()))
	}
	b.WriteString("\n")

	return []OutputFile{{Path: "index" + r.Ext(), Data: []byte(b.String())}}, nil
}

func writeLeadText(b *strings.Builder, doc *docstring.ParsedDocstring) {
	if doc.Summary != "" {
		b.WriteString(EscapeMDX(doc.Summary) + "\n\n")
	}
	if doc.Description != "" {
		b.WriteString(EscapeMDX(doc.Description) + "\n\n")
	}
}

func tableOfContents(m *doctree.ModuleDoc) string {
	var b strings.Builder
	b.WriteString("## Table of Contents\n\n")
	for _, sym := range m.Classes {
		fmt.Fprintf(&b, "* [%s](#%s)\n", sym.Name, memberAnchor(m, sym))
	}
	for _, sym := range m.Functions {
		fmt.Fprintf(&b, "* [%s](#%s)\n", sym.Name, memberAnchor(m, sym))
	}
	b.WriteString("\n")
	return b.String()
}

func memberAnchor(m *doctree.ModuleDoc, sym *walker.Symbol) string {
	return m.Module + "." + sym.Name
}

func writeMemberGroup(b *strings.Builder, m *doctree.ModuleDoc, title string, symbols []*walker.Symbol, opts Options) {
	if len(symbols) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", title)
	for _, sym := range symbols {
		writeMember(b, m, sym, opts)
	}
}

func writeMember(b *strings.Builder, m *doctree.ModuleDoc, sym *walker.Symbol, opts Options) {
	fmt.Fprintf(b, "<a id=%q></a>\n\n", memberAnchor(m, sym))
	fmt.Fprintf(b, "## %s\n\n", sym.Name)

	params := signatureParams(m, sym)
	fmt.Fprintf(b, "```python\n%s\n```\n\n", formatSignature(sym.Name, params))

	if url := opts.Link.SourceURL(sym); url != "" {
		fmt.Fprintf(b, "[View source on GitHub](%s)\n\n", url)
	}

	doc := sym.Doc
	if doc == nil {
		return
	}
	writeLeadText(b, doc)
	writeParamsTable(b, "Parameters", params, doc.Parameters)
	if len(doc.Attributes) > 0 {
		writeParamsTable(b, "Attributes", nil, doc.Attributes)
	}
	writeReturn(b, "Returns", doc.Returns)
	writeReturn(b, "Yields", doc.Yields)
	writeRaises(b, doc.Raises)
	writeExamples(b, doc.Examples)
	writeNotes(b, doc.Notes)
	writeReferences(b, doc.References)
}

// signatureParams picks the signature parameters documented for a symbol.
// Classes document their __init__ signature; self and cls never show up.
func signatureParams(m *doctree.ModuleDoc, sym *walker.Symbol) []walker.SigParam {
	params := sym.Params
	if sym.Kind == walker.KindClass {
		for _, method := range m.MethodsOf(sym) {
			if method.Name == "__init__" {
				params = method.Params
				break
			}
		}
	}
	var out []walker.SigParam
	for _, p := range params {
		if p.Name == "self" || p.Name == "cls" {
			continue
		}
		out = append(out, p)
	}
	return out
}

const maxSignatureWidth = 79

// formatSignature renders "name(a, b=1)" from signature parameters, breaking
// onto one line per parameter when the single-line form gets too long.
func formatSignature(name string, params []walker.SigParam) string {
	if len(params) == 0 {
		return name + "()"
	}

	rendered := make([]string, len(params))
	for i, p := range params {
		rendered[i] = p.Name
		if p.Type != "" {
			rendered[i] += ": " + p.Type
		}
		if p.Default != "" {
			if p.Type != "" {
				rendered[i] += " = " + p.Default
			} else {
				rendered[i] += "=" + p.Default
			}
		}
	}

	single := name + "(" + strings.Join(rendered, ", ") + ")"
	if len(single) <= maxSignatureWidth {
		return single
	}

	var b strings.Builder
	b.WriteString(name + "(\n")
	for i, p := range rendered {
		suffix := ","
		if i == len(rendered)-1 {
			suffix = ""
		}
		fmt.Fprintf(&b, "    %s%s\n", p, suffix)
	}
	b.WriteString(")")
	return b.String()
}

// writeParamsTable emits the Name/Type/Description table. Signature
// parameters drive the row order when available; docstring entries fill in
// types and descriptions, or stand alone for attribute tables.
func writeParamsTable(b *strings.Builder, title string, sigParams []walker.SigParam, docParams []docstring.Parameter) {
	rows := mergeParams(sigParams, docParams)
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(b, "**%s**\n\n", title)
	b.WriteString("| Name | Type | Description |\n")
	b.WriteString("|------|------|-------------|\n")
	for _, row := range rows {
		fmt.Fprintf(b, "| %s | %s | %s |\n",
			EscapeMDX(row.Name), EscapeMDX(row.Type), tableDescription(row))
	}
	b.WriteString("\n")
}

// mergeParams joins signature order with docstring content.
func mergeParams(sigParams []walker.SigParam, docParams []docstring.Parameter) []docstring.Parameter {
	if len(sigParams) == 0 {
		return docParams
	}

	byName := make(map[string]docstring.Parameter, len(docParams))
	for _, p := range docParams {
		byName[strings.TrimLeft(p.Name, "*")] = p
	}

	rows := make([]docstring.Parameter, 0, len(sigParams))
	for _, sp := range sigParams {
		key := strings.TrimLeft(sp.Name, "*")
		row, ok := byName[key]
		if !ok {
			row = docstring.Parameter{Name: sp.Name, Type: sp.Type}
		} else {
			row.Name = sp.Name
			if row.Type == "" {
				row.Type = sp.Type
			}
		}
		if row.Default == "" {
			row.Default = sp.Default
		}
		rows = append(rows, row)
	}
	return rows
}

// tableDescription renders a description cell, appending the default value
// and wrapping multi-line text so it survives inside a Markdown table.
func tableDescription(p docstring.Parameter) string {
	desc := p.Description
	if p.Default != "" {
		desc = strings.TrimSpace(desc + " Default: " + p.Default)
	}
	safe := EscapeMDX(desc)
	if strings.Contains(desc, "\n") {
		safe = "<pre>" + strings.ReplaceAll(safe, "\n", "<br/>") + "</pre>"
	}
	return safe
}

func writeReturn(b *strings.Builder, title string, ret *docstring.ReturnSpec) {
	if ret == nil {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", title)
	if ret.Type != "" {
		fmt.Fprintf(b, "**%s**: %s\n\n", EscapeMDX(ret.Type), EscapeMDX(ret.Description))
	} else {
		fmt.Fprintf(b, "%s\n\n", EscapeMDX(ret.Description))
	}
}

func writeRaises(b *strings.Builder, raises []docstring.ExceptionSpec) {
	if len(raises) == 0 {
		return
	}
	b.WriteString("**Raises**\n\n")
	for _, r := range raises {
		fmt.Fprintf(b, "* **%s**: %s\n", EscapeMDX(r.Type), EscapeMDX(r.Description))
	}
	b.WriteString("\n")
}

func writeExamples(b *strings.Builder, examples []docstring.CodeExample) {
	if len(examples) == 0 {
		return
	}
	b.WriteString("**Examples**\n\n")
	for _, ex := range examples {
		fmt.Fprintf(b, "```%s\n%s\n```\n\n", ex.Language, stripPrompts(ex.Code))
	}
}

func writeNotes(b *strings.Builder, notes []string) {
	if len(notes) == 0 {
		return
	}
	b.WriteString("**Notes**\n\n")
	for _, note := range notes {
		fmt.Fprintf(b, "%s\n\n", EscapeMDX(note))
	}
}

func writeReferences(b *strings.Builder, paragraphs []string) {
	if len(paragraphs) == 0 {
		return
	}
	b.WriteString("**References**\n\n")
	refs, loose := ParseReferences(paragraphs)
	for _, ref := range refs {
		fmt.Fprintf(b, "%s. %s\n", ref.Number, EscapeMDX(ref.Text))
	}
	for _, line := range loose {
		fmt.Fprintf(b, "%s\n", EscapeMDX(line))
	}
	b.WriteString("\n")
}
