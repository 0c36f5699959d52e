package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"pydocgen/internal/docstring"
	"pydocgen/internal/doctree"
	"pydocgen/internal/walker"
)

// componentsImportPath is where the rendering components live on the
// consuming site.
const componentsImportPath = "@/components/DocComponents"

// TSX renders one page module per Python module. The page carries the
// structured docstring data as a literal and hands it to a ModuleDoc
// component, so all visual decisions stay client-side.
type TSX struct{}

func (r *TSX) Name() string { return "tsx" }
func (r *TSX) Ext() string  { return ".tsx" }

type tsxSignature struct {
	Name   string            `json:"name"`
	Params []walker.SigParam `json:"params"`
}

type tsxMember struct {
	Name       string                     `json:"name"`
	Type       string                     `json:"type"`
	Signature  tsxSignature               `json:"signature"`
	SourceLine int                        `json:"source_line"`
	SourceURL  string                     `json:"source_url,omitempty"`
	Docstring  *docstring.ParsedDocstring `json:"docstring"`
	Methods    []tsxMember                `json:"methods,omitempty"`
}

type tsxModule struct {
	ModuleName string                     `json:"moduleName"`
	Docstring  *docstring.ParsedDocstring `json:"docstring"`
	Members    []tsxMember                `json:"members"`
}

func (r *TSX) RenderModule(m *doctree.ModuleDoc, opts Options) ([]OutputFile, error) {
	data := tsxModule{
		ModuleName: m.Module,
		Members:    []tsxMember{},
	}
	if m.Doc != nil {
		data.Docstring = escapeDoc(m.Doc.Doc)
	}

	for _, cls := range m.Classes {
		member := memberData(cls, opts)
		for _, method := range m.MethodsOf(cls) {
			member.Methods = append(member.Methods, memberData(method, opts))
		}
		data.Members = append(data.Members, member)
	}
	for _, fn := range m.Functions {
		data.Members = append(data.Members, memberData(fn, opts))
	}

	page, err := renderPage(data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", m.Module, err)
	}
	return []OutputFile{{Path: m.OutputPath(r.Ext()), Data: page}}, nil
}

func (r *TSX) RenderIndex(tree *doctree.Tree, opts Options) ([]OutputFile, error) {
	type entry struct {
		Module string `json:"module"`
		Path   string `json:"path"`
	}
	var entries []entry
	for _, m := range tree.Modules() {
		entries = append(entries, entry{Module: m.Module, Path: m.OutputPath(r.Ext())})
	}

	blob, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "import { ModuleIndex } from '%s';\n\n", componentsImportPath)
	fmt.Fprintf(&b, "const modules = %s;\n\n", string(blob))
	b.WriteString("export default function Page() {\n  return <ModuleIndex modules={modules} />;\n}\n")

	return []OutputFile{{Path: "index" + r.Ext(), Data: []byte(b.String())}}, nil
}

func memberData(sym *walker.Symbol, opts Options) tsxMember {
	params := sym.Params
	if params == nil {
		params = []walker.SigParam{}
	}
	return tsxMember{
		Name:       sym.Name,
		Type:       sym.Kind,
		Signature:  tsxSignature{Name: sym.Name, Params: params},
		SourceLine: sym.StartLine,
		SourceURL:  opts.Link.SourceURL(sym),
		Docstring:  escapeDoc(sym.Doc),
	}
}

// escapeDoc returns a copy of the record with prose fields entity-escaped so
// they are safe inside JSX text nodes. Code examples stay verbatim.
func escapeDoc(doc *docstring.ParsedDocstring) *docstring.ParsedDocstring {
	if doc == nil {
		return nil
	}
	out := *doc
	out.Summary = EscapeTSX(doc.Summary)
	out.Description = EscapeTSX(doc.Description)

	out.Parameters = append([]docstring.Parameter(nil), doc.Parameters...)
	for i := range out.Parameters {
		out.Parameters[i].Description = EscapeTSX(out.Parameters[i].Description)
	}
	out.Attributes = append([]docstring.Parameter(nil), doc.Attributes...)
	for i := range out.Attributes {
		out.Attributes[i].Description = EscapeTSX(out.Attributes[i].Description)
	}
	if doc.Returns != nil {
		ret := *doc.Returns
		ret.Description = EscapeTSX(ret.Description)
		out.Returns = &ret
	}
	if doc.Yields != nil {
		y := *doc.Yields
		y.Description = EscapeTSX(y.Description)
		out.Yields = &y
	}
	out.Raises = append([]docstring.ExceptionSpec(nil), doc.Raises...)
	for i := range out.Raises {
		out.Raises[i].Description = EscapeTSX(out.Raises[i].Description)
	}
	out.Notes = append([]string(nil), doc.Notes...)
	for i := range out.Notes {
		out.Notes[i] = EscapeTSX(out.Notes[i])
	}
	return &out
}

func renderPage(data tsxModule) ([]byte, error) {
	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "import { ModuleDoc } from '%s';\n\n", componentsImportPath)
	b.WriteString("// Data structure extracted from Python docstrings\n")
	fmt.Fprintf(&b, "const moduleData = %s;\n\n", string(blob))
	b.WriteString("export default function Page() {\n  return <ModuleDoc {...moduleData} />;\n}\n")
	return []byte(b.String()), nil
}
