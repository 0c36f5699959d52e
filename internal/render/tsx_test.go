package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pydocgen/internal/docstring"
	"pydocgen/internal/linker"
)

func TestTSX_ModulePage(t *testing.T) {
	tree := sampleTree()
	r, err := Get("tsx")
	require.NoError(t, err)

	files, err := r.RenderModule(tree.Module("geo.transforms"), Options{
		Link: linker.Config{Repo: "https://github.com/acme/geo"},
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "geo/transforms.tsx", files[0].Path)

	page := string(files[0].Data)
	assert.True(t, strings.HasPrefix(page, "import { ModuleDoc } from '@/components/DocComponents';\n"))
	assert.Contains(t, page, "const moduleData = {")
	assert.Contains(t, page, "export default function Page() {\n  return <ModuleDoc {...moduleData} />;\n}")

	// The embedded literal is valid JSON carrying the parsed records.
	start := strings.Index(page, "const moduleData = ") + len("const moduleData = ")
	end := strings.LastIndex(page, ";\n\nexport default")
	require.Greater(t, end, start)

	var data tsxModule
	require.NoError(t, json.Unmarshal([]byte(page[start:end]), &data))
	assert.Equal(t, "geo.transforms", data.ModuleName)
	require.Len(t, data.Members, 2)

	elastic := data.Members[0]
	assert.Equal(t, "Elastic", elastic.Name)
	assert.Equal(t, "class", elastic.Type)
	assert.Equal(t, "Apply elastic deformation.", elastic.Docstring.Summary)
	assert.Equal(t, "https://github.com/acme/geo/blob/main/geo/transforms.py#L10", elastic.SourceURL)
	require.Len(t, elastic.Methods, 1)
	assert.Equal(t, "__init__", elastic.Methods[0].Name)

	makeGrid := data.Members[1]
	assert.Equal(t, "function", makeGrid.Type)
	require.Len(t, makeGrid.Signature.Params, 2)
	assert.Equal(t, "step", makeGrid.Signature.Params[1].Name)
}

func TestTSX_Index(t *testing.T) {
	tree := sampleTree()
	r, _ := Get("tsx")
	files, err := r.RenderIndex(tree, Options{})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "index.tsx", files[0].Path)
	assert.Contains(t, string(files[0].Data), `"module": "geo.transforms"`)
	assert.Contains(t, string(files[0].Data), "<ModuleIndex modules={modules} />")
}

func TestJSON_OneFilePerSymbol(t *testing.T) {
	tree := sampleTree()
	r, err := Get("json")
	require.NoError(t, err)

	files, err := r.RenderModule(tree.Module("geo.transforms"), Options{})
	require.NoError(t, err)

	paths := make([]string, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{
		"geo/transforms/__module__.json",
		"geo/transforms/Elastic.json",
		"geo/transforms/Elastic.__init__.json",
		"geo/transforms/make_grid.json",
	}, paths)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(files[1].Data, &payload))
	assert.Equal(t, "Elastic", payload["name"])
	assert.Equal(t, "class", payload["kind"])

	doc, ok := payload["doc"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Apply elastic deformation.", doc["summary"])

	// No index artifact for the JSON format.
	index, err := r.RenderIndex(tree, Options{})
	require.NoError(t, err)
	assert.Nil(t, index)
}

func TestEscapeMDX(t *testing.T) {
	assert.Equal(t, `\<ndarray\>`, EscapeMDX("<ndarray>"))
	assert.Equal(t, `a \= b`, EscapeMDX("a = b"))
	assert.Equal(t, `\{x\}`, EscapeMDX("{x}"))
	assert.Equal(t, "", EscapeMDX(""))
}

func TestEscapeDoc(t *testing.T) {
	doc := docstring.Parse("Returns an <ndarray> grid.\n\nReturns:\n    ndarray: Shape is {n}.\n")
	escaped := escapeDoc(doc)

	assert.Equal(t, "Returns an &lt;ndarray&gt; grid.", escaped.Summary)
	require.NotNil(t, escaped.Returns)
	assert.Equal(t, "Shape is &lbrace;n&rbrace;.", escaped.Returns.Description)

	// The input record is untouched.
	assert.Equal(t, "Returns an <ndarray> grid.", doc.Summary)
	assert.Equal(t, "Shape is {n}.", doc.Returns.Description)

	assert.Nil(t, escapeDoc(nil))
}

func TestEscapeTSX(t *testing.T) {
	assert.Equal(t, "&lt;ndarray&gt;", EscapeTSX("<ndarray>"))
	assert.Equal(t, "a &equals; b", EscapeTSX("a = b"))
	assert.Equal(t, "&lbrace;x&rbrace;", EscapeTSX("{x}"))
}

func TestParseReferences(t *testing.T) {
	refs, loose := ParseReferences([]string{
		"[1] Simard et al., 2003.\n[2] Second paper\nwith a continuation line.",
	})

	require.Len(t, refs, 2)
	assert.Equal(t, Reference{Number: "1", Text: "Simard et al., 2003."}, refs[0])
	assert.Equal(t, "Second paper with a continuation line.", refs[1].Text)
	assert.Empty(t, loose)
}

func TestParseReferences_LooseOnly(t *testing.T) {
	refs, loose := ParseReferences([]string{"See the user guide."})
	assert.Empty(t, refs)
	assert.Equal(t, []string{"See the user guide."}, loose)
}

func TestStripPrompts(t *testing.T) {
	assert.Equal(t, "t = f(1)\nprint(t)", stripPrompts(">>> t = f(1)\n... print(t)"))
	assert.Equal(t, "plain", stripPrompts("plain"))
}
