package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePackage lays out a small Python package under a temp dir.
func writePackage(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "geo")

	files := map[string]string{
		"__init__.py":            `"""Top level package."""`,
		"transforms.py":          "\"\"\"Transforms module.\"\"\"\n\n\ndef apply(x):\n    \"\"\"Apply.\"\"\"\n    return x\n",
		"functional/__init__.py": `"""Functional helpers."""`,
		"functional/blur.py":     "def blur(img, k=3):\n    \"\"\"Blur an image.\"\"\"\n    return img\n",
		"_private.py":            "def secret():\n    pass\n",
		"notes.txt":              "not python",
		"__pycache__/junk.py":    "broken (",
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func TestWalkPackage(t *testing.T) {
	root := writePackage(t)

	w := New(Options{})
	var modules []string
	byModule := map[string][]*Symbol{}
	err := w.WalkPackage(root, func(sym *Symbol) {
		if sym.Kind == KindModule {
			modules = append(modules, sym.Module)
		}
		byModule[sym.Module] = append(byModule[sym.Module], sym)
	})
	require.NoError(t, err)

	assert.Contains(t, modules, "geo")
	assert.Contains(t, modules, "geo.transforms")
	assert.Contains(t, modules, "geo.functional")
	assert.Contains(t, modules, "geo.functional.blur")
	assert.Contains(t, modules, "geo._private")
	// __pycache__ is skipped entirely, .txt files are not Python.
	assert.NotContains(t, modules, "geo.__pycache__.junk")

	syms := byModule["geo.transforms"]
	require.Len(t, syms, 2)
	assert.Equal(t, "Transforms module.", syms[0].Doc.Summary)
	assert.Equal(t, "apply", syms[1].Name)
}

func TestWalkPackage_ExcludePrivate(t *testing.T) {
	root := writePackage(t)

	w := New(Options{ExcludePrivate: true})
	var modules []string
	err := w.WalkPackage(root, func(sym *Symbol) {
		if sym.Kind == KindModule {
			modules = append(modules, sym.Module)
		}
	})
	require.NoError(t, err)

	assert.NotContains(t, modules, "geo._private")
	assert.Contains(t, modules, "geo")
	assert.Contains(t, modules, "geo.functional.blur")
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "geo", moduleName("geo", "__init__.py"))
	assert.Equal(t, "geo.transforms", moduleName("geo", "transforms.py"))
	assert.Equal(t, "geo.functional", moduleName("geo", filepath.FromSlash("functional/__init__.py")))
	assert.Equal(t, "geo.functional.blur", moduleName("geo", filepath.FromSlash("functional/blur.py")))
}

func TestDropPrivate(t *testing.T) {
	symbols := []*Symbol{
		{Kind: KindModule, Name: "m"},
		{Kind: KindFunction, Name: "_hidden"},
		{Kind: KindMethod, Name: "__init__"},
		{Kind: KindClass, Name: "Public"},
	}
	kept := dropPrivate(symbols)
	require.Len(t, kept, 3)
	assert.Equal(t, "m", kept[0].Name)
	assert.Equal(t, "__init__", kept[1].Name)
	assert.Equal(t, "Public", kept[2].Name)
}
