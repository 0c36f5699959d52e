// Package render turns parsed docstring records into documentation files.
// Renderers are pure formatting over the shared structured record; adding a
// new output format means adding a Renderer, never touching the parser.
package render

import (
	"fmt"
	"sort"
	"strings"

	"pydocgen/internal/doctree"
	"pydocgen/internal/linker"
)

// OutputFile is one rendered artifact, with a path relative to the output
// root. Writing is left to the caller.
type OutputFile struct {
	Path string
	Data []byte
}

// Options are shared renderer knobs.
type Options struct {
	// Link configures "view source" links; a zero value disables them.
	Link linker.Config
}

// Renderer produces documentation files for one module page at a time.
type Renderer interface {
	// Name is the format name used on the command line.
	Name() string
	// Ext is the file extension of rendered pages, including the dot.
	Ext() string
	// RenderModule renders one page (possibly several files for formats
	// that emit per-symbol output).
	RenderModule(m *doctree.ModuleDoc, opts Options) ([]OutputFile, error)
	// RenderIndex renders the top-level table of contents, or nil for
	// formats that have no index concept.
	RenderIndex(tree *doctree.Tree, opts Options) ([]OutputFile, error)
}

var renderers = map[string]Renderer{}

func register(r Renderer, aliases ...string) {
	renderers[r.Name()] = r
	for _, alias := range aliases {
		renderers[alias] = r
	}
}

func init() {
	register(&Markdown{}, "md")
	register(&TSX{})
	register(&JSON{})
}

// Get returns the renderer for a format name.
func Get(format string) (Renderer, error) {
	r, ok := renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported format: %s (available: %s)", format, strings.Join(Formats(), ", "))
	}
	return r, nil
}

// Formats lists the canonical format names.
func Formats() []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range renderers {
		if !seen[r.Name()] {
			seen[r.Name()] = true
			out = append(out, r.Name())
		}
	}
	sort.Strings(out)
	return out
}
