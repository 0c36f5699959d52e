package render

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"pydocgen/internal/doctree"
	"pydocgen/internal/walker"
)

// JSON serializes each symbol's record as-is, one file per symbol, mirroring
// the package directory structure.
type JSON struct{}

func (r *JSON) Name() string { return "json" }
func (r *JSON) Ext() string  { return ".json" }

func (r *JSON) RenderModule(m *doctree.ModuleDoc, opts Options) ([]OutputFile, error) {
	dir := strings.ReplaceAll(m.Module, ".", "/")

	var files []OutputFile
	add := func(name string, sym *walker.Symbol) error {
		blob, err := marshalSymbol(sym, opts)
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", sym.Qualified, err)
		}
		files = append(files, OutputFile{Path: path.Join(dir, name+r.Ext()), Data: blob})
		return nil
	}

	if m.Doc != nil {
		if err := add("__module__", m.Doc); err != nil {
			return nil, err
		}
	}
	for _, cls := range m.Classes {
		if err := add(cls.Qualified, cls); err != nil {
			return nil, err
		}
		for _, method := range m.MethodsOf(cls) {
			if err := add(method.Qualified, method); err != nil {
				return nil, err
			}
		}
	}
	for _, fn := range m.Functions {
		if err := add(fn.Qualified, fn); err != nil {
			return nil, err
		}
	}

	return files, nil
}

func (r *JSON) RenderIndex(tree *doctree.Tree, opts Options) ([]OutputFile, error) {
	return nil, nil
}

// marshalSymbol emits the symbol plus its parsed record, with the source URL
// attached when linking is configured.
func marshalSymbol(sym *walker.Symbol, opts Options) ([]byte, error) {
	payload := struct {
		*walker.Symbol
		SourceURL string `json:"source_url,omitempty"`
	}{Symbol: sym, SourceURL: opts.Link.SourceURL(sym)}

	blob, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(blob, '\n'), nil
}
