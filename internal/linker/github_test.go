package linker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pydocgen/internal/walker"
)

func TestSourceURL(t *testing.T) {
	cfg := Config{Repo: "https://github.com/acme/geo", Branch: "main"}

	t.Run("function links to its line", func(t *testing.T) {
		sym := &walker.Symbol{Kind: walker.KindFunction, Module: "geo.transforms", StartLine: 42}
		assert.Equal(t, "https://github.com/acme/geo/blob/main/geo/transforms.py#L42", cfg.SourceURL(sym))
	})

	t.Run("module links without line anchor", func(t *testing.T) {
		sym := &walker.Symbol{Kind: walker.KindModule, Module: "geo.transforms", StartLine: 1}
		assert.Equal(t, "https://github.com/acme/geo/blob/main/geo/transforms.py", cfg.SourceURL(sym))
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		c := Config{Repo: "https://github.com/acme/geo/"}
		sym := &walker.Symbol{Kind: walker.KindModule, Module: "geo"}
		assert.Equal(t, "https://github.com/acme/geo/blob/main/geo.py", c.SourceURL(sym))
	})

	t.Run("empty repo disables linking", func(t *testing.T) {
		sym := &walker.Symbol{Kind: walker.KindFunction, Module: "geo", StartLine: 3}
		assert.Empty(t, Config{}.SourceURL(sym))
	})
}
