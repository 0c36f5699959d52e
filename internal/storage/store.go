package storage

import (
	"context"

	"pydocgen/internal/walker"
)

// SymbolStore defines operations for persisting scanned symbols.
type SymbolStore interface {
	// SaveSymbols replaces the stored snapshot with the given symbol table.
	SaveSymbols(ctx context.Context, symbols []*walker.Symbol) error

	// LoadSymbols reads the full symbol table back.
	LoadSymbols(ctx context.Context) ([]*walker.Symbol, error)

	// Count reports how many symbols are stored.
	Count(ctx context.Context) (int, error)

	Close() error
}

var _ SymbolStore = (*SQLiteStore)(nil)
