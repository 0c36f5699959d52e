// Package storage persists the scanned symbol table between the scan and
// generate steps.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"pydocgen/internal/walker"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS symbols (
			id TEXT PRIMARY KEY,
			module TEXT,
			name TEXT,
			qualified TEXT,
			kind TEXT,
			filepath TEXT,
			start_line INTEGER,
			end_line INTEGER,
			signature TEXT,
			params JSON,
			docstring TEXT,
			doc JSON
		);`,
		`CREATE INDEX IF NOT EXISTS idx_symbols_module ON symbols(module);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveSymbols stores the symbol table as a snapshot: rows from earlier scans
// are dropped so renamed or deleted symbols don't linger.
func (s *SQLiteStore) SaveSymbols(ctx context.Context, symbols []*walker.Symbol) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM symbols"); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO symbols (id, module, name, qualified, kind, filepath, start_line, end_line, signature, params, docstring, doc)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, sym := range symbols {
		params, err := json.Marshal(sym.Params)
		if err != nil {
			return fmt.Errorf("failed to marshal params for %s: %w", sym.ID, err)
		}
		doc, err := json.Marshal(sym.Doc)
		if err != nil {
			return fmt.Errorf("failed to marshal doc for %s: %w", sym.ID, err)
		}
		if _, err := stmt.Exec(
			sym.ID, sym.Module, sym.Name, sym.Qualified, sym.Kind,
			sym.Filepath, sym.StartLine, sym.EndLine, sym.Signature,
			params, sym.Docstring, doc,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadSymbols reads the stored symbol table, ordered by file and line so the
// generate step is deterministic.
func (s *SQLiteStore) LoadSymbols(ctx context.Context) ([]*walker.Symbol, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, module, name, qualified, kind, filepath, start_line, end_line, signature, params, docstring, doc
		FROM symbols
		ORDER BY filepath, start_line, qualified
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query symbols: %w", err)
	}
	defer rows.Close()

	var symbols []*walker.Symbol
	for rows.Next() {
		var sym walker.Symbol
		var params, doc []byte
		if err := rows.Scan(
			&sym.ID, &sym.Module, &sym.Name, &sym.Qualified, &sym.Kind,
			&sym.Filepath, &sym.StartLine, &sym.EndLine, &sym.Signature,
			&params, &sym.Docstring, &doc,
		); err != nil {
			return nil, fmt.Errorf("failed to scan symbol: %w", err)
		}
		if len(params) > 0 {
			if err := json.Unmarshal(params, &sym.Params); err != nil {
				return nil, fmt.Errorf("failed to decode params for %s: %w", sym.ID, err)
			}
		}
		if len(doc) > 0 {
			if err := json.Unmarshal(doc, &sym.Doc); err != nil {
				return nil, fmt.Errorf("failed to decode doc for %s: %w", sym.ID, err)
			}
		}
		symbols = append(symbols, &sym)
	}

	return symbols, rows.Err()
}

// Count returns the number of stored symbols.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM symbols").Scan(&n)
	return n, err
}
