// Package walker builds the symbol table of a Python package: it discovers
// .py files, extracts modules, classes, functions and methods with
// tree-sitter, and attaches parsed docstring records. No interpreter is
// involved; everything is read statically from source.
package walker

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Walker scans a package directory for Python source files.
type Walker struct {
	excludePrivate bool
	ignored        []string
}

// Options configures a Walker.
type Options struct {
	// ExcludePrivate skips modules and symbols whose name starts with an
	// underscore. Dunder methods and __init__ modules are kept.
	ExcludePrivate bool
}

// New creates a walker.
func New(opts Options) *Walker {
	return &Walker{
		excludePrivate: opts.ExcludePrivate,
		ignored:        []string{".git", "__pycache__", "venv", ".venv", "node_modules", ".tox", "build", "dist"},
	}
}

// WalkPackage walks the package rooted at root and streams every documented
// symbol through the callback. Files that fail to read or parse are logged
// and skipped so one bad file never aborts the whole scan.
func (w *Walker) WalkPackage(root string, onSymbol func(*Symbol)) error {
	root = filepath.Clean(root)
	pkg := filepath.Base(root)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && w.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".py") {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		module := moduleName(pkg, rel)
		if w.excludePrivate && privateModule(module) {
			return nil
		}

		symbols, err := w.ExtractFile(path, module)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			return nil
		}
		for _, sym := range symbols {
			onSymbol(sym)
		}
		return nil
	})
}

// ExtractFile parses one source file into symbols.
func (w *Walker) ExtractFile(path, module string) ([]*Symbol, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	symbols, err := ExtractSource(src, path, module)
	if err != nil {
		return nil, err
	}
	if w.excludePrivate {
		symbols = dropPrivate(symbols)
	}
	return symbols, nil
}

func (w *Walker) skipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, ign := range w.ignored {
		if name == ign {
			return true
		}
	}
	return false
}

// moduleName converts a file path relative to the package root into the
// dotted module path. "__init__.py" maps to its package, so "pkg/__init__.py"
// is just "pkg".
func moduleName(pkg, rel string) string {
	rel = strings.TrimSuffix(filepath.ToSlash(rel), ".py")
	parts := strings.Split(rel, "/")
	if parts[len(parts)-1] == "__init__" {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(append([]string{pkg}, parts...), ".")
}

// privateModule reports whether any path component is private. The package
// root itself is exempt.
func privateModule(module string) bool {
	parts := strings.Split(module, ".")
	for _, part := range parts[1:] {
		if strings.HasPrefix(part, "_") {
			return true
		}
	}
	return false
}

// dropPrivate filters out underscore-prefixed classes and functions. Module
// symbols and dunder methods (__init__ and friends) survive.
func dropPrivate(symbols []*Symbol) []*Symbol {
	kept := symbols[:0]
	for _, sym := range symbols {
		if sym.Kind != KindModule && isPrivateName(sym.Name) {
			continue
		}
		kept = append(kept, sym)
	}
	return kept
}

func isPrivateName(name string) bool {
	return strings.HasPrefix(name, "_") && !strings.HasPrefix(name, "__")
}
