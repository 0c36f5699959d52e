package walker

import (
	"fmt"

	"pydocgen/internal/docstring"
)

// Symbol kinds produced by the walker.
const (
	KindModule   = "module"
	KindClass    = "class"
	KindFunction = "function"
	KindMethod   = "method"
)

// SigParam is one parameter recovered statically from a def signature.
type SigParam struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default string `json:"default,omitempty"`
}

// Symbol is one documented unit of a Python package: a module, class,
// function or method, together with its raw docstring and the parsed record.
// It carries everything the renderers need; the parser itself only ever sees
// the Docstring field.
type Symbol struct {
	ID        string                     `json:"id"`
	Module    string                     `json:"module"`
	Name      string                     `json:"name"`
	Qualified string                     `json:"qualified"`
	Kind      string                     `json:"kind"`
	Filepath  string                     `json:"filepath"`
	StartLine int                        `json:"start_line"`
	EndLine   int                        `json:"end_line"`
	Signature string                     `json:"signature,omitempty"`
	Params    []SigParam                 `json:"params,omitempty"`
	Docstring string                     `json:"docstring"`
	Doc       *docstring.ParsedDocstring `json:"doc"`
}

// symbolID builds the stable identifier "filepath:qualified:line".
func symbolID(path, qualified string, line int) string {
	return fmt.Sprintf("%s:%s:%d", path, qualified, line)
}
