// Package docstring parses Google-style docstrings into structured records.
//
// The parser is a pure transformation: one raw docstring string in, one
// ParsedDocstring out. It never fails; text that does not match a known
// structure is preserved as plain text instead of being dropped.
package docstring

// SectionTag identifies a recognized docstring section kind.
type SectionTag string

const (
	TagArgs       SectionTag = "args"
	TagReturns    SectionTag = "returns"
	TagRaises     SectionTag = "raises"
	TagExamples   SectionTag = "examples"
	TagNotes      SectionTag = "notes"
	TagReferences SectionTag = "references"
	TagAttributes SectionTag = "attributes"
	TagYields     SectionTag = "yields"
	TagUnknown    SectionTag = "unknown"
)

// headerTags maps recognized header keywords (lowercased) to their canonical tag.
// The set is the union of the header spellings accepted across the output
// formats: colon-style Google headers and their common aliases.
var headerTags = map[string]SectionTag{
	"args":       TagArgs,
	"arguments":  TagArgs,
	"parameters": TagArgs,
	"returns":    TagReturns,
	"return":     TagReturns,
	"raises":     TagRaises,
	"except":     TagRaises,
	"example":    TagExamples,
	"examples":   TagExamples,
	"note":       TagNotes,
	"notes":      TagNotes,
	"references": TagReferences,
	"attributes": TagAttributes,
	"yields":     TagYields,
}

// ParsedDocstring is the structured form of one docstring. It is built once
// by Parse, never mutated afterwards, and shared freely between renderers.
type ParsedDocstring struct {
	Summary     string          `json:"summary"`
	Description string          `json:"description"`
	Sections    []Section       `json:"sections"`
	Parameters  []Parameter     `json:"parameters"`
	Attributes  []Parameter     `json:"attributes,omitempty"`
	Returns     *ReturnSpec     `json:"returns,omitempty"`
	Yields      *ReturnSpec     `json:"yields,omitempty"`
	Raises      []ExceptionSpec `json:"raises"`
	Examples    []CodeExample   `json:"examples"`
	Notes       []string        `json:"notes"`
	References  []string        `json:"references"`
}

// Section is one named span of the docstring body, kept verbatim. Every
// section the splitter sees lands here, recognized or not, so consumers can
// always recover the original text.
type Section struct {
	Name    SectionTag `json:"name"`
	Header  string     `json:"header"`
	RawText string     `json:"raw_text"`
}

// Parameter is a single entry of an Args (or Attributes) section.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
}

// ReturnSpec describes a Returns or Yields section.
type ReturnSpec struct {
	Type        string `json:"type,omitempty"`
	Description string `json:"description"`
}

// ExceptionSpec is a single entry of a Raises section.
type ExceptionSpec struct {
	Type        string `json:"exception_type"`
	Description string `json:"description"`
}

// CodeExample is one delimited code block extracted from an Examples section.
type CodeExample struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}
