package render

import (
	"regexp"
	"strings"
)

// Reference is one numbered entry of a References section.
type Reference struct {
	Number string
	Text   string
}

var referenceLine = regexp.MustCompile(`^\[(\d+)\]\s+(.+)$`)

// ParseReferences extracts "[n] text" entries from reference paragraphs.
// Continuation lines attach to the previous entry; text with no numbered
// entries at all is returned as loose lines so nothing is dropped.
func ParseReferences(paragraphs []string) ([]Reference, []string) {
	var refs []Reference
	var loose []string

	for _, para := range paragraphs {
		for _, line := range strings.Split(para, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if m := referenceLine.FindStringSubmatch(line); m != nil {
				refs = append(refs, Reference{Number: m[1], Text: m[2]})
				continue
			}
			if len(refs) > 0 {
				refs[len(refs)-1].Text += " " + line
				continue
			}
			loose = append(loose, line)
		}
	}
	return refs, loose
}

// stripPrompts removes interactive ">>> " and "... " prefixes from example
// code so it renders as runnable Python.
func stripPrompts(code string) string {
	var lines []string
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, ">>> "), strings.HasPrefix(trimmed, "... "):
			lines = append(lines, trimmed[4:])
		case trimmed == ">>>" || trimmed == "...":
			continue
		case trimmed != "":
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
