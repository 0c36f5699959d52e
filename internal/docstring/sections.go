package docstring

import (
	"strings"
)

// rawSection is a (header, body) pair produced by splitSections before any
// per-section parsing happens.
type rawSection struct {
	tag    SectionTag
	header string
	body   string
}

// splitSections scans the docstring line by line and cuts it into the leading
// summary/description block plus an ordered list of named sections.
//
// A line opens a section when its trimmed form is a recognized keyword
// followed by a colon ("Args:", "returns:"), or when the next line is a
// dash underline (reStructuredText style). Unrecognized colon headers are
// ordinary body text; unrecognized underlined titles become "unknown"
// sections so the title itself is never lost.
func splitSections(text string) (lead string, sections []rawSection) {
	lines := strings.Split(text, "\n")

	var leadLines []string
	var cur *rawSection
	var body []string

	flush := func() {
		if cur != nil {
			cur.body = trimBlankEdges(body)
			sections = append(sections, *cur)
		}
		body = nil
	}

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		if header, tag, ok := colonHeader(trimmed); ok {
			flush()
			cur = &rawSection{tag: tag, header: header}
			continue
		}

		if trimmed != "" && i+1 < len(lines) && isDashUnderline(strings.TrimSpace(lines[i+1])) {
			flush()
			tag, ok := headerTags[strings.ToLower(strings.TrimSuffix(trimmed, ":"))]
			if !ok {
				tag = TagUnknown
			}
			cur = &rawSection{tag: tag, header: strings.TrimSuffix(trimmed, ":")}
			i++ // skip the underline
			continue
		}

		if cur == nil {
			leadLines = append(leadLines, lines[i])
		} else {
			body = append(body, lines[i])
		}
	}
	flush()

	return trimBlankEdges(leadLines), sections
}

// colonHeader reports whether a trimmed line is a recognized "Keyword:" header.
func colonHeader(trimmed string) (header string, tag SectionTag, ok bool) {
	if !strings.HasSuffix(trimmed, ":") {
		return "", "", false
	}
	name := strings.TrimSpace(strings.TrimSuffix(trimmed, ":"))
	tag, ok = headerTags[strings.ToLower(name)]
	if !ok {
		return "", "", false
	}
	return name, tag, true
}

// isDashUnderline reports whether a trimmed line is an RST-style underline.
func isDashUnderline(trimmed string) bool {
	if len(trimmed) < 2 {
		return false
	}
	for _, r := range trimmed {
		if r != '-' {
			return false
		}
	}
	return true
}

// trimBlankEdges drops leading and trailing blank lines, keeping internal
// blank lines and indentation untouched.
func trimBlankEdges(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}

// dedent removes the common leading whitespace shared by all non-blank lines.
// Section bodies keep their relative indentation, which the parameter parser
// relies on to detect continuation lines.
func dedent(text string) string {
	lines := strings.Split(text, "\n")
	margin := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := indentWidth(line)
		if margin < 0 || n < margin {
			margin = n
		}
	}
	if margin <= 0 {
		return text
	}
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		cut, width := 0, 0
		for cut < len(line) && width < margin {
			if line[cut] == '\t' {
				width += tabWidth
			} else {
				width++
			}
			cut++
		}
		lines[i] = line[cut:]
	}
	return strings.Join(lines, "\n")
}

const tabWidth = 4

// indentWidth measures leading whitespace, counting tabs as tabWidth columns.
func indentWidth(line string) int {
	width := 0
	for _, r := range line {
		switch r {
		case ' ':
			width++
		case '\t':
			width += tabWidth
		default:
			return width
		}
	}
	return width
}
