package docstring

import (
	"strings"
)

// Parse turns one raw docstring into a ParsedDocstring. It is pure and
// deterministic, and it never fails: empty input yields an empty record,
// malformed sections fall back to plain text.
func Parse(raw string) *ParsedDocstring {
	doc := &ParsedDocstring{
		Sections:   []Section{},
		Parameters: []Parameter{},
		Raises:     []ExceptionSpec{},
		Examples:   []CodeExample{},
		Notes:      []string{},
		References: []string{},
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return doc
	}

	lead, sections := splitSections(text)
	doc.Summary, doc.Description = splitLead(lead)

	for _, sec := range sections {
		doc.Sections = append(doc.Sections, Section{
			Name:    sec.tag,
			Header:  sec.header,
			RawText: sec.body,
		})

		switch sec.tag {
		case TagArgs:
			doc.Parameters = append(doc.Parameters, parseParams(sec.body)...)
		case TagAttributes:
			doc.Attributes = append(doc.Attributes, parseParams(sec.body)...)
		case TagReturns:
			if doc.Returns == nil {
				doc.Returns = parseReturn(sec.body)
			}
		case TagYields:
			if doc.Yields == nil {
				doc.Yields = parseReturn(sec.body)
			}
		case TagRaises:
			doc.Raises = append(doc.Raises, parseRaises(sec.body)...)
		case TagExamples:
			examples, prose := parseExamples(sec.body)
			doc.Examples = append(doc.Examples, examples...)
			doc.Notes = append(doc.Notes, prose...)
		case TagNotes:
			doc.Notes = append(doc.Notes, paragraphs(sec.body)...)
		case TagReferences:
			doc.References = append(doc.References, paragraphs(sec.body)...)
		}
	}

	return doc
}

// splitLead separates the leading block into the one-line summary and the
// remaining description.
func splitLead(lead string) (summary, description string) {
	if lead == "" {
		return "", ""
	}
	line, rest, found := strings.Cut(lead, "\n")
	summary = strings.TrimSpace(line)
	if !found {
		return summary, ""
	}
	return summary, strings.TrimSpace(dedent(rest))
}

// parseReturn parses a Returns/Yields body as a single type/description
// pair. The type is the parenthesis-free text before the first colon of the
// first line; a body with no such colon is all description.
func parseReturn(body string) *ReturnSpec {
	text := strings.TrimSpace(dedent(body))
	if text == "" {
		return nil
	}

	firstLine, rest, _ := strings.Cut(text, "\n")
	if typ, desc, ok := strings.Cut(firstLine, ":"); ok {
		typ = strings.TrimSpace(typ)
		if typ != "" && !strings.ContainsAny(typ, "()") {
			return &ReturnSpec{
				Type:        typ,
				Description: joinDesc(strings.TrimSpace(desc), joinLines(rest)),
			}
		}
	}
	return &ReturnSpec{Description: joinDesc(strings.TrimSpace(firstLine), joinLines(rest))}
}

// parseExamples extracts delimited code blocks from an Examples body.
// Triple-backtick fences and interactive ">>>" prompt blocks both count;
// prose around the blocks is returned separately so it can be kept as notes.
func parseExamples(body string) (examples []CodeExample, prose []string) {
	lines := strings.Split(dedent(body), "\n")

	var para []string
	flushPara := func() {
		if len(para) > 0 {
			prose = append(prose, strings.Join(para, " "))
			para = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(trimmed, "```"):
			flushPara()
			language := strings.TrimSpace(strings.TrimLeft(trimmed, "`"))
			if language == "" {
				language = "python"
			}
			var code []string
			for i++; i < len(lines); i++ {
				if strings.TrimSpace(lines[i]) == "```" {
					break
				}
				code = append(code, lines[i])
			}
			examples = append(examples, CodeExample{
				Code:     strings.Join(code, "\n"),
				Language: language,
			})

		case strings.HasPrefix(trimmed, ">>>"):
			flushPara()
			code := []string{trimmed}
			for i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if !strings.HasPrefix(next, ">>>") && !strings.HasPrefix(next, "...") {
					break
				}
				code = append(code, next)
				i++
			}
			examples = append(examples, CodeExample{
				Code:     strings.Join(code, "\n"),
				Language: "python",
			})

		case trimmed == "":
			flushPara()

		default:
			para = append(para, trimmed)
		}
	}
	flushPara()

	return examples, prose
}

// paragraphs splits a section body into blank-line-separated paragraphs,
// one entry per paragraph, keeping line breaks inside each paragraph.
func paragraphs(body string) []string {
	var out []string
	var para []string

	flush := func() {
		if len(para) > 0 {
			out = append(out, strings.Join(para, "\n"))
			para = nil
		}
	}

	for _, line := range strings.Split(dedent(body), "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		para = append(para, strings.TrimRight(line, " \t"))
	}
	flush()
	return out
}

// joinLines collapses a multi-line fragment into one space-joined string.
func joinLines(text string) string {
	var parts []string
	for _, line := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(line); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
