package docstring

import (
	"regexp"
	"strings"
)

// defaultPattern matches a trailing "Default: <value>" fragment in a
// parameter description. The value runs to the end of the description.
var defaultPattern = regexp.MustCompile(`(?i)(^|\s)default:\s*`)

// parseParams turns the raw body of an Args/Parameters (or Attributes)
// section into ordered Parameter records.
//
// A new parameter starts at a line shaped like "name (type): description" or
// "name: description". Lines that are more indented than the parameter's
// start line, or that do not match the pattern at all, are joined onto the
// current description. Text before the first parameter is collected as a
// preamble and prepended to the first description, so nothing is dropped.
func parseParams(body string) []Parameter {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	var params []Parameter
	var preamble []string
	paramIndent := -1

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := indentWidth(line)

		name, typ, desc, ok := matchParamLine(trimmed)
		if ok && (paramIndent < 0 || indent <= paramIndent) {
			params = append(params, Parameter{Name: name, Type: typ, Description: desc})
			paramIndent = indent
			continue
		}

		if len(params) == 0 {
			preamble = append(preamble, trimmed)
			continue
		}
		cur := &params[len(params)-1]
		cur.Description = joinDesc(cur.Description, trimmed)
	}

	if len(params) > 0 && len(preamble) > 0 {
		params[0].Description = joinDesc(strings.Join(preamble, " "), params[0].Description)
	}

	for i := range params {
		finishParam(&params[i])
	}
	return params
}

// matchParamLine splits a trimmed line into name, parenthesized type text and
// description. Bracket nesting is tracked so commas inside generic types
// (dict[str, int]) never end the type early.
func matchParamLine(trimmed string) (name, typ, desc string, ok bool) {
	rest, name := scanIdentifier(trimmed)
	if name == "" {
		return "", "", "", false
	}
	rest = strings.TrimLeft(rest, " \t")

	if strings.HasPrefix(rest, "(") {
		end := matchingClose(rest)
		if end < 0 {
			return "", "", "", false
		}
		typ = strings.TrimSpace(rest[1:end])
		rest = strings.TrimLeft(rest[end+1:], " \t")
	}

	if !strings.HasPrefix(rest, ":") {
		return "", "", "", false
	}
	return name, typ, strings.TrimSpace(rest[1:]), true
}

// scanIdentifier consumes a Python identifier, allowing the * and ** splat
// prefixes that appear in Args sections documenting *args / **kwargs.
func scanIdentifier(s string) (rest, name string) {
	i := 0
	for i < len(s) && s[i] == '*' && i < 2 {
		i++
	}
	start := i
	for i < len(s) {
		c := s[i]
		alpha := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		if !alpha && !(digit && i > start) {
			break
		}
		i++
	}
	if i == start {
		return s, ""
	}
	return s[i:], s[:i]
}

// matchingClose returns the index of the ')' closing the paren at s[0],
// tracking nesting across (), [] and {}. Returns -1 if unbalanced.
func matchingClose(s string) int {
	depth := 0
	for i, r := range s {
		switch r {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// finishParam extracts the trailing "Default: <value>" fragment and the
// ", optional" marker, then strips the fragment from the description so the
// description keeps only the semantic explanation.
func finishParam(p *Parameter) {
	if loc := lastDefaultLoc(p.Description); loc != nil {
		value := strings.TrimSpace(p.Description[loc[1]:])
		value = strings.TrimSuffix(value, ".")
		p.Default = value
		p.Description = strings.TrimSpace(p.Description[:loc[0]])
	}
	if p.Default != "" || strings.Contains(strings.ToLower(p.Type), "optional") {
		p.Optional = true
	}
}

// lastDefaultLoc finds the last "Default:" marker in a description.
func lastDefaultLoc(desc string) []int {
	locs := defaultPattern.FindAllStringIndex(desc, -1)
	if len(locs) == 0 {
		return nil
	}
	return locs[len(locs)-1]
}

// joinDesc glues continuation text onto a description with a single space.
func joinDesc(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}

// parseRaises parses the body of a Raises/Except section: repeated
// "ExceptionType: description" entries using the same tolerant continuation
// policy as parameters, minus the type-parenthesis syntax.
func parseRaises(body string) []ExceptionSpec {
	if strings.TrimSpace(body) == "" {
		return nil
	}

	var specs []ExceptionSpec
	var preamble []string
	entryIndent := -1

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		indent := indentWidth(line)

		name, desc, ok := matchRaiseLine(trimmed)
		if ok && (entryIndent < 0 || indent <= entryIndent) {
			specs = append(specs, ExceptionSpec{Type: name, Description: desc})
			entryIndent = indent
			continue
		}

		if len(specs) == 0 {
			preamble = append(preamble, trimmed)
			continue
		}
		cur := &specs[len(specs)-1]
		cur.Description = joinDesc(cur.Description, trimmed)
	}

	if len(specs) > 0 && len(preamble) > 0 {
		specs[0].Description = joinDesc(strings.Join(preamble, " "), specs[0].Description)
	}
	return specs
}

// matchRaiseLine splits "ExceptionType: description", accepting dotted
// exception names (module.Error).
func matchRaiseLine(trimmed string) (name, desc string, ok bool) {
	rest := trimmed
	for {
		var part string
		rest, part = scanIdentifier(rest)
		if part == "" {
			return "", "", false
		}
		name += part
		if strings.HasPrefix(rest, ".") {
			name += "."
			rest = rest[1:]
			continue
		}
		break
	}
	rest = strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(rest, ":") {
		return "", "", false
	}
	return name, strings.TrimSpace(rest[1:]), true
}
