package render

import (
	"regexp"
	"strings"
)

var backslashRuns = regexp.MustCompile(`\\{2,}`)

// EscapeMDX escapes characters that break MDX pages: angle brackets, equals
// signs and JSX braces. Runs of backslashes (LaTeX-ish fragments) are fenced
// as inline code instead of escaped.
func EscapeMDX(text string) string {
	if text == "" {
		return text
	}
	escaped := strings.NewReplacer("<", `\<`, ">", `\>`, "=", `\=`).Replace(text)
	escaped = backslashRuns.ReplaceAllStringFunc(escaped, func(run string) string {
		return "`" + run + "`"
	})
	return strings.NewReplacer("{", `\{`, "}", `\}`).Replace(escaped)
}

// EscapeTSX escapes the same characters with HTML entities, which is what
// JSX text nodes need.
func EscapeTSX(text string) string {
	if text == "" {
		return text
	}
	escaped := strings.NewReplacer("<", "&lt;", ">", "&gt;", "=", "&equals;").Replace(text)
	escaped = backslashRuns.ReplaceAllStringFunc(escaped, func(run string) string {
		return "`" + run + "`"
	})
	return strings.NewReplacer("{", "&lbrace;", "}", "&rbrace;").Replace(escaped)
}
