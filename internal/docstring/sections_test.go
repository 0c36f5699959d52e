package docstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections_NoHeaders(t *testing.T) {
	lead, sections := splitSections("Only a summary.\n\nAnd a description.")
	assert.Equal(t, "Only a summary.\n\nAnd a description.", lead)
	assert.Empty(t, sections)
}

func TestSplitSections_ColonHeaders(t *testing.T) {
	lead, sections := splitSections(`Summary.

Args:
    x (int): a number

Returns:
    int: the same number
`)

	assert.Equal(t, "Summary.", lead)
	require.Len(t, sections, 2)
	assert.Equal(t, TagArgs, sections[0].tag)
	assert.Equal(t, "Args", sections[0].header)
	assert.Equal(t, "    x (int): a number", sections[0].body)
	assert.Equal(t, TagReturns, sections[1].tag)
}

func TestSplitSections_CaseInsensitive(t *testing.T) {
	for _, header := range []string{"ARGS:", "args:", "Parameters:", "arguments:"} {
		_, sections := splitSections("S.\n\n" + header + "\n    x: y\n")
		require.Len(t, sections, 1, header)
		assert.Equal(t, TagArgs, sections[0].tag, header)
	}
}

func TestSplitSections_DashUnderline(t *testing.T) {
	_, sections := splitSections(`Summary.

Parameters
----------
x (int): a number
`)

	require.Len(t, sections, 1)
	assert.Equal(t, TagArgs, sections[0].tag)
	assert.Equal(t, "Parameters", sections[0].header)
	assert.Equal(t, "x (int): a number", sections[0].body)
}

func TestSplitSections_UnknownUnderlinedTitleKept(t *testing.T) {
	_, sections := splitSections(`Summary.

Implementation Details
-----------------------
Internal invariants live here.
`)

	require.Len(t, sections, 1)
	assert.Equal(t, TagUnknown, sections[0].tag)
	assert.Equal(t, "Implementation Details", sections[0].header)
	assert.Contains(t, sections[0].body, "Internal invariants")
}

func TestSplitSections_UnknownColonHeaderIsBodyText(t *testing.T) {
	_, sections := splitSections(`Summary.

Note:
    real note.

Warnings:
    still part of the note body.
`)

	require.Len(t, sections, 1)
	assert.Equal(t, TagNotes, sections[0].tag)
	assert.Contains(t, sections[0].body, "Warnings:")
	assert.Contains(t, sections[0].body, "still part of the note body.")
}

func TestSplitSections_BodyKeepsBlankLinesAndIndent(t *testing.T) {
	_, sections := splitSections("S.\n\nExamples:\n    first\n\n    second\n")
	require.Len(t, sections, 1)
	assert.Equal(t, "    first\n\n    second", sections[0].body)
}

func TestDedent(t *testing.T) {
	assert.Equal(t, "a\n  b", dedent("    a\n      b"))
	assert.Equal(t, "a\n\nb", dedent("  a\n\n  b"))
	assert.Equal(t, "a\nb", dedent("a\nb"))
}

func TestIndentWidth(t *testing.T) {
	assert.Equal(t, 0, indentWidth("x"))
	assert.Equal(t, 4, indentWidth("    x"))
	assert.Equal(t, 4, indentWidth("\tx"))
	assert.Equal(t, 6, indentWidth("\t  x"))
}
