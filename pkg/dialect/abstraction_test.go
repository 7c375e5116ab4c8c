/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: abstraction_test.go
Description: Unit tests for the escape-aware abstraction builder. Covers empty-cell
synthesis, escape state transitions with one-token lookahead, diagnostics for
malformed escaping, and the structural invariants of produced abstractions.
*/

package dialect_test

import (
	"testing"

	"github.com/kleascm/tabsniff/pkg/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, input string, d dialect.Dialect) (dialect.Abstraction, []dialect.Diagnostic) {
	t.Helper()
	return dialect.BuildAbstraction([]rune(input), d)
}

func TestBuildAbstractionSimpleRow(t *testing.T) {
	abstraction, diagnostics := build(t, "a,b,c", dialect.Comma())

	assert.Equal(t, dialect.Abstraction{
		dialect.SymbolCell, dialect.SymbolFieldDelimiter,
		dialect.SymbolCell, dialect.SymbolFieldDelimiter,
		dialect.SymbolCell,
	}, abstraction)
	assert.Empty(t, diagnostics)
}

func TestBuildAbstractionMultiRow(t *testing.T) {
	abstraction, diagnostics := build(t, "a,b\nc,d", dialect.Comma())

	assert.Equal(t, dialect.Abstraction{
		dialect.SymbolCell, dialect.SymbolFieldDelimiter, dialect.SymbolCell,
		dialect.SymbolRowDelimiter,
		dialect.SymbolCell, dialect.SymbolFieldDelimiter, dialect.SymbolCell,
	}, abstraction)
	assert.Empty(t, diagnostics)
}

func TestBuildAbstractionSynthesizesEmptyCells(t *testing.T) {
	// Leading, doubled, and trailing delimiters all imply empty fields.
	abstraction, diagnostics := build(t, ",a,,b,", dialect.Comma())

	require.Empty(t, diagnostics)
	assert.Equal(t, dialect.Abstraction{
		dialect.SymbolCell, dialect.SymbolFieldDelimiter,
		dialect.SymbolCell, dialect.SymbolFieldDelimiter,
		dialect.SymbolCell, dialect.SymbolFieldDelimiter,
		dialect.SymbolCell, dialect.SymbolFieldDelimiter,
		dialect.SymbolCell,
	}, abstraction)
}

func TestBuildAbstractionEmptyRowSynthesizesCell(t *testing.T) {
	abstraction, _ := build(t, "a\n\nb", dialect.Comma())

	assert.Equal(t, dialect.Abstraction{
		dialect.SymbolCell, dialect.SymbolRowDelimiter,
		dialect.SymbolCell, dialect.SymbolRowDelimiter,
		dialect.SymbolCell,
	}, abstraction)
}

func TestBuildAbstractionQuotedField(t *testing.T) {
	// Delimiters inside an escaped field are content, not structure.
	abstraction, diagnostics := build(t, "\"a,b\",c", dialect.Comma())

	assert.Equal(t, dialect.Abstraction{
		dialect.SymbolCell, dialect.SymbolFieldDelimiter, dialect.SymbolCell,
	}, abstraction)
	assert.Empty(t, diagnostics)
}

func TestBuildAbstractionDoubledEscapeStaysEscaped(t *testing.T) {
	// "a""b" is one field containing a literal quote.
	abstraction, diagnostics := build(t, "\"a\"\"b\",c", dialect.Comma())

	assert.Equal(t, dialect.Abstraction{
		dialect.SymbolCell, dialect.SymbolFieldDelimiter, dialect.SymbolCell,
	}, abstraction)
	assert.Empty(t, diagnostics)
}

func TestBuildAbstractionEscapeClosesAtEndOfInput(t *testing.T) {
	abstraction, diagnostics := build(t, "a,\"b\"", dialect.Comma())

	assert.Equal(t, dialect.Abstraction{
		dialect.SymbolCell, dialect.SymbolFieldDelimiter, dialect.SymbolCell,
	}, abstraction)
	assert.Empty(t, diagnostics)
}

func TestBuildAbstractionEscapeAfterContent(t *testing.T) {
	_, diagnostics := build(t, "ab\"cd\",e", dialect.Comma())

	require.NotEmpty(t, diagnostics)
	assert.Equal(t, dialect.DiagnosticInvalidEscapePosition, diagnostics[0])
}

func TestBuildAbstractionContentAfterClosingEscape(t *testing.T) {
	_, diagnostics := build(t, "\"ab\"cd,e", dialect.Comma())

	require.Len(t, diagnostics, 1)
	assert.Equal(t, dialect.DiagnosticInvalidEscapePosition, diagnostics[0])
}

func TestBuildAbstractionUnbalancedEscape(t *testing.T) {
	abstraction, diagnostics := build(t, "a,\"bc", dialect.Comma())

	// The symbol sequence is unchanged by the unbalanced escape.
	assert.Equal(t, dialect.Abstraction{
		dialect.SymbolCell, dialect.SymbolFieldDelimiter, dialect.SymbolCell,
	}, abstraction)
	require.Len(t, diagnostics, 1)
	assert.Equal(t, dialect.DiagnosticUnbalancedEscapes, diagnostics[0])
}

func TestBuildAbstractionEmptyInput(t *testing.T) {
	abstraction, diagnostics := build(t, "", dialect.Comma())

	assert.Empty(t, abstraction)
	assert.Empty(t, diagnostics)
}

func TestBuildAbstractionInvariants(t *testing.T) {
	inputs := []string{
		"a,b,c",
		",,,",
		"a,b\nc,d\n",
		"\n\n\n",
		"\"a,b\",c\n\"d\ne\",f",
		"ab\"cd\"\"\n|;\t",
		"foo;,bar\nbaz;,\"boo\"",
		"x",
	}

	for _, input := range inputs {
		for _, delimiter := range dialect.CandidateFieldDelimiters() {
			abstraction, _ := dialect.BuildAbstraction([]rune(input), dialect.New(delimiter))

			if len(abstraction) > 0 {
				assert.Equal(t, dialect.SymbolCell, abstraction[0],
					"abstraction starts with a delimiter for %q under %q", input, delimiter)
				assert.Equal(t, dialect.SymbolCell, abstraction[len(abstraction)-1],
					"abstraction ends with a delimiter for %q under %q", input, delimiter)
			}
			for i := 1; i < len(abstraction); i++ {
				if abstraction[i] != dialect.SymbolCell {
					assert.Equal(t, dialect.SymbolCell, abstraction[i-1],
						"adjacent delimiters for %q under %q", input, delimiter)
				}
			}

			// Within every row pattern, cells outnumber field delimiters
			// by exactly one.
			cells, fieldDelims := 0, 0
			for _, sym := range abstraction {
				switch sym {
				case dialect.SymbolCell:
					cells++
				case dialect.SymbolFieldDelimiter:
					fieldDelims++
				case dialect.SymbolRowDelimiter:
					assert.Equal(t, fieldDelims+1, cells,
						"row pattern shape for %q under %q", input, delimiter)
					cells, fieldDelims = 0, 0
				}
			}
			if cells > 0 {
				assert.Equal(t, fieldDelims+1, cells,
					"row pattern shape for %q under %q", input, delimiter)
			}
		}
	}
}

func TestBuildAbstractionDeterministic(t *testing.T) {
	input := []rune("a,\"b\"\"c\",d\ne,\"f")

	first, firstDiags := dialect.BuildAbstraction(input, dialect.Comma())
	second, secondDiags := dialect.BuildAbstraction(input, dialect.Comma())

	assert.Equal(t, first, second)
	assert.Equal(t, firstDiags, secondDiags)
}
