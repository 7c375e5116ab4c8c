/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: abstraction.go
Description: Escape-aware scanner that interprets raw text under a candidate dialect
and produces the abstract symbol sequence (Cell, FieldDelimiter, RowDelimiter) used
for pattern scoring. Malformed escaping never aborts the scan; it is collected as
advisory diagnostics alongside the abstraction.
*/

package dialect

// Symbol is one element of an abstraction.
type Symbol int

const (
	// SymbolCell stands for one field, possibly empty.
	SymbolCell Symbol = iota
	// SymbolFieldDelimiter separates two cells within a row.
	SymbolFieldDelimiter
	// SymbolRowDelimiter separates two rows.
	SymbolRowDelimiter
)

// String returns a human-readable symbol name.
func (s Symbol) String() string {
	switch s {
	case SymbolCell:
		return "Cell"
	case SymbolFieldDelimiter:
		return "FieldDelimiter"
	case SymbolRowDelimiter:
		return "RowDelimiter"
	default:
		return "Unknown"
	}
}

// Abstraction is the ordered symbol sequence produced by scanning raw text
// under one dialect. Delimiter symbols are always surrounded by cells: empty
// cells are synthesized so that no two delimiters are adjacent and the
// sequence never starts or ends with a delimiter.
type Abstraction []Symbol

// Diagnostic flags malformed escaping found during a scan. Diagnostics are
// informational only and never stop the scan.
type Diagnostic int

const (
	// DiagnosticInvalidEscapePosition means an escape character appeared
	// somewhere other than a clean field boundary: after field content had
	// already begun, or a closing escape followed by ordinary content.
	DiagnosticInvalidEscapePosition Diagnostic = iota
	// DiagnosticUnbalancedEscapes means the input ended while still inside
	// an escaped field.
	DiagnosticUnbalancedEscapes
)

// String returns a human-readable diagnostic name.
func (d Diagnostic) String() string {
	switch d {
	case DiagnosticInvalidEscapePosition:
		return "InvalidEscapeCharacterPosition"
	case DiagnosticUnbalancedEscapes:
		return "UnbalancedEscapeCharacters"
	default:
		return "Unknown"
	}
}

// scalarSource feeds scalars to the scanner with a single-slot pending buffer.
// Escape handling looks one scalar ahead and sometimes has to hand that
// scalar back for normal processing; the pending slot is consulted before the
// underlying sequence.
type scalarSource struct {
	scalars    []rune
	pos        int
	pending    rune
	hasPending bool
}

func (s *scalarSource) next() (rune, bool) {
	if s.hasPending {
		s.hasPending = false
		return s.pending, true
	}
	if s.pos >= len(s.scalars) {
		return 0, false
	}
	r := s.scalars[s.pos]
	s.pos++
	return r, true
}

func (s *scalarSource) requeue(r rune) {
	s.pending = r
	s.hasPending = true
}

// BuildAbstraction scans scalars left to right under d and returns the symbol
// sequence plus any escaping diagnostics, in arrival order. It is a pure
// function: identical input always yields identical output, and it never
// fails, whatever the input looks like.
func BuildAbstraction(scalars []rune, d Dialect) (Abstraction, []Diagnostic) {
	var (
		symbols     Abstraction
		diagnostics []Diagnostic
		escaped     bool
	)
	src := &scalarSource{scalars: scalars}

	lastIsCell := func() bool {
		return len(symbols) > 0 && symbols[len(symbols)-1] == SymbolCell
	}

	// Delimiters must sit between cells; an empty cell is synthesized when
	// the field before the delimiter produced no content.
	appendDelimiter := func(sym Symbol) {
		if !lastIsCell() {
			symbols = append(symbols, SymbolCell)
		}
		symbols = append(symbols, sym)
	}

	for {
		r, ok := src.next()
		if !ok {
			break
		}

		if escaped {
			if r != d.EscapeCharacter {
				// Quoted content, delimiters included, emits nothing.
				continue
			}
			la, ok := src.next()
			switch {
			case !ok:
				// Field closes at end of input.
				escaped = false
			case la == d.EscapeCharacter:
				// Doubled escape character: literal content, stay escaped.
			case la == d.FieldDelimiter || la == d.RowDelimiter:
				escaped = false
				src.requeue(la)
			default:
				// Closing escape followed by ordinary content.
				diagnostics = append(diagnostics, DiagnosticInvalidEscapePosition)
				escaped = false
				src.requeue(la)
			}
			continue
		}

		switch r {
		case d.FieldDelimiter:
			appendDelimiter(SymbolFieldDelimiter)
		case d.RowDelimiter:
			appendDelimiter(SymbolRowDelimiter)
		case d.EscapeCharacter:
			if lastIsCell() {
				// Escape started after field content already began.
				diagnostics = append(diagnostics, DiagnosticInvalidEscapePosition)
			}
			escaped = true
		default:
			if !lastIsCell() {
				symbols = append(symbols, SymbolCell)
			}
		}
	}

	// A trailing delimiter implies one more, empty, field or row.
	if n := len(symbols); n > 0 && symbols[n-1] != SymbolCell {
		symbols = append(symbols, SymbolCell)
	}
	if escaped {
		diagnostics = append(diagnostics, DiagnosticUnbalancedEscapes)
	}

	return symbols, diagnostics
}
