/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dialect.go
Description: Dialect value type for delimiter-separated text. A dialect names the
single scalar acting as field separator together with the fixed row separator and
escape character. Dialect values are immutable and comparable; detection constructs
them fresh per run and never mutates them.
*/

package dialect

import "fmt"

const (
	// DefaultRowDelimiter is the only supported row separator.
	DefaultRowDelimiter = '\n'

	// DefaultEscapeCharacter delimits fields that may contain delimiter
	// scalars literally.
	DefaultEscapeCharacter = '"'
)

// Dialect describes the formatting convention of a delimiter-separated file.
// It is a plain value type: equality and map-key hashing cover all three fields.
type Dialect struct {
	FieldDelimiter  rune
	RowDelimiter    rune
	EscapeCharacter rune
}

// New returns a dialect for the given field delimiter, with the fixed row
// delimiter and escape character filled in.
func New(fieldDelimiter rune) Dialect {
	return Dialect{
		FieldDelimiter:  fieldDelimiter,
		RowDelimiter:    DefaultRowDelimiter,
		EscapeCharacter: DefaultEscapeCharacter,
	}
}

// Comma returns the comma dialect, the fallback when detection has nothing
// better to offer.
func Comma() Dialect {
	return New(',')
}

// CandidateFieldDelimiters lists the field delimiters tried during detection,
// in priority order. The order is part of the contract: when two candidates
// score identically, the earlier one wins.
func CandidateFieldDelimiters() []rune {
	return []rune{',', ';', '\t', '|'}
}

// String renders the dialect for logs and reports.
func (d Dialect) String() string {
	return fmt.Sprintf("Dialect{field: %q, row: %q, escape: %q}", d.FieldDelimiter, d.RowDelimiter, d.EscapeCharacter)
}
