/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reader.go
Description: Dialect-driven tokenizer turning raw text into rows of field strings.
This is the boundary collaborator that consumes a detected dialect: it re-scans the
same text with the same escape convention the abstraction builder uses, but keeps
field content instead of abstract symbols. Best-effort by design; malformed input
still yields rows.
*/

package reader

import (
	"github.com/kleascm/tabsniff/pkg/dialect"
	"github.com/kleascm/tabsniff/pkg/fieldtype"
)

// ReadAll tokenizes scalars under d into rows of decoded field strings.
// Enclosing escape characters are dropped and doubled escape characters
// inside escaped fields decode to a single literal one. The scan never
// fails; unbalanced escaping simply closes the field at end of input.
func ReadAll(scalars []rune, d dialect.Dialect) [][]string {
	var (
		rows    [][]string
		row     []string
		field   []rune
		escaped bool
		quoted  bool // current field saw an escape character
	)

	flushField := func() {
		row = append(row, string(field))
		field = field[:0]
		quoted = false
	}
	flushRow := func() {
		flushField()
		rows = append(rows, row)
		row = nil
	}

	var (
		pending    rune
		hasPending bool
	)
	pos := 0
	next := func() (rune, bool) {
		if hasPending {
			hasPending = false
			return pending, true
		}
		if pos >= len(scalars) {
			return 0, false
		}
		r := scalars[pos]
		pos++
		return r, true
	}

	for {
		r, ok := next()
		if !ok {
			break
		}

		if escaped {
			if r != d.EscapeCharacter {
				field = append(field, r)
				continue
			}
			la, ok := next()
			switch {
			case !ok:
				escaped = false
			case la == d.EscapeCharacter:
				field = append(field, la)
			default:
				escaped = false
				pending, hasPending = la, true
			}
			continue
		}

		switch r {
		case d.FieldDelimiter:
			flushField()
		case d.RowDelimiter:
			flushRow()
		case d.EscapeCharacter:
			escaped = true
			quoted = true
		default:
			field = append(field, r)
		}
	}

	if len(field) > 0 || len(row) > 0 || quoted {
		flushRow()
	}
	return rows
}

// TypeMatrix classifies every field of a parsed grid, producing the input
// the header detector consumes.
func TypeMatrix(rows [][]string) [][]fieldtype.FieldType {
	matrix := make([][]fieldtype.FieldType, len(rows))
	for i, row := range rows {
		types := make([]fieldtype.FieldType, len(row))
		for j, field := range row {
			types[j] = fieldtype.Classify(field)
		}
		matrix[i] = types
	}
	return matrix
}
