/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: header.go
Description: Header presence detection over a matrix of per-field semantic types.
The verdict is deliberately tri-state: absence of evidence is reported as unknown,
never coerced into a yes/no answer.
*/

package header

import "github.com/kleascm/tabsniff/pkg/fieldtype"

// Verdict is the outcome of header detection.
type Verdict string

const (
	// VerdictHeader means the first row is a header, not data.
	VerdictHeader Verdict = "header"
	// VerdictNoHeader means the first row is data.
	VerdictNoHeader Verdict = "no_header"
	// VerdictUnknown means the matrix carries no evidence either way.
	VerdictUnknown Verdict = "unknown"
)

// Detect decides whether the first row of a classified grid is a header.
// Rules are evaluated in order, first match wins:
//
//  1. no rows at all: no header;
//  2. any classified cell in the first row: no header, since header rows are
//     expected to be untyped text;
//  3. no classified cell anywhere: unknown;
//  4. first row untyped, second row carries a type, and all rows from the
//     second onward agree on one type sequence: header;
//  5. anything else: unknown.
//
// Reaching rule 4 guarantees a second row exists: rule 3 would have fired
// otherwise.
func Detect(matrix [][]fieldtype.FieldType) Verdict {
	if len(matrix) == 0 {
		return VerdictNoHeader
	}
	if rowHasType(matrix[0]) {
		return VerdictNoHeader
	}

	anyTyped := false
	for _, row := range matrix[1:] {
		if rowHasType(row) {
			anyTyped = true
			break
		}
	}
	if !anyTyped {
		return VerdictUnknown
	}

	if !rowHasType(matrix[1]) {
		return VerdictUnknown
	}
	for _, row := range matrix[2:] {
		if !rowsEqual(matrix[1], row) {
			return VerdictUnknown
		}
	}
	return VerdictHeader
}

func rowHasType(row []fieldtype.FieldType) bool {
	for _, t := range row {
		if t != fieldtype.None {
			return true
		}
	}
	return false
}

func rowsEqual(a, b []fieldtype.FieldType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
