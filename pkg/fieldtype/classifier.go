/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classifier.go
Description: Coarse semantic type classification for individual field values. The
classifier is an explicit ordered table of (type, predicate) pairs evaluated top to
bottom; the first matching predicate wins. Every predicate matches the entire field
string, never a substring, so values embedded in surrounding text stay unclassified.
*/

package fieldtype

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FieldType tags a field value with a coarse semantic type. None means no
// predicate matched; it is distinct from every real type.
type FieldType string

const (
	None         FieldType = ""
	Currency     FieldType = "currency"
	Date         FieldType = "date"
	Empty        FieldType = "empty"
	NotAvailable FieldType = "notAvailable"
	Number       FieldType = "number"
	URL          FieldType = "url"
	UUID         FieldType = "uuid"
)

// predicate reports whether a raw field value belongs to one type.
type predicate func(field string) bool

// classifiers is the priority order of type checks. The order is
// load-bearing: it is an explicit constant of the classifier, locked by
// tests, not an accident of enum iteration.
var classifiers = []struct {
	fieldType FieldType
	matches   predicate
}{
	{Currency, isCurrency},
	{Date, isDate},
	{Empty, isEmpty},
	{NotAvailable, isNotAvailable},
	{Number, isNumber},
	{URL, isURL},
	{UUID, isUUID},
}

// Classify maps one field value to its semantic type, or None when nothing
// matches.
func Classify(field string) FieldType {
	for _, c := range classifiers {
		if c.matches(field) {
			return c.fieldType
		}
	}
	return None
}

// isCurrency is a reserved extension seam: currency detection needs
// locale-aware amount parsing that lives outside this package, so the
// predicate never matches yet. It stays in the table so the priority slot
// is already claimed.
func isCurrency(string) bool {
	return false
}

var (
	// Numeric calendar dates: 1-2 digit day and month, 2 or 4 digit year,
	// separated by slash, dot or dash.
	numericDatePattern = regexp.MustCompile(`^\d{1,2}[./-]\d{1,2}[./-]\d{2,4}$`)

	// Spelled-out dates, month-first or day-first, with an optional weekday
	// prefix and optional year: "Jan 12, 2015", "Wed, Oct 4", "12 January 1999".
	writtenDatePattern = regexp.MustCompile(`^(?i)(?:(?:mon|tue|wed|thu|fri|sat|sun)[a-z]*,?\s+)?` +
		`(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+\d{2,4})?` +
		`|\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?(?:,?\s+\d{2,4})?)$`)
)

func isDate(field string) bool {
	return numericDatePattern.MatchString(field) || writtenDatePattern.MatchString(field)
}

func isEmpty(field string) bool {
	return field == ""
}

func isNotAvailable(field string) bool {
	return strings.EqualFold(field, "n/a") || strings.EqualFold(field, "na")
}

// isNumber accepts anything strconv parses as a float, the literal NaN
// included. ParseFloat rejects surrounding whitespace, which keeps the
// full-string guarantee.
func isNumber(field string) bool {
	_, err := strconv.ParseFloat(field, 64)
	return err == nil
}

var (
	// Bare domains, www hosts, and scheme-prefixed URLs with optional port
	// and path.
	urlPattern = regexp.MustCompile(`^(?:[a-zA-Z][a-zA-Z0-9+.-]*://)?(?:www\.)?` +
		`(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d+)?(?:/[^\s]*)?$`)

	emailPattern = regexp.MustCompile(`^[^\s@]+@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
)

func isURL(field string) bool {
	return urlPattern.MatchString(field) || emailPattern.MatchString(field)
}

func isUUID(field string) bool {
	_, err := uuid.Parse(field)
	return err == nil
}
