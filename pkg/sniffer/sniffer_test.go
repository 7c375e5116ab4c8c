/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sniffer_test.go
Description: End-to-end tests for the sniffing pipeline: dialect detection, row
reading, field classification, and header verdicts over realistic inputs.
*/

package sniffer_test

import (
	"testing"

	"github.com/kleascm/tabsniff/pkg/dialect"
	"github.com/kleascm/tabsniff/pkg/header"
	"github.com/kleascm/tabsniff/pkg/sniffer"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQuietSniffer() *sniffer.Sniffer {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return sniffer.New(logger)
}

func TestSniffCommaFileWithHeader(t *testing.T) {
	text := "name,joined,amount\n" +
		"alice,01/04/1999,12.5\n" +
		"bob,03/05/2000,7.25\n"

	result := newQuietSniffer().Sniff(text)

	assert.Equal(t, dialect.Comma(), result.Dialect)
	assert.Equal(t, ",", result.Delimiter)
	assert.Equal(t, header.VerdictHeader, result.Header)
	require.Len(t, result.Rows, 3)
	assert.Equal(t, []string{"name", "joined", "amount"}, result.Rows[0])
}

func TestSniffSemicolonFileWithoutHeader(t *testing.T) {
	text := "1;alice;10\n2;bob;20\n3;carol;30"

	result := newQuietSniffer().Sniff(text)

	assert.Equal(t, dialect.New(';'), result.Dialect)
	assert.Equal(t, header.VerdictNoHeader, result.Header)
	require.Len(t, result.Rows, 3)
}

func TestSniffRecordsAllCandidates(t *testing.T) {
	result := newQuietSniffer().Sniff("a,b\nc,d")

	require.Len(t, result.Scores, 4)
	assert.Len(t, result.Candidates, 4)
	assert.Contains(t, result.Candidates, ",")
	assert.Contains(t, result.Candidates, ";")
	assert.Contains(t, result.Candidates, "\t")
	assert.Contains(t, result.Candidates, "|")
}

func TestSniffSurfacesDiagnostics(t *testing.T) {
	// Under the winning comma dialect this input is clean; forcing the
	// text to fragment under comma exposes the semicolon diagnostics path.
	result := newQuietSniffer().Sniff("a;\"b\"c\nd;e")

	require.Equal(t, dialect.New(';'), result.Dialect)
	assert.NotEmpty(t, result.Diagnostics)
	assert.NotEmpty(t, result.Issues)
}

func TestSniffEmptyInput(t *testing.T) {
	result := newQuietSniffer().Sniff("")

	assert.Equal(t, dialect.Comma(), result.Dialect)
	assert.Equal(t, header.VerdictNoHeader, result.Header)
	assert.Empty(t, result.Rows)
}

func TestSniffNilLogger(t *testing.T) {
	result := sniffer.New(nil).Sniff("a,b\nc,d")

	assert.Equal(t, dialect.Comma(), result.Dialect)
}
