/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sniffer.go
Description: End-to-end sniffing pipeline. Detects the dialect of raw text, re-reads
the text into rows under that dialect, classifies every field, and decides whether
the first row is a header. Each stage is logged; none of them can fail, so a sniff
always produces a result.
*/

package sniffer

import (
	"github.com/kleascm/tabsniff/pkg/dialect"
	"github.com/kleascm/tabsniff/pkg/fieldtype"
	"github.com/kleascm/tabsniff/pkg/header"
	"github.com/kleascm/tabsniff/pkg/reader"
	"github.com/sirupsen/logrus"
)

// Result is the complete outcome of sniffing one piece of text.
type Result struct {
	Dialect     dialect.Dialect          `json:"-"`
	Delimiter   string                   `json:"delimiter"`
	Scores      []dialect.CandidateScore `json:"-"`
	Diagnostics []dialect.Diagnostic     `json:"-"`
	Rows        [][]string               `json:"rows,omitempty"`
	Types       [][]fieldtype.FieldType  `json:"types,omitempty"`
	Header      header.Verdict           `json:"header"`
	Candidates  map[string]float64       `json:"candidates"`
	Issues      []string                 `json:"issues,omitempty"`
}

// Sniffer runs the detection pipeline. Construct with New.
type Sniffer struct {
	detector *dialect.Detector
	logger   *logrus.Logger
}

// New creates a sniffer. A nil logger disables logging.
func New(logger *logrus.Logger) *Sniffer {
	detector := dialect.NewDetector()
	if logger != nil {
		detector.SetLogger(logger)
	}
	return &Sniffer{
		detector: detector,
		logger:   logger,
	}
}

// SetTypeScorer forwards a type-score strategy to the underlying detector.
func (s *Sniffer) SetTypeScorer(scorer dialect.TypeScorer) {
	s.detector.SetTypeScorer(scorer)
}

// Sniff detects the dialect of text, reads it into rows, classifies every
// field, and decides header presence. Best-effort for any input, the empty
// string included.
func (s *Sniffer) Sniff(text string) *Result {
	scalars := []rune(text)

	detected, scores := s.detector.DetectWithScores(scalars)
	result := &Result{
		Dialect:    detected,
		Delimiter:  string(detected.FieldDelimiter),
		Scores:     scores,
		Candidates: make(map[string]float64, len(scores)),
	}
	for _, cs := range scores {
		result.Candidates[string(cs.Dialect.FieldDelimiter)] = cs.Score
		if cs.Dialect == detected {
			result.Diagnostics = cs.Diagnostics
		}
	}
	for _, diag := range result.Diagnostics {
		result.Issues = append(result.Issues, diag.String())
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"field_delimiter": result.Delimiter,
			"diagnostics":     len(result.Diagnostics),
		}).Info("Dialect detected")
	}

	result.Rows = reader.ReadAll(scalars, detected)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"rows": len(result.Rows)}).Debug("Rows read")
	}

	result.Types = reader.TypeMatrix(result.Rows)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"rows": len(result.Types)}).Debug("Fields classified")
	}

	result.Header = header.Detect(result.Types)
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"verdict": string(result.Header)}).Info("Header verdict")
	}

	return result
}
