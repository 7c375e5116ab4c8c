/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: detect.go
Description: Dialect detection driver. Sweeps the fixed candidate delimiters through
the abstraction builder and pattern scorer, records every candidate's score and
diagnostics, and selects the best-scoring dialect with a deterministic first-wins
tie-break. Detection never fails: degenerate input falls back to the comma dialect.
*/

package dialect

import (
	"math"

	"github.com/sirupsen/logrus"
)

// CandidateScore records the outcome of evaluating one candidate dialect.
type CandidateScore struct {
	Dialect     Dialect
	Score       float64
	Diagnostics []Diagnostic
}

// Detector selects the dialect of raw text. The zero value is not usable;
// construct with NewDetector.
type Detector struct {
	typeScorer TypeScorer
	logger     *logrus.Logger
}

// NewDetector creates a detector with the neutral constant type scorer.
func NewDetector() *Detector {
	return &Detector{
		typeScorer: ConstantTypeScorer{Factor: 1.0},
	}
}

// SetTypeScorer replaces the type-score refinement strategy.
func (d *Detector) SetTypeScorer(scorer TypeScorer) {
	d.typeScorer = scorer
}

// SetLogger enables per-candidate debug logging.
func (d *Detector) SetLogger(logger *logrus.Logger) {
	d.logger = logger
}

// Detect returns the best-scoring dialect for the given scalars.
func (d *Detector) Detect(scalars []rune) Dialect {
	best, _ := d.DetectWithScores(scalars)
	return best
}

// DetectWithScores returns the best-scoring dialect together with every
// candidate's recorded score and diagnostics, in candidate order.
//
// Candidates are compared with a strictly-greater test, so ties keep the
// earliest candidate in the fixed priority order. The type-score step is
// skipped when the pattern score alone cannot beat the running maximum;
// under the (0, 1] factor contract this is a pure performance short-circuit
// and never changes the selected dialect.
func (d *Detector) DetectWithScores(scalars []rune) (Dialect, []CandidateScore) {
	var (
		best      Dialect
		bestScore = math.Inf(-1)
		selected  bool
		scores    = make([]CandidateScore, 0, len(CandidateFieldDelimiters()))
	)

	for _, delimiter := range CandidateFieldDelimiters() {
		candidate := New(delimiter)
		abstraction, diagnostics := BuildAbstraction(scalars, candidate)
		score := scoreAbstraction(abstraction)
		if score > bestScore {
			score *= d.typeScorer.TypeScore(scalars, candidate)
		}
		scores = append(scores, CandidateScore{
			Dialect:     candidate,
			Score:       score,
			Diagnostics: diagnostics,
		})

		if d.logger != nil {
			d.logger.WithFields(logrus.Fields{
				"field_delimiter": string(delimiter),
				"score":           score,
				"diagnostics":     len(diagnostics),
			}).Debug("Candidate scored")
		}

		if score > bestScore {
			best = candidate
			bestScore = score
			selected = true
		}
	}

	if !selected {
		return Comma(), scores
	}
	return best, scores
}

// Detect is the package-level convenience entry point using a default
// detector.
func Detect(scalars []rune) Dialect {
	return NewDetector().Detect(scalars)
}
