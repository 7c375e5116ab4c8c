/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: score.go
Description: Row-pattern consistency scoring for candidate dialects. A correct dialect
partitions text into one or a few dominant row shapes with several fields each; wrong
dialects either fail to split fields or fragment into many distinct shapes. Also hosts
the TypeScorer seam used by the detector to refine pattern scores.
*/

package dialect

import "math"

// patternScoreEpsilon keeps single-field row patterns from contributing
// exactly zero while still penalizing them heavily against multi-field rows.
const patternScoreEpsilon = 0.001

// PatternScore scans scalars under d and scores how consistently the dialect
// partitions the text into repeating row shapes. Higher is better; an empty
// input scores 0.
func PatternScore(scalars []rune, d Dialect) float64 {
	abstraction, _ := BuildAbstraction(scalars, d)
	return scoreAbstraction(abstraction)
}

// scoreAbstraction groups row patterns by structural equality and sums, per
// distinct pattern, count * max(eps, fields-1) / fields. The sum is divided
// by the number of distinct patterns, not the number of rows: a dialect that
// produces many different row shapes is punished even when some shapes
// repeat often.
func scoreAbstraction(abstraction Abstraction) float64 {
	type group struct {
		fields int
		count  int
	}

	groups := make(map[string]*group)
	for _, pattern := range splitRowPatterns(abstraction) {
		key := patternKey(pattern)
		g, ok := groups[key]
		if !ok {
			g = &group{fields: cellCount(pattern)}
			groups[key] = g
		}
		g.count++
	}

	if len(groups) == 0 {
		return 0
	}

	var sum float64
	for _, g := range groups {
		fields := float64(g.fields)
		sum += float64(g.count) * math.Max(patternScoreEpsilon, fields-1) / fields
	}
	return sum / float64(len(groups))
}

// splitRowPatterns cuts an abstraction into row patterns, discarding the row
// delimiters themselves. Every delimiter in an abstraction is surrounded by
// cells, so patterns are never empty for a non-empty abstraction.
func splitRowPatterns(abstraction Abstraction) []Abstraction {
	var patterns []Abstraction
	start := 0
	for i, sym := range abstraction {
		if sym == SymbolRowDelimiter {
			patterns = append(patterns, abstraction[start:i])
			start = i + 1
		}
	}
	if start < len(abstraction) {
		patterns = append(patterns, abstraction[start:])
	}
	return patterns
}

// patternKey encodes a row pattern for structural-equality grouping.
func patternKey(pattern Abstraction) string {
	b := make([]byte, len(pattern))
	for i, sym := range pattern {
		b[i] = byte(sym)
	}
	return string(b)
}

// cellCount returns the number of fields in a row pattern.
func cellCount(pattern Abstraction) int {
	n := 0
	for _, sym := range pattern {
		if sym == SymbolCell {
			n++
		}
	}
	return n
}

// TypeScorer refines a candidate's pattern score with a multiplicative
// factor, the seam for future content-type-aware scoring. Implementations
// must return factors in (0, 1]: the detector skips the type-score step for
// candidates whose pattern score alone cannot beat the running maximum, and
// that short-circuit is only sound while factors never exceed 1.
type TypeScorer interface {
	TypeScore(scalars []rune, candidate Dialect) float64
}

// ConstantTypeScorer multiplies every candidate by the same factor. With the
// default factor of 1.0 it leaves pattern scores untouched.
type ConstantTypeScorer struct {
	Factor float64
}

// TypeScore returns the fixed factor regardless of content.
func (s ConstantTypeScorer) TypeScore(_ []rune, _ Dialect) float64 {
	return s.Factor
}
