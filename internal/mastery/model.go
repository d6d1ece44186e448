// Package mastery implements the pure arithmetic at the heart of the
// adaptive engine: mastery updates, difficulty suggestion, spaced
// repetition scheduling and difficulty distributions. Everything here
// is stateless and deterministic given its inputs.
package mastery

import (
	"math"
	"time"
)

// deltaWeights holds the asymmetric gain/penalty per difficulty band.
// Correct answers on hard items are worth more than on easy ones;
// failing a hard item is less diagnostic than failing an easy one, so
// the penalty shrinks as difficulty rises.
var deltaWeights = map[Difficulty]struct{ gain, penalty int }{
	Easy:   {gain: 4, penalty: 20},
	Medium: {gain: 8, penalty: 15},
	Hard:   {gain: 12, penalty: 8},
}

// Delta applies one difficulty-weighted mastery update and returns the
// new mastery, clamped to [0,100]. Unknown difficulties fall back to
// the medium weights.
func Delta(current int, d Difficulty, correct bool) int {
	w, ok := deltaWeights[d]
	if !ok {
		w = deltaWeights[Medium]
	}
	next := current
	if correct {
		next += w.gain
	} else {
		next -= w.penalty
	}
	return clamp(next, 0, 100)
}

// SuggestedDifficulty returns the band a learner at the given mastery
// should be practicing at.
func SuggestedDifficulty(mastery int) Difficulty {
	switch {
	case mastery < 30:
		return Easy
	case mastery < 60:
		return Medium
	}
	return Hard
}

// reviewIntervals maps mastery thresholds to review intervals in days.
// Scanned in order; the first band the mastery falls under wins.
var reviewIntervals = []struct {
	below int
	days  int
}{
	{below: 30, days: 1},
	{below: 50, days: 3},
	{below: 70, days: 7},
	{below: 80, days: 14},
	{below: 90, days: 30},
	{below: 101, days: 60},
}

// NextReviewDate returns the spaced repetition due date for a concept
// at the given mastery. The interval is a step function of mastery and
// is monotonically non-decreasing in it.
func NextReviewDate(mastery int, now time.Time) time.Time {
	for _, band := range reviewIntervals {
		if mastery < band.below {
			return now.AddDate(0, 0, band.days)
		}
	}
	return now.AddDate(0, 0, reviewIntervals[len(reviewIntervals)-1].days)
}

// ImprovementPercent returns the percentage change from oldAvg to
// newAvg. When oldAvg is zero there is no baseline to compare against,
// so newAvg is returned verbatim rather than dividing by zero. That is
// intentional: a learner going from nothing to any score reads as
// "improved by the new score".
func ImprovementPercent(oldAvg, newAvg float64) float64 {
	if oldAvg == 0 {
		return newAvg
	}
	return (newAvg - oldAvg) / oldAvg * 100
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundPct(total int, pct float64) int {
	return int(math.Round(float64(total) * pct))
}
