package mastery

import (
	"testing"
	"time"
)

func TestDeltaWeights(t *testing.T) {
	tests := []struct {
		name    string
		current int
		d       Difficulty
		correct bool
		want    int
	}{
		{"easy correct", 50, Easy, true, 54},
		{"easy wrong", 50, Easy, false, 30},
		{"medium correct", 50, Medium, true, 58},
		{"medium wrong", 50, Medium, false, 35},
		{"hard correct", 50, Hard, true, 62},
		{"hard wrong", 50, Hard, false, 42},
		{"clamped at 100", 95, Hard, true, 100},
		{"clamped at 0", 10, Easy, false, 0},
		{"unknown difficulty uses medium weights", 50, Difficulty("extreme"), true, 58},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Delta(tt.current, tt.d, tt.correct)
			if got != tt.want {
				t.Errorf("Delta(%d, %s, %v) = %d, want %d", tt.current, tt.d, tt.correct, got, tt.want)
			}
		})
	}
}

func TestDeltaStaysInRange(t *testing.T) {
	for m := 0; m <= 100; m++ {
		for _, d := range []Difficulty{Easy, Medium, Hard} {
			for _, correct := range []bool{true, false} {
				got := Delta(m, d, correct)
				if got < 0 || got > 100 {
					t.Fatalf("Delta(%d, %s, %v) = %d, out of [0,100]", m, d, correct, got)
				}
			}
		}
	}
}

func TestSuggestedDifficulty(t *testing.T) {
	tests := []struct {
		mastery int
		want    Difficulty
	}{
		{0, Easy},
		{29, Easy},
		{30, Medium},
		{59, Medium},
		{60, Hard},
		{100, Hard},
	}
	for _, tt := range tests {
		if got := SuggestedDifficulty(tt.mastery); got != tt.want {
			t.Errorf("SuggestedDifficulty(%d) = %s, want %s", tt.mastery, got, tt.want)
		}
	}
}

func TestNextReviewDateIntervals(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		mastery int
		days    int
	}{
		{0, 1},
		{29, 1},
		{30, 3},
		{49, 3},
		{50, 7},
		{69, 7},
		{70, 14},
		{79, 14},
		{80, 30},
		{89, 30},
		{90, 60},
		{100, 60},
	}
	for _, tt := range tests {
		want := now.AddDate(0, 0, tt.days)
		if got := NextReviewDate(tt.mastery, now); !got.Equal(want) {
			t.Errorf("NextReviewDate(%d) = %v, want %v", tt.mastery, got, want)
		}
	}
}

// Higher mastery must never produce an earlier review date.
func TestNextReviewDateMonotonic(t *testing.T) {
	now := time.Now()
	prev := NextReviewDate(0, now)
	for m := 1; m <= 100; m++ {
		next := NextReviewDate(m, now)
		if next.Before(prev) {
			t.Fatalf("NextReviewDate(%d) = %v earlier than NextReviewDate(%d) = %v", m, next, m-1, prev)
		}
		prev = next
	}
}

func TestImprovementPercent(t *testing.T) {
	tests := []struct {
		name   string
		oldAvg float64
		newAvg float64
		want   float64
	}{
		{"normal improvement", 50, 75, 50},
		{"decline", 80, 60, -25},
		{"no change", 40, 40, 0},
		// No baseline: the new average is returned as-is instead of
		// dividing by zero.
		{"zero baseline", 0, 62, 62},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ImprovementPercent(tt.oldAvg, tt.newAvg); got != tt.want {
				t.Errorf("ImprovementPercent(%v, %v) = %v, want %v", tt.oldAvg, tt.newAvg, got, tt.want)
			}
		})
	}
}
