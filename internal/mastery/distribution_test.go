package mastery

import "testing"

func TestDistributionBands(t *testing.T) {
	tests := []struct {
		name       string
		avgMastery float64
		total      int
		want       Distribution
	}{
		{"beginner", 20, 10, Distribution{Easy: 8, Medium: 2, Hard: 0}},
		{"intermediate", 45, 10, Distribution{Easy: 4, Medium: 4, Hard: 2}},
		{"upper", 70, 10, Distribution{Easy: 2, Medium: 4, Hard: 4}},
		{"advanced", 85, 10, Distribution{Easy: 1, Medium: 2, Hard: 7}},
		{"zero questions", 50, 0, Distribution{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DistributionFor(tt.avgMastery, tt.total)
			if got != tt.want {
				t.Errorf("DistributionFor(%v, %d) = %+v, want %+v", tt.avgMastery, tt.total, got, tt.want)
			}
		})
	}
}

// Independent rounding per band may drift the total by one; anything
// beyond that is a bug.
func TestDistributionSumWithinOne(t *testing.T) {
	for avg := 0.0; avg <= 100; avg += 5 {
		for _, total := range []int{1, 3, 5, 7, 10, 15, 20} {
			d := DistributionFor(avg, total)
			diff := d.Total() - total
			if diff < -1 || diff > 1 {
				t.Errorf("DistributionFor(%v, %d) sums to %d, drift %d", avg, total, d.Total(), diff)
			}
		}
	}
}

func TestShouldAdjustDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		recent  []bool
		current Difficulty
		want    Adjustment
	}{
		{
			name:    "three correct escalates",
			recent:  []bool{true, true, true},
			current: Medium,
			want:    Adjustment{ShouldAdjust: true, NewDifficulty: Hard},
		},
		{
			name:    "three correct at hard stays",
			recent:  []bool{true, true, true},
			current: Hard,
			want:    Adjustment{NewDifficulty: Hard},
		},
		{
			name:    "two of three wrong de-escalates",
			recent:  []bool{false, true, false},
			current: Medium,
			want:    Adjustment{ShouldAdjust: true, NewDifficulty: Easy},
		},
		{
			name:    "two of three wrong at easy stays",
			recent:  []bool{false, false, true},
			current: Easy,
			want:    Adjustment{NewDifficulty: Easy},
		},
		{
			name:    "mixed results no change",
			recent:  []bool{true, true, false},
			current: Medium,
			want:    Adjustment{NewDifficulty: Medium},
		},
		{
			name:    "fewer than three answers is a no-op",
			recent:  []bool{true, true},
			current: Medium,
			want:    Adjustment{NewDifficulty: Medium},
		},
		{
			name:    "only the last three count",
			recent:  []bool{false, false, true, true, true},
			current: Easy,
			want:    Adjustment{ShouldAdjust: true, NewDifficulty: Medium},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldAdjustDifficulty(tt.recent, tt.current)
			if got.ShouldAdjust != tt.want.ShouldAdjust || got.NewDifficulty != tt.want.NewDifficulty {
				t.Errorf("ShouldAdjustDifficulty(%v, %s) = {%v %s}, want {%v %s}",
					tt.recent, tt.current,
					got.ShouldAdjust, got.NewDifficulty,
					tt.want.ShouldAdjust, tt.want.NewDifficulty)
			}
		})
	}
}

func TestDifficultyEscalation(t *testing.T) {
	if got := Easy.Escalate(); got != Medium {
		t.Errorf("Easy.Escalate() = %s", got)
	}
	if got := Hard.Escalate(); got != Hard {
		t.Errorf("Hard.Escalate() = %s", got)
	}
	if got := Hard.DeEscalate(); got != Medium {
		t.Errorf("Hard.DeEscalate() = %s", got)
	}
	if got := Easy.DeEscalate(); got != Easy {
		t.Errorf("Easy.DeEscalate() = %s", got)
	}
}
