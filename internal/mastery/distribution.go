package mastery

// Distribution is a question count per difficulty band.
type Distribution struct {
	Easy   int
	Medium int
	Hard   int
}

// Total returns the number of questions across all bands.
func (d Distribution) Total() int {
	return d.Easy + d.Medium + d.Hard
}

// distBands maps average-mastery bands to percentage splits.
var distBands = []struct {
	below              float64
	easy, medium, hard float64
}{
	{below: 30, easy: 0.80, medium: 0.20, hard: 0},
	{below: 60, easy: 0.40, medium: 0.40, hard: 0.20},
	{below: 80, easy: 0.20, medium: 0.40, hard: 0.40},
	{below: 101, easy: 0.10, medium: 0.20, hard: 0.70},
}

// DistributionFor computes the difficulty mix for a session given the
// average mastery across its concepts. Each band is rounded
// independently, so the counts may drift from totalQuestions by one in
// either direction; callers treat the drift as acceptable rather than
// redistributing the remainder.
func DistributionFor(avgMastery float64, totalQuestions int) Distribution {
	if totalQuestions <= 0 {
		return Distribution{}
	}
	for _, b := range distBands {
		if avgMastery < b.below {
			return Distribution{
				Easy:   roundPct(totalQuestions, b.easy),
				Medium: roundPct(totalQuestions, b.medium),
				Hard:   roundPct(totalQuestions, b.hard),
			}
		}
	}
	last := distBands[len(distBands)-1]
	return Distribution{
		Easy:   roundPct(totalQuestions, last.easy),
		Medium: roundPct(totalQuestions, last.medium),
		Hard:   roundPct(totalQuestions, last.hard),
	}
}

// adjustWindow is how many trailing answers mid-session difficulty
// adjustment inspects.
const adjustWindow = 3

// Adjustment is the outcome of a mid-session difficulty check.
type Adjustment struct {
	ShouldAdjust  bool
	NewDifficulty Difficulty
	Message       string
}

// ShouldAdjustDifficulty examines the last three answers and decides
// whether to move the session's difficulty band. Three in a row correct
// escalates (unless already hard); two or more of the last three wrong
// de-escalates (unless already easy). With fewer than three answers it
// is a no-op.
func ShouldAdjustDifficulty(recent []bool, current Difficulty) Adjustment {
	if len(recent) < adjustWindow {
		return Adjustment{NewDifficulty: current}
	}

	window := recent[len(recent)-adjustWindow:]
	correct := 0
	for _, ok := range window {
		if ok {
			correct++
		}
	}

	switch {
	case correct == adjustWindow && current != Hard:
		return Adjustment{
			ShouldAdjust:  true,
			NewDifficulty: current.Escalate(),
			Message:       "Three in a row! Stepping up the difficulty.",
		}
	case adjustWindow-correct >= 2 && current != Easy:
		return Adjustment{
			ShouldAdjust:  true,
			NewDifficulty: current.DeEscalate(),
			Message:       "Easing off the difficulty for a bit.",
		}
	}
	return Adjustment{NewDifficulty: current}
}
