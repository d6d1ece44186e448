package mastery

// Difficulty is a question difficulty band.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d is one of the known bands.
func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Escalate returns the next harder band. Hard escalates to itself.
func (d Difficulty) Escalate() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	}
	return Hard
}

// DeEscalate returns the next easier band. Easy de-escalates to itself.
func (d Difficulty) DeEscalate() Difficulty {
	switch d {
	case Hard:
		return Medium
	case Medium:
		return Easy
	}
	return Easy
}
