package achievements

// Category is the closed set of metrics an achievement can track.
// Keeping it a tagged enumeration (rather than free-form keys) lets the
// tracker switch over it exhaustively.
type Category string

const (
	CategoryStreak            Category = "streak"
	CategoryConceptsMastered  Category = "concepts_mastered"
	CategoryPerfectSessions   Category = "perfect_sessions"
	CategorySessionsCompleted Category = "sessions_completed"
)

// Definition is one catalog entry: an achievement that unlocks when its
// category's metric reaches Target.
type Definition struct {
	Key         string
	Name        string
	Description string
	Target      int
	Category    Category
}

// Catalog is the process-wide immutable set of achievement definitions,
// loaded once and injected into the Tracker.
type Catalog []Definition

// ForCategory returns the definitions tracking the given category, in
// catalog order.
func (c Catalog) ForCategory(cat Category) []Definition {
	var defs []Definition
	for _, d := range c {
		if d.Category == cat {
			defs = append(defs, d)
		}
	}
	return defs
}

// Lookup returns the definition for a key.
func (c Catalog) Lookup(key string) (Definition, bool) {
	for _, d := range c {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// DefaultCatalog returns the standard achievement set.
func DefaultCatalog() Catalog {
	return Catalog{
		{Key: "first_session", Name: "First Steps", Description: "Complete your first practice session", Target: 1, Category: CategorySessionsCompleted},
		{Key: "sessions_10", Name: "Regular", Description: "Complete 10 practice sessions", Target: 10, Category: CategorySessionsCompleted},
		{Key: "sessions_50", Name: "Dedicated", Description: "Complete 50 practice sessions", Target: 50, Category: CategorySessionsCompleted},
		{Key: "perfect_1", Name: "Flawless", Description: "Score 100% in a session", Target: 1, Category: CategoryPerfectSessions},
		{Key: "perfect_10", Name: "Perfectionist", Description: "Score 100% in 10 sessions", Target: 10, Category: CategoryPerfectSessions},
		{Key: "mastered_1", Name: "Breakthrough", Description: "Master your first concept", Target: 1, Category: CategoryConceptsMastered},
		{Key: "mastered_5", Name: "Collector", Description: "Master 5 concepts", Target: 5, Category: CategoryConceptsMastered},
		{Key: "mastered_10", Name: "Scholar", Description: "Master 10 concepts", Target: 10, Category: CategoryConceptsMastered},
		{Key: "streak_3", Name: "Warming Up", Description: "Practice 3 days in a row", Target: 3, Category: CategoryStreak},
		{Key: "streak_7", Name: "On Fire", Description: "Practice 7 days in a row", Target: 7, Category: CategoryStreak},
		{Key: "streak_30", Name: "Unstoppable", Description: "Practice 30 days in a row", Target: 30, Category: CategoryStreak},
	}
}
