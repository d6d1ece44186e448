package achievements

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/apratap/adept/internal/store"
)

// Status is one catalog entry's state for a learner.
type Status struct {
	Key         string
	Name        string
	Description string
	Progress    int
	Target      int
	EarnedAt    *time.Time
}

// Summary partitions the full catalog by a learner's progress.
type Summary struct {
	Earned     []Status
	InProgress []Status
	Locked     []Status

	EarnedCount          int
	TotalCount           int
	CompletionPercentage float64
}

// ProgressSummary reports the learner's standing against every catalog
// entry, including entries they have never touched.
func (t *Tracker) ProgressSummary(ctx context.Context, learnerID string) (*Summary, error) {
	rows, err := t.repo.ByLearner(ctx, learnerID)
	if err != nil {
		return nil, fmt.Errorf("load achievements: %w", err)
	}

	byKey := make(map[string]*store.AchievementRow, len(rows))
	for _, row := range rows {
		byKey[row.Key] = row
	}

	summary := &Summary{TotalCount: len(t.catalog)}
	for _, def := range t.catalog {
		st := Status{
			Key:         def.Key,
			Name:        def.Name,
			Description: def.Description,
			Target:      def.Target,
		}
		if row, ok := byKey[def.Key]; ok {
			st.Progress = row.Progress
			st.EarnedAt = row.EarnedAt
		}

		switch {
		case st.EarnedAt != nil:
			summary.Earned = append(summary.Earned, st)
		case st.Progress > 0:
			summary.InProgress = append(summary.InProgress, st)
		default:
			summary.Locked = append(summary.Locked, st)
		}
	}

	summary.EarnedCount = len(summary.Earned)
	if summary.TotalCount > 0 {
		pct := float64(summary.EarnedCount) / float64(summary.TotalCount) * 100
		summary.CompletionPercentage = math.Round(pct*10) / 10
	}
	return summary, nil
}
