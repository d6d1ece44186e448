package store

import (
	"context"
	"fmt"
	"time"

	"github.com/apratap/adept/ent"
	"github.com/apratap/adept/ent/practicerecord"
)

type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Append(ctx context.Context, rec PracticeRecord) error {
	builder := r.client.PracticeRecord.Create().
		SetLearnerID(rec.LearnerID).
		SetConcept(rec.Concept).
		SetDifficulty(rec.Difficulty).
		SetCorrect(rec.Correct).
		SetMasteryBefore(rec.MasteryBefore).
		SetMasteryAfter(rec.MasteryAfter).
		SetTimeSpentMs(rec.TimeSpentMs)

	if rec.SessionID != "" {
		builder = builder.SetSessionID(rec.SessionID)
	}
	if !rec.Timestamp.IsZero() {
		builder = builder.SetTimestamp(rec.Timestamp)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("append practice record: %w", err)
	}
	return nil
}

func (r *historyRepo) ByLearner(ctx context.Context, learnerID string, limit int) ([]*PracticeRecord, error) {
	q := r.client.PracticeRecord.Query().
		Where(practicerecord.LearnerID(learnerID)).
		Order(ent.Desc(practicerecord.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query practice records: %w", err)
	}
	return recordsFromEnt(rows), nil
}

func (r *historyRepo) RecentWrong(ctx context.Context, learnerID string, limit int) ([]*PracticeRecord, error) {
	q := r.client.PracticeRecord.Query().
		Where(
			practicerecord.LearnerID(learnerID),
			practicerecord.Correct(false),
		).
		Order(ent.Desc(practicerecord.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query wrong answers: %w", err)
	}
	return recordsFromEnt(rows), nil
}

func (r *historyRepo) PracticeDays(ctx context.Context, learnerID string) ([]time.Time, error) {
	rows, err := r.client.PracticeRecord.Query().
		Where(practicerecord.LearnerID(learnerID)).
		Order(ent.Desc(practicerecord.FieldTimestamp)).
		Select(practicerecord.FieldTimestamp).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query practice days: %w", err)
	}

	var days []time.Time
	seen := make(map[string]bool)
	for _, row := range rows {
		day := row.Timestamp.UTC().Truncate(24 * time.Hour)
		key := day.Format(time.DateOnly)
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, day)
	}
	return days, nil
}

func recordsFromEnt(rows []*ent.PracticeRecord) []*PracticeRecord {
	records := make([]*PracticeRecord, len(rows))
	for i, row := range rows {
		records[i] = &PracticeRecord{
			LearnerID:     row.LearnerID,
			Concept:       row.Concept,
			SessionID:     row.SessionID,
			Difficulty:    row.Difficulty,
			Correct:       row.Correct,
			MasteryBefore: row.MasteryBefore,
			MasteryAfter:  row.MasteryAfter,
			TimeSpentMs:   row.TimeSpentMs,
			Timestamp:     row.Timestamp,
		}
	}
	return records
}
