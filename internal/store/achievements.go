package store

import (
	"context"
	"fmt"
	"time"

	"github.com/apratap/adept/ent"
	"github.com/apratap/adept/ent/achievement"
)

type achievementRepo struct {
	client *ent.Client
}

func (r *achievementRepo) GetOrCreate(ctx context.Context, learnerID, key string, target int) (*AchievementRow, error) {
	row, err := r.query(ctx, learnerID, key)
	if err == nil {
		return row, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	created, err := r.client.Achievement.Create().
		SetLearnerID(learnerID).
		SetKey(key).
		SetTarget(target).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return r.query(ctx, learnerID, key)
		}
		return nil, fmt.Errorf("create achievement row: %w", err)
	}
	return achievementFromEnt(created), nil
}

func (r *achievementRepo) query(ctx context.Context, learnerID, key string) (*AchievementRow, error) {
	row, err := r.client.Achievement.Query().
		Where(
			achievement.LearnerID(learnerID),
			achievement.Key(key),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query achievement row: %w", err)
	}
	return achievementFromEnt(row), nil
}

func (r *achievementRepo) SetProgress(ctx context.Context, id int, progress int) error {
	// Progress on an earned achievement is still tracked, but earned
	// state itself never reverts: earned_at is only written by
	// MarkEarned.
	if err := r.client.Achievement.UpdateOneID(id).
		SetProgress(progress).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update achievement progress: %w", err)
	}
	return nil
}

func (r *achievementRepo) MarkEarned(ctx context.Context, id int, at time.Time) (bool, error) {
	n, err := r.client.Achievement.Update().
		Where(
			achievement.ID(id),
			achievement.EarnedAtIsNil(),
		).
		SetEarnedAt(at).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("mark achievement earned: %w", err)
	}
	return n > 0, nil
}

func (r *achievementRepo) ByLearner(ctx context.Context, learnerID string) ([]*AchievementRow, error) {
	rows, err := r.client.Achievement.Query().
		Where(achievement.LearnerID(learnerID)).
		Order(ent.Asc(achievement.FieldKey)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learner achievements: %w", err)
	}

	achievements := make([]*AchievementRow, len(rows))
	for i, row := range rows {
		achievements[i] = achievementFromEnt(row)
	}
	return achievements, nil
}

func achievementFromEnt(row *ent.Achievement) *AchievementRow {
	return &AchievementRow{
		ID:        row.ID,
		LearnerID: row.LearnerID,
		Key:       row.Key,
		Progress:  row.Progress,
		Target:    row.Target,
		EarnedAt:  row.EarnedAt,
	}
}
