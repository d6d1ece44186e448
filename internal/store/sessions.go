package store

import (
	"context"
	"fmt"

	"github.com/apratap/adept/ent"
	"github.com/apratap/adept/ent/practicesession"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, s *Session) error {
	builder := r.client.PracticeSession.Create().
		SetID(s.ID).
		SetLearnerID(s.LearnerID).
		SetKind(s.Kind).
		SetConcepts(s.Concepts).
		SetTargetDifficulty(s.TargetDifficulty).
		SetQuestions(s.Questions).
		SetQuestionsTotal(s.QuestionsTotal)

	if !s.StartedAt.IsZero() {
		builder = builder.SetStartedAt(s.StartedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row, err := r.client.PracticeSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) CompleteCAS(ctx context.Context, id string, res SessionResult) error {
	n, err := r.client.PracticeSession.Update().
		Where(
			practicesession.ID(id),
			practicesession.CompletedAtIsNil(),
		).
		SetQuestionsTotal(res.QuestionsTotal).
		SetQuestionsCorrect(res.QuestionsCorrect).
		SetScore(res.Score).
		SetCompletedAt(res.CompletedAt).
		SetDurationSecs(res.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

func (r *sessionRepo) CountCompleted(ctx context.Context, learnerID string) (int, error) {
	n, err := r.client.PracticeSession.Query().
		Where(
			practicesession.LearnerID(learnerID),
			practicesession.CompletedAtNotNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return n, nil
}

func sessionFromEnt(row *ent.PracticeSession) *Session {
	return &Session{
		ID:               row.ID,
		LearnerID:        row.LearnerID,
		Kind:             row.Kind,
		Concepts:         row.Concepts,
		TargetDifficulty: row.TargetDifficulty,
		Questions:        row.Questions,
		QuestionsTotal:   row.QuestionsTotal,
		QuestionsCorrect: row.QuestionsCorrect,
		Score:            row.Score,
		StartedAt:        row.StartedAt,
		CompletedAt:      row.CompletedAt,
		DurationSecs:     row.DurationSecs,
	}
}
