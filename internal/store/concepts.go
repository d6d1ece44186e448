package store

import (
	"context"
	"fmt"

	"github.com/apratap/adept/ent"
	"github.com/apratap/adept/ent/userconcept"
)

type conceptRepo struct {
	client *ent.Client
}

func (r *conceptRepo) GetOrCreate(ctx context.Context, learnerID, concept string) (*Concept, error) {
	row, err := r.query(ctx, learnerID, concept)
	if err == nil {
		return row, nil
	}
	if err != ErrNotFound {
		return nil, err
	}

	created, err := r.client.UserConcept.Create().
		SetLearnerID(learnerID).
		SetConcept(concept).
		Save(ctx)
	if err != nil {
		// A concurrent first practice may have created the row between
		// the lookup and the insert; the unique index reports it.
		if ent.IsConstraintError(err) {
			return r.query(ctx, learnerID, concept)
		}
		return nil, fmt.Errorf("create concept row: %w", err)
	}
	return conceptFromEnt(created), nil
}

func (r *conceptRepo) Get(ctx context.Context, learnerID, concept string) (*Concept, error) {
	return r.query(ctx, learnerID, concept)
}

func (r *conceptRepo) query(ctx context.Context, learnerID, concept string) (*Concept, error) {
	row, err := r.client.UserConcept.Query().
		Where(
			userconcept.LearnerID(learnerID),
			userconcept.Concept(concept),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query concept row: %w", err)
	}
	return conceptFromEnt(row), nil
}

func (r *conceptRepo) ByLearner(ctx context.Context, learnerID string) ([]*Concept, error) {
	rows, err := r.client.UserConcept.Query().
		Where(userconcept.LearnerID(learnerID)).
		Order(ent.Asc(userconcept.FieldConcept)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query learner concepts: %w", err)
	}

	concepts := make([]*Concept, len(rows))
	for i, row := range rows {
		concepts[i] = conceptFromEnt(row)
	}
	return concepts, nil
}

func (r *conceptRepo) UpdateCAS(ctx context.Context, id int, expectedMastery int, upd ConceptUpdate) error {
	n, err := r.client.UserConcept.Update().
		Where(
			userconcept.ID(id),
			userconcept.Mastery(expectedMastery),
		).
		SetMastery(upd.Mastery).
		SetTotalAttempts(upd.TotalAttempts).
		SetCorrectAttempts(upd.CorrectAttempts).
		SetDifficulty(upd.Difficulty).
		SetConsecutiveCorrect(upd.ConsecutiveCorrect).
		SetConsecutiveWrong(upd.ConsecutiveWrong).
		SetLastPracticed(upd.LastPracticed).
		SetNextReviewDue(upd.NextReviewDue).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update concept row: %w", err)
	}
	if n == 0 {
		return ErrConflict
	}
	return nil
}

func conceptFromEnt(row *ent.UserConcept) *Concept {
	return &Concept{
		ID:                 row.ID,
		LearnerID:          row.LearnerID,
		Concept:            row.Concept,
		Mastery:            row.Mastery,
		TotalAttempts:      row.TotalAttempts,
		CorrectAttempts:    row.CorrectAttempts,
		Difficulty:         row.Difficulty,
		ConsecutiveCorrect: row.ConsecutiveCorrect,
		ConsecutiveWrong:   row.ConsecutiveWrong,
		LastPracticed:      row.LastPracticed,
		NextReviewDue:      row.NextReviewDue,
	}
}
