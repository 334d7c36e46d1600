package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/practiceattempt"
	"github.com/abhisek/pathwise/ent/practicequestion"
)

type practiceRepo struct {
	client *ent.Client
}

func (r *practiceRepo) CachedQuestion(ctx context.Context, identifier string, notBefore time.Time) (*PracticeQuestion, error) {
	q, err := r.client.PracticeQuestion.Query().
		Where(
			practicequestion.Identifier(identifier),
			practicequestion.GeneratedAtGTE(notBefore),
		).
		Order(ent.Desc(practicequestion.FieldGeneratedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query cached question: %w", err)
	}
	return practiceQuestionFromEnt(q), nil
}

func (r *practiceRepo) SaveQuestion(ctx context.Context, q *PracticeQuestion) (*PracticeQuestion, error) {
	saved, err := r.client.PracticeQuestion.Create().
		SetIdentifier(q.Identifier).
		SetTitle(q.Title).
		SetDescription(q.Description).
		SetExamples(q.Examples).
		SetConstraints(q.Constraints).
		SetDefaultStdin(q.DefaultStdin).
		SetGeneratedAt(q.GeneratedAt).
		SetLastUsedAt(q.LastUsedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save question: %w", err)
	}
	return practiceQuestionFromEnt(saved), nil
}

func (r *practiceRepo) TouchQuestion(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	_, err := r.client.PracticeQuestion.UpdateOneID(id).
		SetLastUsedAt(usedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch question: %w", err)
	}
	return nil
}

func (r *practiceRepo) AppendAttempt(ctx context.Context, a *PracticeAttempt) (*PracticeAttempt, error) {
	saved, err := r.client.PracticeAttempt.Create().
		SetUserID(a.UserID).
		SetSkill(a.Skill).
		SetDifficulty(a.Difficulty).
		SetLanguage(a.Language).
		SetCode(a.Code).
		SetOverallStatus(a.OverallStatus).
		SetSummaryFeedback(a.SummaryFeedback).
		SetScores(a.Scores).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append attempt: %w", err)
	}
	return attemptFromEnt(saved), nil
}

func (r *practiceRepo) AttemptsByUser(ctx context.Context, userID uuid.UUID) ([]*PracticeAttempt, error) {
	rows, err := r.client.PracticeAttempt.Query().
		Where(practiceattempt.UserID(userID)).
		Order(ent.Desc(practiceattempt.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	out := make([]*PracticeAttempt, len(rows))
	for i, row := range rows {
		out[i] = attemptFromEnt(row)
	}
	return out, nil
}

func (r *practiceRepo) DistinctSkills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	skills, err := r.client.PracticeAttempt.Query().
		Where(practiceattempt.UserID(userID)).
		Unique(true).
		Select(practiceattempt.FieldSkill).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query distinct skills: %w", err)
	}
	return skills, nil
}

func practiceQuestionFromEnt(q *ent.PracticeQuestion) *PracticeQuestion {
	return &PracticeQuestion{
		ID:           q.ID,
		Identifier:   q.Identifier,
		Title:        q.Title,
		Description:  q.Description,
		Examples:     q.Examples,
		Constraints:  q.Constraints,
		DefaultStdin: q.DefaultStdin,
		GeneratedAt:  q.GeneratedAt,
		LastUsedAt:   q.LastUsedAt,
	}
}

func attemptFromEnt(a *ent.PracticeAttempt) *PracticeAttempt {
	return &PracticeAttempt{
		ID:              a.ID,
		UserID:          a.UserID,
		Skill:           a.Skill,
		Difficulty:      a.Difficulty,
		Language:        a.Language,
		Code:            a.Code,
		OverallStatus:   a.OverallStatus,
		SummaryFeedback: a.SummaryFeedback,
		Scores:          a.Scores,
		Timestamp:       a.Timestamp,
	}
}
