package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/generatedquiz"
	"github.com/abhisek/pathwise/ent/quizresult"
)

type quizRepo struct {
	client *ent.Client
}

func (r *quizRepo) CachedQuiz(ctx context.Context, identifier string, notBefore time.Time) (*GeneratedQuiz, error) {
	q, err := r.client.GeneratedQuiz.Query().
		Where(
			generatedquiz.Identifier(identifier),
			generatedquiz.GeneratedAtGTE(notBefore),
		).
		Order(ent.Desc(generatedquiz.FieldGeneratedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query cached quiz: %w", err)
	}
	return quizFromEnt(q), nil
}

func (r *quizRepo) QuizByID(ctx context.Context, id uuid.UUID) (*GeneratedQuiz, error) {
	q, err := r.client.GeneratedQuiz.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quiz: %w", err)
	}
	return quizFromEnt(q), nil
}

func (r *quizRepo) SaveQuiz(ctx context.Context, q *GeneratedQuiz) (*GeneratedQuiz, error) {
	saved, err := r.client.GeneratedQuiz.Create().
		SetIdentifier(q.Identifier).
		SetTitle(q.Title).
		SetQuestions(q.Questions).
		SetGeneratedAt(q.GeneratedAt).
		SetLastUsedAt(q.LastUsedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save quiz: %w", err)
	}
	return quizFromEnt(saved), nil
}

func (r *quizRepo) TouchQuiz(ctx context.Context, id uuid.UUID, usedAt time.Time) error {
	_, err := r.client.GeneratedQuiz.UpdateOneID(id).
		SetLastUsedAt(usedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch quiz: %w", err)
	}
	return nil
}

func (r *quizRepo) AppendResult(ctx context.Context, res *QuizResult) (*QuizResult, error) {
	saved, err := r.client.QuizResult.Create().
		SetUserID(res.UserID).
		SetRoadmapID(res.RoadmapID).
		SetStageIndex(res.StageIndex).
		SetStepIndex(res.StepIndex).
		SetQuizTitle(res.QuizTitle).
		SetScore(res.Score).
		SetPassed(res.Passed).
		SetDetail(res.Detail).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append quiz result: %w", err)
	}
	return resultFromEnt(saved), nil
}

func (r *quizRepo) LatestResult(ctx context.Context, userID, roadmapID uuid.UUID, stage, step int) (*QuizResult, error) {
	res, err := r.client.QuizResult.Query().
		Where(
			quizresult.UserID(userID),
			quizresult.RoadmapID(roadmapID),
			quizresult.StageIndex(stage),
			quizresult.StepIndex(step),
		).
		Order(ent.Desc(quizresult.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest result: %w", err)
	}
	return resultFromEnt(res), nil
}

func (r *quizRepo) ResultsByUser(ctx context.Context, userID uuid.UUID) ([]*QuizResult, error) {
	rows, err := r.client.QuizResult.Query().
		Where(quizresult.UserID(userID)).
		Order(ent.Desc(quizresult.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quiz results: %w", err)
	}
	out := make([]*QuizResult, len(rows))
	for i, row := range rows {
		out[i] = resultFromEnt(row)
	}
	return out, nil
}

func quizFromEnt(q *ent.GeneratedQuiz) *GeneratedQuiz {
	return &GeneratedQuiz{
		ID:          q.ID,
		Identifier:  q.Identifier,
		Title:       q.Title,
		Questions:   q.Questions,
		GeneratedAt: q.GeneratedAt,
		LastUsedAt:  q.LastUsedAt,
	}
}

func resultFromEnt(r *ent.QuizResult) *QuizResult {
	return &QuizResult{
		ID:         r.ID,
		UserID:     r.UserID,
		RoadmapID:  r.RoadmapID,
		StageIndex: r.StageIndex,
		StepIndex:  r.StepIndex,
		QuizTitle:  r.QuizTitle,
		Score:      r.Score,
		Passed:     r.Passed,
		Detail:     r.Detail,
		Timestamp:  r.Timestamp,
	}
}
