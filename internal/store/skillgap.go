package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/skillgapanalysis"
)

type analysisRepo struct {
	client *ent.Client
}

func (r *analysisRepo) Append(ctx context.Context, a *SkillGapAnalysis) (*SkillGapAnalysis, error) {
	saved, err := r.client.SkillGapAnalysis.Create().
		SetUserID(a.UserID).
		SetDomain(a.Domain).
		SetAcquiredSkills(a.AcquiredSkills).
		SetMissingSkills(a.MissingSkills).
		SetRecommendations(a.Recommendations).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append analysis: %w", err)
	}
	return analysisFromEnt(saved), nil
}

func (r *analysisRepo) History(ctx context.Context, userID uuid.UUID, domain string) ([]*SkillGapAnalysis, error) {
	rows, err := r.client.SkillGapAnalysis.Query().
		Where(
			skillgapanalysis.UserID(userID),
			skillgapanalysis.Domain(domain),
		).
		Order(ent.Asc(skillgapanalysis.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analysis history: %w", err)
	}
	return analysesFromEnt(rows), nil
}

func (r *analysisRepo) Latest(ctx context.Context, userID uuid.UUID, domain string) (*SkillGapAnalysis, error) {
	row, err := r.client.SkillGapAnalysis.Query().
		Where(
			skillgapanalysis.UserID(userID),
			skillgapanalysis.Domain(domain),
		).
		Order(ent.Desc(skillgapanalysis.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest analysis: %w", err)
	}
	return analysisFromEnt(row), nil
}

func (r *analysisRepo) LatestAny(ctx context.Context, userID uuid.UUID) (*SkillGapAnalysis, error) {
	row, err := r.client.SkillGapAnalysis.Query().
		Where(skillgapanalysis.UserID(userID)).
		Order(ent.Desc(skillgapanalysis.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest analysis: %w", err)
	}
	return analysisFromEnt(row), nil
}

func (r *analysisRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*SkillGapAnalysis, error) {
	rows, err := r.client.SkillGapAnalysis.Query().
		Where(skillgapanalysis.UserID(userID)).
		Order(ent.Desc(skillgapanalysis.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return analysesFromEnt(rows), nil
}

func (r *analysisRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	n, err := r.client.SkillGapAnalysis.Query().
		Where(skillgapanalysis.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count analyses: %w", err)
	}
	return n, nil
}

func analysisFromEnt(a *ent.SkillGapAnalysis) *SkillGapAnalysis {
	return &SkillGapAnalysis{
		ID:              a.ID,
		UserID:          a.UserID,
		Domain:          a.Domain,
		AcquiredSkills:  a.AcquiredSkills,
		MissingSkills:   a.MissingSkills,
		Recommendations: a.Recommendations,
		Timestamp:       a.Timestamp,
	}
}

func analysesFromEnt(rows []*ent.SkillGapAnalysis) []*SkillGapAnalysis {
	out := make([]*SkillGapAnalysis, len(rows))
	for i, row := range rows {
		out[i] = analysisFromEnt(row)
	}
	return out
}
