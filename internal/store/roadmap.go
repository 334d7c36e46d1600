package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/roadmap"
	"github.com/abhisek/pathwise/ent/step"
)

// roadmapRepo implements RoadmapRepo using the ent client.
type roadmapRepo struct {
	client *ent.Client
}

func (r *roadmapRepo) Get(ctx context.Context, userID uuid.UUID, domain string) (*Roadmap, error) {
	rm, err := r.client.Roadmap.Query().
		Where(roadmap.UserID(userID), roadmap.Domain(domain)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query roadmap: %w", err)
	}
	return r.load(ctx, rm)
}

func (r *roadmapRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Roadmap, error) {
	rms, err := r.client.Roadmap.Query().
		Where(roadmap.UserID(userID)).
		Order(ent.Desc(roadmap.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roadmaps: %w", err)
	}

	out := make([]*Roadmap, 0, len(rms))
	for _, rm := range rms {
		loaded, err := r.load(ctx, rm)
		if err != nil {
			return nil, err
		}
		out = append(out, loaded)
	}
	return out, nil
}

func (r *roadmapRepo) LastDomain(ctx context.Context, userID uuid.UUID) (string, error) {
	rm, err := r.client.Roadmap.Query().
		Where(roadmap.UserID(userID)).
		Order(ent.Desc(roadmap.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query last domain: %w", err)
	}
	return rm.Domain, nil
}

func (r *roadmapRepo) Replace(ctx context.Context, rm *Roadmap) (*Roadmap, error) {
	var created *ent.Roadmap

	err := withTx(ctx, r.client, func(tx *ent.Tx) error {
		// Remove the previous roadmap for this (user, domain), steps first.
		existing, err := tx.Roadmap.Query().
			Where(roadmap.UserID(rm.UserID), roadmap.Domain(rm.Domain)).
			All(ctx)
		if err != nil {
			return fmt.Errorf("query existing roadmap: %w", err)
		}
		for _, old := range existing {
			if _, err := tx.Step.Delete().
				Where(step.HasRoadmapWith(roadmap.ID(old.ID))).
				Exec(ctx); err != nil {
				return fmt.Errorf("delete old steps: %w", err)
			}
			if err := tx.Roadmap.DeleteOne(old).Exec(ctx); err != nil {
				return fmt.Errorf("delete old roadmap: %w", err)
			}
		}

		now := time.Now()
		created, err = tx.Roadmap.Create().
			SetUserID(rm.UserID).
			SetDomain(rm.Domain).
			SetVersion(1).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create roadmap: %w", err)
		}

		builders := make([]*ent.StepCreate, 0)
		for si, stage := range rm.Stages {
			for pi, st := range stage.Steps {
				b := tx.Step.Create().
					SetRoadmap(created).
					SetStageIndex(si).
					SetStepIndex(pi).
					SetStageTitle(stage.Title).
					SetTitle(st.Title).
					SetDescription(st.Description).
					SetResourceType(st.ResourceType).
					SetStudyLink(st.StudyLink).
					SetIsUnlocked(st.Unlocked).
					SetIsCompleted(st.Completed)
				if st.TestScore != nil {
					b = b.SetTestScore(*st.TestScore)
				}
				builders = append(builders, b)
			}
		}
		if _, err := tx.Step.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("create steps: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.load(ctx, created)
}

func (r *roadmapRepo) CompleteStep(ctx context.Context, roadmapID uuid.UUID, version int, target StepRef, next *StepRef, score int) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		now := time.Now()

		// Version check and bump in one statement: if no row matches,
		// a concurrent writer already advanced the roadmap.
		n, err := tx.Roadmap.Update().
			Where(roadmap.ID(roadmapID), roadmap.Version(version)).
			AddVersion(1).
			SetUpdatedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("bump roadmap version: %w", err)
		}
		if n == 0 {
			return ErrVersionConflict
		}

		n, err = tx.Step.Update().
			Where(
				step.HasRoadmapWith(roadmap.ID(roadmapID)),
				step.StageIndex(target.Stage),
				step.StepIndex(target.Step),
			).
			SetIsCompleted(true).
			SetTestScore(score).
			SetCompletedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("complete step: %w", err)
		}
		if n != 1 {
			return fmt.Errorf("complete step: %d rows updated, want 1", n)
		}

		if next != nil {
			n, err = tx.Step.Update().
				Where(
					step.HasRoadmapWith(roadmap.ID(roadmapID)),
					step.StageIndex(next.Stage),
					step.StepIndex(next.Step),
				).
				SetIsUnlocked(true).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("unlock next step: %w", err)
			}
			if n != 1 {
				return fmt.Errorf("unlock next step: %d rows updated, want 1", n)
			}
		}
		return nil
	})
}

// load fetches a roadmap's steps and assembles the domain representation.
func (r *roadmapRepo) load(ctx context.Context, rm *ent.Roadmap) (*Roadmap, error) {
	steps, err := r.client.Step.Query().
		Where(step.HasRoadmapWith(roadmap.ID(rm.ID))).
		Order(ent.Asc(step.FieldStageIndex), ent.Asc(step.FieldStepIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}

	out := &Roadmap{
		ID:        rm.ID,
		UserID:    rm.UserID,
		Domain:    rm.Domain,
		Version:   rm.Version,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}

	for _, s := range steps {
		for s.StageIndex >= len(out.Stages) {
			out.Stages = append(out.Stages, Stage{})
		}
		stage := &out.Stages[s.StageIndex]
		if stage.Title == "" {
			stage.Title = s.StageTitle
		}
		stage.Steps = append(stage.Steps, Step{
			Title:        s.Title,
			Description:  s.Description,
			ResourceType: s.ResourceType,
			StudyLink:    s.StudyLink,
			Unlocked:     s.IsUnlocked,
			Completed:    s.IsCompleted,
			TestScore:    s.TestScore,
			CompletedAt:  s.CompletedAt,
		})
	}
	return out, nil
}
