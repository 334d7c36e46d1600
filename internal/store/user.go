package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/pathwise/ent"
	"github.com/abhisek/pathwise/ent/user"
)

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, nu *User) (*User, error) {
	u, err := r.client.User.Create().
		SetName(nu.Name).
		SetEmail(nu.Email).
		SetPasswordHash(nu.PasswordHash).
		SetSkills(nu.Skills).
		SetDomains(nu.Domains).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return userFromEnt(u), nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return userFromEnt(u), nil
}

func (r *userRepo) ByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return userFromEnt(u), nil
}

func (r *userRepo) UpdateProfile(ctx context.Context, id uuid.UUID, skills, domains []string) error {
	_, err := r.client.User.UpdateOneID(id).
		SetSkills(skills).
		SetDomains(domains).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}

func userFromEnt(u *ent.User) *User {
	return &User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Skills:       u.Skills,
		Domains:      u.Domains,
		CreatedAt:    u.CreatedAt,
	}
}
