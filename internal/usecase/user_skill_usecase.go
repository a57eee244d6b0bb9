package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"skillhub/internal/repository"
	"skillhub/internal/ws"
)

type UserSkillItem struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	SkillID uuid.UUID
}

type UserSkillUsecase interface {
	ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error)
	AddUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (UserSkillItem, error)
	RemoveUserSkill(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type UserSkill struct {
	repo repository.UserSkillRepository
}

func NewUserSkillUsecase(repo repository.UserSkillRepository) *UserSkill {
	return &UserSkill{repo: repo}
}

func (u *UserSkill) ListUserSkills(ctx context.Context, userID uuid.UUID) ([]UserSkillItem, error) {
	items, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]UserSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, UserSkillItem{ID: it.ID, UserID: it.UserID, SkillID: it.SkillID})
	}
	return out, nil
}

func (u *UserSkill) AddUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) (UserSkillItem, error) {
	if skillID == uuid.Nil {
		return UserSkillItem{}, ErrInvalidInput
	}

	created, err := u.repo.Create(ctx, repository.UserSkill{
		ID:      uuid.New(),
		UserID:  userID,
		SkillID: skillID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUserSkill):
			return UserSkillItem{}, ErrSkillAlreadyClaimed
		case errors.Is(err, repository.ErrUnknownReference):
			return UserSkillItem{}, ErrUnknownReference
		default:
			return UserSkillItem{}, ErrInternal
		}
	}

	ws.NotifyUserSkill(ws.EventUserSkillAdded, created.UserID, created.SkillID)
	return UserSkillItem{ID: created.ID, UserID: created.UserID, SkillID: created.SkillID}, nil
}

// RemoveUserSkill deletes the association owned by userID. Removing an
// association that does not exist is treated as success.
func (u *UserSkill) RemoveUserSkill(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}

	if err := u.repo.Delete(ctx, userID, id); err != nil {
		return ErrInternal
	}

	ws.NotifyUserSkill(ws.EventUserSkillRemoved, userID, uuid.Nil)
	return nil
}
