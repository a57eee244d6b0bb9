package usecase

import (
	"context"

	"skillhub/internal/repository"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]UserSummary, error)
}

type User struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *User {
	return &User{repo: repo}
}

func (u *User) ListUsers(ctx context.Context) ([]UserSummary, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]UserSummary, 0, len(items))
	for _, it := range items {
		out = append(out, UserSummary{ID: it.ID, Username: it.Username})
	}
	return out, nil
}
