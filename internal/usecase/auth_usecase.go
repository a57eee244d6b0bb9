package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skillhub/internal/pkg/jwt"
	"skillhub/internal/repository"
)

const maxUsernameLen = 20

// UserSummary is the public view of an account: never carries the password
// hash.
type UserSummary struct {
	ID       uuid.UUID
	Username string
}

type RegisterInput struct {
	Username string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (UserSummary, error)
	Login(ctx context.Context, in LoginInput) (string, error)
	ResolveToken(ctx context.Context, token string) (UserSummary, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (UserSummary, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || len(username) > maxUsernameLen {
		return UserSummary{}, ErrInvalidInput
	}
	if in.Password == "" {
		return UserSummary{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserSummary{}, ErrInternal
	}

	created, err := u.users.Create(ctx, repository.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameTaken) {
			return UserSummary{}, ErrUsernameTaken
		}
		return UserSummary{}, ErrInternal
	}

	return UserSummary{ID: created.ID, Username: created.Username}, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (string, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.jwt.Generate(usr.ID)
	if err != nil {
		return "", ErrInternal
	}
	return token, nil
}

// ResolveToken verifies signature and expiration, then looks the embedded id
// back up so a token for a since-removed account never resolves.
func (u *Auth) ResolveToken(ctx context.Context, token string) (UserSummary, error) {
	if strings.TrimSpace(token) == "" {
		return UserSummary{}, ErrInvalidToken
	}

	claims, err := u.jwt.Validate(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return UserSummary{}, ErrTokenExpired
		}
		return UserSummary{}, ErrInvalidToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return UserSummary{}, ErrUserNotFound
		}
		return UserSummary{}, ErrInternal
	}

	return UserSummary{ID: usr.ID, Username: usr.Username}, nil
}
