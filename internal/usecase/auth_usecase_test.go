package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"skillhub/internal/pkg/jwt"
	"skillhub/internal/repository"
)

type mockUserRepo struct {
	byUsername map[string]repository.User
	byID       map[uuid.UUID]repository.User
	err        error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byUsername: map[string]repository.User{},
		byID:       map[uuid.UUID]repository.User{},
	}
}

func (m *mockUserRepo) Create(_ context.Context, u repository.User) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	if _, ok := m.byUsername[u.Username]; ok {
		return repository.User{}, repository.ErrUsernameTaken
	}
	m.byUsername[u.Username] = u
	m.byID[u.ID] = u
	return repository.User{ID: u.ID, Username: u.Username}, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return repository.User{ID: u.ID, Username: u.Username}, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (repository.User, error) {
	if m.err != nil {
		return repository.User{}, m.err
	}
	u, ok := m.byUsername[username]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) List(_ context.Context) ([]repository.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, repository.User{ID: u.ID, Username: u.Username})
	}
	return out, nil
}

func newAuthUnderTest() (*Auth, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewAuthUsecase(repo, jwt.NewHMACService("test-secret", time.Hour)), repo
}

func TestAuth_Register_DuplicateUsername(t *testing.T) {
	uc, _ := newAuthUnderTest()
	ctx := context.Background()

	if _, err := uc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := uc.Register(ctx, RegisterInput{Username: "alice", Password: "pw2"}); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuth_Register_InvalidInput(t *testing.T) {
	uc, _ := newAuthUnderTest()
	ctx := context.Background()

	if _, err := uc.Register(ctx, RegisterInput{Username: "", Password: "pw"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty username: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Register(ctx, RegisterInput{Username: "name-longer-than-twenty-chars", Password: "pw"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("long username: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Register(ctx, RegisterInput{Username: "alice", Password: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty password: expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Login_TokenResolvesToSameUser(t *testing.T) {
	uc, _ := newAuthUnderTest()
	ctx := context.Background()

	created, err := uc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := uc.Login(ctx, LoginInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("login: empty token")
	}

	resolved, err := uc.ResolveToken(ctx, token)
	if err != nil {
		t.Fatalf("resolve token: %v", err)
	}
	if resolved.ID != created.ID {
		t.Fatalf("expected user id %s, got %s", created.ID, resolved.ID)
	}
	if resolved.Username != "alice" {
		t.Fatalf("expected username alice, got %s", resolved.Username)
	}
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	uc, _ := newAuthUnderTest()
	ctx := context.Background()

	if _, err := uc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := uc.Login(ctx, LoginInput{Username: "alice", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuth_Login_UnknownUsername(t *testing.T) {
	uc, _ := newAuthUnderTest()

	if _, err := uc.Login(context.Background(), LoginInput{Username: "nobody", Password: "pw"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuth_ResolveToken_Invalid(t *testing.T) {
	uc, _ := newAuthUnderTest()

	if _, err := uc.ResolveToken(context.Background(), "garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := uc.ResolveToken(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}

func TestAuth_ResolveToken_UserGone(t *testing.T) {
	uc, repo := newAuthUnderTest()
	ctx := context.Background()

	created, err := uc.Register(ctx, RegisterInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	token, err := uc.Login(ctx, LoginInput{Username: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	delete(repo.byID, created.ID)
	delete(repo.byUsername, "alice")

	if _, err := uc.ResolveToken(ctx, token); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
