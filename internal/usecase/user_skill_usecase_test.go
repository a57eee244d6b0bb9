package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"skillhub/internal/repository"
)

type mockUserSkillRepo struct {
	knownSkills map[uuid.UUID]bool
	assocs      []repository.UserSkill
	err         error
}

func newMockUserSkillRepo(skillIDs ...uuid.UUID) *mockUserSkillRepo {
	known := map[uuid.UUID]bool{}
	for _, id := range skillIDs {
		known[id] = true
	}
	return &mockUserSkillRepo{knownSkills: known}
}

func (m *mockUserSkillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]repository.UserSkill, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]repository.UserSkill, 0)
	for _, a := range m.assocs {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockUserSkillRepo) Create(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	if m.err != nil {
		return repository.UserSkill{}, m.err
	}
	if !m.knownSkills[us.SkillID] {
		return repository.UserSkill{}, repository.ErrUnknownReference
	}
	for _, a := range m.assocs {
		if a.UserID == us.UserID && a.SkillID == us.SkillID {
			return repository.UserSkill{}, repository.ErrDuplicateUserSkill
		}
	}
	m.assocs = append(m.assocs, us)
	return us, nil
}

func (m *mockUserSkillRepo) Delete(_ context.Context, userID uuid.UUID, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i, a := range m.assocs {
		if a.UserID == userID && a.ID == id {
			m.assocs = append(m.assocs[:i], m.assocs[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestUserSkill_Add_DuplicatePair(t *testing.T) {
	skillID := uuid.New()
	userID := uuid.New()
	uc := NewUserSkillUsecase(newMockUserSkillRepo(skillID))
	ctx := context.Background()

	if _, err := uc.AddUserSkill(ctx, userID, skillID); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := uc.AddUserSkill(ctx, userID, skillID); !errors.Is(err, ErrSkillAlreadyClaimed) {
		t.Fatalf("expected ErrSkillAlreadyClaimed, got %v", err)
	}
}

func TestUserSkill_Add_UnknownSkill(t *testing.T) {
	uc := NewUserSkillUsecase(newMockUserSkillRepo())

	if _, err := uc.AddUserSkill(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
}

func TestUserSkill_Add_NilSkillID(t *testing.T) {
	uc := NewUserSkillUsecase(newMockUserSkillRepo())

	if _, err := uc.AddUserSkill(context.Background(), uuid.New(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserSkill_Remove_Nonexistent(t *testing.T) {
	repo := newMockUserSkillRepo()
	uc := NewUserSkillUsecase(repo)

	if err := uc.RemoveUserSkill(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("expected no-op success, got %v", err)
	}
	if len(repo.assocs) != 0 {
		t.Fatalf("expected no state change")
	}
}

func TestUserSkill_ListThenRemove(t *testing.T) {
	skillID := uuid.New()
	userID := uuid.New()
	repo := newMockUserSkillRepo(skillID)
	uc := NewUserSkillUsecase(repo)
	ctx := context.Background()

	created, err := uc.AddUserSkill(ctx, userID, skillID)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	items, err := uc.ListUserSkills(ctx, userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].ID != created.ID || items[0].SkillID != skillID || items[0].UserID != userID {
		t.Fatalf("unexpected item %+v", items[0])
	}

	if err := uc.RemoveUserSkill(ctx, userID, created.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	items, err = uc.ListUserSkills(ctx, userID)
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}
