package usecase

import (
	"context"

	"github.com/google/uuid"

	"skillhub/internal/infrastructure/cache"
	"skillhub/internal/repository"
)

const skillListCacheKey = "skills:all"

type SkillItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type SkillUsecase interface {
	ListSkills(ctx context.Context) ([]SkillItem, error)
}

type Skill struct {
	repo  repository.SkillRepository
	cache *cache.Redis
}

func NewSkillUsecase(repo repository.SkillRepository, c *cache.Redis) *Skill {
	return &Skill{repo: repo, cache: c}
}

// ListSkills serves the catalog from Redis when possible; the catalog only
// changes through seeding, which invalidates the key.
func (u *Skill) ListSkills(ctx context.Context) ([]SkillItem, error) {
	var cached []SkillItem
	if hit, err := u.cache.GetJSON(ctx, skillListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := u.repo.GetAllSkills(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]SkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, SkillItem{ID: it.ID, Name: it.Name})
	}

	_ = u.cache.SetJSON(ctx, skillListCacheKey, out, 0)
	return out, nil
}

// InvalidateSkillListCache drops the cached catalog; called after seeding.
func InvalidateSkillListCache(ctx context.Context, c *cache.Redis) {
	_ = c.Delete(ctx, skillListCacheKey)
}
