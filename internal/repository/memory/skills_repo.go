package memory

import (
	"context"
	"time"

	"talent-sift/internal/domain"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultCapacity bounds the number of sessions kept when no size is given
const DefaultCapacity = 10000

type skillsRepository struct {
	cache *expirable.LRU[string, []string]
}

// NewSkillsRepository is the in-process SkillsStore used when Redis is not configured
func NewSkillsRepository(capacity int, ttl time.Duration) domain.SkillsStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &skillsRepository{
		cache: expirable.NewLRU[string, []string](capacity, nil, ttl),
	}
}

func (r *skillsRepository) Save(_ context.Context, sessionID string, skills []string) error {
	stored := make([]string, len(skills))
	copy(stored, skills)
	r.cache.Add(domain.SkillsKey+":"+sessionID, stored)
	return nil
}

func (r *skillsRepository) Get(_ context.Context, sessionID string) ([]string, error) {
	skills, ok := r.cache.Get(domain.SkillsKey + ":" + sessionID)
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out, nil
}
