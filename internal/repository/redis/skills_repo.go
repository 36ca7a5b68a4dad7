package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"talent-sift/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

type skillsRepository struct {
	client *goredis.Client
	ttl    time.Duration
}

// NewSkillsRepository stores each session's skills as a JSON array under keySkills:<session>
func NewSkillsRepository(client *goredis.Client, ttl time.Duration) domain.SkillsStore {
	return &skillsRepository{client: client, ttl: ttl}
}

func skillsKey(sessionID string) string {
	return domain.SkillsKey + ":" + sessionID
}

func (r *skillsRepository) Save(ctx context.Context, sessionID string, skills []string) error {
	encoded, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}
	if err := r.client.Set(ctx, skillsKey(sessionID), encoded, r.ttl).Err(); err != nil {
		return fmt.Errorf("save skills: %w", err)
	}
	return nil
}

func (r *skillsRepository) Get(ctx context.Context, sessionID string) ([]string, error) {
	raw, err := r.client.Get(ctx, skillsKey(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load skills: %w", err)
	}

	var skills []string
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return skills, nil
}
