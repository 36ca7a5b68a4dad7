package usecase

import (
	"context"

	"talent-sift/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	redisEnabled bool
}

func NewHealthUsecase(redisEnabled bool) HealthUsecase {
	return &healthUsecase{redisEnabled: redisEnabled}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status": "ok",
		"redis":  "disabled",
	}
	if u.redisEnabled {
		if err := redis.HealthCheck(ctx); err != nil {
			status["status"] = "degraded"
			status["redis"] = "unreachable"
		} else {
			status["redis"] = "ok"
		}
	}
	return status
}
