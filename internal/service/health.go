package service

import (
	"context"
	"fmt"

	"github.com/Egor213/LogiGraph/internal/repo"
)

type HealthService struct {
	logRepo repo.Log
}

func NewHealthService(lr repo.Log) *HealthService {
	return &HealthService{logRepo: lr}
}

func (s *HealthService) Check(ctx context.Context) error {
	if err := s.logRepo.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}
