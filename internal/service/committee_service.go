package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Kirojava/Arsenic/internal/cache"
	"github.com/Kirojava/Arsenic/internal/errors"
	"github.com/Kirojava/Arsenic/internal/model"
	"github.com/Kirojava/Arsenic/internal/repository"
)

const committeeCacheTTL = 10 * time.Minute

const committeeListCacheKey = "committees:all"

// CommitteeService exposes committee reads for the public site.
type CommitteeService interface {
	List(ctx context.Context) ([]model.Committee, error)
	Get(ctx context.Context, id uint) (*model.Committee, error)
}

type committeeService struct {
	repo  repository.CommitteeRepository
	cache *cache.Client
}

// NewCommitteeService builds a CommitteeService with repository and cache.
func NewCommitteeService(repo repository.CommitteeRepository, cache *cache.Client) CommitteeService {
	return &committeeService{repo: repo, cache: cache}
}

func committeeCacheKey(id uint) string {
	return fmt.Sprintf("committee:%d", id)
}

func (s *committeeService) List(ctx context.Context) ([]model.Committee, error) {
	if data, _ := s.cache.Get(ctx, committeeListCacheKey); data != nil {
		var cached []model.Committee
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	committees, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(committees); err == nil {
		_ = s.cache.Set(ctx, committeeListCacheKey, payload, committeeCacheTTL)
	}
	return committees, nil
}

func (s *committeeService) Get(ctx context.Context, id uint) (*model.Committee, error) {
	if data, _ := s.cache.Get(ctx, committeeCacheKey(id)); data != nil {
		var cached model.Committee
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	committee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCommitteeNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(committee); err == nil {
		_ = s.cache.Set(ctx, committeeCacheKey(id), payload, committeeCacheTTL)
	}
	return committee, nil
}
