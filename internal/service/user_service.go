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

const userCacheTTL = 5 * time.Minute

// UpdateUserInput carries the profile fields a user (or an admin) may
// change. Email, password hash, and creation time are not mutable through
// this path; Role only takes effect for admin callers.
type UpdateUserInput struct {
	FullName    *string
	PhoneNumber *string
	School      *string
	Grade       *string
	Role        *string
}

// UserService exposes user profile operations.
type UserService interface {
	Get(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, input UpdateUserInput, asAdmin bool) (*model.User, error)
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, input UpdateUserInput, asAdmin bool) (*model.User, error) {
	columns := map[string]interface{}{}
	if input.FullName != nil {
		columns["full_name"] = *input.FullName
	}
	if input.PhoneNumber != nil {
		columns["phone_number"] = *input.PhoneNumber
	}
	if input.School != nil {
		columns["school"] = *input.School
	}
	if input.Grade != nil {
		columns["grade"] = *input.Grade
	}
	if input.Role != nil {
		if !asAdmin {
			return nil, errors.ErrForbidden
		}
		columns["role"] = *input.Role
	}

	user, err := s.repo.Update(ctx, id, columns)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, userCacheKey(id))
	return user, nil
}
