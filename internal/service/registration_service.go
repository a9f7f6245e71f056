package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Kirojava/Arsenic/internal/cache"
	"github.com/Kirojava/Arsenic/internal/errors"
	"github.com/Kirojava/Arsenic/internal/model"
	"github.com/Kirojava/Arsenic/internal/repository"
)

const (
	// codeLength is the exact length of every check-in code; shorter or
	// longer verify inputs are rejected before any store access.
	codeLength = 6
	// maxCodeAttempts bounds the regenerate-on-conflict loop when an
	// insert trips the unique_code index.
	maxCodeAttempts = 5

	verifyCacheTTL = 5 * time.Minute
)

// CreateRegistrationInput carries the delegate-supplied fields of a new
// registration. The owning user comes from the authenticated identity, the
// code and fee are set server-side.
type CreateRegistrationInput struct {
	Preferences         model.Preferences
	DietaryRestrictions string
	EmergencyContact    string
	TshirtSize          string
}

// UpdateRegistrationInput carries the admin-mutable fields. Unique code,
// creation time, owning user, and fee snapshot are deliberately not
// representable here, so an update can never touch them.
type UpdateRegistrationInput struct {
	Status              *model.RegistrationStatus
	PaymentStatus       *model.PaymentStatus
	CommitteeID         *uint
	DietaryRestrictions *string
	EmergencyContact    *string
	TshirtSize          *string
}

// VerificationResult pairs a registration with its owning user for the
// check-in desk.
type VerificationResult struct {
	Registration model.Registration `json:"registration"`
	User         model.User         `json:"user"`
}

// RegistrationService handles the registration and check-in verification
// workflow.
type RegistrationService interface {
	Create(ctx context.Context, userID uint, input CreateRegistrationInput) (*model.Registration, error)
	Get(ctx context.Context, id uint) (*model.Registration, error)
	Verify(ctx context.Context, code string) (*VerificationResult, error)
	Update(ctx context.Context, id uint, input UpdateRegistrationInput) (*model.Registration, error)
	List(ctx context.Context) ([]repository.RegistrationWithUser, error)
}

type registrationService struct {
	repo     repository.RegistrationRepository
	userRepo repository.UserRepository
	codes    *CodeGenerator
	cache    *cache.Client
	fee      decimal.Decimal
}

// NewRegistrationService builds a RegistrationService.
func NewRegistrationService(
	repo repository.RegistrationRepository,
	userRepo repository.UserRepository,
	codes *CodeGenerator,
	cache *cache.Client,
	fee decimal.Decimal,
) RegistrationService {
	return &registrationService{
		repo:     repo,
		userRepo: userRepo,
		codes:    codes,
		cache:    cache,
		fee:      fee,
	}
}

func verifyCacheKey(code string) string {
	return fmt.Sprintf("registration:code:%s", code)
}

// Create validates the preference shape, snapshots the delegate fee, and
// inserts with a freshly minted code. A duplicate-key collision on the code
// index is retried with a new code up to maxCodeAttempts times.
func (s *registrationService) Create(ctx context.Context, userID uint, input CreateRegistrationInput) (*model.Registration, error) {
	if input.Preferences.Committee1 == "" {
		return nil, errors.ErrInvalidPreferences
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user %d: %w", userID, err)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		registration := &model.Registration{
			UserID:              userID,
			Preferences:         input.Preferences,
			Status:              model.RegistrationStatusPending,
			PaymentStatus:       model.PaymentStatusUnpaid,
			UniqueCode:          s.codes.Generate(),
			FeeAmount:           s.fee,
			DietaryRestrictions: input.DietaryRestrictions,
			EmergencyContact:    input.EmergencyContact,
			TshirtSize:          input.TshirtSize,
		}

		err := s.repo.Create(ctx, registration)
		if err == nil {
			return registration, nil
		}
		if err != gorm.ErrDuplicatedKey {
			return nil, fmt.Errorf("create registration: %w", err)
		}
	}
	return nil, errors.ErrCodeSpaceExhausted
}

// Get retrieves a registration by ID.
func (s *registrationService) Get(ctx context.Context, id uint) (*model.Registration, error) {
	registration, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRegistrationNotFound
		}
		return nil, err
	}
	return registration, nil
}

// Verify resolves a check-in code to the registration and its delegate.
// Codes of the wrong length are rejected before the store is touched; both
// that rejection and a genuinely absent code surface as not-found. Verify
// never mutates anything.
func (s *registrationService) Verify(ctx context.Context, code string) (*VerificationResult, error) {
	if len(code) != codeLength {
		return nil, errors.ErrRegistrationNotFound
	}

	if data, _ := s.cache.Get(ctx, verifyCacheKey(code)); data != nil {
		var cached VerificationResult
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	registration, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRegistrationNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, registration.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// registration exists but its owner does not; treat the code
			// as unverifiable rather than leak a dangling row
			return nil, errors.ErrRegistrationNotFound
		}
		return nil, err
	}

	result := &VerificationResult{Registration: *registration, User: *user}
	if payload, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, verifyCacheKey(code), payload, verifyCacheTTL)
	}
	return result, nil
}

// Update applies the supplied fields only. NotFound if the id is absent.
func (s *registrationService) Update(ctx context.Context, id uint, input UpdateRegistrationInput) (*model.Registration, error) {
	columns := map[string]interface{}{}
	if input.Status != nil {
		columns["status"] = *input.Status
	}
	if input.PaymentStatus != nil {
		columns["payment_status"] = *input.PaymentStatus
	}
	if input.CommitteeID != nil {
		columns["committee_id"] = *input.CommitteeID
	}
	if input.DietaryRestrictions != nil {
		columns["dietary_restrictions"] = *input.DietaryRestrictions
	}
	if input.EmergencyContact != nil {
		columns["emergency_contact"] = *input.EmergencyContact
	}
	if input.TshirtSize != nil {
		columns["tshirt_size"] = *input.TshirtSize
	}

	updated, err := s.repo.Update(ctx, id, columns)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrRegistrationNotFound
		}
		return nil, err
	}

	_ = s.cache.Delete(ctx, verifyCacheKey(updated.UniqueCode))
	return updated, nil
}

// List returns all registrations joined with their owners for the admin
// table. Rows whose owner cannot be resolved are excluded by the join.
func (s *registrationService) List(ctx context.Context) ([]repository.RegistrationWithUser, error) {
	return s.repo.ListWithUsers(ctx)
}
