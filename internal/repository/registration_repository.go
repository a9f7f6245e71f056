package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kirojava/Arsenic/internal/model"
)

// RegistrationWithUser is a list row for the admin table: a registration
// joined with its owning user.
type RegistrationWithUser struct {
	model.Registration
	User model.User `json:"user"`
}

// RegistrationRepository defines registration persistence operations.
type RegistrationRepository interface {
	Create(ctx context.Context, registration *model.Registration) error
	FindByID(ctx context.Context, id uint) (*model.Registration, error)
	FindByCode(ctx context.Context, code string) (*model.Registration, error)
	Update(ctx context.Context, id uint, columns map[string]interface{}) (*model.Registration, error)
	ListWithUsers(ctx context.Context) ([]RegistrationWithUser, error)
}

type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository builds a GORM-backed repository.
func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, registration *model.Registration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) FindByID(ctx context.Context, id uint) (*model.Registration, error) {
	var registration model.Registration
	if err := r.db.WithContext(ctx).First(&registration, id).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

// FindByCode is an exact-match lookup; codes are stored uppercase and the
// column collation is case-sensitive, matching how they were generated.
func (r *registrationRepository) FindByCode(ctx context.Context, code string) (*model.Registration, error) {
	var registration model.Registration
	if err := r.db.WithContext(ctx).Where("unique_code = ?", code).First(&registration).Error; err != nil {
		return nil, err
	}
	return &registration, nil
}

// Update applies the given columns and returns the refreshed record.
// gorm.ErrRecordNotFound if the id does not exist.
func (r *registrationRepository) Update(ctx context.Context, id uint, columns map[string]interface{}) (*model.Registration, error) {
	var registration model.Registration
	if err := r.db.WithContext(ctx).First(&registration, id).Error; err != nil {
		return nil, err
	}
	if len(columns) > 0 {
		if err := r.db.WithContext(ctx).Model(&registration).Updates(columns).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// ListWithUsers returns registrations joined with their owning users, newest
// first. The inner join drops rows whose user reference cannot be resolved.
func (r *registrationRepository) ListWithUsers(ctx context.Context) ([]RegistrationWithUser, error) {
	var registrations []model.Registration
	if err := r.db.WithContext(ctx).
		InnerJoins("User").
		Order("registrations.created_at DESC").
		Find(&registrations).Error; err != nil {
		return nil, err
	}

	rows := make([]RegistrationWithUser, 0, len(registrations))
	for _, reg := range registrations {
		rows = append(rows, RegistrationWithUser{Registration: reg, User: reg.User})
	}
	return rows, nil
}
