package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kirojava/Arsenic/internal/model"
)

// CommitteeRepository defines committee persistence operations.
type CommitteeRepository interface {
	Create(ctx context.Context, committee *model.Committee) error
	FindByID(ctx context.Context, id uint) (*model.Committee, error)
	List(ctx context.Context) ([]model.Committee, error)
	Count(ctx context.Context) (int64, error)
}

type committeeRepository struct {
	db *gorm.DB
}

// NewCommitteeRepository builds a GORM-backed repository.
func NewCommitteeRepository(db *gorm.DB) CommitteeRepository {
	return &committeeRepository{db: db}
}

func (r *committeeRepository) Create(ctx context.Context, committee *model.Committee) error {
	return r.db.WithContext(ctx).Create(committee).Error
}

func (r *committeeRepository) FindByID(ctx context.Context, id uint) (*model.Committee, error) {
	var committee model.Committee
	if err := r.db.WithContext(ctx).First(&committee, id).Error; err != nil {
		return nil, err
	}
	return &committee, nil
}

func (r *committeeRepository) List(ctx context.Context) ([]model.Committee, error) {
	var committees []model.Committee
	if err := r.db.WithContext(ctx).Order("abbreviation").Find(&committees).Error; err != nil {
		return nil, err
	}
	return committees, nil
}

func (r *committeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Committee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
