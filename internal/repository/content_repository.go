package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Kirojava/Arsenic/internal/model"
)

// TeamMemberRepository defines team member persistence operations.
type TeamMemberRepository interface {
	Create(ctx context.Context, member *model.TeamMember) error
	List(ctx context.Context) ([]model.TeamMember, error)
}

type teamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository builds a GORM-backed repository.
func NewTeamMemberRepository(db *gorm.DB) TeamMemberRepository {
	return &teamMemberRepository{db: db}
}

func (r *teamMemberRepository) Create(ctx context.Context, member *model.TeamMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *teamMemberRepository) List(ctx context.Context) ([]model.TeamMember, error) {
	var members []model.TeamMember
	if err := r.db.WithContext(ctx).Order("display_order").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// EventRepository defines event persistence operations.
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	List(ctx context.Context) ([]model.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository builds a GORM-backed repository.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) List(ctx context.Context) ([]model.Event, error) {
	var events []model.Event
	if err := r.db.WithContext(ctx).Order("date").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GalleryRepository defines gallery image persistence operations.
type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	List(ctx context.Context) ([]model.GalleryImage, error)
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository builds a GORM-backed repository.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

func (r *galleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *galleryRepository) List(ctx context.Context) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
