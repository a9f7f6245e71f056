package service

import (
	"context"

	"github.com/Kirojava/Arsenic/internal/model"
	"github.com/Kirojava/Arsenic/internal/repository"
)

// ContentService bundles the simple list reads behind the team, events, and
// gallery pages.
type ContentService interface {
	TeamMembers(ctx context.Context) ([]model.TeamMember, error)
	Events(ctx context.Context) ([]model.Event, error)
	GalleryImages(ctx context.Context) ([]model.GalleryImage, error)
}

type contentService struct {
	teamRepo    repository.TeamMemberRepository
	eventRepo   repository.EventRepository
	galleryRepo repository.GalleryRepository
}

// NewContentService builds a ContentService.
func NewContentService(
	teamRepo repository.TeamMemberRepository,
	eventRepo repository.EventRepository,
	galleryRepo repository.GalleryRepository,
) ContentService {
	return &contentService{
		teamRepo:    teamRepo,
		eventRepo:   eventRepo,
		galleryRepo: galleryRepo,
	}
}

func (s *contentService) TeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	return s.teamRepo.List(ctx)
}

func (s *contentService) Events(ctx context.Context) ([]model.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *contentService) GalleryImages(ctx context.Context) ([]model.GalleryImage, error) {
	return s.galleryRepo.List(ctx)
}
