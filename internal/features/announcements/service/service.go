package service

import (
	"context"
	"fmt"

	"cargo-portal/internal/features/announcements/domain"
	"cargo-portal/internal/features/announcements/ports"
	sessiondomain "cargo-portal/internal/features/session/domain"
)

// AnnouncementServiceImpl implements ports.AnnouncementService.
type AnnouncementServiceImpl struct {
	repo ports.AnnouncementRepository
}

// NewAnnouncementService creates a new AnnouncementServiceImpl.
func NewAnnouncementService(repo ports.AnnouncementRepository) *AnnouncementServiceImpl {
	return &AnnouncementServiceImpl{repo: repo}
}

// Publish creates and stores a new announcement, replacing the current one.
func (s *AnnouncementServiceImpl) Publish(ctx context.Context, title, body string, level domain.Level, audience []sessiondomain.Role, duration int) error {
	a, err := domain.NewAnnouncement(title, body, level, audience, duration)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, a); err != nil {
		return fmt.Errorf("service: failed to save announcement: %w", err)
	}
	return nil
}

// Current returns the announcement meant for role, or nil.
func (s *AnnouncementServiceImpl) Current(ctx context.Context, role sessiondomain.Role) (*domain.Announcement, error) {
	a, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get announcement: %w", err)
	}
	if a == nil || !a.For(role) {
		return nil, nil
	}
	return a, nil
}

// Remove deletes the current announcement.
func (s *AnnouncementServiceImpl) Remove(ctx context.Context) error {
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("service: failed to remove announcement: %w", err)
	}
	return nil
}
