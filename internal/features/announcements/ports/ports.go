package ports

import (
	"context"

	"cargo-portal/internal/features/announcements/domain"
	sessiondomain "cargo-portal/internal/features/session/domain"
)

// AnnouncementService defines the primary port for announcement operations.
type AnnouncementService interface {
	Publish(ctx context.Context, title, body string, level domain.Level, audience []sessiondomain.Role, duration int) error
	Current(ctx context.Context, role sessiondomain.Role) (*domain.Announcement, error)
	Remove(ctx context.Context) error
}

// AnnouncementRepository defines the secondary port for announcement storage.
type AnnouncementRepository interface {
	Save(ctx context.Context, a *domain.Announcement) error
	// Get returns nil, nil when nothing is published.
	Get(ctx context.Context) (*domain.Announcement, error)
	Delete(ctx context.Context) error
}
