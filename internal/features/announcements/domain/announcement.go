package domain

import (
	"errors"
	"time"

	sessiondomain "cargo-portal/internal/features/session/domain"
	statusdomain "cargo-portal/internal/features/status/domain"
)

// Level is the severity of an announcement.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelDanger  Level = "DANGER"
)

var (
	ErrInvalidLevel = errors.New("invalid announcement level")
	ErrEmptyTitle   = errors.New("announcement title is required")
)

// Color maps the level onto the badge palette.
func (l Level) Color() statusdomain.Color {
	switch l {
	case LevelWarning:
		return statusdomain.ColorWarning
	case LevelDanger:
		return statusdomain.ColorDanger
	}
	return statusdomain.ColorInfo
}

// Announcement is a portal-wide notice, e.g. a border closure or a holiday
// schedule. An empty Audience shows it to every role.
type Announcement struct {
	Title    string               `json:"title"`
	Body     string               `json:"body"`
	Level    Level                `json:"level"`
	Color    statusdomain.Color   `json:"color"`
	Audience []sessiondomain.Role `json:"audience,omitempty"`
	// Duration in seconds. 0 keeps it until removed.
	Duration  int       `json:"duration,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAnnouncement creates and validates an announcement.
func NewAnnouncement(title, body string, level Level, audience []sessiondomain.Role, duration int) (*Announcement, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if level != LevelInfo && level != LevelWarning && level != LevelDanger {
		return nil, ErrInvalidLevel
	}

	return &Announcement{
		Title:     title,
		Body:      body,
		Level:     level,
		Color:     level.Color(),
		Audience:  audience,
		Duration:  duration,
		CreatedAt: time.Now(),
	}, nil
}

// For reports whether role should see the announcement.
func (a *Announcement) For(role sessiondomain.Role) bool {
	if len(a.Audience) == 0 {
		return true
	}
	for _, r := range a.Audience {
		if r == role {
			return true
		}
	}
	return false
}
