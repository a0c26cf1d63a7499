package domain

import (
	"testing"

	sessiondomain "cargo-portal/internal/features/session/domain"
	statusdomain "cargo-portal/internal/features/status/domain"

	"github.com/stretchr/testify/assert"
)

func TestNewAnnouncement(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		level       Level
		duration    int
		color       statusdomain.Color
		expectedErr error
	}{
		{
			name:     "Valid INFO",
			title:    "Tsagaan Sar schedule",
			level:    LevelInfo,
			duration: 3600,
			color:    statusdomain.ColorInfo,
		},
		{
			name:  "Valid WARNING",
			title: "Ereen border delays",
			level: LevelWarning,
			color: statusdomain.ColorWarning,
		},
		{
			name:  "Valid DANGER",
			title: "Warehouse closed",
			level: LevelDanger,
			color: statusdomain.ColorDanger,
		},
		{
			name:        "Invalid level",
			title:       "Invalid",
			level:       "LOUD",
			expectedErr: ErrInvalidLevel,
		},
		{
			name:        "Missing title",
			level:       LevelInfo,
			expectedErr: ErrEmptyTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAnnouncement(tt.title, "", tt.level, nil, tt.duration)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, a)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.title, a.Title)
			assert.Equal(t, tt.color, a.Color)
			assert.Equal(t, tt.duration, a.Duration)
			assert.False(t, a.CreatedAt.IsZero())
		})
	}
}

func TestAnnouncement_For(t *testing.T) {
	everyone := &Announcement{}
	assert.True(t, everyone.For(sessiondomain.RoleDriver))

	staff := &Announcement{Audience: []sessiondomain.Role{sessiondomain.RoleStaffChina, sessiondomain.RoleStaffMongolia}}
	assert.True(t, staff.For(sessiondomain.RoleStaffChina))
	assert.False(t, staff.For(sessiondomain.RoleCustomer))
}
