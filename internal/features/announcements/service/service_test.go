package service

import (
	"context"
	"errors"
	"testing"

	"cargo-portal/internal/features/announcements/domain"
	sessiondomain "cargo-portal/internal/features/session/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAnnouncementRepository is a mock implementation of ports.AnnouncementRepository.
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) Save(ctx context.Context, a *domain.Announcement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAnnouncementRepository) Get(ctx context.Context) (*domain.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestAnnouncementService_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo)

		repo.On("Save", ctx, mock.MatchedBy(func(a *domain.Announcement) bool {
			return a.Title == "Border closed" && a.Level == domain.LevelDanger && a.Duration == 600
		})).Return(nil).Once()

		err := svc.Publish(ctx, "Border closed", "", domain.LevelDanger, nil, 600)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo)

		err := svc.Publish(ctx, "Border closed", "", "LOUD", nil, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidLevel)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		svc := NewAnnouncementService(repo)

		repo.On("Save", ctx, mock.Anything).Return(errors.New("redis down")).Once()

		err := svc.Publish(ctx, "Border closed", "", domain.LevelInfo, nil, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to save announcement")
	})
}

func TestAnnouncementService_Current(t *testing.T) {
	ctx := context.Background()
	staffOnly := &domain.Announcement{Title: "Inventory day", Audience: []sessiondomain.Role{sessiondomain.RoleStaffChina}}

	t.Run("MatchingRole", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		repo.On("Get", ctx).Return(staffOnly, nil).Once()

		a, err := NewAnnouncementService(repo).Current(ctx, sessiondomain.RoleStaffChina)
		assert.NoError(t, err)
		assert.Equal(t, staffOnly, a)
	})

	t.Run("OtherRole", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		repo.On("Get", ctx).Return(staffOnly, nil).Once()

		a, err := NewAnnouncementService(repo).Current(ctx, sessiondomain.RoleCustomer)
		assert.NoError(t, err)
		assert.Nil(t, a)
	})

	t.Run("NoneStored", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		repo.On("Get", ctx).Return(nil, nil).Once()

		a, err := NewAnnouncementService(repo).Current(ctx, sessiondomain.RoleCustomer)
		assert.NoError(t, err)
		assert.Nil(t, a)
	})

	t.Run("Error", func(t *testing.T) {
		repo := new(MockAnnouncementRepository)
		repo.On("Get", ctx).Return(nil, errors.New("redis down")).Once()

		_, err := NewAnnouncementService(repo).Current(ctx, sessiondomain.RoleCustomer)
		assert.Error(t, err)
	})
}

func TestAnnouncementService_Remove(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAnnouncementRepository)
	repo.On("Delete", ctx).Return(nil).Once()

	assert.NoError(t, NewAnnouncementService(repo).Remove(ctx))
	repo.AssertExpectations(t)
}
