package service

import (
	"context"
	"errors"
	"testing"

	"cargo-portal/internal/core/backend"
	"cargo-portal/internal/core/listview"
	"cargo-portal/internal/core/notice"
	sessiondomain "cargo-portal/internal/features/session/domain"
	statusdomain "cargo-portal/internal/features/status/domain"
	"cargo-portal/internal/features/verifications/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockVerificationRepository is a mock implementation of ports.VerificationRepository.
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) List(ctx context.Context, token string, f listview.Filters) (backend.Page[domain.Verification], error) {
	args := m.Called(ctx, token, f)
	return args.Get(0).(backend.Page[domain.Verification]), args.Error(1)
}

func (m *MockVerificationRepository) Review(ctx context.Context, token, id string, r domain.Review) error {
	args := m.Called(ctx, token, id, r)
	return args.Error(0)
}

var admin = &sessiondomain.Context{ID: "s1", Token: "tok", User: &sessiondomain.User{Role: sessiondomain.RoleSuperAdmin}}

func pending() backend.Page[domain.Verification] {
	return backend.Page[domain.Verification]{
		Items: []domain.Verification{{ID: "v1", Status: statusdomain.VerificationPending}},
		Total: 1,
		Page:  1,
	}
}

func TestVerificationService_Review(t *testing.T) {
	ctx := context.Background()
	f := listview.Filters{Status: "PENDING", Page: 1}

	t.Run("Approve", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		svc := NewVerificationService(repo, listview.NewRegistry())
		r := domain.Review{Status: statusdomain.VerificationApproved}

		repo.On("List", mock.Anything, "tok", f).Return(pending(), nil).Once()
		_, err := svc.List(ctx, admin, f)
		require.NoError(t, err)

		repo.On("Review", mock.Anything, "tok", "v1", r).Return(nil).Once()
		repo.On("List", mock.Anything, "tok", f).Return(backend.Page[domain.Verification]{}, nil).Once()

		state, err := svc.Review(ctx, admin, "v1", r)
		require.NoError(t, err)
		assert.Empty(t, state.Items)
		assert.Equal(t, "Nothing waiting for review", state.Empty.Message)
		assert.Equal(t, "Verification approved", state.Notice.Message)
	})

	t.Run("NetworkFailureKeepsPending", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		svc := NewVerificationService(repo, listview.NewRegistry())
		r := domain.Review{Status: statusdomain.VerificationRejected, RejectionReason: "Expired ID"}

		repo.On("List", mock.Anything, "tok", f).Return(pending(), nil).Once()
		_, err := svc.List(ctx, admin, f)
		require.NoError(t, err)

		repo.On("Review", mock.Anything, "tok", "v1", r).Return(errors.New("connection reset")).Once()

		state, err := svc.Review(ctx, admin, "v1", r)
		require.Error(t, err)
		assert.Equal(t, statusdomain.VerificationPending, state.Items[0].Status)
		assert.Equal(t, notice.KindNetwork, state.Notice.Kind)
	})

	t.Run("RejectWithoutReason", func(t *testing.T) {
		repo := new(MockVerificationRepository)
		svc := NewVerificationService(repo, listview.NewRegistry())

		_, err := svc.Review(ctx, admin, "v1", domain.Review{Status: statusdomain.VerificationRejected})
		var vErr *notice.ValidationError
		require.True(t, errors.As(err, &vErr))
		repo.AssertNotCalled(t, "Review", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
