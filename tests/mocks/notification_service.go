package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
)

type NotificationService struct {
	mock.Mock
}

func (m *NotificationService) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, params domain.PaginationParams) (domain.PaginatedResponse[domain.Notification], error) {
	args := m.Called(ctx, userID, unreadOnly, params)
	return args.Get(0).(domain.PaginatedResponse[domain.Notification]), args.Error(1)
}

func (m *NotificationService) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *NotificationService) MarkAsRead(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *NotificationService) NotifySubmissionCreated(ctx context.Context, rec domain.Reviewable) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *NotificationService) NotifySubmissionReviewed(ctx context.Context, rec domain.Reviewable, reviewer *domain.User) error {
	args := m.Called(ctx, rec, reviewer)
	return args.Error(0)
}

func (m *NotificationService) NotifyImportCompleted(ctx context.Context, submitter *domain.User, count int) error {
	args := m.Called(ctx, submitter, count)
	return args.Error(0)
}
