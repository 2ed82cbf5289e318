package notification_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
	"esg-platform/internal/service/notification"
	"esg-platform/tests/mocks"
)

func pendingEmission(companyID uuid.UUID, submitterID uuid.UUID) *domain.GHGEmission {
	submitter := submitterID
	return &domain.GHGEmission{
		SubmissionBase: domain.SubmissionBase{
			ID:          uuid.New(),
			CompanyID:   companyID,
			SubmittedBy: &submitter,
			Status:      domain.StatusPending,
		},
		Scope: domain.ScopeOne,
	}
}

func TestNotifySubmissionCreated(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Fans Out To All Managers", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		service := notification.NewService(notifRepo, userRepo, nil)

		submitter := &domain.User{ID: uuid.New(), Name: "Rani", CompanyID: &companyID}
		emission := pendingEmission(companyID, submitter.ID)

		managers := []domain.User{
			{ID: uuid.New(), Name: "Mira", Role: domain.RoleManager},
			{ID: uuid.New(), Name: "Joko", Role: domain.RoleManager},
		}

		userRepo.On("GetByID", ctx, submitter.ID).Return(submitter, nil).Once()
		userRepo.On("ListByCompanyAndRole", ctx, companyID, domain.RoleManager).Return(managers, nil).Once()
		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.Type == domain.NotifGHGSubmission &&
				n.Title == "New Submission" &&
				n.SubmissionID != nil && *n.SubmissionID == emission.ID
		})).Return(nil).Times(2)

		err := service.NotifySubmissionCreated(ctx, emission)

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("Skips The Submitting Manager", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		service := notification.NewService(notifRepo, userRepo, nil)

		submitter := &domain.User{ID: uuid.New(), Name: "Mira", Role: domain.RoleManager, CompanyID: &companyID}
		emission := pendingEmission(companyID, submitter.ID)

		managers := []domain.User{
			*submitter,
			{ID: uuid.New(), Name: "Joko", Role: domain.RoleManager},
		}

		userRepo.On("GetByID", ctx, submitter.ID).Return(submitter, nil).Once()
		userRepo.On("ListByCompanyAndRole", ctx, companyID, domain.RoleManager).Return(managers, nil).Once()
		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == managers[1].ID
		})).Return(nil).Once()

		err := service.NotifySubmissionCreated(ctx, emission)

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})

	t.Run("No Managers Is A No-Op", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		service := notification.NewService(notifRepo, userRepo, nil)

		submitter := &domain.User{ID: uuid.New(), Name: "Rani", CompanyID: &companyID}
		emission := pendingEmission(companyID, submitter.ID)

		userRepo.On("GetByID", ctx, submitter.ID).Return(submitter, nil).Once()
		userRepo.On("ListByCompanyAndRole", ctx, companyID, domain.RoleManager).Return([]domain.User{}, nil).Once()

		err := service.NotifySubmissionCreated(ctx, emission)

		assert.NoError(t, err)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestNotifySubmissionReviewed(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Notifies The Submitter", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		emailSvc := new(mocks.EmailService)
		service := notification.NewService(notifRepo, userRepo, emailSvc)

		emailSvc.On("SendSubmissionReviewedEmail", mock.Anything, "rani@example.com", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		submitter := &domain.User{ID: uuid.New(), Name: "Rani", Email: "rani@example.com"}
		reviewer := &domain.User{ID: uuid.New(), Name: "Mira", Role: domain.RoleManager, CompanyID: &companyID}

		comments := "Numbers check out"
		emission := pendingEmission(companyID, submitter.ID)
		emission.ApplyReview(domain.StatusApproved, reviewer.ID, time.Now(), &comments)

		userRepo.On("GetByID", ctx, submitter.ID).Return(submitter, nil).Once()
		notifRepo.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
			return n.UserID == submitter.ID &&
				n.Type == domain.NotifGHGStatusUpdate &&
				n.Title == "Submission APPROVED" &&
				strings.Contains(n.Message, "Mira approved") &&
				strings.Contains(n.Message, `"Numbers check out"`)
		})).Return(nil).Once()

		err := service.NotifySubmissionReviewed(ctx, emission, reviewer)

		assert.NoError(t, err)
		notifRepo.AssertExpectations(t)
	})

	t.Run("Self Review Is Silent", func(t *testing.T) {
		notifRepo := new(mocks.NotificationRepository)
		userRepo := new(mocks.UserRepository)
		service := notification.NewService(notifRepo, userRepo, nil)

		reviewer := &domain.User{ID: uuid.New(), Name: "Mira", Role: domain.RoleManager, CompanyID: &companyID}
		emission := pendingEmission(companyID, reviewer.ID)
		emission.Status = domain.StatusDenied

		err := service.NotifySubmissionReviewed(ctx, emission, reviewer)

		assert.NoError(t, err)
		notifRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestMarkAllAsRead(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	notifRepo := new(mocks.NotificationRepository)
	service := notification.NewService(notifRepo, new(mocks.UserRepository), nil)

	notifRepo.On("MarkAllAsRead", ctx, userID).Return(int64(3), nil).Once()
	notifRepo.On("MarkAllAsRead", ctx, userID).Return(int64(0), nil).Once()

	count, err := service.MarkAllAsRead(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = service.MarkAllAsRead(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	notifRepo.AssertExpectations(t)
}

func TestNotificationList(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	notifRepo := new(mocks.NotificationRepository)
	service := notification.NewService(notifRepo, new(mocks.UserRepository), nil)

	params := domain.PaginationParams{Page: 1, PageSize: 20}
	notifications := []domain.Notification{
		{ID: uuid.New(), UserID: userID, Title: "New Submission"},
	}
	notifRepo.On("ListByUser", ctx, userID, true, params).Return(notifications, 41, nil).Once()

	result, err := service.List(ctx, userID, true, params)

	assert.NoError(t, err)
	assert.Len(t, result.Data, 1)
	assert.Equal(t, int64(41), result.TotalItems)
	assert.Equal(t, 3, result.TotalPages)
	assert.True(t, result.HasNext)
	notifRepo.AssertExpectations(t)
}
