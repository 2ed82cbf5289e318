package workflow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
	"esg-platform/internal/repository"
	"esg-platform/internal/service/workflow"
	"esg-platform/tests/mocks"
)

// The helper takes the engine's interface types so a nil argument stays a nil
// interface instead of a typed nil mock pointer.
func newEmissionEngine(store workflow.Store[*domain.GHGEmission], notifier workflow.Notifier, auditRepo repository.AuditLogRepository) *workflow.Engine[*domain.GHGEmission] {
	return workflow.NewEngine[*domain.GHGEmission](store, notifier, auditRepo)
}

func pendingEmission(companyID, submitterID uuid.UUID) *domain.GHGEmission {
	submitter := submitterID
	return &domain.GHGEmission{
		SubmissionBase: domain.SubmissionBase{
			ID:          uuid.New(),
			CompanyID:   companyID,
			SubmittedBy: &submitter,
			Status:      domain.StatusPending,
		},
		Scope:    domain.ScopeOne,
		Category: domain.CategoryStationaryCombustion,
		Quantity: 100,
		Unit:     "tCO2e",
	}
}

func TestEngineSubmit(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		notifier := new(mocks.NotificationService)
		auditRepo := new(mocks.AuditLogRepository)
		engine := newEmissionEngine(store, notifier, auditRepo)

		submitter := &domain.User{
			ID:        uuid.New(),
			Role:      domain.RoleRepresentative,
			CompanyID: &companyID,
		}

		emission := &domain.GHGEmission{
			Scope:    domain.ScopeOne,
			Category: domain.CategoryStationaryCombustion,
			Quantity: 42.5,
			Unit:     "tCO2e",
		}

		store.On("Create", ctx, emission).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "SUBMIT_GHG_EMISSION" && log.UserID == submitter.ID
		})).Return(nil).Once()
		notifier.On("NotifySubmissionCreated", mock.Anything, mock.Anything).Return(nil).Maybe()

		err := engine.Submit(ctx, submitter, emission)

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, emission.Status)
		assert.Equal(t, companyID, emission.CompanyID)
		assert.NotNil(t, emission.SubmittedBy)
		assert.Equal(t, submitter.ID, *emission.SubmittedBy)
		assert.NotEqual(t, uuid.Nil, emission.ID)
		store.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
	})

	t.Run("Validation Error - Submitter Without Company", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		submitter := &domain.User{
			ID:   uuid.New(),
			Role: domain.RoleRepresentative,
		}

		err := engine.Submit(ctx, submitter, &domain.GHGEmission{})

		assert.ErrorIs(t, err, domain.ErrValidation)
		store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Store Error Propagates", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		submitter := &domain.User{
			ID:        uuid.New(),
			Role:      domain.RoleRepresentative,
			CompanyID: &companyID,
		}

		storeErr := errors.New("insert failed")
		store.On("Create", ctx, mock.Anything).Return(storeErr).Once()

		err := engine.Submit(ctx, submitter, &domain.GHGEmission{})

		assert.ErrorIs(t, err, storeErr)
		store.AssertExpectations(t)
	})
}

func TestEngineReview(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	submitterID := uuid.New()

	manager := func() *domain.User {
		return &domain.User{
			ID:        uuid.New(),
			Name:      "Mira",
			Role:      domain.RoleManager,
			CompanyID: &companyID,
		}
	}

	t.Run("Success - Approve", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		notifier := new(mocks.NotificationService)
		auditRepo := new(mocks.AuditLogRepository)
		engine := newEmissionEngine(store, notifier, auditRepo)

		reviewer := manager()
		emission := pendingEmission(companyID, submitterID)
		comments := "Looks complete"

		store.On("GetByID", ctx, emission.ID).Return(emission, nil).Once()
		store.On("UpdateReview", ctx, emission).Return(nil).Once()
		auditRepo.On("Create", ctx, mock.MatchedBy(func(log *domain.AuditLog) bool {
			return log.Action == "REVIEW_GHG_EMISSION" && log.EntityID == emission.ID
		})).Return(nil).Once()
		notifier.On("NotifySubmissionReviewed", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

		reviewed, err := engine.Review(ctx, reviewer, emission.ID, domain.ReviewInput{
			Status:   domain.StatusApproved,
			Comments: &comments,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, reviewed.Status)
		assert.NotNil(t, reviewed.ReviewedBy)
		assert.Equal(t, reviewer.ID, *reviewed.ReviewedBy)
		assert.NotNil(t, reviewed.ReviewedAt)
		assert.WithinDuration(t, time.Now(), *reviewed.ReviewedAt, time.Minute)
		assert.Equal(t, &comments, reviewed.ReviewComments)
		store.AssertExpectations(t)
		auditRepo.AssertExpectations(t)
	})

	t.Run("Success - Deny", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		reviewer := manager()
		emission := pendingEmission(companyID, submitterID)

		store.On("GetByID", ctx, emission.ID).Return(emission, nil).Once()
		store.On("UpdateReview", ctx, emission).Return(nil).Once()

		reviewed, err := engine.Review(ctx, reviewer, emission.ID, domain.ReviewInput{
			Status: domain.StatusDenied,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusDenied, reviewed.Status)
		store.AssertExpectations(t)
	})

	t.Run("Invalid Decision", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		_, err := engine.Review(ctx, manager(), uuid.New(), domain.ReviewInput{
			Status: domain.StatusPending,
		})

		assert.ErrorIs(t, err, workflow.ErrInvalidDecision)
		store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Forbidden - Representative", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		reviewer := &domain.User{
			ID:        uuid.New(),
			Role:      domain.RoleRepresentative,
			CompanyID: &companyID,
		}
		emission := pendingEmission(companyID, submitterID)

		store.On("GetByID", ctx, emission.ID).Return(emission, nil).Once()

		_, err := engine.Review(ctx, reviewer, emission.ID, domain.ReviewInput{Status: domain.StatusApproved})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.Equal(t, domain.StatusPending, emission.Status)
		store.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
	})

	t.Run("Forbidden - Admin", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		reviewer := &domain.User{
			ID:   uuid.New(),
			Role: domain.RoleAdmin,
		}
		emission := pendingEmission(companyID, submitterID)

		store.On("GetByID", ctx, emission.ID).Return(emission, nil).Once()

		_, err := engine.Review(ctx, reviewer, emission.ID, domain.ReviewInput{Status: domain.StatusApproved})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Forbidden - Manager Of Another Company", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		otherCompany := uuid.New()
		reviewer := &domain.User{
			ID:        uuid.New(),
			Role:      domain.RoleManager,
			CompanyID: &otherCompany,
		}
		emission := pendingEmission(companyID, submitterID)

		store.On("GetByID", ctx, emission.ID).Return(emission, nil).Once()

		_, err := engine.Review(ctx, reviewer, emission.ID, domain.ReviewInput{Status: domain.StatusDenied})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		store.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
	})

	t.Run("Conflict - Already Reviewed", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		reviewer := manager()
		emission := pendingEmission(companyID, submitterID)
		emission.ApplyReview(domain.StatusApproved, uuid.New(), time.Now(), nil)

		store.On("GetByID", ctx, emission.ID).Return(emission, nil).Once()

		_, err := engine.Review(ctx, reviewer, emission.ID, domain.ReviewInput{Status: domain.StatusDenied})

		assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
		store.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
	})

	t.Run("Conflict - Concurrent Review Loses", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		reviewer := manager()
		emission := pendingEmission(companyID, submitterID)

		store.On("GetByID", ctx, emission.ID).Return(emission, nil).Once()
		store.On("UpdateReview", ctx, emission).Return(domain.ErrAlreadyReviewed).Once()

		_, err := engine.Review(ctx, reviewer, emission.ID, domain.ReviewInput{Status: domain.StatusApproved})

		assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
		store.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		store := new(mocks.EmissionRepository)
		engine := newEmissionEngine(store, nil, nil)

		id := uuid.New()
		store.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound).Once()

		_, err := engine.Review(ctx, manager(), id, domain.ReviewInput{Status: domain.StatusApproved})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
