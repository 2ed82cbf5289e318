package emission_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
	"esg-platform/internal/service/emission"
	"esg-platform/internal/service/workflow"
	"esg-platform/tests/mocks"
)

func newService(repo *mocks.EmissionRepository) emission.Service {
	engine := workflow.NewEngine[*domain.GHGEmission](repo, nil, nil)
	return emission.NewService(repo, engine)
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestEmissionSubmit(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	submitter := &domain.User{
		ID:        uuid.New(),
		Role:      domain.RoleRepresentative,
		CompanyID: &companyID,
	}

	validInput := func() domain.CreateEmissionInput {
		return domain.CreateEmissionInput{
			Scope:     domain.ScopeOne,
			Category:  "stationary combustion",
			StartDate: datePtr(2024, time.January, 1),
			EndDate:   datePtr(2024, time.January, 31),
			Quantity:  120.5,
			Unit:      "tCO2e",
		}
	}

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		repo.On("Create", ctx, mock.Anything).Return(nil).Once()

		result, err := service.Submit(ctx, submitter, validInput())

		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, result.Status)
		assert.Equal(t, domain.CategoryStationaryCombustion, result.Category)
		assert.Equal(t, domain.TimeFrameCustom, result.TimeFrame)
		assert.Equal(t, companyID, result.CompanyID)
		assert.NotNil(t, result.SubmissionDate)
		repo.AssertExpectations(t)
	})

	t.Run("Validation Errors", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*domain.CreateEmissionInput)
		}{
			{"Unknown Scope", func(in *domain.CreateEmissionInput) { in.Scope = "SCOPE_9" }},
			{"Missing Start Date", func(in *domain.CreateEmissionInput) { in.StartDate = nil }},
			{"Missing End Date", func(in *domain.CreateEmissionInput) { in.EndDate = nil }},
			{"End Before Start", func(in *domain.CreateEmissionInput) {
				in.EndDate = datePtr(2023, time.December, 1)
			}},
			{"Negative Quantity", func(in *domain.CreateEmissionInput) { in.Quantity = -1 }},
			{"Missing Unit", func(in *domain.CreateEmissionInput) { in.Unit = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := new(mocks.EmissionRepository)
				service := newService(repo)

				input := validInput()
				tt.mutate(&input)

				_, err := service.Submit(ctx, submitter, input)

				assert.ErrorIs(t, err, domain.ErrValidation)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("Explicit Time Frame Is Kept", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		repo.On("Create", ctx, mock.Anything).Return(nil).Once()

		input := validInput()
		input.TimeFrame = domain.TimeFrameMonthly

		result, err := service.Submit(ctx, submitter, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.TimeFrameMonthly, result.TimeFrame)
	})
}

func TestEmissionListing(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	manager := &domain.User{ID: uuid.New(), Role: domain.RoleManager, CompanyID: &companyID}
	admin := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}

	t.Run("ListPending", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		expected := []domain.GHGEmission{{Scope: domain.ScopeOne}}
		repo.On("ListByCompanyAndStatus", ctx, companyID, domain.StatusPending).Return(expected, nil).Once()

		result, err := service.ListPending(ctx, manager, companyID)

		assert.NoError(t, err)
		assert.Equal(t, expected, result)
		repo.AssertExpectations(t)
	})

	t.Run("ListPending Forbidden - Representative Of Same Company", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		representative := &domain.User{ID: uuid.New(), Role: domain.RoleRepresentative, CompanyID: &companyID}

		_, err := service.ListPending(ctx, representative, companyID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "ListByCompanyAndStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ListPending Forbidden - Admin", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		_, err := service.ListPending(ctx, admin, companyID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "ListByCompanyAndStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ListHistory Queries Both Decided Statuses", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		repo.On("ListByCompanyAndStatus", ctx, companyID, domain.StatusApproved, domain.StatusDenied).
			Return([]domain.GHGEmission{}, nil).Once()

		_, err := service.ListHistory(ctx, manager, companyID)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Admin Can List Any Company", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		repo.On("ListByCompany", ctx, companyID).Return([]domain.GHGEmission{}, nil).Once()

		_, err := service.ListByCompany(ctx, admin, companyID)

		assert.NoError(t, err)
	})

	t.Run("Forbidden - Another Company", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		otherCompany := uuid.New()
		outsider := &domain.User{ID: uuid.New(), Role: domain.RoleRepresentative, CompanyID: &otherCompany}

		_, err := service.ListByCompany(ctx, outsider, companyID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "ListByCompany", mock.Anything, mock.Anything)
	})

	t.Run("ListByScope Rejects Unknown Scope", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		_, err := service.ListByScope(ctx, manager, companyID, "SCOPE_9")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("ListByDateRange Rejects Inverted Range", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		start := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, -1, 0)

		_, err := service.ListByDateRange(ctx, manager, companyID, start, end)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestEmissionGetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Forbidden - Record Of Another Company", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		otherCompany := uuid.New()
		viewer := &domain.User{ID: uuid.New(), Role: domain.RoleRepresentative, CompanyID: &otherCompany}

		rec := &domain.GHGEmission{
			SubmissionBase: domain.SubmissionBase{ID: uuid.New(), CompanyID: companyID},
		}
		repo.On("GetByID", ctx, rec.ID).Return(rec, nil).Once()

		_, err := service.GetByID(ctx, viewer, rec.ID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := new(mocks.EmissionRepository)
		service := newService(repo)

		id := uuid.New()
		repo.On("GetByID", ctx, id).Return(nil, domain.ErrNotFound).Once()

		viewer := &domain.User{ID: uuid.New(), Role: domain.RoleAdmin}
		_, err := service.GetByID(ctx, viewer, id)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
