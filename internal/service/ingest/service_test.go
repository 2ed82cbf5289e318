package ingest_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"esg-platform/internal/domain"
	"esg-platform/internal/service/ingest"
	"esg-platform/tests/mocks"
)

func importSubmitter(companyID uuid.UUID) *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Name:      "Rani",
		Role:      domain.RoleRepresentative,
		CompanyID: &companyID,
	}
}

func TestImportCSV(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		emissionRepo := new(mocks.EmissionRepository)
		notifSvc := new(mocks.NotificationService)
		service := ingest.NewService(emissionRepo, notifSvc, nil, "")

		submitter := importSubmitter(companyID)
		data := []byte("Start Date,End Date,Category,Quantity,Unit,Source\n" +
			"2024-01-01,2024-01-31,stationary combustion,120.5,tCO2e,boiler room\n" +
			"2024-02-01,2024-02-29,mobile combustion,\"1,234.5 kg\",kgCO2e,fleet\n")

		var inserted []domain.GHGEmission
		emissionRepo.On("BulkInsert", ctx, mock.MatchedBy(func(emissions []domain.GHGEmission) bool {
			inserted = emissions
			return len(emissions) == 2
		})).Return(nil).Once()
		notifSvc.On("NotifyImportCompleted", mock.Anything, submitter, 2).Return(nil).Maybe()

		count, err := service.ImportCSV(ctx, submitter, domain.ScopeOne, "january.csv", data)

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		emissionRepo.AssertExpectations(t)

		assert.Equal(t, domain.CategoryStationaryCombustion, inserted[0].Category)
		assert.Equal(t, domain.CategoryMobileCombustion, inserted[1].Category)
		assert.Equal(t, 1234.5, inserted[1].Quantity)
		assert.Equal(t, domain.StatusPending, inserted[0].Status)
		assert.Equal(t, companyID, inserted[0].CompanyID)
		assert.NotNil(t, inserted[0].Source)
		assert.Equal(t, "boiler room", *inserted[0].Source)
	})

	t.Run("Bad Rows Are Skipped", func(t *testing.T) {
		emissionRepo := new(mocks.EmissionRepository)
		service := ingest.NewService(emissionRepo, nil, nil, "")

		submitter := importSubmitter(companyID)
		data := []byte("start date,end date,category,quantity,unit\n" +
			"2024-01-01,2024-01-31,electricity,100,kWh\n" +
			"not-a-date,2024-02-29,electricity,200,kWh\n" +
			"2024-03-01,2024-02-01,electricity,300,kWh\n" +
			"2024-04-01,2024-04-30,electricity,400,kWh\n")

		emissionRepo.On("BulkInsert", ctx, mock.MatchedBy(func(emissions []domain.GHGEmission) bool {
			return len(emissions) == 2
		})).Return(nil).Once()

		count, err := service.ImportCSV(ctx, submitter, domain.ScopeTwo, "data.csv", data)

		assert.NoError(t, err)
		assert.Equal(t, 2, count)
		emissionRepo.AssertExpectations(t)
	})

	t.Run("Ragged Row Does Not Abort The Batch", func(t *testing.T) {
		emissionRepo := new(mocks.EmissionRepository)
		service := ingest.NewService(emissionRepo, nil, nil, "")

		submitter := importSubmitter(companyID)
		data := []byte("start date,end date,category,quantity,unit\n" +
			"2024-01-01,2024-01-31,electricity,100,kWh\n" +
			"2024-02-01,2024-02-29,electricity,200,kWh,extra,fields\n" +
			"2024-03-01,2024-03-31,electricity,300,kWh\n")

		var inserted []domain.GHGEmission
		emissionRepo.On("BulkInsert", ctx, mock.MatchedBy(func(emissions []domain.GHGEmission) bool {
			inserted = emissions
			return len(emissions) == 3
		})).Return(nil).Once()

		count, err := service.ImportCSV(ctx, submitter, domain.ScopeTwo, "ragged.csv", data)

		assert.NoError(t, err)
		assert.Equal(t, 3, count)
		assert.Equal(t, 300.0, inserted[2].Quantity)
		emissionRepo.AssertExpectations(t)
	})

	t.Run("Unparsable Quantity Defaults To Zero", func(t *testing.T) {
		emissionRepo := new(mocks.EmissionRepository)
		service := ingest.NewService(emissionRepo, nil, nil, "")

		submitter := importSubmitter(companyID)
		data := []byte("start date,end date,category,quantity,unit\n" +
			"2024-01-01,2024-01-31,electricity,1.2.3,kWh\n")

		var inserted []domain.GHGEmission
		emissionRepo.On("BulkInsert", ctx, mock.MatchedBy(func(emissions []domain.GHGEmission) bool {
			inserted = emissions
			return len(emissions) == 1
		})).Return(nil).Once()

		count, err := service.ImportCSV(ctx, submitter, domain.ScopeTwo, "odd.csv", data)

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, 0.0, inserted[0].Quantity)
	})

	t.Run("Emission Factor Defaults", func(t *testing.T) {
		emissionRepo := new(mocks.EmissionRepository)
		service := ingest.NewService(emissionRepo, nil, nil, "")

		submitter := importSubmitter(companyID)
		data := []byte("start date,end date,category,quantity,unit,emission factor\n" +
			"2024-01-01,2024-01-31,stationary combustion,100,tCO2e,\n")

		var inserted []domain.GHGEmission
		emissionRepo.On("BulkInsert", ctx, mock.MatchedBy(func(emissions []domain.GHGEmission) bool {
			inserted = emissions
			return len(emissions) == 1
		})).Return(nil).Once()

		count, err := service.ImportCSV(ctx, submitter, domain.ScopeOne, "factors.csv", data)

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NotNil(t, inserted[0].EmissionFactor)
		assert.Equal(t, 0.0, *inserted[0].EmissionFactor)
		assert.NotNil(t, inserted[0].EmissionFactorUnit)
		assert.Equal(t, "kg CO2e", *inserted[0].EmissionFactorUnit)
	})

	t.Run("Defaults - Empty Quantity And Unit", func(t *testing.T) {
		emissionRepo := new(mocks.EmissionRepository)
		service := ingest.NewService(emissionRepo, nil, nil, "")

		submitter := importSubmitter(companyID)
		data := []byte("start date,end date,category,quantity,unit\n" +
			"2024-01-01,2024-01-31,reforestation,,\n")

		var inserted []domain.GHGEmission
		emissionRepo.On("BulkInsert", ctx, mock.MatchedBy(func(emissions []domain.GHGEmission) bool {
			inserted = emissions
			return len(emissions) == 1
		})).Return(nil).Once()

		count, err := service.ImportCSV(ctx, submitter, domain.ScopeSink, "sink.csv", data)

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, 0.0, inserted[0].Quantity)
		assert.Equal(t, "unknown", inserted[0].Unit)
	})

	t.Run("Validation Error - Missing Required Column", func(t *testing.T) {
		emissionRepo := new(mocks.EmissionRepository)
		service := ingest.NewService(emissionRepo, nil, nil, "")

		data := []byte("start date,end date,quantity,unit\n2024-01-01,2024-01-31,100,kWh\n")

		_, err := service.ImportCSV(ctx, importSubmitter(companyID), domain.ScopeOne, "bad.csv", data)

		assert.ErrorIs(t, err, domain.ErrValidation)
		emissionRepo.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything)
	})

	t.Run("Validation Error - Empty File", func(t *testing.T) {
		service := ingest.NewService(new(mocks.EmissionRepository), nil, nil, "")

		_, err := service.ImportCSV(ctx, importSubmitter(companyID), domain.ScopeOne, "empty.csv", nil)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Validation Error - Unknown Scope", func(t *testing.T) {
		service := ingest.NewService(new(mocks.EmissionRepository), nil, nil, "")

		_, err := service.ImportCSV(ctx, importSubmitter(companyID), domain.EmissionScope("SCOPE_9"), "x.csv", []byte("a"))

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Validation Error - Submitter Without Company", func(t *testing.T) {
		service := ingest.NewService(new(mocks.EmissionRepository), nil, nil, "")

		submitter := &domain.User{ID: uuid.New(), Role: domain.RoleRepresentative}

		_, err := service.ImportCSV(ctx, submitter, domain.ScopeOne, "x.csv", []byte("a"))

		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("No Parseable Rows", func(t *testing.T) {
		emissionRepo := new(mocks.EmissionRepository)
		service := ingest.NewService(emissionRepo, nil, nil, "")

		data := []byte("start date,end date,category,quantity,unit\n" +
			"garbage,garbage,electricity,100,kWh\n")

		count, err := service.ImportCSV(ctx, importSubmitter(companyID), domain.ScopeTwo, "x.csv", data)

		assert.NoError(t, err)
		assert.Equal(t, 0, count)
		emissionRepo.AssertNotCalled(t, "BulkInsert", mock.Anything, mock.Anything)
	})
}
