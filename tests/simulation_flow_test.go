// Package tests contains integration tests for the lead intake flow
package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/app/services"
	businessflow "github.com/verdelease/leasing-api/business_flow"
	"github.com/verdelease/leasing-api/finance"
	"github.com/verdelease/leasing-api/models"
	"github.com/verdelease/leasing-api/repository"
	"github.com/verdelease/leasing-api/utils"
)

var testRates = businessflow.FinanceRates{Standard: 0.0699, Promo: 0.0499}

func newSimulationRequest() *dto.SimulationRequest {
	return &dto.SimulationRequest{
		Amount:            12000,
		FinancePercentage: 80,
		Term:              48,
		Income:            2500,
		Employment:        models.EmploymentEmployed,
		Name:              "Laura Martínez",
		Email:             "laura@example.com",
		Phone:             "+34 612 345 678",
		VehicleID:         "dacia-sandero",
		AcceptTerms:       true,
	}
}

func TestSimulationFlow(t *testing.T) {
	catalog := services.NewStaticVehicleCatalog(nil)
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("SuccessfulSubmit", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		flow := businessflow.NewSimulationFlow(leadRepo, catalog, testRates, nil)

		req := newSimulationRequest()
		result, err := flow.Submit(context.Background(), req, metadata)
		require.NoError(t, err)
		require.NotNil(t, result)

		sim := result.Simulation
		assert.NotZero(t, sim.ID)
		assert.NotEmpty(t, sim.UUID)
		assert.Equal(t, req.VehicleID, sim.VehicleID)
		assert.Equal(t, req.Term, sim.Term)
		assert.Equal(t, 0.0699, sim.AnnualRate)

		// Amount and payment are derived server-side from the catalog price,
		// not taken from the request.
		vehicle, ok := catalog.ByID(req.VehicleID)
		require.True(t, ok)
		principal := vehicle.Price * float64(req.FinancePercentage) / 100
		expected, err := finance.MonthlyPayment(principal, req.Term, 0.0699)
		require.NoError(t, err)
		assert.Equal(t, finance.RoundCurrency(principal), sim.Amount)
		assert.True(t, finance.PaymentMatches(sim.MonthlyPayment, finance.RoundCurrency(expected), utils.PaymentTolerance))

		// The lead is persisted at full precision; the DTO carries the
		// rounded figure.
		stored, err := leadRepo.ByUUID(context.Background(), sim.UUID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, finance.PaymentMatches(stored.MonthlyPayment, expected, utils.PaymentTolerance))
		assert.Equal(t, finance.RoundCurrency(stored.MonthlyPayment), sim.MonthlyPayment)
	})

	t.Run("StoredPaymentRecomputesFromStoredRecord", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		flow := businessflow.NewSimulationFlow(leadRepo, catalog, testRates, nil)

		// Client claims a principal twice the real one; the stored record
		// must still be internally consistent.
		req := newSimulationRequest()
		req.Amount = 24000

		result, err := flow.Submit(context.Background(), req, metadata)
		require.NoError(t, err)

		stored, err := leadRepo.ByUUID(context.Background(), result.Simulation.UUID)
		require.NoError(t, err)
		require.NotNil(t, stored)

		// dacia-sandero: 15000 * 80% = 12000
		assert.InDelta(t, 12000, stored.Amount, utils.PaymentTolerance)

		recomputed, err := finance.MonthlyPayment(stored.Amount, stored.Term, stored.AnnualRate)
		require.NoError(t, err)
		assert.True(t, finance.PaymentMatches(stored.MonthlyPayment, recomputed, utils.PaymentTolerance),
			"stored payment %v must match recomputation %v from the stored record", stored.MonthlyPayment, recomputed)
	})

	t.Run("ClientPaymentIsAdvisory", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		flow := businessflow.NewSimulationFlow(leadRepo, catalog, testRates, nil)

		req := newSimulationRequest()
		req.MonthlyPayment = 99999 // wildly wrong client figure

		result, err := flow.Submit(context.Background(), req, metadata)
		require.NoError(t, err)
		assert.NotEqual(t, req.MonthlyPayment, result.Simulation.MonthlyPayment)
	})

	t.Run("PromoTierVehicleUsesPromoRate", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		flow := businessflow.NewSimulationFlow(leadRepo, catalog, testRates, nil)

		req := newSimulationRequest()
		req.VehicleID = "audi-q6-e-tron"

		result, err := flow.Submit(context.Background(), req, metadata)
		require.NoError(t, err)
		assert.Equal(t, 0.0499, result.Simulation.AnnualRate)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		flow := businessflow.NewSimulationFlow(leadRepo, catalog, testRates, nil)

		req := newSimulationRequest()
		req.VehicleID = "no-such-vehicle"

		result, err := flow.Submit(context.Background(), req, metadata)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, businessflow.IsVehicleNotFound(err))

		// Nothing is stored on rejection
		count, err := leadRepo.Count(context.Background(), models.LeadFilter{})
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("PersistenceFailure", func(t *testing.T) {
		flow := businessflow.NewSimulationFlow(failingLeadRepo{}, catalog, testRates, nil)

		result, err := flow.Submit(context.Background(), newSimulationRequest(), metadata)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, businessflow.IsLeadPersistence(err))
	})
}

// failingLeadRepo simulates a storage outage
type failingLeadRepo struct{}

var errStorageDown = errors.New("storage down")

func (failingLeadRepo) ByID(context.Context, uint) (*models.Lead, error) {
	return nil, errStorageDown
}

func (failingLeadRepo) ByFilter(context.Context, models.LeadFilter, string, int, int) ([]*models.Lead, error) {
	return nil, errStorageDown
}

func (failingLeadRepo) Save(context.Context, *models.Lead) error {
	return errStorageDown
}

func (failingLeadRepo) Count(context.Context, models.LeadFilter) (int64, error) {
	return 0, errStorageDown
}

func (failingLeadRepo) Exists(context.Context, models.LeadFilter) (bool, error) {
	return false, errStorageDown
}

func (failingLeadRepo) ByUUID(context.Context, string) (*models.Lead, error) {
	return nil, errStorageDown
}

func (failingLeadRepo) ListNewestFirst(context.Context, int, int) ([]*models.Lead, error) {
	return nil, errStorageDown
}
