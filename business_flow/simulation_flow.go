// Package businessflow contains the core business logic and use cases for lead intake and admin workflows
package businessflow

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/app/services"
	"github.com/verdelease/leasing-api/finance"
	"github.com/verdelease/leasing-api/models"
	"github.com/verdelease/leasing-api/repository"
	"github.com/verdelease/leasing-api/utils"
)

// FinanceRates holds the published annual rates per finance tier.
type FinanceRates struct {
	Standard float64
	Promo    float64
}

// ForTier resolves the annual rate for a vehicle's finance tier. Unknown tiers
// fall back to the standard rate.
func (r FinanceRates) ForTier(tier string) float64 {
	if tier == models.FinanceTierPromo {
		return r.Promo
	}
	return r.Standard
}

// SimulationFlow represents the lead intake flow used by handlers
type SimulationFlow interface {
	Submit(ctx context.Context, req *dto.SimulationRequest, metadata *ClientMetadata) (*dto.SimulationResponse, error)
}

// SimulationFlowImpl persists financing simulations submitted from the marketing site
type SimulationFlowImpl struct {
	leadRepo repository.LeadRepository
	catalog  services.VehicleCatalog
	rates    FinanceRates
	rc       *redis.Client
}

func NewSimulationFlow(
	leadRepo repository.LeadRepository,
	catalog services.VehicleCatalog,
	rates FinanceRates,
	rc *redis.Client,
) SimulationFlow {
	return &SimulationFlowImpl{
		leadRepo: leadRepo,
		catalog:  catalog,
		rates:    rates,
		rc:       rc,
	}
}

// Submit recomputes the monthly payment server-side and stores the lead.
// The client-supplied monthly_payment is advisory only; a divergence is
// logged but never rejected.
func (sf *SimulationFlowImpl) Submit(ctx context.Context, req *dto.SimulationRequest, metadata *ClientMetadata) (*dto.SimulationResponse, error) {
	if req == nil {
		return nil, NewBusinessError("SIMULATION_VALIDATION_FAILED", "Simulation validation failed", ErrLeadPersistence)
	}

	vehicle, ok := sf.catalog.ByID(req.VehicleID)
	if !ok {
		return nil, NewBusinessError("VEHICLE_NOT_FOUND", "Vehicle not found", ErrVehicleNotFound)
	}
	if !vehicle.Available {
		return nil, NewBusinessError("VEHICLE_UNAVAILABLE", "Vehicle is not available", ErrVehicleUnavailable)
	}

	annualRate := sf.rates.ForTier(vehicle.FinanceTier)

	// The financed principal is derived from the catalog price; the
	// client-submitted amount and payment are advisory only.
	principal := vehicle.Price * float64(req.FinancePercentage) / 100

	payment, err := finance.MonthlyPayment(principal, req.Term, annualRate)
	if err != nil {
		return nil, NewBusinessError("PAYMENT_COMPUTATION_FAILED", "Failed to compute monthly payment", ErrPaymentMismatch)
	}

	if !finance.PaymentMatches(req.Amount, principal, 0.5) {
		log.Printf("simulation: client amount %.2f diverges from derived principal %.2f (vehicle=%s)",
			req.Amount, principal, vehicle.ID)
	}
	if req.MonthlyPayment > 0 && !finance.PaymentMatches(req.MonthlyPayment, payment, 0.5) {
		log.Printf("simulation: client payment %.2f diverges from server payment %.2f (vehicle=%s term=%d)",
			req.MonthlyPayment, finance.RoundCurrency(payment), vehicle.ID, req.Term)
	}

	// Stored at full precision; rounding happens in the DTO and export only.
	lead := &models.Lead{
		UUID:              uuid.New(),
		Amount:            principal,
		FinancePercentage: req.FinancePercentage,
		Term:              req.Term,
		Income:            req.Income,
		Employment:        req.Employment,
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		MonthlyPayment:    payment,
		AnnualRate:        annualRate,
		VehicleID:         vehicle.ID,
		CreatedAt:         utils.UTCNow(),
	}

	if err := sf.leadRepo.Save(ctx, lead); err != nil {
		return nil, NewBusinessError("LEAD_SAVE_FAILED", "Failed to save simulation", ErrLeadPersistence)
	}

	// Drop the cached admin listing so the new lead appears immediately
	if sf.rc != nil {
		_ = sf.rc.Del(ctx, leadListCacheKey).Err()
	}

	return &dto.SimulationResponse{Simulation: ToSimulationDTO(*lead)}, nil
}
