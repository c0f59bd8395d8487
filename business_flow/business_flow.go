// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/finance"
	"github.com/verdelease/leasing-api/models"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds all client-related information for audit logging
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// ToSimulationDTO converts a lead model to SimulationDTO for API responses.
// Currency amounts are stored at full precision and rounded here, at the
// presentation boundary.
func ToSimulationDTO(lead models.Lead) dto.SimulationDTO {
	return dto.SimulationDTO{
		ID:                lead.ID,
		UUID:              lead.UUID.String(),
		Amount:            finance.RoundCurrency(lead.Amount),
		FinancePercentage: lead.FinancePercentage,
		Term:              lead.Term,
		Income:            lead.Income,
		Employment:        lead.Employment,
		Name:              lead.Name,
		Email:             lead.Email,
		Phone:             lead.Phone,
		MonthlyPayment:    finance.RoundCurrency(lead.MonthlyPayment),
		AnnualRate:        lead.AnnualRate,
		VehicleID:         lead.VehicleID,
		CreatedAt:         lead.CreatedAt.Format(time.RFC3339),
	}
}

// ToAdminDTO converts an admin model to AdminDTO for authentication responses
func ToAdminDTO(admin models.Admin) dto.AdminDTO {
	return dto.AdminDTO{
		ID:        admin.ID,
		UUID:      admin.UUID.String(),
		Username:  admin.Username,
		IsActive:  admin.IsActive,
		CreatedAt: admin.CreatedAt.Format(time.RFC3339),
	}
}

// ToVehicleDTO converts a vehicle model to VehicleDTO; annualRate is the
// resolved rate for the vehicle's finance tier.
func ToVehicleDTO(vehicle models.Vehicle, annualRate float64) dto.VehicleDTO {
	return dto.VehicleDTO{
		ID:          vehicle.ID,
		Brand:       vehicle.Brand,
		Name:        vehicle.Name,
		Price:       vehicle.Price,
		Description: vehicle.Description,
		Category:    vehicle.Category,
		Type:        vehicle.Type,
		AnnualRate:  annualRate,
		Specs: dto.VehicleSpecsDTO{
			Power:         vehicle.Specs.Power,
			Range:         vehicle.Specs.Range,
			Acceleration:  vehicle.Specs.Acceleration,
			Consumption:   vehicle.Specs.Consumption,
			ElectricRange: vehicle.Specs.ElectricRange,
			TopSpeed:      vehicle.Specs.TopSpeed,
		},
		Features:  vehicle.Features,
		Available: vehicle.Available,
	}
}
