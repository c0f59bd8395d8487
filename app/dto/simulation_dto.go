// Package dto contains Data Transfer Objects for API request and response structures
package dto

// SimulationRequest represents the payload submitted by the financing simulator form.
// Amount and MonthlyPayment are what the client computed and displayed; the server
// derives the stored principal from the catalog price and recomputes the payment.
type SimulationRequest struct {
	Amount            float64 `json:"amount" validate:"required,gt=0" example:"24000"`
	FinancePercentage int     `json:"finance_percentage" validate:"required,gte=20,lte=100" example:"80"`
	Term              int     `json:"term" validate:"required,oneof=12 24 36 48 60 72 84" example:"48"`
	Income            float64 `json:"income" validate:"required,gte=1000" example:"2500"`
	Employment        string  `json:"employment" validate:"required,oneof=employed self-employed retired other" example:"employed"`
	Name              string  `json:"name" validate:"required,min=3,max=255" example:"Laura Martínez"`
	Email             string  `json:"email" validate:"required,email,max=255" example:"laura@example.com"`
	Phone             string  `json:"phone" validate:"required,phone_digits" example:"+34 612 345 678"`
	MonthlyPayment    float64 `json:"monthly_payment" validate:"omitempty,gte=0" example:"574.60"`
	VehicleID         string  `json:"vehicle_id" validate:"required,min=1,max=100" example:"audi-q6-e-tron"`
	AcceptTerms       bool    `json:"accept_terms" validate:"required,eq=true" example:"true"`
}

// SimulationDTO represents a stored simulation returned to clients
type SimulationDTO struct {
	ID                uint    `json:"id" example:"1"`
	UUID              string  `json:"uuid" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
	Amount            float64 `json:"amount" example:"24000"`
	FinancePercentage int     `json:"finance_percentage" example:"80"`
	Term              int     `json:"term" example:"48"`
	Income            float64 `json:"income" example:"2500"`
	Employment        string  `json:"employment" example:"employed"`
	Name              string  `json:"name" example:"Laura Martínez"`
	Email             string  `json:"email" example:"laura@example.com"`
	Phone             string  `json:"phone" example:"+34 612 345 678"`
	MonthlyPayment    float64 `json:"monthly_payment" example:"574.60"`
	AnnualRate        float64 `json:"annual_rate" example:"0.0699"`
	VehicleID         string  `json:"vehicle_id" example:"audi-q6-e-tron"`
	CreatedAt         string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// SimulationResponse represents the successful intake response
type SimulationResponse struct {
	Simulation SimulationDTO `json:"simulation"`
}

// SimulationListRequest carries pagination for the admin listing
type SimulationListRequest struct {
	Limit  int `json:"limit" query:"limit" validate:"omitempty,gte=1,lte=500" example:"50"`
	Offset int `json:"offset" query:"offset" validate:"omitempty,gte=0" example:"0"`
}

// SimulationListResponse represents the admin listing, newest first
type SimulationListResponse struct {
	Simulations []SimulationDTO `json:"simulations"`
	Total       int64           `json:"total"`
	Limit       int             `json:"limit"`
	Offset      int             `json:"offset"`
}
