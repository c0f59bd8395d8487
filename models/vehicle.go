// Package models contains domain entities and business models for the leasing lead-intake system
package models

// Finance tiers determine which published annual rate applies to a vehicle.
const (
	FinanceTierStandard = "standard"
	FinanceTierPromo    = "promo"
)

// VehicleSpecs holds the headline technical figures shown on a catalog card.
type VehicleSpecs struct {
	Power         string `json:"power"`
	Range         string `json:"range,omitempty"`
	Acceleration  string `json:"acceleration,omitempty"`
	Consumption   string `json:"consumption,omitempty"`
	ElectricRange string `json:"electric_range,omitempty"`
	TopSpeed      string `json:"top_speed,omitempty"`
}

// Vehicle is a static catalog entry. The catalog is read-only reference data;
// vehicles are never persisted alongside leads.
type Vehicle struct {
	ID          string       `json:"id"`
	Brand       string       `json:"brand"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Type        string       `json:"type"`
	FinanceTier string       `json:"finance_tier"`
	Specs       VehicleSpecs `json:"specs"`
	Features    []string     `json:"features"`
	Available   bool         `json:"available"`
}
