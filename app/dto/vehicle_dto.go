// Package dto
package dto

type VehicleSpecsDTO struct {
	Power         string `json:"power,omitempty"`
	Range         string `json:"range,omitempty"`
	Acceleration  string `json:"acceleration,omitempty"`
	Consumption   string `json:"consumption,omitempty"`
	ElectricRange string `json:"electric_range,omitempty"`
	TopSpeed      string `json:"top_speed,omitempty"`
}

type VehicleDTO struct {
	ID          string          `json:"id" example:"audi-q6-e-tron"`
	Brand       string          `json:"brand" example:"Audi"`
	Name        string          `json:"name" example:"Q6 e-tron"`
	Price       float64         `json:"price" example:"70000"`
	Description string          `json:"description"`
	Category    string          `json:"category" example:"SUV Eléctrico"`
	Type        string          `json:"type" example:"EV"`
	AnnualRate  float64         `json:"annual_rate" example:"0.0499"`
	Specs       VehicleSpecsDTO `json:"specs"`
	Features    []string        `json:"features"`
	Available   bool            `json:"available" example:"true"`
}

type VehicleListResponse struct {
	Vehicles []VehicleDTO `json:"vehicles"`
	Total    int          `json:"total"`
}
