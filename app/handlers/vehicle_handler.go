// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/app/services"
	businessflow "github.com/verdelease/leasing-api/business_flow"
)

// VehicleHandlerInterface defines the contract for the public catalog handlers
type VehicleHandlerInterface interface {
	List(c fiber.Ctx) error
	Get(c fiber.Ctx) error
}

// VehicleHandler serves the static vehicle catalog
type VehicleHandler struct {
	catalog services.VehicleCatalog
	rates   businessflow.FinanceRates
}

// NewVehicleHandler creates a new vehicle catalog handler
func NewVehicleHandler(catalog services.VehicleCatalog, rates businessflow.FinanceRates) *VehicleHandler {
	return &VehicleHandler{catalog: catalog, rates: rates}
}

func (h *VehicleHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *VehicleHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns the full catalog with each vehicle's resolved annual rate
func (h *VehicleHandler) List(c fiber.Ctx) error {
	vehicles := h.catalog.List()
	out := dto.VehicleListResponse{
		Vehicles: make([]dto.VehicleDTO, 0, len(vehicles)),
		Total:    len(vehicles),
	}
	for _, v := range vehicles {
		out.Vehicles = append(out.Vehicles, businessflow.ToVehicleDTO(v, h.rates.ForTier(v.FinanceTier)))
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Vehicles retrieved", out)
}

// Get returns a single catalog vehicle by ID
func (h *VehicleHandler) Get(c fiber.Ctx) error {
	id := c.Params("id")
	vehicle, ok := h.catalog.ByID(id)
	if !ok {
		return h.ErrorResponse(c, fiber.StatusNotFound, "Vehicle not found", "VEHICLE_NOT_FOUND", nil)
	}
	return h.SuccessResponse(c, fiber.StatusOK, "Vehicle retrieved", businessflow.ToVehicleDTO(*vehicle, h.rates.ForTier(vehicle.FinanceTier)))
}
