// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/app/middleware"
	businessflow "github.com/verdelease/leasing-api/business_flow"
)

// SimulationHandlerInterface defines the contract for the lead intake handler
type SimulationHandlerInterface interface {
	Submit(c fiber.Ctx) error
}

// SimulationHandler handles financing simulation submissions
type SimulationHandler struct {
	simulationFlow businessflow.SimulationFlow
	validator      *validator.Validate
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(simulationFlow businessflow.SimulationFlow) *SimulationHandler {
	handler := &SimulationHandler{
		simulationFlow: simulationFlow,
		validator:      validator.New(),
	}
	registerPhoneDigits(handler.validator)
	return handler
}

func (h *SimulationHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *SimulationHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Submit stores a financing simulation submitted from the marketing site
func (h *SimulationHandler) Submit(c fiber.Ctx) error {
	var req dto.SimulationRequest
	if err := c.Bind().JSON(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", "INVALID_REQUEST", err.Error())
	}

	// Validate request
	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", collectFieldErrors(err))
	}

	// Get client information
	ipAddress := c.IP()
	userAgent := c.Get("User-Agent")
	metadata := businessflow.NewClientMetadata(ipAddress, userAgent)
	metadata.SetRequestID(c.Get(businessflow.RequestIDKey))

	// Call business logic with proper context
	result, err := h.simulationFlow.Submit(h.createRequestContext(c, "/api/v1/simulations"), &req, metadata)
	if err != nil {
		// Handle specific business errors
		if businessflow.IsVehicleNotFound(err) {
			return h.ErrorResponse(c, fiber.StatusNotFound, "Vehicle not found", "VEHICLE_NOT_FOUND", nil)
		}
		if businessflow.IsVehicleUnavailable(err) {
			return h.ErrorResponse(c, fiber.StatusConflict, "Vehicle is not available", "VEHICLE_UNAVAILABLE", nil)
		}
		if businessflow.IsPaymentMismatch(err) {
			return h.ErrorResponse(c, fiber.StatusBadRequest, "Monthly payment could not be computed", "PAYMENT_COMPUTATION_FAILED", nil)
		}

		log.Println("Simulation submit failed", err)
		// Handle generic business errors
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save simulation", "SIMULATION_SAVE_FAILED", nil)
	}

	middleware.SimulationsSubmitted.WithLabelValues(result.Simulation.VehicleID).Inc()
	return h.SuccessResponse(c, fiber.StatusCreated, "Simulation saved", result)
}

// createRequestContext creates a context with timeout and request-scoped values for business flows
func (h *SimulationHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, "request_id", c.Get(businessflow.RequestIDKey))
	ctx = context.WithValue(ctx, "user_agent", c.Get("User-Agent"))
	ctx = context.WithValue(ctx, "ip_address", c.IP())
	ctx = context.WithValue(ctx, "endpoint", endpoint)
	ctx = context.WithValue(ctx, "cancel_func", cancel)

	return ctx
}
