// Package handlers contains HTTP request handlers and presentation layer logic for the API endpoints
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/verdelease/leasing-api/app/dto"
	businessflow "github.com/verdelease/leasing-api/business_flow"
)

// AdminLeadHandlerInterface defines the contract for the admin lead listing handlers
type AdminLeadHandlerInterface interface {
	List(c fiber.Ctx) error
	Export(c fiber.Ctx) error
}

// AdminLeadHandler serves stored simulations to authenticated admins
type AdminLeadHandler struct {
	queryFlow businessflow.LeadQueryFlow
	validator *validator.Validate
}

// NewAdminLeadHandler creates a new admin lead handler
func NewAdminLeadHandler(queryFlow businessflow.LeadQueryFlow) *AdminLeadHandler {
	return &AdminLeadHandler{
		queryFlow: queryFlow,
		validator: validator.New(),
	}
}

func (h *AdminLeadHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AdminLeadHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List returns stored simulations, newest first
func (h *AdminLeadHandler) List(c fiber.Ctx) error {
	var req dto.SimulationListRequest
	if err := c.Bind().Query(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Invalid query parameters", "INVALID_REQUEST", err.Error())
	}

	if err := h.validator.Struct(&req); err != nil {
		return h.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", "VALIDATION_ERROR", collectFieldErrors(err))
	}

	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get(businessflow.RequestIDKey))

	result, err := h.queryFlow.List(h.createRequestContext(c, "/api/v1/admin/simulations"), &req, metadata)
	if err != nil {
		log.Println("Simulation listing failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list simulations", "LEAD_LIST_FAILED", nil)
	}

	return h.SuccessResponse(c, fiber.StatusOK, "Simulations retrieved", result)
}

// Export streams all stored simulations as an Excel workbook
func (h *AdminLeadHandler) Export(c fiber.Ctx) error {
	metadata := businessflow.NewClientMetadata(c.IP(), c.Get("User-Agent"))
	metadata.SetRequestID(c.Get(businessflow.RequestIDKey))

	filename, data, err := h.queryFlow.ExportXLSX(h.createRequestContext(c, "/api/v1/admin/simulations/export"), metadata)
	if err != nil {
		log.Println("Simulation export failed", err)
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to export simulations", "LEAD_EXPORT_FAILED", nil)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// createRequestContext creates a context with timeout and request-scoped values for business flows
func (h *AdminLeadHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, "request_id", c.Get(businessflow.RequestIDKey))
	ctx = context.WithValue(ctx, "user_agent", c.Get("User-Agent"))
	ctx = context.WithValue(ctx, "ip_address", c.IP())
	ctx = context.WithValue(ctx, "endpoint", endpoint)
	ctx = context.WithValue(ctx, "cancel_func", cancel)

	return ctx
}
