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

// AdminAuthHandlerInterface defines the contract for admin authentication handlers
type AdminAuthHandlerInterface interface {
	Login(c fiber.Ctx) error
}

// AdminAuthHandler handles admin login requests
type AdminAuthHandler struct {
	authFlow  businessflow.AdminAuthFlow
	validator *validator.Validate
}

// NewAdminAuthHandler creates a new admin authentication handler
func NewAdminAuthHandler(authFlow businessflow.AdminAuthFlow) *AdminAuthHandler {
	return &AdminAuthHandler{
		authFlow:  authFlow,
		validator: validator.New(),
	}
}

func (h *AdminAuthHandler) ErrorResponse(c fiber.Ctx, statusCode int, message, errorCode string, details any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: false,
		Message: message,
		Error: dto.ErrorDetail{
			Code:    errorCode,
			Details: details,
		},
	})
}

func (h *AdminAuthHandler) SuccessResponse(c fiber.Ctx, statusCode int, message string, data any) error {
	return c.Status(statusCode).JSON(dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Login verifies admin credentials and issues a session token.
// All credential failures map to the same 401 so the response does not reveal
// whether the username exists.
func (h *AdminAuthHandler) Login(c fiber.Ctx) error {
	var req dto.AdminLoginRequest
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

	result, err := h.authFlow.Login(h.createRequestContext(c, "/api/v1/admin/login"), &req, metadata)
	if err != nil {
		if businessflow.IsInvalidCredentials(err) || businessflow.IsAdminInactive(err) {
			middleware.AdminLogins.WithLabelValues("rejected").Inc()
			return h.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials", "INVALID_CREDENTIALS", nil)
		}

		log.Println("Admin login failed", err)
		middleware.AdminLogins.WithLabelValues("error").Inc()
		return h.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", "LOGIN_FAILED", nil)
	}

	middleware.AdminLogins.WithLabelValues("success").Inc()
	return h.SuccessResponse(c, fiber.StatusOK, "Login successful", result)
}

// createRequestContext creates a context with timeout and request-scoped values for business flows
func (h *AdminAuthHandler) createRequestContext(c fiber.Ctx, endpoint string) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	ctx = context.WithValue(ctx, "request_id", c.Get(businessflow.RequestIDKey))
	ctx = context.WithValue(ctx, "user_agent", c.Get("User-Agent"))
	ctx = context.WithValue(ctx, "ip_address", c.IP())
	ctx = context.WithValue(ctx, "endpoint", endpoint)
	ctx = context.WithValue(ctx, "cancel_func", cancel)

	return ctx
}
