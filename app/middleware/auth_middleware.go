// Package middleware contains HTTP middleware functions for request processing
package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/app/services"
)

// AuthMiddleware handles JWT token validation for protected admin endpoints
type AuthMiddleware struct {
	tokenService services.TokenService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(tokenService services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// AdminAuthenticate validates admin JWT tokens. The exact failure reason is
// logged server-side; clients get the same 401 whether the token is missing,
// malformed, expired, or forged.
func (m *AuthMiddleware) AdminAuthenticate() fiber.Handler {
	unauthorized := func(c fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.APIResponse{
			Success: false,
			Message: "Unauthorized",
			Error:   dto.ErrorDetail{Code: "UNAUTHORIZED"},
		})
	}

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			log.Printf("admin auth: missing authorization header (ip=%s path=%s)", c.IP(), c.Path())
			return unauthorized(c)
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Printf("admin auth: malformed authorization header (ip=%s path=%s)", c.IP(), c.Path())
			return unauthorized(c)
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			log.Printf("admin auth: empty bearer token (ip=%s path=%s)", c.IP(), c.Path())
			return unauthorized(c)
		}

		claims, err := m.tokenService.ValidateAdminToken(token)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrTokenExpired):
				log.Printf("admin auth: expired token (ip=%s path=%s)", c.IP(), c.Path())
			case errors.Is(err, services.ErrTokenInvalid):
				log.Printf("admin auth: invalid token (ip=%s path=%s)", c.IP(), c.Path())
			default:
				log.Printf("admin auth: token validation failed (ip=%s path=%s): %v", c.IP(), c.Path(), err)
			}
			return unauthorized(c)
		}

		// Store admin information in context for downstream handlers
		c.Locals("admin_id", claims.AdminID)
		c.Locals("admin_username", claims.Username)
		c.Locals("token_id", claims.TokenID)

		// Store RequestID for audit logging
		if requestID := c.Get("X-Request-ID"); requestID != "" {
			c.Locals("request_id", requestID)
		}

		return c.Next()
	}
}
