// Package businessflow contains the core business logic and use cases for lead intake and admin workflows
package businessflow

import (
	"context"
	"log"
	"time"

	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/app/services"
	"github.com/verdelease/leasing-api/repository"
	"github.com/verdelease/leasing-api/utils"
	"golang.org/x/crypto/bcrypt"
)

// dummyPasswordHash is compared against when the username does not exist, so
// that lookups for unknown and known usernames take comparable time.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("0de4a8do-not-use"), bcrypt.DefaultCost)

// AdminAuthFlow represents the admin authentication flow used by handlers
type AdminAuthFlow interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest, metadata *ClientMetadata) (*dto.AdminLoginResponse, error)
}

// AdminAuthFlowImpl verifies admin credentials and issues session tokens
type AdminAuthFlowImpl struct {
	adminRepo    repository.AdminRepository
	tokenService services.TokenService
}

func NewAdminAuthFlow(adminRepo repository.AdminRepository, tokenService services.TokenService) AdminAuthFlow {
	return &AdminAuthFlowImpl{
		adminRepo:    adminRepo,
		tokenService: tokenService,
	}
}

// Login authenticates an admin. Unknown usernames and wrong passwords produce
// the same error so responses do not reveal which usernames exist.
func (af *AdminAuthFlowImpl) Login(ctx context.Context, req *dto.AdminLoginRequest, metadata *ClientMetadata) (*dto.AdminLoginResponse, error) {
	if req == nil || len(req.Username) == 0 || len(req.Password) == 0 {
		return nil, NewBusinessError("ADMIN_LOGIN_VALIDATION_FAILED", "Admin login validation failed", ErrInvalidCredentials)
	}

	admin, err := af.adminRepo.ByUsername(ctx, req.Username)
	if err != nil {
		return nil, NewBusinessError("ADMIN_LOOKUP_FAILED", "Failed to lookup admin", err)
	}
	if admin == nil {
		// Burn a hash comparison anyway
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(req.Password))
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid credentials", ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, NewBusinessError("INVALID_CREDENTIALS", "Invalid credentials", ErrInvalidCredentials)
	}

	if !utils.IsTrue(admin.IsActive) {
		return nil, NewBusinessError("ADMIN_INACTIVE", "Admin account is inactive", ErrAdminInactive)
	}

	accessToken, expiresAt, err := af.tokenService.GenerateAdminToken(admin.ID, admin.Username)
	if err != nil {
		return nil, NewBusinessError("TOKEN_GENERATION_FAILED", "Failed to generate token", err)
	}

	now := utils.UTCNow()
	if err := af.adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		// Login still succeeds; the timestamp is informational
		log.Printf("admin auth: failed to record last login for admin %d: %v", admin.ID, err)
	}

	return &dto.AdminLoginResponse{
		Admin: ToAdminDTO(*admin),
		Session: dto.AdminSessionDTO{
			AccessToken: accessToken,
			ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
			TokenType:   "Bearer",
			ExpiresAt:   expiresAt.UTC().Format(time.RFC3339),
		},
	}, nil
}
