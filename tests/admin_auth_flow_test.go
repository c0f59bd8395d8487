// Package tests contains integration tests for admin authentication
package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/app/services"
	businessflow "github.com/verdelease/leasing-api/business_flow"
	"github.com/verdelease/leasing-api/repository"
	testingutil "github.com/verdelease/leasing-api/testing"
	"github.com/verdelease/leasing-api/utils"
)

const testSecret = "test-secret-key-with-at-least-32-chars!!"

func newTestTokenService(t *testing.T, ttl time.Duration) services.TokenService {
	t.Helper()
	svc, err := services.NewTokenService(ttl, "test-issuer", "test-audience", false, "", "", testSecret)
	require.NoError(t, err)
	return svc
}

func TestAdminAuthFlow(t *testing.T) {
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	setup := func(t *testing.T) (businessflow.AdminAuthFlow, *repository.MemoryAdminRepository, *testingutil.TestFixtures) {
		adminRepo := repository.NewMemoryAdminRepository()
		fixtures := testingutil.NewTestFixtures(repository.NewMemoryLeadRepository(), adminRepo)
		flow := businessflow.NewAdminAuthFlow(adminRepo, newTestTokenService(t, time.Hour))
		return flow, adminRepo, fixtures
	}

	t.Run("SuccessfulLogin", func(t *testing.T) {
		flow, adminRepo, fixtures := setup(t)
		admin, err := fixtures.CreateTestAdmin(context.Background(), "ops", "CorrectHorse1!")
		require.NoError(t, err)

		result, err := flow.Login(context.Background(), &dto.AdminLoginRequest{
			Username: "ops",
			Password: "CorrectHorse1!",
		}, metadata)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, admin.ID, result.Admin.ID)
		assert.Equal(t, "ops", result.Admin.Username)
		assert.NotEmpty(t, result.Session.AccessToken)
		assert.Equal(t, "Bearer", result.Session.TokenType)
		assert.InDelta(t, 3600, result.Session.ExpiresIn, 5)

		// Last login is recorded
		stored, err := adminRepo.ByUsername(context.Background(), "ops")
		require.NoError(t, err)
		require.NotNil(t, stored.LastLoginAt)
		assert.WithinDuration(t, utils.UTCNow(), *stored.LastLoginAt, 5*time.Second)
	})

	t.Run("WrongPasswordAndUnknownUsernameAreIndistinguishable", func(t *testing.T) {
		flow, _, fixtures := setup(t)
		_, err := fixtures.CreateTestAdmin(context.Background(), "ops", "CorrectHorse1!")
		require.NoError(t, err)

		_, errWrongPassword := flow.Login(context.Background(), &dto.AdminLoginRequest{
			Username: "ops",
			Password: "wrong-password",
		}, metadata)
		require.Error(t, errWrongPassword)

		_, errUnknownUser := flow.Login(context.Background(), &dto.AdminLoginRequest{
			Username: "nobody",
			Password: "wrong-password",
		}, metadata)
		require.Error(t, errUnknownUser)

		assert.True(t, businessflow.IsInvalidCredentials(errWrongPassword))
		assert.True(t, businessflow.IsInvalidCredentials(errUnknownUser))
	})

	t.Run("InactiveAdmin", func(t *testing.T) {
		flow, adminRepo, fixtures := setup(t)
		admin, err := fixtures.CreateTestAdmin(context.Background(), "ops", "CorrectHorse1!")
		require.NoError(t, err)

		admin.IsActive = utils.ToPtr(false)
		require.NoError(t, adminRepo.Save(context.Background(), admin))

		_, err = flow.Login(context.Background(), &dto.AdminLoginRequest{
			Username: "ops",
			Password: "CorrectHorse1!",
		}, metadata)
		require.Error(t, err)
		assert.True(t, businessflow.IsAdminInactive(err))
	})

	t.Run("IssuedTokenIsValid", func(t *testing.T) {
		tokenService := newTestTokenService(t, time.Hour)
		adminRepo := repository.NewMemoryAdminRepository()
		fixtures := testingutil.NewTestFixtures(repository.NewMemoryLeadRepository(), adminRepo)
		flow := businessflow.NewAdminAuthFlow(adminRepo, tokenService)

		admin, err := fixtures.CreateTestAdmin(context.Background(), "ops", "CorrectHorse1!")
		require.NoError(t, err)

		result, err := flow.Login(context.Background(), &dto.AdminLoginRequest{
			Username: "ops",
			Password: "CorrectHorse1!",
		}, metadata)
		require.NoError(t, err)

		claims, err := tokenService.ValidateAdminToken(result.Session.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, claims.AdminID)
		assert.Equal(t, "ops", claims.Username)
	})
}
