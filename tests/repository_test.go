// Package tests contains test cases for models and repository packages to avoid circular imports
package tests

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdelease/leasing-api/models"
	"github.com/verdelease/leasing-api/repository"
	testingutil "github.com/verdelease/leasing-api/testing"
	"github.com/verdelease/leasing-api/utils"
)

func TestLeadRepositoryPostgres(t *testing.T) {
	if !testingutil.Available() {
		t.Skip("test database is not reachable")
	}

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		leadRepo := repository.NewLeadRepository(testDB.DB)
		adminRepo := repository.NewAdminRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(leadRepo, adminRepo)
		ctx := testingutil.CreateTestContext()

		t.Run("SaveAndByUUID", func(t *testing.T) {
			lead, err := fixtures.CreateTestLead(ctx, "dacia-sandero", utils.UTCNow())
			require.NoError(t, err)
			assert.NotZero(t, lead.ID)

			found, err := leadRepo.ByUUID(ctx, lead.UUID.String())
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.Equal(t, lead.Email, found.Email)
			assert.InDelta(t, lead.MonthlyPayment, found.MonthlyPayment, 0.001)
		})

		t.Run("ByUUIDNotFound", func(t *testing.T) {
			found, err := leadRepo.ByUUID(ctx, uuid.New().String())
			assert.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("ListNewestFirst", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			base := utils.UTCNow().Add(-time.Hour)
			for i := 0; i < 3; i++ {
				_, err := fixtures.CreateTestLead(ctx, "opel-corsa", base.Add(time.Duration(i)*time.Minute))
				require.NoError(t, err)
			}

			leads, err := leadRepo.ListNewestFirst(ctx, 10, 0)
			require.NoError(t, err)
			require.Len(t, leads, 3)
			assert.True(t, leads[0].CreatedAt.After(leads[1].CreatedAt))
			assert.True(t, leads[1].CreatedAt.After(leads[2].CreatedAt))
		})

		t.Run("CountWithFilter", func(t *testing.T) {
			require.NoError(t, testDB.ClearAllTables())

			_, err := fixtures.CreateTestLead(ctx, "opel-corsa", utils.UTCNow())
			require.NoError(t, err)
			_, err = fixtures.CreateTestLead(ctx, "dacia-sandero", utils.UTCNow())
			require.NoError(t, err)

			vehicleID := "opel-corsa"
			count, err := leadRepo.Count(ctx, models.LeadFilter{VehicleID: &vehicleID})
			require.NoError(t, err)
			assert.EqualValues(t, 1, count)

			total, err := leadRepo.Count(ctx, models.LeadFilter{})
			require.NoError(t, err)
			assert.EqualValues(t, 2, total)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestAdminRepositoryPostgres(t *testing.T) {
	if !testingutil.Available() {
		t.Skip("test database is not reachable")
	}

	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		leadRepo := repository.NewLeadRepository(testDB.DB)
		adminRepo := repository.NewAdminRepository(testDB.DB)
		fixtures := testingutil.NewTestFixtures(leadRepo, adminRepo)
		ctx := testingutil.CreateTestContext()

		t.Run("SaveAndByUsername", func(t *testing.T) {
			admin, err := fixtures.CreateTestAdmin(ctx, "backoffice", "changeme-now")
			require.NoError(t, err)
			assert.NotZero(t, admin.ID)

			found, err := adminRepo.ByUsername(ctx, "backoffice")
			require.NoError(t, err)
			require.NotNil(t, found)
			assert.True(t, utils.IsTrue(found.IsActive))
			assert.NotEmpty(t, found.PasswordHash)
		})

		t.Run("ByUsernameNotFound", func(t *testing.T) {
			found, err := adminRepo.ByUsername(ctx, "no-such-admin")
			assert.NoError(t, err)
			assert.Nil(t, found)
		})

		t.Run("UpdateLastLogin", func(t *testing.T) {
			admin, err := fixtures.CreateTestAdmin(ctx, "auditor", "changeme-now")
			require.NoError(t, err)
			require.Nil(t, admin.LastLoginAt)

			at := utils.UTCNow()
			require.NoError(t, adminRepo.UpdateLastLogin(ctx, admin.ID, at))

			found, err := adminRepo.ByUsername(ctx, "auditor")
			require.NoError(t, err)
			require.NotNil(t, found.LastLoginAt)
			assert.WithinDuration(t, at, *found.LastLoginAt, time.Second)
		})

		return nil
	})
	require.NoError(t, err)
}

func TestMemoryLeadRepository(t *testing.T) {
	leadRepo := repository.NewMemoryLeadRepository()
	fixtures := testingutil.NewTestFixtures(leadRepo, repository.NewMemoryAdminRepository())
	ctx := testingutil.CreateTestContext()

	t.Run("SaveAssignsIdentifiers", func(t *testing.T) {
		first, err := fixtures.CreateTestLead(ctx, "dacia-sandero", utils.UTCNow())
		require.NoError(t, err)
		second, err := fixtures.CreateTestLead(ctx, "dacia-sandero", utils.UTCNow())
		require.NoError(t, err)
		assert.Equal(t, first.ID+1, second.ID)
	})

	t.Run("ByUUID", func(t *testing.T) {
		lead, err := fixtures.CreateTestLead(ctx, "skoda-kamiq", utils.UTCNow())
		require.NoError(t, err)

		found, err := leadRepo.ByUUID(ctx, lead.UUID.String())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "skoda-kamiq", found.VehicleID)

		missing, err := leadRepo.ByUUID(ctx, uuid.New().String())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("Exists", func(t *testing.T) {
		vehicleID := "skoda-kamiq"
		exists, err := leadRepo.Exists(ctx, models.LeadFilter{VehicleID: &vehicleID})
		require.NoError(t, err)
		assert.True(t, exists)

		vehicleID = "never-stored"
		exists, err = leadRepo.Exists(ctx, models.LeadFilter{VehicleID: &vehicleID})
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
