// Package tests contains test cases for models and repository packages to avoid circular imports
package tests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/verdelease/leasing-api/models"
	"github.com/verdelease/leasing-api/utils"
)

func TestLeadModel(t *testing.T) {
	t.Run("EmploymentConstants", func(t *testing.T) {
		assert.Equal(t, "employed", models.EmploymentEmployed)
		assert.Equal(t, "self-employed", models.EmploymentSelfEmployed)
		assert.Equal(t, "retired", models.EmploymentRetired)
		assert.Equal(t, "other", models.EmploymentOther)
	})

	t.Run("AllowedTerms", func(t *testing.T) {
		for _, term := range []int{12, 24, 36, 48, 60, 72, 84} {
			assert.True(t, models.IsAllowedTerm(term), "term %d should be allowed", term)
		}
		for _, term := range []int{0, 6, 18, 50, 96, -12} {
			assert.False(t, models.IsAllowedTerm(term), "term %d should be rejected", term)
		}
	})

	t.Run("TableName", func(t *testing.T) {
		assert.Equal(t, "simulations", models.Lead{}.TableName())
	})
}

func TestAdminModel(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		assert.Equal(t, "admins", models.Admin{}.TableName())
	})

	t.Run("IsActivePointer", func(t *testing.T) {
		admin := models.Admin{}
		assert.False(t, utils.IsTrue(admin.IsActive))

		admin.IsActive = utils.ToPtr(true)
		assert.True(t, utils.IsTrue(admin.IsActive))
	})
}

func TestTimeUtils(t *testing.T) {
	t.Run("UTCNow", func(t *testing.T) {
		now := utils.UTCNow()
		assert.Equal(t, time.UTC, now.Location())
	})

	t.Run("IsExpired", func(t *testing.T) {
		assert.True(t, utils.IsExpired(utils.UTCNow().Add(-time.Minute)))
		assert.False(t, utils.IsExpired(utils.UTCNow().Add(time.Minute)))
	})
}
