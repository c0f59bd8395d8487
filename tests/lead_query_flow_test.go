// Package tests contains integration tests for the admin lead listing
package tests

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdelease/leasing-api/app/dto"
	businessflow "github.com/verdelease/leasing-api/business_flow"
	"github.com/verdelease/leasing-api/repository"
	testingutil "github.com/verdelease/leasing-api/testing"
	"github.com/verdelease/leasing-api/utils"
	"github.com/xuri/excelize/v2"
)

func TestLeadQueryFlow(t *testing.T) {
	metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

	t.Run("NewestFirstOrdering", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		fixtures := testingutil.NewTestFixtures(leadRepo, repository.NewMemoryAdminRepository())
		flow := businessflow.NewLeadQueryFlow(leadRepo, nil)

		base := utils.UTCNow().Add(-time.Hour)
		first, err := fixtures.CreateTestLead(context.Background(), "dacia-sandero", base)
		require.NoError(t, err)
		second, err := fixtures.CreateTestLead(context.Background(), "opel-corsa", base.Add(time.Minute))
		require.NoError(t, err)
		third, err := fixtures.CreateTestLead(context.Background(), "volkswagen-golf", base.Add(2*time.Minute))
		require.NoError(t, err)

		result, err := flow.List(context.Background(), &dto.SimulationListRequest{}, metadata)
		require.NoError(t, err)
		require.Len(t, result.Simulations, 3)

		assert.Equal(t, third.UUID.String(), result.Simulations[0].UUID)
		assert.Equal(t, second.UUID.String(), result.Simulations[1].UUID)
		assert.Equal(t, first.UUID.String(), result.Simulations[2].UUID)
		assert.EqualValues(t, 3, result.Total)
	})

	t.Run("EqualTimestampsBreakTiesByID", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		fixtures := testingutil.NewTestFixtures(leadRepo, repository.NewMemoryAdminRepository())
		flow := businessflow.NewLeadQueryFlow(leadRepo, nil)

		at := utils.UTCNow()
		older, err := fixtures.CreateTestLead(context.Background(), "dacia-sandero", at)
		require.NoError(t, err)
		newer, err := fixtures.CreateTestLead(context.Background(), "opel-corsa", at)
		require.NoError(t, err)

		result, err := flow.List(context.Background(), nil, metadata)
		require.NoError(t, err)
		require.Len(t, result.Simulations, 2)
		assert.Equal(t, newer.ID, result.Simulations[0].ID)
		assert.Equal(t, older.ID, result.Simulations[1].ID)
	})

	t.Run("Pagination", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		fixtures := testingutil.NewTestFixtures(leadRepo, repository.NewMemoryAdminRepository())
		flow := businessflow.NewLeadQueryFlow(leadRepo, nil)

		base := utils.UTCNow().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			_, err := fixtures.CreateTestLead(context.Background(), "dacia-sandero", base.Add(time.Duration(i)*time.Minute))
			require.NoError(t, err)
		}

		page, err := flow.List(context.Background(), &dto.SimulationListRequest{Limit: 2, Offset: 2}, metadata)
		require.NoError(t, err)
		require.Len(t, page.Simulations, 2)
		assert.EqualValues(t, 5, page.Total)
		assert.Equal(t, 2, page.Limit)
		assert.Equal(t, 2, page.Offset)

		// Third and fourth newest
		assert.EqualValues(t, 3, page.Simulations[0].ID)
		assert.EqualValues(t, 2, page.Simulations[1].ID)
	})

	t.Run("ExportXLSX", func(t *testing.T) {
		leadRepo := repository.NewMemoryLeadRepository()
		fixtures := testingutil.NewTestFixtures(leadRepo, repository.NewMemoryAdminRepository())
		flow := businessflow.NewLeadQueryFlow(leadRepo, nil)

		lead, err := fixtures.CreateTestLead(context.Background(), "dacia-sandero", utils.UTCNow())
		require.NoError(t, err)

		filename, data, err := flow.ExportXLSX(context.Background(), metadata)
		require.NoError(t, err)
		assert.Contains(t, filename, ".xlsx")
		require.NotEmpty(t, data)

		// The workbook carries a header row plus one data row
		xl, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer xl.Close()

		rows, err := xl.GetRows("simulations")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "id", rows[0][0])
		assert.Equal(t, lead.UUID.String(), rows[1][1])
	})
}
