// Package tests contains integration tests for the simulation intake endpoint
package tests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/verdelease/leasing-api/app/dto"
	"github.com/verdelease/leasing-api/app/handlers"
	"github.com/verdelease/leasing-api/app/services"
	businessflow "github.com/verdelease/leasing-api/business_flow"
	"github.com/verdelease/leasing-api/repository"
)

func newSimulationTestApp(leadRepo repository.LeadRepository) *fiber.App {
	catalog := services.NewStaticVehicleCatalog(nil)
	flow := businessflow.NewSimulationFlow(leadRepo, catalog, testRates, nil)
	handler := handlers.NewSimulationHandler(flow)

	app := fiber.New()
	app.Post("/api/v1/simulations", handler.Submit)
	return app
}

type simulationAPIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   struct {
		Code    string          `json:"code"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func postSimulation(t *testing.T, app *fiber.App, payload map[string]any) (*simulationAPIResponse, int) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/v1/simulations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var apiResp simulationAPIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiResp))
	return &apiResp, resp.StatusCode
}

func validSimulationPayload() map[string]any {
	return map[string]any{
		"amount":             12000,
		"finance_percentage": 80,
		"term":               48,
		"income":             2500,
		"employment":         "employed",
		"name":               "Laura Martínez",
		"email":              "laura@example.com",
		"phone":              "+34 612 345 678",
		"monthly_payment":    287.30,
		"vehicle_id":         "dacia-sandero",
		"accept_terms":       true,
	}
}

func TestSimulationEndpoint(t *testing.T) {
	t.Run("ValidSubmission", func(t *testing.T) {
		app := newSimulationTestApp(repository.NewMemoryLeadRepository())

		apiResp, status := postSimulation(t, app, validSimulationPayload())
		assert.Equal(t, fiber.StatusCreated, status)
		assert.True(t, apiResp.Success)
		assert.Equal(t, "Simulation saved", apiResp.Message)
	})

	t.Run("ValidationErrorsCollected", func(t *testing.T) {
		app := newSimulationTestApp(repository.NewMemoryLeadRepository())

		payload := validSimulationPayload()
		payload["email"] = "not-an-email"
		payload["term"] = 50
		payload["phone"] = "12"

		apiResp, status := postSimulation(t, app, payload)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.False(t, apiResp.Success)
		assert.Equal(t, "VALIDATION_ERROR", apiResp.Error.Code)

		var fields []dto.FieldError
		require.NoError(t, json.Unmarshal(apiResp.Error.Details, &fields))
		assert.Len(t, fields, 3)
	})

	t.Run("TermsNotAccepted", func(t *testing.T) {
		app := newSimulationTestApp(repository.NewMemoryLeadRepository())

		payload := validSimulationPayload()
		payload["accept_terms"] = false

		apiResp, status := postSimulation(t, app, payload)
		assert.Equal(t, fiber.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_ERROR", apiResp.Error.Code)
	})

	t.Run("UnknownVehicle", func(t *testing.T) {
		app := newSimulationTestApp(repository.NewMemoryLeadRepository())

		payload := validSimulationPayload()
		payload["vehicle_id"] = "does-not-exist"

		apiResp, status := postSimulation(t, app, payload)
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "VEHICLE_NOT_FOUND", apiResp.Error.Code)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		app := newSimulationTestApp(repository.NewMemoryLeadRepository())

		req := httptest.NewRequest("POST", "/api/v1/simulations", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
