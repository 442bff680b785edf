package pantry

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"pantry-pal/feature/pantry/lookup"
	"pantry-pal/feature/pantry/lookup/mocks"
	"pantry-pal/feature/pantry/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *Service, *mocks.Client) {
	app := fiber.New()
	path := filepath.Join(t.TempDir(), "pantry.json")
	mockLookup := new(mocks.Client)
	svc := NewService(NewFileStore(path, zap.NewNop()), mockLookup, zap.NewNop())
	NewHandler(svc).RegisterRoutes(app)
	return app, svc, mockLookup
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestHandleCommitScan(t *testing.T) {
	app, svc, mockLookup := setupTestApp(t)
	mockLookup.On("Lookup", mock.Anything, "614141000012").Return(lookup.Product{
		Found: true,
		Name:  "Tomato Soup",
	})

	req := httptest.NewRequest("POST", "/pantry/scan", jsonBody(t, map[string]any{
		"code":     "614141000012",
		"quantity": 2,
		"units":    "can",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result models.ScanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Existing)
	assert.True(t, result.Found)
	assert.Equal(t, "Tomato Soup", result.Record.Name)
	assert.Equal(t, 2.0, result.Record.Quantity)

	inv, err := svc.store.Load(req.Context())
	require.NoError(t, err)
	assert.Contains(t, inv, "614141000012")
}

func TestHandleCommitScan_QuantityAsString(t *testing.T) {
	app, _, mockLookup := setupTestApp(t)
	mockLookup.On("Lookup", mock.Anything, mock.Anything).Return(lookup.Product{Found: true, Name: "Soup"})

	// Mobile clients send quantity from a text input.
	req := httptest.NewRequest("POST", "/pantry/scan", jsonBody(t, map[string]any{
		"code":     "614141000012",
		"quantity": "3",
		"units":    "can",
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result models.ScanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, 3.0, result.Record.Quantity)
}

func TestHandlePreviewScan_DoesNotPersist(t *testing.T) {
	app, svc, mockLookup := setupTestApp(t)
	mockLookup.On("Lookup", mock.Anything, mock.Anything).Return(lookup.Product{Found: false, Name: "614141000012"})

	req := httptest.NewRequest("POST", "/pantry/scan/preview", jsonBody(t, map[string]any{
		"code":     "614141000012",
		"quantity": 1,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var result models.ScanResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Found)

	inv, err := svc.store.Load(req.Context())
	require.NoError(t, err)
	assert.Empty(t, inv)
}

func TestHandleList(t *testing.T) {
	app, svc, _ := setupTestApp(t)
	seedRecord(t, svc, models.Record{Code: "1", Name: "Beans", Brand: "Acme", Quantity: 2, Units: "can"})
	seedRecord(t, svc, models.Record{Code: "2", Name: "Apple", Brand: "Orchard", Quantity: 5, Units: "unit"})

	req := httptest.NewRequest("GET", "/pantry/?sort=name", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var records []models.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 2)
	assert.Equal(t, "Apple", records[0].Name)

	req = httptest.NewRequest("GET", "/pantry/?search=acme", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "Beans", records[0].Name)
}

func TestHandleSetQuantity(t *testing.T) {
	app, svc, _ := setupTestApp(t)
	seedRecord(t, svc, models.Record{Code: "614141000012", Name: "Soup", Quantity: 3, Units: "can"})

	req := httptest.NewRequest("PUT", "/pantry/614141000012/quantity", jsonBody(t, map[string]any{
		"quantity": 7,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rec models.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, 7.0, rec.Quantity)
}

func TestHandleSetQuantity_NotFound(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("PUT", "/pantry/000000000000/quantity", jsonBody(t, map[string]any{
		"quantity": 7,
	}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	app, svc, _ := setupTestApp(t)
	seedRecord(t, svc, models.Record{Code: "614141000012", Name: "Soup", Quantity: 3, Units: "can"})

	req := httptest.NewRequest("DELETE", "/pantry/614141000012", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	inv, err := svc.store.Load(req.Context())
	require.NoError(t, err)
	assert.Empty(t, inv)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/pantry/614141000012", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleReset(t *testing.T) {
	app, svc, _ := setupTestApp(t)
	seedRecord(t, svc, models.Record{Code: "614141000012", Name: "Soup", Quantity: 3, Units: "can"})

	req := httptest.NewRequest("POST", "/pantry/reset", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	inv, err := svc.store.Load(req.Context())
	require.NoError(t, err)
	assert.Empty(t, inv)
}
