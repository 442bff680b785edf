package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"pantry-pal/feature/pantry"
	lookupmocks "pantry-pal/feature/pantry/lookup/mocks"
	pmodels "pantry-pal/feature/pantry/models"
	"pantry-pal/feature/recipes/mocks"
	"pantry-pal/feature/recipes/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupRecipesApp(t *testing.T, db *gorm.DB) (*fiber.App, *mocks.Generator, pantry.Store) {
	path := filepath.Join(t.TempDir(), "pantry.json")
	store := pantry.NewFileStore(path, zap.NewNop())
	pantrySvc := pantry.NewService(store, new(lookupmocks.Client), zap.NewNop())

	history, err := NewHistory(db)
	require.NoError(t, err)

	gen := new(mocks.Generator)
	feature := NewFeature(pantrySvc, gen, history, zap.NewNop())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app, gen, store
}

func recipesJSONBody(t *testing.T, v any) io.Reader {
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestHandleGenerate(t *testing.T) {
	app, gen, store := setupRecipesApp(t, setupHistoryDB(t, "handler_generate"))
	seedPantry(t, store,
		pmodels.Record{Code: "614141000012", Name: "Tomato Soup", Quantity: 2, Units: "can"},
	)

	gen.On("Generate", mock.Anything, mock.Anything).Return(&models.Suggestion{
		Title: "Soup Night",
		Steps: []string{"Heat"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/recipes/generate", recipesJSONBody(t, generateRequest{}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var suggestion models.Suggestion
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&suggestion))
	assert.Equal(t, "Soup Night", suggestion.Title)
}

func TestHandleGenerate_Failure(t *testing.T) {
	app, gen, store := setupRecipesApp(t, setupHistoryDB(t, "handler_generate_fail"))
	seedPantry(t, store,
		pmodels.Record{Code: "614141000012", Name: "Soup", Quantity: 1, Units: "can"},
	)
	gen.On("Generate", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("model overloaded"))

	req := httptest.NewRequest(http.MethodPost, "/recipes/generate", recipesJSONBody(t, generateRequest{}))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHandleApply(t *testing.T) {
	app, _, store := setupRecipesApp(t, setupHistoryDB(t, "handler_apply"))
	seedPantry(t, store,
		pmodels.Record{Code: "614141000012", Name: "Tomato Soup", Quantity: 2, Units: "can"},
	)

	suggestion := models.Suggestion{
		Title: "Soup",
		Ingredients: []models.Ingredient{
			{Code: "614141000012", Name: "Tomato Soup", Required: 1, Units: "can"},
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/recipes/apply", recipesJSONBody(t, suggestion))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Items map[string]pmodels.Record `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1.0, body.Items["614141000012"].Quantity)
}

func TestHandleHistoryListAndDelete(t *testing.T) {
	db := setupHistoryDB(t, "handler_history")
	app, _, _ := setupRecipesApp(t, db)

	history, err := NewHistory(db)
	require.NoError(t, err)
	rec, err := history.Append(context.Background(), sampleSuggestion())
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/recipes/history", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var records []models.ArchivedRecipe
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&records))
	require.Len(t, records, 1)
	assert.Equal(t, "Tomato Pasta", records[0].Title)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/recipes/history/%d", rec.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/recipes/history/%d", rec.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleHistory_Unavailable(t *testing.T) {
	app, _, _ := setupRecipesApp(t, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/recipes/history", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/recipes/history/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
