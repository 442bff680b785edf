package recipes

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pantry-pal/feature/recipes/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupHistoryDB creates an in-memory SQLite DB for history tests.
func setupHistoryDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	return db
}

func sampleSuggestion() models.Suggestion {
	return models.Suggestion{
		Title: "Tomato Pasta",
		Steps: []string{"Boil pasta", "Add soup"},
		Ingredients: []models.Ingredient{
			{Code: "614141000012", Name: "Tomato Soup", Required: 1, Units: "can"},
		},
	}
}

func TestHistory_AppendAndList(t *testing.T) {
	history, err := NewHistory(setupHistoryDB(t, "history_append"))
	require.NoError(t, err)
	assert.True(t, history.Available())

	rec, err := history.Append(context.Background(), sampleSuggestion())
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)
	assert.Equal(t, "Tomato Pasta", rec.Title)

	records, err := history.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	restored, err := records[0].Suggestion()
	require.NoError(t, err)
	assert.Equal(t, sampleSuggestion(), restored)
}

func TestHistory_Delete(t *testing.T) {
	history, err := NewHistory(setupHistoryDB(t, "history_delete"))
	require.NoError(t, err)

	rec, err := history.Append(context.Background(), sampleSuggestion())
	require.NoError(t, err)

	require.NoError(t, history.Delete(context.Background(), rec.ID))

	records, err := history.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	err = history.Delete(context.Background(), rec.ID)
	assert.ErrorIs(t, err, ErrHistoryNotFound)
}

// setupMockHistoryDB creates a sqlmock-backed History, skipping migration.
func setupMockHistoryDB(t *testing.T) (*History, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	return &History{db: gormDB}, mock
}

func TestHistory_ListQueryError(t *testing.T) {
	history, mock := setupMockHistoryDB(t)
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection reset"))

	_, err := history.List(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrHistoryUnavailable)
}

func TestHistory_NilDB(t *testing.T) {
	history, err := NewHistory(nil)
	require.NoError(t, err)
	assert.False(t, history.Available())

	_, err = history.Append(context.Background(), sampleSuggestion())
	assert.ErrorIs(t, err, ErrHistoryUnavailable)

	_, err = history.List(context.Background())
	assert.ErrorIs(t, err, ErrHistoryUnavailable)

	assert.ErrorIs(t, history.Delete(context.Background(), 1), ErrHistoryUnavailable)
}
