package recipes

import (
	"context"
	"errors"
	"fmt"

	"pantry-pal/feature/recipes/models"

	"gorm.io/gorm"
)

// ErrHistoryUnavailable is returned when no database is configured for the
// history store.
var ErrHistoryUnavailable = errors.New("recipes: history store unavailable")

// ErrHistoryNotFound is returned when a history entry does not exist.
var ErrHistoryNotFound = errors.New("recipes: history entry not found")

// History archives accepted recipe suggestions. The backing database is
// optional; a nil db yields a store whose operations report
// ErrHistoryUnavailable.
type History struct {
	db *gorm.DB
}

// NewHistory creates the history store and runs its migration when a
// database is available.
func NewHistory(db *gorm.DB) (*History, error) {
	h := &History{db: db}
	if db != nil {
		if err := db.AutoMigrate(&models.ArchivedRecipe{}); err != nil {
			return nil, fmt.Errorf("failed to migrate recipe history: %w", err)
		}
	}
	return h, nil
}

// Available reports whether the store has a backing database.
func (h *History) Available() bool {
	return h.db != nil
}

// Append archives a suggestion and returns the stored record.
func (h *History) Append(ctx context.Context, s models.Suggestion) (*models.ArchivedRecipe, error) {
	if h.db == nil {
		return nil, ErrHistoryUnavailable
	}

	rec, err := models.NewArchivedRecipe(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize suggestion: %w", err)
	}

	if err := h.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to archive recipe: %w", err)
	}
	return &rec, nil
}

// List returns archived recipes, newest first.
func (h *History) List(ctx context.Context) ([]models.ArchivedRecipe, error) {
	if h.db == nil {
		return nil, ErrHistoryUnavailable
	}

	var records []models.ArchivedRecipe
	if err := h.db.WithContext(ctx).Order("created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipe history: %w", err)
	}
	return records, nil
}

// Delete removes one archived recipe by ID.
func (h *History) Delete(ctx context.Context, id uint) error {
	if h.db == nil {
		return ErrHistoryUnavailable
	}

	result := h.db.WithContext(ctx).Delete(&models.ArchivedRecipe{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete recipe history entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrHistoryNotFound
	}
	return nil
}
