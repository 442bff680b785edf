package models

import (
	"encoding/json"
	"time"

	"pantry-pal/core/utils"
)

// Ingredient is one line of a suggested recipe, expressed against the pantry:
// Code matches the inventory key and Required is the amount to deduct, in the
// record's own units (no unit conversion is performed).
type Ingredient struct {
	Code     string  `json:"upc"`
	Name     string  `json:"name"`
	Required float64 `json:"required"`
	Units    string  `json:"units"`
}

// UnmarshalJSON coerces Required from whatever scalar the generator emitted.
// Language models frequently quote numbers; a bad value becomes 0 rather than
// failing the whole suggestion.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	type alias Ingredient
	aux := &struct {
		Required any `json:"required"`
		*alias
	}{
		alias: (*alias)(i),
	}

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	i.Required = utils.ToFloat64(aux.Required)
	return nil
}

// Suggestion is a generated recipe: a title, ordered preparation steps, and
// the ingredient deductions to apply against the inventory. It is transient
// until archived into the history store.
type Suggestion struct {
	Title       string       `json:"title"`
	Steps       []string     `json:"steps"`
	Ingredients []Ingredient `json:"ingredients"`
}

// ArchivedRecipe is a persisted suggestion in the history store.
type ArchivedRecipe struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200" json:"title"`
	Payload   string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the history table name.
func (ArchivedRecipe) TableName() string {
	return "recipe_history"
}

// NewArchivedRecipe serializes a suggestion for storage.
func NewArchivedRecipe(s Suggestion) (ArchivedRecipe, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return ArchivedRecipe{}, err
	}
	return ArchivedRecipe{Title: s.Title, Payload: string(payload)}, nil
}

// Suggestion deserializes the archived payload.
func (a ArchivedRecipe) Suggestion() (Suggestion, error) {
	var s Suggestion
	err := json.Unmarshal([]byte(a.Payload), &s)
	return s, err
}
