package mocks

import (
	"context"

	pmodels "pantry-pal/feature/pantry/models"
	"pantry-pal/feature/recipes/models"

	"github.com/stretchr/testify/mock"
)

// Generator is a mock implementation of recipes.Generator
type Generator struct {
	mock.Mock
}

func (m *Generator) Generate(ctx context.Context, records []pmodels.Record) (*models.Suggestion, error) {
	args := m.Called(ctx, records)
	if s, ok := args.Get(0).(*models.Suggestion); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
