package recipes

import (
	"context"
	"errors"
	"fmt"

	"pantry-pal/feature/pantry"
	pmodels "pantry-pal/feature/pantry/models"
	"pantry-pal/feature/recipes/models"

	"go.uber.org/zap"
)

// Service turns pantry contents into recipe suggestions and applies accepted
// suggestions back against the inventory.
type Service struct {
	pantry    *pantry.Service
	generator Generator
	history   *History
	logger    *zap.Logger
}

// NewService creates a new recipes service.
func NewService(pantrySvc *pantry.Service, generator Generator, history *History, logger *zap.Logger) *Service {
	return &Service{
		pantry:    pantrySvc,
		generator: generator,
		history:   history,
		logger:    logger,
	}
}

// Generate builds a suggestion from the inventory records matching the given
// canonical codes. With no codes, the whole inventory is offered to the
// generator.
func (s *Service) Generate(ctx context.Context, codes []string) (*models.Suggestion, error) {
	records, err := s.pantry.List(ctx, "", pantry.SortByName)
	if err != nil {
		return nil, err
	}

	selected := records
	if len(codes) > 0 {
		wanted := make(map[string]struct{}, len(codes))
		for _, code := range codes {
			wanted[pantry.NormalizeCode(code)] = struct{}{}
		}

		selected = selected[:0]
		for _, rec := range records {
			if _, ok := wanted[rec.Code]; ok {
				selected = append(selected, rec)
			}
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no pantry records match the selected ingredients")
	}

	suggestion, err := s.generator.Generate(ctx, selected)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generated recipe suggestion",
		zap.String("title", suggestion.Title),
		zap.Int("ingredients", len(suggestion.Ingredients)),
	)
	return suggestion, nil
}

// Apply deducts a suggestion's ingredients from the inventory and archives
// the suggestion. Archiving is best-effort: an unavailable history store is
// logged, not surfaced.
func (s *Service) Apply(ctx context.Context, suggestion models.Suggestion) (pmodels.Inventory, error) {
	deductions := make([]pmodels.Deduction, 0, len(suggestion.Ingredients))
	for _, ing := range suggestion.Ingredients {
		deductions = append(deductions, pmodels.Deduction{
			Code:     pantry.NormalizeCode(ing.Code),
			Required: ing.Required,
			Units:    ing.Units,
		})
	}

	inv, err := s.pantry.ApplyDeduction(ctx, deductions)
	if err != nil {
		return nil, err
	}

	if _, err := s.history.Append(ctx, suggestion); err != nil {
		if errors.Is(err, ErrHistoryUnavailable) {
			s.logger.Debug("History store unavailable, suggestion not archived")
		} else {
			s.logger.Warn("Failed to archive recipe", zap.String("title", suggestion.Title), zap.Error(err))
		}
	}

	return inv, nil
}

// History exposes the archive store for the handler.
func (s *Service) History() *History {
	return s.history
}
