package pantry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"pantry-pal/core/utils"
	"pantry-pal/feature/pantry/lookup"
	"pantry-pal/feature/pantry/models"

	"go.uber.org/zap"
)

// ErrNotFound is returned when an operation targets a code that has no
// inventory record.
var ErrNotFound = errors.New("pantry: record not found")

// DefaultUnits is the unit label used when a scan supplies none.
const DefaultUnits = "unit"

// Service reconciles scans and recipe outcomes against the persisted
// inventory. Every operation is a sequential load, compute, persist pass;
// operations are expected to run one at a time to completion.
type Service struct {
	store  Store
	lookup lookup.Client
	logger *zap.Logger
}

// NewService creates a new pantry service.
func NewService(store Store, lookup lookup.Client, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		lookup: lookup,
		logger: logger,
	}
}

// PreviewScan computes the record a scan would produce without touching the
// stored inventory. For an already-tracked code the current record is returned
// unchanged; otherwise the product lookup runs and a proposed record is built.
// Calling it any number of times leaves the store byte-identical.
func (s *Service) PreviewScan(ctx context.Context, rawCode string, quantity any, units, manualName string) (*models.ScanResult, error) {
	code := NormalizeCode(rawCode)

	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	if rec, ok := inv[code]; ok {
		return &models.ScanResult{Existing: true, Found: true, Record: rec}, nil
	}

	rec, found := s.buildRecord(ctx, code, quantity, units, manualName)
	return &models.ScanResult{Existing: false, Found: found, Record: rec}, nil
}

// CommitScan reconciles a scan into the stored inventory and persists the full
// inventory. An already-tracked code is incremented by the coerced quantity
// with its metadata untouched; an unknown code is created from the product
// lookup, with a non-empty manualName overriding the looked-up name and
// forcing Found true. Quantities are never decremented by this operation.
func (s *Service) CommitScan(ctx context.Context, rawCode string, quantity any, units, manualName string) (*models.ScanResult, error) {
	code := NormalizeCode(rawCode)

	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	if rec, ok := inv[code]; ok {
		rec.Quantity += utils.ToFloat64(quantity)
		inv[code] = rec

		if err := s.store.Save(ctx, inv); err != nil {
			return nil, err
		}
		s.logger.Info("Incremented pantry record",
			zap.String("code", code),
			zap.Float64("quantity", rec.Quantity),
		)
		return &models.ScanResult{Existing: true, Found: true, Record: rec}, nil
	}

	rec, found := s.buildRecord(ctx, code, quantity, units, manualName)
	inv[code] = rec

	if err := s.store.Save(ctx, inv); err != nil {
		return nil, err
	}
	s.logger.Info("Created pantry record",
		zap.String("code", code),
		zap.String("name", rec.Name),
		zap.Bool("found", found),
	)
	return &models.ScanResult{Existing: false, Found: found, Record: rec}, nil
}

// buildRecord assembles a new record for an untracked code from the product
// lookup and the scan input. A manual name takes precedence over the looked-up
// name and marks the product as identified even when the lookup failed.
func (s *Service) buildRecord(ctx context.Context, code string, quantity any, units, manualName string) (models.Record, bool) {
	product := s.lookup.Lookup(ctx, code)

	name := strings.TrimSpace(manualName)
	found := product.Found || name != ""
	if name == "" {
		name = product.Name
	}

	if strings.TrimSpace(units) == "" {
		units = DefaultUnits
	}
	images := product.Images
	if images == nil {
		images = []string{}
	}

	return models.Record{
		Code:        code,
		Name:        name,
		Brand:       product.Brand,
		Description: product.Description,
		Images:      images,
		Quantity:    utils.ToFloat64(quantity),
		Units:       units,
	}, found
}

// ApplyDeduction subtracts a recipe's ingredient requirements from the
// inventory. Records that drop to zero or below are removed entirely;
// ingredients without a matching record are skipped. The inventory is
// persisted once, after all deductions are applied.
func (s *Service) ApplyDeduction(ctx context.Context, deductions []models.Deduction) (models.Inventory, error) {
	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	for _, d := range deductions {
		rec, ok := inv[d.Code]
		if !ok {
			continue
		}

		remaining := utils.ToFloat64(rec.Quantity) - utils.ToFloat64(d.Required)
		if remaining <= 0 {
			delete(inv, d.Code)
			s.logger.Info("Pantry record depleted", zap.String("code", d.Code))
			continue
		}

		rec.Quantity = remaining
		inv[d.Code] = rec
	}

	if err := s.store.Save(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// Reset replaces the inventory with an empty mapping and persists it.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.store.Save(ctx, models.NewInventory()); err != nil {
		return err
	}
	s.logger.Info("Pantry reset")
	return nil
}

// Remove deletes a single record and returns the updated inventory.
func (s *Service) Remove(ctx context.Context, code string) (models.Inventory, error) {
	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	if _, ok := inv[code]; !ok {
		return nil, ErrNotFound
	}
	delete(inv, code)

	if err := s.store.Save(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// SetQuantity overwrites a record's quantity. The value is coerced and
// clamped at zero; unlike recipe deduction, setting zero keeps the record.
func (s *Service) SetQuantity(ctx context.Context, code string, quantity any) (*models.Record, error) {
	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	rec, ok := inv[code]
	if !ok {
		return nil, ErrNotFound
	}

	qty := utils.ToFloat64(quantity)
	if qty < 0 {
		qty = 0
	}
	rec.Quantity = qty
	inv[code] = rec

	if err := s.store.Save(ctx, inv); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Sort keys accepted by List.
const (
	SortByName     = "name"
	SortByBrand    = "brand"
	SortByQuantity = "quantity"
)

// List returns inventory records filtered by a case-insensitive name/brand
// substring search and ordered by the given sort key. Quantity sorts
// descending; name and brand sort ascending. An unknown sort key falls back
// to name.
func (s *Service) List(ctx context.Context, search, sortBy string) ([]models.Record, error) {
	inv, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(search))

	records := make([]models.Record, 0, len(inv))
	for _, rec := range inv {
		if q != "" &&
			!strings.Contains(strings.ToLower(rec.Name), q) &&
			!strings.Contains(strings.ToLower(rec.Brand), q) {
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		switch sortBy {
		case SortByBrand:
			return strings.ToLower(records[i].Brand) < strings.ToLower(records[j].Brand)
		case SortByQuantity:
			return records[i].Quantity > records[j].Quantity
		default:
			return strings.ToLower(records[i].Name) < strings.ToLower(records[j].Name)
		}
	})

	return records, nil
}
