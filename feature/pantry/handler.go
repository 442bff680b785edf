package pantry

import (
	"errors"

	"pantry-pal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the pantry.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the pantry routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/pantry")
	group.Get("/", h.HandleList)
	group.Post("/scan/preview", h.HandlePreviewScan)
	group.Post("/scan", h.HandleCommitScan)
	group.Post("/reset", h.HandleReset)
	group.Put("/:code/quantity", h.HandleSetQuantity)
	group.Delete("/:code", h.HandleDelete)
}

// scanRequest is the body for scan preview and commit.
// Quantity accepts any JSON scalar; invalid values coerce to 0.
type scanRequest struct {
	Code       string `json:"code"`
	Quantity   any    `json:"quantity"`
	Units      string `json:"units"`
	ManualName string `json:"manual_name"`
}

// quantityRequest is the body for a quantity edit.
type quantityRequest struct {
	Quantity any `json:"quantity"`
}

// HandleList returns the inventory records.
// @Summary List Pantry
// @Description Lists inventory records, optionally filtered by a name/brand substring and sorted.
// @Tags pantry
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive name or brand substring"
// @Param sort query string false "Sort key (name, brand, quantity)" default(name)
// @Success 200 {array} models.Record "Inventory Records"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.List(c.Context(), c.Query("search"), c.Query("sort", SortByName))
	if err != nil {
		l.Error("Pantry list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(records)
}

// HandlePreviewScan computes a scan result without persisting anything.
// @Summary Preview Scan
// @Description Computes the record a barcode scan would produce, without mutating the inventory.
// @Tags pantry
// @Accept json
// @Produce json
// @Param request body scanRequest true "Scan input"
// @Success 200 {object} models.ScanResult "Proposed Record"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/scan/preview [post]
func (h *Handler) HandlePreviewScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req scanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.PreviewScan(c.Context(), req.Code, req.Quantity, req.Units, req.ManualName)
	if err != nil {
		l.Error("Scan preview failed", zap.String("code", req.Code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleCommitScan reconciles a scan into the inventory.
// @Summary Commit Scan
// @Description Increments an existing record or creates a new one from lookup/manual data, then persists.
// @Tags pantry
// @Accept json
// @Produce json
// @Param request body scanRequest true "Scan input"
// @Success 200 {object} models.ScanResult "Committed Record"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/scan [post]
func (h *Handler) HandleCommitScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req scanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	result, err := h.service.CommitScan(c.Context(), req.Code, req.Quantity, req.Units, req.ManualName)
	if err != nil {
		l.Error("Scan commit failed", zap.String("code", req.Code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleSetQuantity overwrites a record's quantity.
// @Summary Edit Quantity
// @Description Sets the quantity of a tracked record. Values below zero are clamped to zero.
// @Tags pantry
// @Accept json
// @Produce json
// @Param code path string true "Canonical product code"
// @Param request body quantityRequest true "New quantity"
// @Success 200 {object} models.Record "Updated Record"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/{code}/quantity [put]
func (h *Handler) HandleSetQuantity(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	code := c.Params("code")

	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	rec, err := h.service.SetQuantity(c.Context(), code, req.Quantity)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
		}
		l.Error("Quantity edit failed", zap.String("code", code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rec)
}

// HandleDelete removes a single record.
// @Summary Delete Record
// @Description Removes one record from the inventory and persists the result.
// @Tags pantry
// @Accept json
// @Produce json
// @Param code path string true "Canonical product code"
// @Success 200 {object} map[string]string "Deletion Status"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/{code} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	code := c.Params("code")

	if _, err := h.service.Remove(c.Context(), code); err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "record not found"})
		}
		l.Error("Record delete failed", zap.String("code", code), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted", "code": code})
}

// HandleReset wipes the inventory.
// @Summary Reset Pantry
// @Description Replaces the entire inventory with an empty mapping and persists it.
// @Tags pantry
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Reset Status"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /pantry/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Reset(c.Context()); err != nil {
		l.Error("Pantry reset failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	l.Info("Pantry reset via API")

	return c.JSON(fiber.Map{"status": "reset"})
}
