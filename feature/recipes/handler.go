package recipes

import (
	"errors"
	"strconv"

	"pantry-pal/core/logger"
	"pantry-pal/feature/recipes/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for recipes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the recipes routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/recipes")
	group.Post("/generate", h.HandleGenerate)
	group.Post("/apply", h.HandleApply)
	group.Get("/history", h.HandleHistoryList)
	group.Delete("/history/:id", h.HandleHistoryDelete)
}

// generateRequest selects the pantry records offered to the generator.
type generateRequest struct {
	Codes []string `json:"codes"`
}

// HandleGenerate produces a recipe suggestion from selected pantry records.
// @Summary Generate Recipe
// @Description Asks the language model for a recipe using the selected pantry records (all records when codes is empty).
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body generateRequest true "Selected canonical codes"
// @Success 200 {object} models.Suggestion "Recipe Suggestion"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Generation Failed"
// @Router /recipes/generate [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	suggestion, err := h.service.Generate(c.Context(), req.Codes)
	if err != nil {
		l.Error("Recipe generation failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(suggestion)
}

// HandleApply deducts a suggestion's ingredients from the inventory.
// @Summary Apply Recipe
// @Description Subtracts the suggestion's ingredient requirements from the inventory, removing depleted records, and archives the suggestion.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body models.Suggestion true "Accepted suggestion"
// @Success 200 {object} map[string]interface{} "Updated Inventory"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /recipes/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var suggestion models.Suggestion
	if err := c.BodyParser(&suggestion); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	inv, err := h.service.Apply(c.Context(), suggestion)
	if err != nil {
		l.Error("Recipe apply failed", zap.String("title", suggestion.Title), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"items": inv})
}

// HandleHistoryList lists archived recipes.
// @Summary List Recipe History
// @Description Lists archived recipe suggestions, newest first.
// @Tags recipes
// @Accept json
// @Produce json
// @Success 200 {array} models.ArchivedRecipe "Archived Recipes"
// @Failure 503 {object} map[string]string "History Unavailable"
// @Router /recipes/history [get]
func (h *Handler) HandleHistoryList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.History().List(c.Context())
	if err != nil {
		if errors.Is(err, ErrHistoryUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "history store is not configured"})
		}
		l.Error("History list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(records)
}

// HandleHistoryDelete removes one archived recipe.
// @Summary Delete Recipe History Entry
// @Description Deletes a single archived recipe by ID.
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path int true "Archived recipe ID"
// @Success 200 {object} map[string]string "Deletion Status"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "History Unavailable"
// @Router /recipes/history/{id} [delete]
func (h *Handler) HandleHistoryDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid history id"})
	}

	if err := h.service.History().Delete(c.Context(), uint(id)); err != nil {
		switch {
		case errors.Is(err, ErrHistoryNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "history entry not found"})
		case errors.Is(err, ErrHistoryUnavailable):
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "history store is not configured"})
		default:
			l.Error("History delete failed", zap.Uint64("id", id), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.JSON(fiber.Map{"status": "deleted"})
}
