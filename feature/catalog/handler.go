package catalog

import (
	"errors"

	"catalog-manager/core/logger"
	"catalog-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/items", h.HandleListItems)
	group.Get("/stats", h.HandleStats)
	group.Post("/sync", h.HandleSync)
	group.Get("/sync/:id", h.HandleGetPlan)
	group.Post("/sync/:id/apply", h.HandleApply)
}

// HandleListItems lists the stored catalog.
// @Summary List Catalog Items
// @Description Returns the stored catalog in snapshot order, optionally filtered by status.
// @Tags catalog
// @Produce json
// @Param status query string false "Filter by status (active, archived, new)"
// @Success 200 {array} reconcile.CatalogItem
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/items [get]
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	items, err := h.service.ListItems(c.Context(), c.Query("status"))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list catalog items", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(items)
}

// HandleStats returns item counts per status.
// @Summary Catalog Stats
// @Description Returns the number of stored items per status.
// @Tags catalog
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to count catalog items", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

// HandleSync plans a reconciliation.
// @Summary Plan Reconciliation
// @Description Fetches the feed and campaign codes, reconciles them with the stored catalog and returns the plan for review. Nothing is persisted.
// @Tags catalog
// @Produce json
// @Success 200 {object} reconcile.ReconcilePlan
// @Failure 502 {object} map[string]string "Input fetch failed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering catalog reconciliation")

	plan, err := h.service.Sync(c.Context())
	if err != nil {
		var fetchErr *reconcile.FetchError
		if errors.As(err, &fetchErr) {
			l.Error("Reconciliation input fetch failed", zap.String("source", fetchErr.Source), zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error(), "source": fetchErr.Source})
		}
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// HandleGetPlan returns a stored plan.
// @Summary Get Plan
// @Description Returns a previously built reconciliation plan.
// @Tags catalog
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} reconcile.ReconcilePlan
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 410 {object} map[string]string "Plan expired"
// @Router /catalog/sync/{id} [get]
func (h *Handler) HandleGetPlan(c *fiber.Ctx) error {
	plan, err := h.service.GetPlan(c.Params("id"))
	if err != nil {
		return planError(c, err)
	}
	return c.JSON(plan)
}

// HandleApply persists a stored plan.
// @Summary Apply Plan
// @Description Writes the merged catalog of a reviewed plan. With dry_run=true nothing is written.
// @Tags catalog
// @Produce json
// @Param id path string true "Plan ID"
// @Param dry_run query boolean false "Report without writing"
// @Success 200 {object} ApplyResult
// @Failure 404 {object} map[string]string "Plan not found"
// @Failure 410 {object} map[string]string "Plan expired"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/sync/{id}/apply [post]
func (h *Handler) HandleApply(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	dryRun := c.Query("dry_run") == "true"

	result, err := h.service.Apply(c.Context(), c.Params("id"), dryRun)
	if err != nil {
		if errors.Is(err, reconcile.ErrPlanNotFound) || errors.Is(err, reconcile.ErrPlanExpired) {
			return planError(c, err)
		}
		l.Error("Failed to apply plan", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(result)
}

func planError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, reconcile.ErrPlanExpired):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, reconcile.ErrPlanNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
