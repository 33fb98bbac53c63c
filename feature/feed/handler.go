package feed

import (
	"errors"
	"strconv"

	"level-list/core/logger"
	"level-list/core/sections"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the feed.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the feed routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/feed")
	group.Get("/", h.HandleGetFeed)
	group.Post("/:type/refresh", h.HandleRefresh)
	group.Post("/:type/shimmer", h.HandleShimmer)
}

// HandleGetFeed returns every item of the feed with its layout and header key.
func (h *Handler) HandleGetFeed(c *fiber.Ctx) error {
	view, err := h.service.Snapshot(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(view)
}

// HandleRefresh reloads one section from the source.
// Query: mode=data|header|both (default both).
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	t, mode, err := parseTarget(c)
	if err != nil {
		return h.fail(c, err)
	}

	update, err := h.service.Refresh(c.UserContext(), t, mode)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(update)
}

// HandleShimmer replaces one section with loading placeholders.
// Query: count (default 3), mode=data|header|both (default both).
func (h *Handler) HandleShimmer(c *fiber.Ctx) error {
	t, mode, err := parseTarget(c)
	if err != nil {
		return h.fail(c, err)
	}

	count, err := strconv.Atoi(c.Query("count", "3"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "count must be an integer"})
	}

	update, err := h.service.Shimmer(c.UserContext(), t, count, mode)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(update)
}

func parseTarget(c *fiber.Ctx) (int, sections.Mode, error) {
	t, err := c.ParamsInt("type")
	if err != nil {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "type must be an integer")
	}
	mode, err := sections.ParseMode(c.Query("mode", "both"))
	if err != nil {
		return 0, 0, err
	}
	return t, mode, nil
}

// fail maps err onto a status code and logs server side failures.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error

	switch {
	case errors.As(err, &fe):
		status = fe.Code
	case errors.Is(err, ErrDropped):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "dropped"})
	case errors.Is(err, ErrUnknownSection):
		status = fiber.StatusNotFound
	default:
		switch sections.Classify(err) {
		case sections.KindInvalidRegistration, sections.KindInvalidInput:
			status = fiber.StatusBadRequest
		}
	}

	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.Logger(), c).Error("Feed request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
