package handler

import (
	"net/http"

	"coffee-checkout/internal/core/identity"
	"coffee-checkout/internal/core/server"
	"coffee-checkout/internal/features/menu/domain"
	"coffee-checkout/internal/features/menu/ports"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// MenuHandler handles HTTP requests for the menu.
type MenuHandler struct {
	service ports.MenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{
		service: service,
	}
}

// ListQuery holds the menu filter query parameters.
type ListQuery struct {
	Category string `query:"category" validate:"max=64"`
	Search   string `query:"search" validate:"max=100"`
	Filter   string `query:"filter" validate:"omitempty,oneof=all popular new discount"`
}

// List handles GET /menu.
// @Summary List menu products
// @Description Returns the menu, optionally filtered by category, search term and flag.
// @Tags Menu
// @Produce json
// @Param category query string false "Category name"
// @Param search query string false "Search in name and description"
// @Param filter query string false "all, popular, new or discount"
// @Success 200 {array} domain.Product
// @Failure 400 {object} server.ErrorResponse
// @Router /menu [get]
func (h *MenuHandler) List(c *fiber.Ctx) error {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid query")
	}
	if err := validate.Struct(q); err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid filter. Must be all, popular, new or discount")
	}

	products := h.service.List(identity.UserContext(c), domain.Filter{
		Category: q.Category,
		Search:   q.Search,
		Kind:     domain.FilterKind(q.Filter),
	})

	return c.Status(http.StatusOK).JSON(products)
}

// Categories handles GET /menu/categories.
// @Summary List menu categories
// @Tags Menu
// @Produce json
// @Success 200 {array} domain.Category
// @Router /menu/categories [get]
func (h *MenuHandler) Categories(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Categories(identity.UserContext(c)))
}
