package handler

import (
	"net/http"

	"coffee-checkout/internal/features/shop/ports"

	"github.com/gofiber/fiber/v2"
)

// ShopHandler handles HTTP requests for the shop status.
type ShopHandler struct {
	service ports.ShopService
}

// NewShopHandler creates a new ShopHandler.
func NewShopHandler(service ports.ShopService) *ShopHandler {
	return &ShopHandler{
		service: service,
	}
}

// Status handles GET /shop.
// @Summary Get shop status
// @Description Returns the shop name, address, opening window, local time and whether it is open now.
// @Tags Shop
// @Produce json
// @Success 200 {object} domain.Status
// @Router /shop [get]
func (h *ShopHandler) Status(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.service.Status(c.UserContext()))
}
