package handler

import (
	"errors"
	"net/http"

	"coffee-checkout/internal/core/identity"
	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/core/server"
	"coffee-checkout/internal/features/cart/ports"
	"coffee-checkout/internal/features/cart/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CartHandler handles HTTP requests for the cart.
type CartHandler struct {
	service ports.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{
		service: service,
	}
}

// ChangeQuantityRequest represents the request body for PATCH /cart/items/:id.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required,min=-99,max=99"`
}

// Get handles GET /cart.
// @Summary Get the cart
// @Tags Cart
// @Produce json
// @Success 200 {object} domain.View
// @Failure 401 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	view, err := h.service.Get(c.UserContext(), id.User.ID)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// AddItem handles POST /cart/items/:id.
// @Summary Add one unit of a product
// @Description Unknown products leave the cart unchanged.
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Router /cart/items/{id} [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	productID, err := c.ParamsInt("id")
	if err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid product id")
	}

	view, err := h.service.AddItem(identity.UserContext(c), id.User.ID, productID)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// ChangeQuantity handles PATCH /cart/items/:id.
// @Summary Change an item's quantity
// @Description Applies delta; the item is removed when its quantity reaches zero.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param body body ChangeQuantityRequest true "Quantity delta"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Router /cart/items/{id} [patch]
func (h *CartHandler) ChangeQuantity(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	productID, err := c.ParamsInt("id")
	if err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid product id")
	}

	var req ChangeQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return server.Error(c, http.StatusBadRequest, "delta must be a non-zero integer between -99 and 99")
	}

	view, err := h.service.ChangeQuantity(c.UserContext(), id.User.ID, productID, req.Delta)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// RemoveItem handles DELETE /cart/items/:id.
// @Summary Remove an item
// @Tags Cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	productID, err := c.ParamsInt("id")
	if err != nil {
		return server.Error(c, http.StatusBadRequest, "Invalid product id")
	}

	view, err := h.service.RemoveItem(c.UserContext(), id.User.ID, productID)
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Clear handles DELETE /cart.
// @Summary Empty the cart
// @Description Irreversible; requires confirm=true.
// @Tags Cart
// @Produce json
// @Param confirm query bool true "Must be true"
// @Success 200 {object} domain.View
// @Failure 428 {object} server.ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	view, err := h.service.Clear(c.UserContext(), id.User.ID, c.QueryBool("confirm"))
	if errors.Is(err, service.ErrConfirmationRequired) {
		return server.Error(c, http.StatusPreconditionRequired, "Confirm clearing the cart with confirm=true")
	}
	if err != nil {
		return storeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

func storeError(c *fiber.Ctx, err error) error {
	logger.Get().Error("Cart store failure", zap.Error(err), zap.String("ray_id", server.RayID(c)))
	return server.Error(c, http.StatusInternalServerError, "Internal server error")
}
