package handler

import (
	"net/http"

	"coffee-checkout/internal/core/identity"
	"coffee-checkout/internal/features/loyalty/domain"
	"coffee-checkout/internal/features/loyalty/ports"

	"github.com/gofiber/fiber/v2"
)

// LoyaltyHandler handles HTTP requests for the loyalty balance.
type LoyaltyHandler struct {
	service       ports.LoyaltyService
	pointsPerUnit int
}

// NewLoyaltyHandler creates a new LoyaltyHandler.
func NewLoyaltyHandler(service ports.LoyaltyService, pointsPerUnit int) *LoyaltyHandler {
	return &LoyaltyHandler{
		service:       service,
		pointsPerUnit: pointsPerUnit,
	}
}

// BalanceResponse is the loyalty balance with its discount value.
type BalanceResponse struct {
	Points      int           `json:"points"`
	Level       *domain.Level `json:"level,omitempty"`
	MaxDiscount int           `json:"maxDiscount"`
}

// Balance handles GET /loyalty.
// @Summary Get loyalty balance
// @Description Returns the caller's points and the discount they convert to. Zero when unavailable.
// @Tags Loyalty
// @Produce json
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} server.ErrorResponse
// @Router /loyalty [get]
func (h *LoyaltyHandler) Balance(c *fiber.Ctx) error {
	balance := h.service.Balance(identity.UserContext(c))

	return c.Status(http.StatusOK).JSON(BalanceResponse{
		Points:      balance.Points,
		Level:       balance.Level,
		MaxDiscount: balance.MaxDiscount(h.pointsPerUnit),
	})
}
