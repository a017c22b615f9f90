package handler

import (
	"errors"
	"net/http"

	"coffee-checkout/internal/core/identity"
	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/core/server"
	"coffee-checkout/internal/features/checkout/domain"
	"coffee-checkout/internal/features/checkout/ports"
	"coffee-checkout/internal/features/checkout/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CheckoutHandler handles HTTP requests for the checkout wizard and order history.
type CheckoutHandler struct {
	service ports.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
	}
}

// ContactRequest represents the request body for PUT /checkout/contact.
type ContactRequest struct {
	Name     string `json:"name" validate:"max=100"`
	LastName string `json:"lastName" validate:"max=100"`
	Phone    string `json:"phone" validate:"max=32"`
	Email    string `json:"email" validate:"max=254"`
}

// DeliveryRequest represents the request body for PUT /checkout/delivery.
// Omitted fields are left unchanged.
type DeliveryRequest struct {
	Type          *string `json:"type" validate:"omitnil,oneof=pickup delivery"`
	Address       *string `json:"address" validate:"omitnil,max=300"`
	TimeType      *string `json:"timeType" validate:"omitnil,oneof=asap scheduled"`
	ScheduledTime *string `json:"scheduledTime" validate:"omitnil,max=5"`
}

// PaymentRequest represents the request body for PUT /checkout/payment.
type PaymentRequest struct {
	Method string `json:"method" validate:"required,oneof=cash card card_courier"`
}

// LoyaltyRequest represents the request body for PUT /checkout/loyalty.
type LoyaltyRequest struct {
	Points *int `json:"points" validate:"required,min=0"`
}

// NotesRequest represents the request body for PUT /checkout/notes.
type NotesRequest struct {
	Notes string `json:"notes" validate:"max=500"`
}

// AgreementsRequest represents the request body for PUT /checkout/agreements.
type AgreementsRequest struct {
	Terms       *bool `json:"terms"`
	Rules       *bool `json:"rules"`
	SaveContact *bool `json:"saveContact"`
}

// Begin handles POST /checkout.
// @Summary Enter checkout
// @Description Prefills the draft, restores a snapshot younger than the draft TTL and returns step 1.
// @Tags Checkout
// @Produce json
// @Success 200 {object} domain.View
// @Failure 401 {object} server.ErrorResponse
// @Failure 409 {object} server.ErrorResponse
// @Router /checkout [post]
func (h *CheckoutHandler) Begin(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	view, err := h.service.Begin(identity.UserContext(c), id)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Get handles GET /checkout.
// @Summary Get the checkout in progress
// @Tags Checkout
// @Produce json
// @Success 200 {object} domain.View
// @Failure 404 {object} server.ErrorResponse
// @Router /checkout [get]
func (h *CheckoutHandler) Get(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	view, err := h.service.Get(c.UserContext(), id.User.ID)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// UpdateContact handles PUT /checkout/contact.
// @Summary Replace the contact fields
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Contact"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Router /checkout/contact [put]
func (h *CheckoutHandler) UpdateContact(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req ContactRequest
	if err := parse(c, &req); err != nil {
		return badRequest(c, err)
	}

	view, err := h.service.UpdateContact(c.UserContext(), id.User.ID, domain.ContactInput{
		Name:     req.Name,
		LastName: req.LastName,
		Phone:    req.Phone,
		Email:    req.Email,
	})
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// UpdateDelivery handles PUT /checkout/delivery.
// @Summary Change the delivery selection
// @Description Switching to pickup clears the address and turns card payment into cash.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body DeliveryRequest true "Delivery"
// @Success 200 {object} domain.View
// @Failure 400 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Router /checkout/delivery [put]
func (h *CheckoutHandler) UpdateDelivery(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req DeliveryRequest
	if err := parse(c, &req); err != nil {
		return badRequest(c, err)
	}

	in := domain.DeliveryInput{Address: req.Address, ScheduledTime: req.ScheduledTime}
	if req.Type != nil {
		t := domain.DeliveryType(*req.Type)
		in.Type = &t
	}
	if req.TimeType != nil {
		t := domain.TimeType(*req.TimeType)
		in.TimeType = &t
	}

	view, err := h.service.UpdateDelivery(c.UserContext(), id.User.ID, in)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// SetPaymentMethod handles PUT /checkout/payment.
// @Summary Select the payment method
// @Description Card payment requires delivery.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body PaymentRequest true "Payment"
// @Success 200 {object} domain.View
// @Failure 422 {object} server.ErrorResponse
// @Router /checkout/payment [put]
func (h *CheckoutHandler) SetPaymentMethod(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req PaymentRequest
	if err := parse(c, &req); err != nil {
		return badRequest(c, err)
	}

	view, err := h.service.SetPaymentMethod(c.UserContext(), id.User.ID, domain.PaymentMethod(req.Method))
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// UsePoints handles PUT /checkout/loyalty.
// @Summary Spend loyalty points
// @Description Zero stops using points.
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body LoyaltyRequest true "Points"
// @Success 200 {object} domain.View
// @Failure 422 {object} server.ErrorResponse
// @Router /checkout/loyalty [put]
func (h *CheckoutHandler) UsePoints(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req LoyaltyRequest
	if err := parse(c, &req); err != nil {
		return badRequest(c, err)
	}

	view, err := h.service.UsePoints(c.UserContext(), id.User.ID, *req.Points)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// SetNotes handles PUT /checkout/notes.
// @Summary Set the order notes
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body NotesRequest true "Notes"
// @Success 200 {object} domain.View
// @Router /checkout/notes [put]
func (h *CheckoutHandler) SetNotes(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req NotesRequest
	if err := parse(c, &req); err != nil {
		return badRequest(c, err)
	}

	view, err := h.service.SetNotes(c.UserContext(), id.User.ID, req.Notes)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// SetAgreements handles PUT /checkout/agreements.
// @Summary Change consents and the contact opt-in
// @Tags Checkout
// @Accept json
// @Produce json
// @Param body body AgreementsRequest true "Agreements"
// @Success 200 {object} domain.View
// @Router /checkout/agreements [put]
func (h *CheckoutHandler) SetAgreements(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	var req AgreementsRequest
	if err := parse(c, &req); err != nil {
		return badRequest(c, err)
	}

	view, err := h.service.SetAgreements(c.UserContext(), id.User.ID, domain.AgreementsInput{
		Terms:       req.Terms,
		Rules:       req.Rules,
		SaveContact: req.SaveContact,
	})
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Next handles POST /checkout/next.
// @Summary Move one step forward
// @Description A refused move answers 422 with the view and its block.
// @Tags Checkout
// @Produce json
// @Success 200 {object} domain.View
// @Failure 422 {object} domain.View
// @Router /checkout/next [post]
func (h *CheckoutHandler) Next(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	view, err := h.service.Next(c.UserContext(), id.User.ID)
	if err != nil {
		return checkoutError(c, err)
	}
	if view.Block != nil {
		return c.Status(http.StatusUnprocessableEntity).JSON(view)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Back handles POST /checkout/back.
// @Summary Move one step back
// @Description On the first step the view's exit flag asks the page to leave checkout.
// @Tags Checkout
// @Produce json
// @Success 200 {object} domain.View
// @Router /checkout/back [post]
func (h *CheckoutHandler) Back(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	view, err := h.service.Back(c.UserContext(), id.User.ID)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Submit handles POST /checkout/submit.
// @Summary Place the order
// @Description Waits for the order channel. On failure nothing is cleared and the call can be retried.
// @Tags Checkout
// @Produce json
// @Success 201 {object} domain.Confirmation
// @Failure 409 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /checkout/submit [post]
func (h *CheckoutHandler) Submit(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	conf, err := h.service.Submit(c.UserContext(), id.User.ID)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(conf)
}

// History handles GET /orders/history.
// @Summary Recent orders
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.HistoryEntry
// @Router /orders/history [get]
func (h *CheckoutHandler) History(c *fiber.Ctx) error {
	id, ok := identity.FromCtx(c)
	if !ok {
		return server.Error(c, http.StatusUnauthorized, "Unauthorized")
	}

	entries, err := h.service.History(c.UserContext(), id.User.ID)
	if err != nil {
		return checkoutError(c, err)
	}
	return c.Status(http.StatusOK).JSON(entries)
}

// parse decodes and validates the request body.
func parse(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return err
	}
	return validate.Struct(req)
}

// badRequest reports a body that failed to decode or validate, with the failing fields.
func badRequest(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return server.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return c.Status(http.StatusBadRequest).JSON(server.ErrorResponse{
		Message: "Invalid request body",
		RayID:   server.RayID(c),
		Fields:  fields,
	})
}

func checkoutError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(http.StatusUnprocessableEntity).JSON(server.ErrorResponse{
			Message: verr.Block.Message,
			RayID:   server.RayID(c),
			Fields:  verr.Block.Fields,
		})
	case errors.Is(err, service.ErrNoSession):
		return server.Error(c, http.StatusNotFound, "Checkout not started")
	case errors.Is(err, service.ErrEmptyCart):
		return server.Error(c, http.StatusConflict, "Cart is empty")
	case errors.Is(err, service.ErrNotAtFinalStep), errors.Is(err, service.ErrSubmissionInProgress):
		return server.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidOption),
		errors.Is(err, domain.ErrCardRequiresDelivery),
		errors.Is(err, domain.ErrInvalidPoints):
		return server.Error(c, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrSubmissionFailed):
		logger.Get().Warn("Order not accepted", zap.Error(err), zap.String("ray_id", server.RayID(c)))
		return server.Error(c, http.StatusBadGateway, "Order could not be placed, please try again")
	}

	logger.Get().Error("Checkout failure", zap.Error(err), zap.String("ray_id", server.RayID(c)))
	return server.Error(c, http.StatusInternalServerError, "Internal server error")
}
