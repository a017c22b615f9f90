package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coffee-checkout/internal/core/httpclient"
	"coffee-checkout/internal/core/identity"
	"coffee-checkout/internal/features/loyalty/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLoyaltyService is a mock implementation of ports.LoyaltyService
type MockLoyaltyService struct {
	mock.Mock
}

func (m *MockLoyaltyService) Balance(ctx context.Context) domain.Balance {
	args := m.Called(ctx)
	return args.Get(0).(domain.Balance)
}

func TestLoyaltyHandler_Balance(t *testing.T) {
	mockService := new(MockLoyaltyService)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(identity.LocalsKey, &identity.Identity{User: identity.User{ID: 9}, Token: "tok"})
		return c.Next()
	})
	app.Get("/loyalty", NewLoyaltyHandler(mockService, 100).Balance)

	tokenForwarded := mock.MatchedBy(func(ctx context.Context) bool {
		return httpclient.AuthToken(ctx) == "tok"
	})
	mockService.On("Balance", tokenForwarded).Return(domain.Balance{Points: 1250, Level: &domain.Level{Name: "Gold"}}).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/loyalty", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body BalanceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 1250, body.Points)
	assert.Equal(t, 12, body.MaxDiscount)
	assert.Equal(t, "Gold", body.Level.Name)
	mockService.AssertExpectations(t)
}
