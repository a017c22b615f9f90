package identity

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"coffee-checkout/internal/core/httpclient"
	"coffee-checkout/internal/core/logger"
	"coffee-checkout/internal/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocalsKey is the fiber locals key holding the verified *Identity.
const LocalsKey = "identity"

// Middleware rejects requests without valid init data and stores the identity in locals.
// Init data is read from X-Telegram-Init-Data or "Authorization: tma <data>".
func Middleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(httpclient.AuthHeader)
		if raw == "" {
			if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "tma ") {
				raw = strings.TrimPrefix(auth, "tma ")
			}
		}

		id, err := v.Verify(raw)
		if err != nil {
			logger.Named("identity").Warn("Rejected init data",
				zap.String("ray_id", server.RayID(c)),
				zap.Error(err),
			)

			msg := "Invalid init data"
			if errors.Is(err, ErrMissingInitData) {
				msg = "Init data is required"
			} else if errors.Is(err, ErrExpired) {
				msg = "Init data expired"
			}
			return server.Error(c, http.StatusUnauthorized, msg)
		}

		c.Locals(LocalsKey, id)
		return c.Next()
	}
}

// FromCtx returns the identity stored by Middleware.
func FromCtx(c *fiber.Ctx) (*Identity, bool) {
	id, ok := c.Locals(LocalsKey).(*Identity)
	return id, ok && id != nil
}

// UserContext returns the request context carrying the caller's init data, so backend
// calls made with it forward the host auth token.
func UserContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if id, ok := FromCtx(c); ok {
		ctx = httpclient.WithAuthToken(ctx, id.Token)
	}
	return ctx
}
