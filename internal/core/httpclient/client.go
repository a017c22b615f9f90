package httpclient

import (
	"context"
	"net/http"
	"time"

	"coffee-checkout/internal/core/logger"

	"go.uber.org/zap"
)

// AuthHeader carries the host platform's init data to backend endpoints.
const AuthHeader = "X-Telegram-Init-Data"

type authTokenKey struct{}

// WithAuthToken returns a context whose outgoing requests carry token in AuthHeader.
func WithAuthToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, authTokenKey{}, token)
}

// AuthToken returns the token stored by WithAuthToken, if any.
func AuthToken(ctx context.Context) string {
	token, _ := ctx.Value(authTokenKey{}).(string)
	return token
}

// AuthForwardingRoundTripper copies the context's auth token into the request headers.
type AuthForwardingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip sets AuthHeader when the request context carries a token.
func (a *AuthForwardingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token := AuthToken(req.Context())
	if token == "" || req.Header.Get(AuthHeader) != "" {
		return a.Proxied.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set(AuthHeader, token)
	return a.Proxied.RoundTrip(clone)
}

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	log := logger.Named("httpclient")

	log.Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		log.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	log.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with auth forwarding and logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: &AuthForwardingRoundTripper{
				Proxied: http.DefaultTransport,
			},
		},
		Timeout: timeout,
	}
}
