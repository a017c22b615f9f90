// Package identity verifies the user identity asserted by the host chat platform.
//
// The mini-app page receives a signed, URL-encoded init data string from the host and
// forwards it on every request. The string is both the identity proof and the opaque
// token forwarded to backend endpoints.
package identity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"
)

var (
	// ErrMissingInitData is returned when the request carries no init data.
	ErrMissingInitData = errors.New("init data missing")
	// ErrBadSignature is returned when the init data hash does not match.
	ErrBadSignature = errors.New("init data signature mismatch")
	// ErrExpired is returned when auth_date is older than the allowed age.
	ErrExpired = errors.New("init data expired")
	// ErrMalformed is returned when required fields are missing or unparsable.
	ErrMalformed = errors.New("init data malformed")
)

// User is the read-only identity the host platform asserts.
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

// Identity is a verified init data payload.
type Identity struct {
	User     User
	AuthDate time.Time
	// Token is the raw init data, forwarded as-is to backend calls.
	Token string
}

// Verifier checks init data signatures against the bot token.
type Verifier struct {
	botToken string
	maxAge   time.Duration
	now      func() time.Time
}

// NewVerifier creates a Verifier. maxAge of 0 disables the freshness check.
func NewVerifier(botToken string, maxAge time.Duration) *Verifier {
	return &Verifier{
		botToken: botToken,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Verify parses and authenticates init data.
func (v *Verifier) Verify(raw string) (*Identity, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrMissingInitData
	}

	// Freshness is checked below against v.now.
	if err := initdata.Validate(raw, v.botToken, 0); err != nil {
		if errors.Is(err, initdata.ErrSignInvalid) {
			return nil, ErrBadSignature
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	data, err := initdata.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	authDate := data.AuthDate()
	if authDate.Unix() <= 0 {
		return nil, fmt.Errorf("%w: auth_date", ErrMalformed)
	}
	if v.maxAge > 0 && v.now().Sub(authDate) > v.maxAge {
		return nil, ErrExpired
	}

	if data.User.ID == 0 {
		return nil, fmt.Errorf("%w: user", ErrMalformed)
	}

	return &Identity{
		User: User{
			ID:        data.User.ID,
			FirstName: data.User.FirstName,
			LastName:  data.User.LastName,
			Username:  data.User.Username,
			PhotoURL:  data.User.PhotoURL,
		},
		AuthDate: authDate,
		Token:    raw,
	}, nil
}
