package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequired sets the keys Load refuses to start without.
func setRequired(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123456:test-token")
	t.Setenv("ORDER_WEBHOOK_URL", "https://orders.test/hook")
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	setRequired(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Host.InitDataMaxAge)
	assert.Equal(t, 150, cfg.Shop.DeliveryFee)
	assert.Equal(t, 500, cfg.Shop.FreeDeliveryFrom)
	assert.Equal(t, 300, cfg.Shop.MinOrder)
	assert.Equal(t, 100, cfg.Shop.PointsPerUnit)
	assert.Equal(t, "08:00", cfg.Shop.OpeningTime)
	assert.Equal(t, "22:00", cfg.Shop.ClosingTime)
	assert.Equal(t, time.Hour, cfg.Checkout.DraftTTL)
	assert.Equal(t, 30*time.Second, cfg.Checkout.DraftSaveInterval)
	assert.Equal(t, 10, cfg.Checkout.HistoryLimit)
	assert.Equal(t, 3, cfg.Endpoints.SubmitAttempts)
	assert.Empty(t, cfg.Endpoints.MenuURL)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("MIN_ORDER", "400")
	t.Setenv("DRAFT_TTL", "90m")
	t.Setenv("MENU_API_URL", "https://menu.test/api")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, 400, cfg.Shop.MinOrder)
	assert.Equal(t, 90*time.Minute, cfg.Checkout.DraftTTL)
	assert.Equal(t, "https://menu.test/api", cfg.Endpoints.MenuURL)
	assert.Equal(t, "123456:test-token", cfg.Host.BotToken)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
BOT_TOKEN=file-token
ORDER_WEBHOOK_URL=https://staging.example.com/orders
SHOP_NAME=Staging Beans
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "Staging Beans", cfg.Shop.Name)
	assert.Equal(t, "file-token", cfg.Host.BotToken)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("BOT_TOKEN")
	os.Unsetenv("ORDER_WEBHOOK_URL")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}

// TestLoad_UnknownDriver verifies that only known store drivers are accepted.
func TestLoad_UnknownDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("STORE_DRIVER", "memcached")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestShopConfig_Location(t *testing.T) {
	_, err := ShopConfig{Timezone: "Not/AZone"}.Location()
	assert.Error(t, err)

	loc, err := ShopConfig{Timezone: "Europe/Moscow"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

// TestLoad_UnknownTimezone verifies that a bad SHOP_TIMEZONE fails loading instead of running in UTC.
func TestLoad_UnknownTimezone(t *testing.T) {
	setRequired(t)
	t.Setenv("SHOP_TIMEZONE", "Mars/Olympus")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SHOP_TIMEZONE")
}
