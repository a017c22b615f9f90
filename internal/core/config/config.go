package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`

	// Store selects and configures the key-value store.
	Store StoreConfig `mapstructure:",squash"`

	// Host holds the chat-platform bridge settings.
	Host HostConfig `mapstructure:",squash"`

	// Endpoints holds the external menu, loyalty and order channels.
	Endpoints EndpointsConfig `mapstructure:",squash"`

	// Shop holds the coffee shop business rules.
	Shop ShopConfig `mapstructure:",squash"`

	// Checkout holds draft and history lifetimes.
	Checkout CheckoutConfig `mapstructure:",squash"`
}

// StoreConfig selects the key-value store backing carts, drafts and history.
type StoreConfig struct {
	// Driver is either "redis" or "sqlite".
	Driver string `mapstructure:"STORE_DRIVER" default:"redis"`
	// RedisURL is used when Driver is "redis".
	RedisURL string `mapstructure:"REDIS_URL" default:"redis://localhost:6379/0"`
	// SQLitePath is used when Driver is "sqlite".
	SQLitePath string `mapstructure:"SQLITE_PATH" default:"coffee_checkout.db"`
}

// HostConfig holds the credentials used to verify the host platform's init data.
type HostConfig struct {
	// BotToken is the bot token the init data is signed with.
	BotToken string `mapstructure:"BOT_TOKEN" required:"true"`
	// InitDataMaxAge rejects init data older than this.
	InitDataMaxAge time.Duration `mapstructure:"INIT_DATA_MAX_AGE" default:"24h"`
}

// EndpointsConfig holds the external collaborators' URLs.
type EndpointsConfig struct {
	// MenuURL is the base URL of the menu API. Empty means the built-in menu.
	MenuURL string `mapstructure:"MENU_API_URL"`
	// LoyaltyURL is the base URL of the loyalty API. Empty means a zero balance.
	LoyaltyURL string `mapstructure:"LOYALTY_API_URL"`
	// MenuCacheTTL is how long a fetched menu is reused.
	MenuCacheTTL time.Duration `mapstructure:"MENU_CACHE_TTL" default:"5m"`
	// OrderWebhookURL receives submitted orders.
	OrderWebhookURL string `mapstructure:"ORDER_WEBHOOK_URL" required:"true"`
	// SubmitAttempts is the number of delivery attempts per order.
	SubmitAttempts int `mapstructure:"SUBMIT_ATTEMPTS" default:"3"`
	// SubmitTimeout bounds a single delivery attempt.
	SubmitTimeout time.Duration `mapstructure:"SUBMIT_TIMEOUT" default:"10s"`
}

// ShopConfig holds the shop's identity and pricing rules.
type ShopConfig struct {
	Name     string `mapstructure:"SHOP_NAME" default:"Coffee Bliss"`
	Address  string `mapstructure:"SHOP_ADDRESS" default:"ул. Кофейная, 15"`
	Timezone string `mapstructure:"SHOP_TIMEZONE" default:"Europe/Moscow"`
	// OpeningTime and ClosingTime bound the [open, close) window, "HH:MM".
	OpeningTime string `mapstructure:"OPENING_TIME" default:"08:00"`
	ClosingTime string `mapstructure:"CLOSING_TIME" default:"22:00"`
	// DeliveryFee is charged for delivery below FreeDeliveryFrom.
	DeliveryFee      int `mapstructure:"DELIVERY_FEE" default:"150"`
	FreeDeliveryFrom int `mapstructure:"FREE_DELIVERY_FROM" default:"500"`
	// MinOrder is the minimum subtotal accepted past the delivery step.
	MinOrder int `mapstructure:"MIN_ORDER" default:"300"`
	// PointsPerUnit is how many loyalty points make one currency unit of discount.
	PointsPerUnit int `mapstructure:"POINTS_PER_UNIT" default:"100"`
}

// CheckoutConfig holds draft, session and history lifetimes.
type CheckoutConfig struct {
	DraftTTL          time.Duration `mapstructure:"DRAFT_TTL" default:"1h"`
	DraftSaveInterval time.Duration `mapstructure:"DRAFT_SAVE_INTERVAL" default:"30s"`
	SessionIdleTTL    time.Duration `mapstructure:"SESSION_IDLE_TTL" default:"2h"`
	HistoryLimit      int           `mapstructure:"HISTORY_LIMIT" default:"10"`
}

// Location resolves the shop's timezone.
func (s ShopConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SHOP_TIMEZONE %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Store.Driver != "redis" && config.Store.Driver != "sqlite" {
		return nil, fmt.Errorf("unsupported STORE_DRIVER: %q", config.Store.Driver)
	}

	if _, err := config.Shop.Location(); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
