package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration. Values come from config.yaml in
// the working directory when present, overridden by STOREFRONT_* environment
// variables, with defaults suitable for local development.
type Config struct {
	Addr           string
	CatalogPath    string
	PromosPath     string
	StorageBackend string // memory | redis | postgres
	RedisAddr      string
	DatabaseURL    string
	StateKeyPrefix string
	StateTTL       time.Duration
	SaveDelay      time.Duration
	AdminPassword  string
	JWTSecret      string
	RateLimit      float64
	RateBurst      int
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("storefront")
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("catalog_path", "assets/products.json")
	v.SetDefault("promos_path", "")
	v.SetDefault("storage_backend", "memory")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("database_url", "")
	v.SetDefault("state_key_prefix", "storefront:state:")
	v.SetDefault("state_ttl", "720h")
	v.SetDefault("save_delay", "200ms")
	v.SetDefault("admin_password", "changeme")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("rate_limit", 5)
	v.SetDefault("rate_burst", 10)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	return &Config{
		Addr:           v.GetString("addr"),
		CatalogPath:    v.GetString("catalog_path"),
		PromosPath:     v.GetString("promos_path"),
		StorageBackend: v.GetString("storage_backend"),
		RedisAddr:      v.GetString("redis_addr"),
		DatabaseURL:    v.GetString("database_url"),
		StateKeyPrefix: v.GetString("state_key_prefix"),
		StateTTL:       v.GetDuration("state_ttl"),
		SaveDelay:      v.GetDuration("save_delay"),
		AdminPassword:  v.GetString("admin_password"),
		JWTSecret:      v.GetString("jwt_secret"),
		RateLimit:      v.GetFloat64("rate_limit"),
		RateBurst:      v.GetInt("rate_burst"),
	}, nil
}
