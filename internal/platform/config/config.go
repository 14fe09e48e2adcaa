package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tax_liability_app/internal/core/domain"
	"github.com/SscSPs/tax_liability_app/internal/utils/taxation"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	LogLevel           slog.Level
	JWTSecret          string
	CORSAllowedOrigins []string
	RateLimit          string // ulule formatted, e.g. "100-M"
	UserCacheTTL       time.Duration

	TaxPolicy domain.TaxPolicy
}

func setDefaults() {
	defaults := taxation.DefaultPolicy()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("USER_CACHE_TTL", "5m")

	viper.SetDefault("TAX_PERIOD", defaults.Period)
	viper.SetDefault("TAX_SLABS", taxation.DefaultSlabs)
	viper.SetDefault("TAX_APPRECIATION_RATE", defaults.AppreciationRate.String())
	viper.SetDefault("TAX_STCG_RATE", defaults.ShortTermGainsRate.String())
	viper.SetDefault("TAX_CESS_RATE", defaults.CessRate.String())
	viper.SetDefault("TAX_HOUSING_CAP", defaults.HousingDeductionCap.String())
	viper.SetDefault("TAX_FIXED_DEDUCTION", defaults.FixedStatutoryDeduction.String())
	viper.SetDefault("TAX_IDENTITY_PLACEHOLDER", defaults.IdentityPlaceholder)
	viper.SetDefault("TAX_NET_CAPITAL_LOSSES", defaults.NetCapitalLosses)
	viper.SetDefault("TAX_HOLDINGS_SCOPE", string(defaults.HoldingsScope))
}

// LoadConfig loads configuration from environment variables and .env file if present.
// An invalid tax policy is an error; the service must not start with one.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	setDefaults()
	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:   viper.GetString("PGSQL_URL"),
		Port:          viper.GetString("PORT"),
		IsProduction:  viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck: viper.GetBool("ENABLE_DB_CHECK"),
		LogLevel:      ParseLogLevel(viper.GetString("LOG_LEVEL")),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		RateLimit:     viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	ttlStr := viper.GetString("USER_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 5 * time.Minute
		log.Printf("Warning: Invalid value for USER_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.UserCacheTTL = ttl

	policy, err := LoadTaxPolicy()
	if err != nil {
		return nil, err
	}
	cfg.TaxPolicy = policy

	return cfg, nil
}

// LoadTaxPolicy reads the TAX_* keys into a validated policy.
func LoadTaxPolicy() (domain.TaxPolicy, error) {
	setDefaults()
	viper.AutomaticEnv()

	slabs, err := taxation.ParseSlabs(viper.GetString("TAX_SLABS"))
	if err != nil {
		return domain.TaxPolicy{}, fmt.Errorf("TAX_SLABS: %w", err)
	}

	policy := domain.TaxPolicy{
		Period:              strings.TrimSpace(viper.GetString("TAX_PERIOD")),
		Slabs:               slabs,
		IdentityPlaceholder: viper.GetString("TAX_IDENTITY_PLACEHOLDER"),
		NetCapitalLosses:    viper.GetBool("TAX_NET_CAPITAL_LOSSES"),
		HoldingsScope:       domain.HoldingsScope(strings.ToLower(strings.TrimSpace(viper.GetString("TAX_HOLDINGS_SCOPE")))),
	}

	decimals := []struct {
		key    string
		target *decimal.Decimal
	}{
		{"TAX_APPRECIATION_RATE", &policy.AppreciationRate},
		{"TAX_STCG_RATE", &policy.ShortTermGainsRate},
		{"TAX_CESS_RATE", &policy.CessRate},
		{"TAX_HOUSING_CAP", &policy.HousingDeductionCap},
		{"TAX_FIXED_DEDUCTION", &policy.FixedStatutoryDeduction},
	}
	for _, d := range decimals {
		raw := viper.GetString(d.key)
		value, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return domain.TaxPolicy{}, fmt.Errorf("%s: %w: %q is not a decimal", d.key, taxation.ErrInvalidPolicy, raw)
		}
		*d.target = value
	}

	if err := taxation.ValidatePolicy(policy); err != nil {
		return domain.TaxPolicy{}, err
	}
	return policy, nil
}

// ParseLogLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
