package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/fx"
)

// Config carries everything the binary needs at boot. Values come from the
// environment, with a .env file honoured outside production.
type Config struct {
	Addr        string   `mapstructure:"addr"`
	Environment string   `mapstructure:"environment"`
	DatabaseDSN string   `mapstructure:"database_dsn"`
	CORSOrigins []string `mapstructure:"cors_origins"`

	Company CompanyConfig `mapstructure:",squash"`
}

// CompanyConfig is the branding stamped onto rendered invoices.
type CompanyConfig struct {
	Name    string `mapstructure:"company_name"`
	Address string `mapstructure:"company_address"`
	Contact string `mapstructure:"company_contact"`
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func Load() (Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		// Best effort; a missing .env is fine in dev too.
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetDefault("addr", ":5137")
	v.SetDefault("environment", "development")
	v.SetDefault("database_dsn", "host=localhost user=invoice password=invoice dbname=invoice port=5432 sslmode=disable")
	v.SetDefault("cors_origins", []string{"http://localhost:4200", "https://localhost:4200"})
	v.SetDefault("company_name", "MC Computers")
	v.SetDefault("company_address", "123 Tech Avenue, Colombo 07, Sri Lanka")
	v.SetDefault("company_contact", "+94 11 234 5678 | info@mccomputers.lk")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var Module = fx.Module("config",
	fx.Provide(Load),
)
