package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port     string `envconfig:"STOREFRONT_PORT" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	DatabaseURL    string `envconfig:"DATABASE_URL"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"./migrations"`

	// OrderIntakeURL and InventoryURL usually point at the same deployment of
	// the external store backend; they are configurable separately so the
	// order sheet and the product sheet can be split later.
	OrderIntakeURL string `envconfig:"ORDER_INTAKE_URL"`
	InventoryURL   string `envconfig:"INVENTORY_URL"`
	ClientTimeout  int    `envconfig:"CLIENT_TIMEOUT_SECONDS" default:"10"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	DesignModel  string `envconfig:"DESIGN_MODEL" default:"gemini-2.5-flash-image"`
	StylistModel string `envconfig:"STYLIST_MODEL" default:"gemini-3-flash-preview"`

	ShippingFeeLocal  int `envconfig:"SHIPPING_FEE_LOCAL" default:"60"`
	ShippingFeeRemote int `envconfig:"SHIPPING_FEE_REMOTE" default:"120"`
	CustomDesignPrice int `envconfig:"CUSTOM_DESIGN_PRICE" default:"1850"`

	AdminSeedID       string `envconfig:"ADMIN_SEED_ID"`
	AdminSeedPassword string `envconfig:"ADMIN_SEED_PASSWORD"`
	AdminTokenTTL     int    `envconfig:"ADMIN_TOKEN_TTL_MINUTES" default:"60"`
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("Warning: .env file not found, using environment variables or defaults.")
		} else {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("FATAL: failed to process environment configuration: %v", err)
	}

	if cfg.OrderIntakeURL == "" {
		log.Println("Warning: ORDER_INTAKE_URL not set, checkout submission and tracking will fail")
	}
	if cfg.InventoryURL == "" && cfg.OrderIntakeURL != "" {
		log.Println("Warning: INVENTORY_URL not set, falling back to ORDER_INTAKE_URL for catalog sync")
		cfg.InventoryURL = cfg.OrderIntakeURL
	}

	return &cfg
}
