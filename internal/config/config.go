package config

import "os"

// Config holds runtime configuration for the storefront backend.
// Values come from the environment; cmd/app loads a .env file first so
// local development works without exporting anything.
type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string

	// Checkout handoff. BaseURL points at the payment provider's hosted
	// page; success/cancel are where the shopper lands afterwards.
	CheckoutBaseURL    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	LogLevel string
}

func Load() Config {
	return Config{
		Addr:               getenv("SHOP_ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JWTSecret:          getenv("JWT_SECRET", "dev-secret"),
		CheckoutBaseURL:    getenv("CHECKOUT_BASE_URL", "https://pay.example.com/session"),
		CheckoutSuccessURL: getenv("CHECKOUT_SUCCESS_URL", "/checkout/success"),
		CheckoutCancelURL:  getenv("CHECKOUT_CANCEL_URL", "/cart"),
		LogLevel:           getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
