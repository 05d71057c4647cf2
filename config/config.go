package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	Port     int
	MongoURI string
	MongoDB  string
	JWTKey   string
	Debug    bool

	PlansFile string

	// external collaborators
	PlacesAPIKey    string
	SearchAPIKey    string
	SearchEngineID  string
	CheckoutAPIURL  string
	CheckoutAPIKey  string
	CheckoutSecret  string
	CheckoutSuccess string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	MailFrom string
}

// LoadConfig reads configuration from the environment (.env honored when present).
func LoadConfig() *Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "587"))

	return &Config{
		Port:     port,
		MongoURI: getEnv("MONGO_URI", "mongodb://127.0.0.1:27017/leadflow"),
		MongoDB:  getEnv("MONGO_DB", "leadflow"),
		JWTKey:   getEnv("JWT_KEY", "your-secret-key"),
		Debug:    getEnv("GIN_MODE", "debug") == "debug",

		PlansFile: getEnv("PLANS_FILE", "config/plans.yaml"),

		PlacesAPIKey:    os.Getenv("GOOGLE_PLACES_API_KEY"),
		SearchAPIKey:    os.Getenv("GOOGLE_SEARCH_API_KEY"),
		SearchEngineID:  os.Getenv("GOOGLE_SEARCH_ENGINE_ID"),
		CheckoutAPIURL:  getEnv("CHECKOUT_API_URL", "https://api.pagamento.example/v1"),
		CheckoutAPIKey:  os.Getenv("CHECKOUT_API_KEY"),
		CheckoutSecret:  os.Getenv("CHECKOUT_WEBHOOK_SECRET"),
		CheckoutSuccess: getEnv("CHECKOUT_SUCCESS_URL", "https://app.leadflow.example/upgrade/success"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: smtpPort,
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
		MailFrom: getEnv("MAIL_FROM", "no-reply@leadflow.example"),
	}
}

// getEnv returns the env value or a default when unset.
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
