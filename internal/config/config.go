package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Operator credential for the login endpoint
	OperatorUser     string
	OperatorPassword string

	// Telematics feed
	FeedBaseURL   string
	FeedAPIToken  string
	FeedAccountID string
	PollInterval  time.Duration
}

// Load loads configuration from the environment (and .env when present)
func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/fleetops.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	operatorUser := os.Getenv("OPERATOR_USER")
	if operatorUser == "" {
		operatorUser = "operator"
	}

	feedBaseURL := os.Getenv("FEED_BASE_URL")
	if feedBaseURL == "" {
		feedBaseURL = "https://api.tracking.example.com"
	}

	pollInterval := 30 * time.Second
	if v := os.Getenv("POLL_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pollInterval = time.Duration(n) * time.Second
		}
	}

	return &Config{
		Port:             port,
		DBPath:           dbPath,
		JWTSecret:        jwtSecret,
		OperatorUser:     operatorUser,
		OperatorPassword: os.Getenv("OPERATOR_PASSWORD"),
		FeedBaseURL:      feedBaseURL,
		FeedAPIToken:     os.Getenv("FEED_API_TOKEN"),
		FeedAccountID:    os.Getenv("FEED_ACCOUNT_ID"),
		PollInterval:     pollInterval,
	}
}

// FeedConfigured reports whether the telematics feed credentials are present.
// Without them the detection loop cannot run; this is the one configuration
// error surfaced to operators rather than degraded around.
func (c *Config) FeedConfigured() bool {
	return c.FeedAPIToken != "" && c.FeedAccountID != ""
}
