package config

import (
	"fmt"
	"net/url"
	"os"
)

// DefaultWebAppURL is the page the start button points to when WEB_APP_URL is not set
const DefaultWebAppURL = "https://example.com"

// Config holds application configuration
type Config struct {
	TelegramToken string
	WebAppURL     string
	BotUsername   string
	LogLevel      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is required")
	}

	cfg := &Config{TelegramToken: token}

	webAppURL := os.Getenv("WEB_APP_URL")
	if webAppURL == "" {
		webAppURL = DefaultWebAppURL // default value
	}
	if err := validateWebAppURL(webAppURL); err != nil {
		return nil, fmt.Errorf("invalid WEB_APP_URL '%s': %w", webAppURL, err)
	}
	cfg.WebAppURL = webAppURL

	cfg.LogLevel = cfg.LookupEnvOrString("LOG_LEVEL", "INFO")
	cfg.BotUsername = cfg.LookupEnvOrString("BOT_USERNAME", "")

	return cfg, nil
}

// validateWebAppURL checks that the base URL is absolute http(s) and carries no query,
// since start parameters are appended after a literal '?'
func validateWebAppURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" {
		return fmt.Errorf("must not contain a query or fragment")
	}
	return nil
}
