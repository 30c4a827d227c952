package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is read once at startup and never mutated afterwards.
type Config struct {
	ClearbitAPIKey string
	UserAgent      string
	Timeout        time.Duration
	KnowledgeFile  string
	EnableWhois    bool
	SkipChromedp   bool
	ChromePath     string
	Port           string
}

// Load reads configuration from the environment. Call godotenv.Load first if
// a .env file should be honoured.
func Load() (Config, error) {
	cfg := Config{
		ClearbitAPIKey: strings.TrimSpace(os.Getenv("CLEARBIT_API_KEY")),
		UserAgent:      strings.TrimSpace(os.Getenv("SAFELINK_USER_AGENT")),
		KnowledgeFile:  strings.TrimSpace(os.Getenv("SAFELINK_KNOWLEDGE_FILE")),
		ChromePath:     strings.TrimSpace(os.Getenv("CHROME_PATH")),
		Port:           strings.TrimSpace(os.Getenv("PORT")),
		SkipChromedp:   true,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if v := os.Getenv("SAFELINK_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return Config{}, fmt.Errorf("SAFELINK_TIMEOUT_SECONDS: %w", err)
		}
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	var err error
	if cfg.EnableWhois, err = envBool("SAFELINK_WHOIS", false); err != nil {
		return Config{}, err
	}
	if cfg.SkipChromedp, err = envBool("SKIP_CHROMEDP", true); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
