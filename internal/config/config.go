package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
)

// Config holds the dashboard service settings: the two upstream API
// endpoints, fetch and paging parameters, and the local storage path.
type Config struct {
	NewsAPIURL       string  `json:"news_api_url"`
	BlogAPIURL       string  `json:"blog_api_url"`
	FetchTimeoutSecs int     `json:"fetch_timeout_secs"`
	NewsPageSize     int     `json:"news_page_size"`
	PayoutPageSize   int     `json:"payout_page_size"`
	DefaultRate      float64 `json:"default_rate"`
	DBPath           string  `json:"db_path"`
	ListenAddr       string  `json:"listen_addr"`

	// NewsAPIKey is read from the environment, never from the file.
	NewsAPIKey string `json:"-"`
}

// Validate checks that both endpoints are valid URLs and the numeric
// settings are usable.
func (cfg *Config) Validate() error {
	for _, u := range []string{cfg.NewsAPIURL, cfg.BlogAPIURL} {
		if _, err := url.ParseRequestURI(u); err != nil {
			return fmt.Errorf("invalid API URL: %s", u)
		}
	}
	if cfg.FetchTimeoutSecs < 1 {
		return errors.New("fetch timeout must be ≥ 1 second")
	}
	if cfg.NewsPageSize < 1 || cfg.PayoutPageSize < 1 {
		return errors.New("page sizes must be ≥ 1")
	}
	if cfg.DefaultRate <= 0 {
		return errors.New("default rate must be positive")
	}
	return nil
}

// LoadConfig reads the JSON file at path, decodes it into Config and
// applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := Config{
		FetchTimeoutSecs: 8,
		NewsPageSize:     5,
		PayoutPageSize:   10,
		DefaultRate:      10,
		DBPath:           "dashboard.db",
		ListenAddr:       ":8080",
	}
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	cfg.NewsAPIKey = getEnvString("NEWS_API_KEY", "")
	cfg.ListenAddr = getEnvString("DASHBOARD_ADDR", cfg.ListenAddr)
	cfg.DBPath = getEnvString("DASHBOARD_DB_PATH", cfg.DBPath)
	return &cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
