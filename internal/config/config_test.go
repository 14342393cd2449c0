package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"news_dashboard/internal/config"

	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	err := os.WriteFile(path, []byte(content), 0o644)
	require.NoError(t, err)
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	json := `{
		"news_api_url": "https://api.example.com/v1/search",
		"blog_api_url": "https://blog.example.com/api/articles",
		"fetch_timeout_secs": 8,
		"news_page_size": 5,
		"payout_page_size": 10,
		"default_rate": 10
	}`
	path := writeTempConfig(t, json)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com/v1/search", cfg.NewsAPIURL)
	require.Equal(t, "https://blog.example.com/api/articles", cfg.BlogAPIURL)
	require.Equal(t, 8, cfg.FetchTimeoutSecs)
	require.Equal(t, 5, cfg.NewsPageSize)
	require.Equal(t, 10, cfg.PayoutPageSize)
	require.Equal(t, 10.0, cfg.DefaultRate)
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeTempConfig(t, `{
		"news_api_url": "https://api.example.com/v1/search",
		"blog_api_url": "https://blog.example.com/api/articles"
	}`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.FetchTimeoutSecs)
	require.Equal(t, ":8080", cfg.ListenAddr)
	require.Equal(t, "dashboard.db", cfg.DBPath)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "secret")
	t.Setenv("DASHBOARD_ADDR", ":9090")

	path := writeTempConfig(t, `{
		"news_api_url": "https://api.example.com/v1/search",
		"blog_api_url": "https://blog.example.com/api/articles"
	}`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "secret", cfg.NewsAPIKey)
	require.Equal(t, ":9090", cfg.ListenAddr)
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	_, err := config.LoadConfig("/nonexistent/config.json")
	require.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeTempConfig(t, `{ invalid json }`)
	_, err := config.LoadConfig(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		NewsAPIURL:       "https://api.example.com/v1/search",
		BlogAPIURL:       "https://blog.example.com/api/articles",
		FetchTimeoutSecs: 8,
		NewsPageSize:     5,
		PayoutPageSize:   10,
		DefaultRate:      10,
	}
	require.NoError(t, valid.Validate())

	badURL := valid
	badURL.BlogAPIURL = "not-a-url"
	err := badURL.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid API URL")

	badTimeout := valid
	badTimeout.FetchTimeoutSecs = 0
	require.Error(t, badTimeout.Validate())

	badPageSize := valid
	badPageSize.NewsPageSize = 0
	require.Error(t, badPageSize.Validate())

	badRate := valid
	badRate.DefaultRate = -1
	require.Error(t, badRate.Validate())
}
