package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      FPLAPI
		expected string
	}{
		{
			name:     "upstream",
			cfg:      FPLAPI{Base: "https://fantasy.premierleague.com/api/"},
			expected: "https://fantasy.premierleague.com/api",
		},
		{
			name:     "empty base falls back to default",
			cfg:      FPLAPI{},
			expected: DefaultAPIBase,
		},
		{
			name:     "same-origin proxy path",
			cfg:      FPLAPI{Base: DefaultAPIBase, ProxyPrefix: "/fpl-proxy/", PageOrigin: "http://localhost:8080/"},
			expected: "http://localhost:8080/fpl-proxy",
		},
		{
			name:     "absolute proxy",
			cfg:      FPLAPI{Base: DefaultAPIBase, ProxyPrefix: "https://proxy.example.com/fpl"},
			expected: "https://proxy.example.com/fpl",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cfg.BaseURL())
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("FPL_PROXY_PREFIX", "/api-proxy")
	t.Setenv("FPL_PAGE_ORIGIN", "https://board.example.com")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "https://board.example.com/api-proxy", cfg.FPLAPI.BaseURL())
	assert.Equal(t, "fplboard/1.0", cfg.FPLAPI.UserAgent)
	assert.Empty(t, cfg.TelegramBot.Token)
}
