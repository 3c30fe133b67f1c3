package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const DefaultAPIBase = "https://fantasy.premierleague.com/api"

type Config struct {
	TelegramBot TelegramBot
	FPLAPI      FPLAPI
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type FPLAPI struct {
	Base        string `envconfig:"FPL_API_BASE" default:"https://fantasy.premierleague.com/api"`
	ProxyPrefix string `envconfig:"FPL_PROXY_PREFIX"`
	PageOrigin  string `envconfig:"FPL_PAGE_ORIGIN" default:"http://localhost:8080"`
	UserAgent   string `envconfig:"FPL_USER_AGENT" default:"fplboard/1.0"`
}

// BaseURL returns the host requests are sent to. A proxy prefix replaces the
// upstream host; a path-only prefix is resolved against the page origin.
func (c FPLAPI) BaseURL() string {
	prefix := strings.TrimSpace(c.ProxyPrefix)
	if prefix == "" {
		base := strings.TrimRight(strings.TrimSpace(c.Base), "/")
		if base == "" {
			return DefaultAPIBase
		}
		return base
	}
	if strings.HasPrefix(prefix, "/") {
		return strings.TrimRight(c.PageOrigin, "/") + strings.TrimRight(prefix, "/")
	}
	return strings.TrimRight(prefix, "/")
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
