package cfg

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/danny0094/mcp-bridge-stack/router"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	ListenAddr string    `env:"BRIDGE_LISTEN_ADDR" envDefault:":4000"`
	LogLevel   log.Level `env:"BRIDGE_LOG_LEVEL" envDefault:"info"`
	Registry   struct {
		// Path of the JSON registry document
		Path           string        `env:"BRIDGE_REGISTRY_PATH" envDefault:"/app/config/mcp_registry.json"`
		ReloadInterval time.Duration `env:"BRIDGE_RELOAD_INTERVAL" envDefault:"3s"`
	}
	Routing struct {
		// Policy for requests that do not name a route
		Mode       router.Mode `env:"BRIDGE_DEFAULT_MODE" envDefault:"first"`
		FallbackID string      `env:"BRIDGE_FALLBACK_ID" envDefault:"dummy"`
	}
	Decision struct {
		URL     string        `env:"BRIDGE_DECISION_URL" envDefault:"http://decision-agent:4300/route"`
		Timeout time.Duration `env:"BRIDGE_DECISION_TIMEOUT" envDefault:"5s"`
	}
	Forward struct {
		Timeout time.Duration `env:"BRIDGE_FORWARD_TIMEOUT" envDefault:"10s"`
		// Optional PEM bundle trusted for backend and delegate TLS
		BackendCAFile string `env:"BRIDGE_BACKEND_CA_FILE"`
	}
	// SQLite file for routing events. Events are logged when unset.
	AuditDB string `env:"BRIDGE_AUDIT_DB"`
}

func Load() (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if _, err := router.ParseMode(string(c.Routing.Mode)); err != nil {
		return nil, fmt.Errorf("BRIDGE_DEFAULT_MODE: %w", err)
	}
	if c.Registry.ReloadInterval <= 0 {
		return nil, errors.New("BRIDGE_RELOAD_INTERVAL must be positive")
	}
	if c.Decision.Timeout <= 0 {
		return nil, errors.New("BRIDGE_DECISION_TIMEOUT must be positive")
	}
	if c.Forward.Timeout <= 0 {
		return nil, errors.New("BRIDGE_FORWARD_TIMEOUT must be positive")
	}
	if c.Routing.FallbackID == "" {
		return nil, errors.New("BRIDGE_FALLBACK_ID must not be empty")
	}

	return c, nil
}

type TimeToolConfig struct {
	ListenAddr string `env:"MCPTIME_LISTEN_ADDR" envDefault:":4210"`
}

func LoadTimeTool() (*TimeToolConfig, error) {
	c := &TimeToolConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
