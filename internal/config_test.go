package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Host:          "localhost",
		Port:          8080,
		WebsocketPath: "/ws",
		MetricsPath:   "/metrics",
		Title:         "webconsole",
		WriteTimeout:  10 * time.Second,
		ReadLimit:     4096,
		LogLevel:      "INFO",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("LOG_LEVEL", "DEBUG")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("localhost", config.Host)
	req.Equal(8080, config.Port)
	req.Equal("/ws", config.WebsocketPath)
	req.Equal(10*time.Second, config.WriteTimeout)
	req.Equal(4096, config.ReadLimit)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	req := require.New(t)
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("CONSOLE_PORT", "9000")
	t.Setenv("CONSOLE_WEBSOCKET_PATH", "/console")
	t.Setenv("CONSOLE_WRITE_TIMEOUT", "2s")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal(9000, config.Port)
	req.Equal("/console", config.WebsocketPath)
	req.Equal(2*time.Second, config.WriteTimeout)

	module := config.Module()
	req.Equal(config.Port, module.Port)
	req.Equal(config.WebsocketPath, module.WebsocketPath)
	req.Equal(config.WriteTimeout, module.WriteTimeout)
}

func TestConfig_Validate(t *testing.T) {
	cases := map[string]func(*Config){
		"port out of range":         func(c *Config) { c.Port = 70000 },
		"relative websocket path":   func(c *Config) { c.WebsocketPath = "ws" },
		"metrics on websocket path": func(c *Config) { c.MetricsPath = c.WebsocketPath },
		"zero write timeout":        func(c *Config) { c.WriteTimeout = 0 },
		"zero read limit":           func(c *Config) { c.ReadLimit = 0 },
		"unknown log level":         func(c *Config) { c.LogLevel = "LOUD" },
	}

	require.NoError(t, validConfig().Validate())
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := validConfig()
			mutate(&config)
			require.Error(t, config.Validate())
		})
	}

	config := validConfig()
	config.MetricsPath = ""
	require.NoError(t, config.Validate())
}
