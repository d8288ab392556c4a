package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"webconsole/transport/websocket"
)

var validate = validator.New()

type Config struct {
	Host          string        `env:"CONSOLE_HOST,default=localhost" validate:"required"`
	Port          int           `env:"CONSOLE_PORT,default=8080" validate:"min=0,max=65535"`
	WebsocketPath string        `env:"CONSOLE_WEBSOCKET_PATH,default=/ws" validate:"required,startswith=/"`
	MetricsPath   string        `env:"CONSOLE_METRICS_PATH,default=/metrics" validate:"omitempty,startswith=/,nefield=WebsocketPath"`
	Title         string        `env:"CONSOLE_TITLE,default=webconsole"`
	WriteTimeout  time.Duration `env:"CONSOLE_WRITE_TIMEOUT,default=10s" validate:"gt=0"`
	ReadLimit     int           `env:"CONSOLE_READ_LIMIT,default=4096" validate:"gt=0"`
	LogLevel      string        `env:"LOG_LEVEL,required=true" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
}

// LoadConfig reads an optional .env file, then the environment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c Config) Module() websocket.Config {
	return websocket.Config{
		Host:          c.Host,
		Port:          c.Port,
		WebsocketPath: c.WebsocketPath,
		MetricsPath:   c.MetricsPath,
		Title:         c.Title,
		WriteTimeout:  c.WriteTimeout,
		ReadLimit:     int64(c.ReadLimit),
	}
}
