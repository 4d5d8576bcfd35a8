package config

import (
	"fmt"
	"time"
)

// Config holds runtime settings for the forestadmin CLI.
//
// Env tags are read by the env layer only; a variable that is not set
// leaves the field untouched.
type Config struct {
	APIBaseURL     string        `env:"API_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	UploadTimeout  time.Duration `env:"UPLOAD_TIMEOUT"`
	DraftsDSN      string        `env:"DRAFTS_DSN"`
	LogLevel       string        `env:"LOG_LEVEL"`

	ImageLimit    int   `env:"IMAGE_LIMIT"`
	ImageMaxBytes int64 `env:"IMAGE_MAX_BYTES"`
	VideoMaxBytes int64 `env:"VIDEO_MAX_BYTES"`

	// Parallel bounds concurrent transfers; 0 means unbounded.
	Parallel int `env:"PARALLEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.UploadTimeout = 10 * time.Minute
	c.DraftsDSN = "forestadmin.db"
	c.LogLevel = "info"
	c.ImageLimit = 6
	c.ImageMaxBytes = 10 << 20
	c.VideoMaxBytes = 100 << 20
	c.Parallel = 4
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	switch {
	case c.APIBaseURL == "":
		return fmt.Errorf("config: api url is empty")
	case c.RequestTimeout <= 0 || c.UploadTimeout <= 0:
		return fmt.Errorf("config: timeouts must be positive")
	case c.ImageLimit <= 0:
		return fmt.Errorf("config: image limit must be positive")
	case c.Parallel < 0:
		return fmt.Errorf("config: parallel must not be negative")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then overlays JSON, the
// environment and command-line flags. Later sources take precedence.
// args are the program arguments without the program name.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
