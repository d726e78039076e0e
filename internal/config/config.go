package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Renderer RendererConfig `mapstructure:"renderer"`
	Drive    DriveConfig    `mapstructure:"drive"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig represents the HTTP listener configuration
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	ReadTimeout    string   `mapstructure:"read_timeout"`
	WriteTimeout   string   `mapstructure:"write_timeout"`
}

// AuthConfig represents caller authentication configuration
type AuthConfig struct {
	GoogleClientID string   `mapstructure:"google_client_id"`
	AllowedDomains []string `mapstructure:"allowed_domains"`
}

// RendererConfig represents the headless Chrome configuration
type RendererConfig struct {
	ChromePath string `mapstructure:"chrome_path"` // empty uses PATH lookup
	Timeout    string `mapstructure:"timeout"`
}

// DriveConfig represents Google Drive upload configuration
type DriveConfig struct {
	DefaultFolderID string `mapstructure:"default_folder_id"`
	ShareUploads    bool   `mapstructure:"share_uploads"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/calendar-pdf-service")
	}

	v.SetDefault("server.port", 8080)
	v.SetDefault("drive.share_uploads", true)

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	if c.Auth.GoogleClientID == "" {
		return fmt.Errorf("auth.google_client_id is required")
	}
	if len(c.Auth.AllowedDomains) == 0 {
		return fmt.Errorf("auth.allowed_domains must list at least one domain")
	}

	if c.Renderer.Timeout != "" {
		if _, err := time.ParseDuration(c.Renderer.Timeout); err != nil {
			return fmt.Errorf("renderer.timeout is not a valid duration: %w", err)
		}
	}

	return nil
}

// GetRenderTimeout returns the renderer timeout duration
func (c *RendererConfig) GetRenderTimeout() time.Duration {
	if c.Timeout == "" {
		return 0 // adapter default
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return duration
}

// GetReadTimeout returns the HTTP read timeout duration
func (c *ServerConfig) GetReadTimeout() time.Duration {
	return parseDurationOr(c.ReadTimeout, 30*time.Second)
}

// GetWriteTimeout returns the HTTP write timeout duration.
// PDF rendering plus upload can take a while, hence the generous default.
func (c *ServerConfig) GetWriteTimeout() time.Duration {
	return parseDurationOr(c.WriteTimeout, 2*time.Minute)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Auth.GoogleClientID = os.ExpandEnv(c.Auth.GoogleClientID)
	c.Drive.DefaultFolderID = os.ExpandEnv(c.Drive.DefaultFolderID)
}
