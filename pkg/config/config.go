package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/soccerlab/rater-api/internal/models"
	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("RATER")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
			// Config file doesn't exist, which is fine - we'll use defaults
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	// An empty dimension list means the form would render nothing and
	// every submission would pass the completeness check vacuously, so
	// fall back to the study's default axes.
	if len(config.Rating.Dimensions) == 0 {
		config.Rating.Dimensions = models.DefaultDimensions()
	}
	return &config, nil
}

// Get returns a config value by key using Viper directly
func Get(key string) any {
	return viper.Get(key)
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values. Missing
// optional pieces degrade with a warning instead of aborting: a missing
// video directory or metadata database just means an empty clip list.
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("videos.source_path") == "" {
		fmt.Println("Warning: No video source path configured - the clip queue will be empty")
	}

	if viper.GetString("metadata.path") == "" {
		fmt.Println("Warning: No metadata database configured - clips will render placeholder metadata")
	}

	// Auto-correct a negative saturation cap (0 disables the cap)
	if viper.GetInt("rating.max_ratings_per_clip") < 0 {
		viper.Set("rating.max_ratings_per_clip", 0)
	}

	// The queue ordering policy must be an explicit, recognized choice
	switch shuffle := viper.GetString("rating.shuffle"); shuffle {
	case "seeded", "random", "none":
	default:
		fmt.Printf("Warning: Unknown shuffle policy %q - falling back to seeded\n", shuffle)
		viper.Set("rating.shuffle", "seeded")
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Rating.MaxRatingsPerClip < 0 {
		c.Rating.MaxRatingsPerClip = 0
	}

	switch c.Rating.Shuffle {
	case "seeded", "random", "none":
	default:
		c.Rating.Shuffle = "seeded"
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Storage defaults mirror the record layout used by the study
	viper.SetDefault("storage.ratings_path", "./user_ratings")
	viper.SetDefault("storage.profiles_path", "./user_data")
	viper.SetDefault("storage.export_path", "./output")

	// Video source defaults
	viper.SetDefault("videos.source_path", "./videos")
	viper.SetDefault("videos.extensions", []string{".mp4", ".mov", ".mkv", ".webm"})

	// Metadata defaults
	viper.SetDefault("metadata.path", "./data/events.db")
	viper.SetDefault("metadata.verbose", false)

	// Rating defaults
	viper.SetDefault("rating.max_ratings_per_clip", 3)
	viper.SetDefault("rating.shuffle", "seeded")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
}
