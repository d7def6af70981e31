package config

import (
	"time"

	"github.com/soccerlab/rater-api/internal/models"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Videos   VideosConfig   `mapstructure:"videos"`
	Metadata MetadataConfig `mapstructure:"metadata"`
	Rating   RatingConfig   `mapstructure:"rating"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int           `mapstructure:"max_body_bytes"`
}

// StorageConfig contains the record directories and the export target
type StorageConfig struct {
	RatingsPath  string `mapstructure:"ratings_path"`
	ProfilesPath string `mapstructure:"profiles_path"`
	ExportPath   string `mapstructure:"export_path"`
}

// VideosConfig contains the clip source settings
type VideosConfig struct {
	SourcePath string   `mapstructure:"source_path"`
	Extensions []string `mapstructure:"extensions"`
}

// MetadataConfig contains the events database settings
type MetadataConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// RatingConfig contains the rating-flow settings: the saturation cap,
// the queue ordering policy, and the configured rating dimensions that
// drive both form generation and the completeness check.
type RatingConfig struct {
	MaxRatingsPerClip int                      `mapstructure:"max_ratings_per_clip"`
	Shuffle           string                   `mapstructure:"shuffle"`
	Dimensions        []models.RatingDimension `mapstructure:"dimensions"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}
