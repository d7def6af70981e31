package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/soccerlab/rater-api/api"
	"github.com/soccerlab/rater-api/api/types"
	"github.com/soccerlab/rater-api/internal/database"
	"github.com/soccerlab/rater-api/internal/services/clips"
	"github.com/soccerlab/rater-api/internal/services/export"
	"github.com/soccerlab/rater-api/internal/services/metadata"
	"github.com/soccerlab/rater-api/internal/services/profiles"
	"github.com/soccerlab/rater-api/internal/services/ratings"
	"github.com/soccerlab/rater-api/internal/services/sessions"
	"github.com/soccerlab/rater-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Clip Rater API server with the configured settings.

The server exposes the rating workflow over HTTP: rater identification,
session queues, rating submission, and data export.

Example:
  rater-api serve
  rater-api serve --port 9090
  rater-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	deps, db, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	log.Printf("[INFO] Starting Clip Rater API server on %s", address)

	server := api.NewServer(address)
	server.SetDependencies(deps)
	if db != nil {
		server.SetDatabase(db)
	}
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("[INFO] Server is ready to handle requests at %s", address)

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		log.Printf("[INFO] Shutting down server")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
	}

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
		return err
	}

	log.Printf("[INFO] Server gracefully stopped")
	return nil
}

// buildDependencies wires the stores and services from configuration. The
// metadata database is optional: a missing events file downgrades every
// clip to placeholder metadata instead of refusing to start.
func buildDependencies(cfg *config.Config) (*types.Dependencies, *database.DB, error) {
	ratingStore := ratings.NewFilesystemStore(cfg.Storage.RatingsPath)
	ratingService := ratings.NewService(ratingStore, cfg.Rating.Dimensions)

	profileStore := profiles.NewFilesystemStore(cfg.Storage.ProfilesPath)
	profileService := profiles.NewService(profileStore)

	scanner := clips.NewScanner(cfg.Videos.SourcePath, cfg.Videos.Extensions)

	var db *database.DB
	var metadataService metadata.Service
	if _, err := os.Stat(cfg.Metadata.Path); err == nil {
		db, err = database.Initialize(cfg.Metadata.Path, cfg.Metadata.Verbose)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open metadata database: %w", err)
		}
		metadataService = metadata.NewService(metadata.NewRepository(db.DB))
	} else {
		log.Printf("[WARN] Metadata database not found at %s, clips will show placeholder metadata", cfg.Metadata.Path)
		metadataService = metadata.NewService(nil)
	}

	sessionService := sessions.NewService(ratingService, scanner, cfg.Rating.MaxRatingsPerClip, cfg.Rating.Shuffle)
	exportService := export.NewService(ratingService, profileService, cfg.Rating.Dimensions, cfg.Storage.ExportPath)

	deps := &types.Dependencies{
		DB:              db,
		RatingService:   ratingService,
		ProfileService:  profileService,
		SessionService:  sessionService,
		MetadataService: metadataService,
		ExportService:   exportService,
		Scanner:         scanner,
		Dimensions:      cfg.Rating.Dimensions,
	}

	return deps, db, nil
}
