package profiles

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/soccerlab/rater-api/internal/models"
)

// FilesystemStore implements Store over a flat directory with one JSON
// file per rater, named {user_id}.json.
type FilesystemStore struct {
	basePath string
}

// NewFilesystemStore creates a new filesystem-backed profile store.
func NewFilesystemStore(basePath string) *FilesystemStore {
	return &FilesystemStore{basePath: basePath}
}

// HasProfile reports whether a profile file exists for the rater.
func (s *FilesystemStore) HasProfile(ctx context.Context, userID string) (bool, error) {
	_, err := os.Stat(filepath.Join(s.basePath, userID+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking profile %s: %w", userID, err)
	}
	return true, nil
}

// PutProfile writes the profile, overwriting any earlier submission.
func (s *FilesystemStore) PutProfile(ctx context.Context, profile *models.Profile) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("creating profiles directory: %w", err)
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile %s: %w", profile.UserID, err)
	}

	path := filepath.Join(s.basePath, profile.Filename())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing profile %s: %w", profile.UserID, err)
	}
	return nil
}

// ListProfiles decodes every profile file, skipping malformed ones.
func (s *FilesystemStore) ListProfiles(ctx context.Context) ([]StoredProfile, int, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("reading profiles directory: %w", err)
	}

	var records []StoredProfile
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.basePath, entry.Name()))
		if err != nil {
			log.Printf("[WARN] Skipping unreadable profile file %s: %v", entry.Name(), err)
			skipped++
			continue
		}

		var profile models.Profile
		if err := json.Unmarshal(data, &profile); err != nil {
			log.Printf("[WARN] Skipping malformed profile file %s: %v", entry.Name(), err)
			skipped++
			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.Printf("[WARN] Skipping profile file %s without file info: %v", entry.Name(), err)
			skipped++
			continue
		}

		records = append(records, StoredProfile{
			Profile:    profile,
			Filename:   entry.Name(),
			ModifiedAt: info.ModTime(),
		})
	}
	return records, skipped, nil
}
