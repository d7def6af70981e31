package ratings

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
// file per record, named {user_id}_{clip_id}.json. Multiple rater sessions
// may share the directory (e.g. on a network volume); there is no locking,
// writes are last-write-wins per file.
type FilesystemStore struct {
	basePath string
}

// NewFilesystemStore creates a new filesystem-backed rating store. The
// directory is created lazily on the first write so that a fresh checkout
// with no records behaves as an empty store.
func NewFilesystemStore(basePath string) *FilesystemStore {
	return &FilesystemStore{basePath: basePath}
}

// HasRating reports whether a record file exists for the pair.
func (s *FilesystemStore) HasRating(ctx context.Context, userID, clipID string) (bool, error) {
	rating := models.Rating{UserID: userID, ClipID: clipID}
	_, err := os.Stat(filepath.Join(s.basePath, rating.Filename()))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("checking rating %s: %w", rating.Key(), err)
	}
	return true, nil
}

// PutRating writes the record, overwriting any existing file for the pair.
func (s *FilesystemStore) PutRating(ctx context.Context, rating *models.Rating) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("creating ratings directory: %w", err)
	}

	data, err := json.Marshal(rating)
	if err != nil {
		return fmt.Errorf("encoding rating %s: %w", rating.Key(), err)
	}

	path := filepath.Join(s.basePath, rating.Filename())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing rating %s: %w", rating.Key(), err)
	}
	return nil
}

// CountRatings counts the distinct raters with a record for the clip.
// Only filenames are inspected; a file that later turns out to be
// malformed still counts, matching what the saturation check sees.
func (s *FilesystemStore) CountRatings(ctx context.Context, clipID string) (int, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading ratings directory: %w", err)
	}

	raters := make(map[string]struct{})
	for _, entry := range entries {
		userID, gotClipID, ok := splitRecordName(entry.Name())
		if ok && gotClipID == clipID {
			raters[userID] = struct{}{}
		}
	}
	return len(raters), nil
}

// ListRatings decodes every record file. Malformed files are logged and
// skipped, never fatal; the skip count is returned for the export report.
func (s *FilesystemStore) ListRatings(ctx context.Context) ([]StoredRating, int, error) {
	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("reading ratings directory: %w", err)
	}

	var records []StoredRating
	skipped := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.basePath, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("[WARN] Skipping unreadable rating file %s: %v", entry.Name(), err)
			skipped++
			continue
		}

		var rating models.Rating
		if err := json.Unmarshal(data, &rating); err != nil {
			log.Printf("[WARN] Skipping malformed rating file %s: %v", entry.Name(), err)
			skipped++
			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.Printf("[WARN] Skipping rating file %s without file info: %v", entry.Name(), err)
			skipped++
			continue
		}

		records = append(records, StoredRating{
			Rating:     rating,
			Filename:   entry.Name(),
			ModifiedAt: info.ModTime(),
		})
	}
	return records, skipped, nil
}

// splitRecordName splits {user_id}_{clip_id}.json at the first underscore.
// Derived user ids never contain underscores, but clip ids can, so the
// split must not come from the right.
func splitRecordName(name string) (userID, clipID string, ok bool) {
	if !strings.HasSuffix(name, ".json") {
		return "", "", false
	}
	key := strings.TrimSuffix(name, ".json")
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
