package clips

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtensions are the media extensions recognized when the
// configuration does not name its own set.
var DefaultExtensions = []string{".mp4", ".mov", ".mkv", ".webm"}

// Clip is one video file in the source directory. The ID is the filename
// with its extension stripped and is the key everything else joins on:
// rating records, metadata rows, the assignment queue.
type Clip struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
}

// Scanner lists the clips available for rating by scanning a directory
// for files with a recognized media extension.
type Scanner struct {
	sourcePath string
	extensions map[string]struct{}
}

// NewScanner creates a scanner over the given directory. Extensions are
// matched case-insensitively; an empty list falls back to DefaultExtensions.
func NewScanner(sourcePath string, extensions []string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	set := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = struct{}{}
	}
	return &Scanner{sourcePath: sourcePath, extensions: set}
}

// Scan returns the clips in the source directory, sorted by ID. A missing
// directory degrades to an empty list with a warning; the rating flow then
// presents a terminal "no clips" state instead of aborting.
func (s *Scanner) Scan() ([]Clip, error) {
	entries, err := os.ReadDir(s.sourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[WARN] Video directory not found: %s", s.sourcePath)
			return nil, nil
		}
		return nil, err
	}

	var found []Clip
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := s.extensions[ext]; !ok {
			continue
		}
		found = append(found, Clip{
			ID:       strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())),
			Filename: entry.Name(),
		})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].ID < found[j].ID })
	return found, nil
}

// VideoPath returns the absolute-or-relative path to a clip's video file,
// for the UI layer to hand to its player.
func (s *Scanner) VideoPath(c Clip) string {
	return filepath.Join(s.sourcePath, c.Filename)
}
