package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/soccerlab/rater-api/internal/models"
	"github.com/soccerlab/rater-api/internal/services/profiles"
	"github.com/soccerlab/rater-api/internal/services/ratings"
)

// Output filenames inside the export directory.
const (
	RatingsFilename = "ratings.csv"
	UsersFilename   = "users.csv"
	ReportFilename  = "rating_log.txt"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	ratingService  ratings.Service
	profileService profiles.Service
	dimensions     []models.RatingDimension
	outputPath     string
}

// NewService creates a new export service writing into outputPath.
func NewService(ratingService ratings.Service, profileService profiles.Service, dimensions []models.RatingDimension, outputPath string) Service {
	return &ServiceImpl{
		ratingService:  ratingService,
		profileService: profileService,
		dimensions:     dimensions,
		outputPath:     outputPath,
	}
}

// Run executes one export pass over everything currently stored.
func (s *ServiceImpl) Run(ctx context.Context) (*Summary, error) {
	started := time.Now()

	if err := os.MkdirAll(s.outputPath, 0755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}

	ratingRecords, skippedRatings, err := s.ratingService.ListRatings(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing ratings: %w", err)
	}
	profileRecords, skippedProfiles, err := s.profileService.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}

	summary := &Summary{
		TotalRatings:    len(ratingRecords),
		SkippedRatings:  skippedRatings,
		SkippedProfiles: skippedProfiles,
		RatingsPath:     filepath.Join(s.outputPath, RatingsFilename),
		UsersPath:       filepath.Join(s.outputPath, UsersFilename),
		ReportPath:      filepath.Join(s.outputPath, ReportFilename),
	}

	clipCounts := make(map[string]int)
	for _, r := range ratingRecords {
		clipCounts[r.ClipID]++
	}
	summary.DistinctClips = len(clipCounts)
	summary.DistinctRaters = distinctRaters(profileRecords)
	summary.Frequency = frequencyDistribution(clipCounts)

	if err := s.writeRatingsCSV(summary.RatingsPath, ratingRecords); err != nil {
		return nil, err
	}
	if err := s.writeUsersCSV(summary.UsersPath, profileRecords); err != nil {
		return nil, err
	}
	if err := writeReport(summary.ReportPath, summary, started); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Export complete: %d ratings, %d clips, %d raters (%d malformed files skipped)",
		summary.TotalRatings, summary.DistinctClips, summary.DistinctRaters,
		summary.SkippedRatings+summary.SkippedProfiles)
	return summary, nil
}

func (s *ServiceImpl) writeRatingsCSV(path string, records []ratings.StoredRating) error {
	header := []string{"filename", "file_created_at", "user_id", "clip_id", "not_recognized"}
	for _, dim := range s.dimensions {
		header = append(header, dim.Name)
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		row := []string{
			r.Filename,
			r.ModifiedAt.Format(time.RFC3339),
			r.UserID,
			r.ClipID,
			strconv.FormatBool(r.NotRecognized),
		}
		for _, dim := range s.dimensions {
			row = append(row, formatValue(r.Value(dim.Name)))
		}
		rows = append(rows, row)
	}
	return writeCSV(path, header, rows)
}

func (s *ServiceImpl) writeUsersCSV(path string, records []profiles.StoredProfile) error {
	header := []string{"filename", "file_created_at", "user_id", "gender", "age", "license", "player_exp", "coach_exp", "watch_exp", "saved_at"}

	rows := make([][]string, 0, len(records))
	for _, p := range records {
		savedAt := ""
		if !p.SavedAt.IsZero() {
			savedAt = p.SavedAt.Format(time.RFC3339)
		}
		rows = append(rows, []string{
			p.Filename,
			p.ModifiedAt.Format(time.RFC3339),
			p.UserID,
			p.Gender,
			strconv.Itoa(p.Age),
			p.License,
			strconv.Itoa(p.PlayerExp),
			strconv.Itoa(p.CoachExp),
			strconv.Itoa(p.WatchExp),
			savedAt,
		})
	}
	return writeCSV(path, header, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

func distinctRaters(records []profiles.StoredProfile) int {
	seen := make(map[string]struct{})
	for _, p := range records {
		seen[p.UserID] = struct{}{}
	}
	return len(seen)
}

// frequencyDistribution turns per-clip rating counts into "how many clips
// were rated exactly K times", sorted ascending by K.
func frequencyDistribution(clipCounts map[string]int) []Frequency {
	byTimes := make(map[int]int)
	for _, count := range clipCounts {
		byTimes[count]++
	}

	keys := make([]int, 0, len(byTimes))
	for k := range byTimes {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]Frequency, 0, len(keys))
	for _, k := range keys {
		out = append(out, Frequency{TimesRated: k, Actions: byTimes[k]})
	}
	return out
}
