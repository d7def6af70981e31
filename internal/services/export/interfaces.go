package export

import "context"

// Summary is what one export run produced, both for the text report and
// for the API response when an export is triggered remotely.
type Summary struct {
	TotalRatings    int         `json:"total_ratings"`
	DistinctClips   int         `json:"distinct_clips"`
	DistinctRaters  int         `json:"distinct_raters"`
	SkippedRatings  int         `json:"skipped_ratings"`
	SkippedProfiles int         `json:"skipped_profiles"`
	Frequency       []Frequency `json:"frequency"`

	RatingsPath string `json:"ratings_path"`
	UsersPath   string `json:"users_path"`
	ReportPath  string `json:"report_path"`
}

// Frequency is one row of the "rated exactly K times" distribution.
type Frequency struct {
	TimesRated int `json:"times_rated"`
	Actions    int `json:"actions"`
}

// Service defines the interface for the batch export job.
type Service interface {
	// Run flattens every stored rating and profile into CSV tables and
	// writes the plain-text statistics report. Empty or missing record
	// directories yield header-only tables and a zero-count report.
	Run(ctx context.Context) (*Summary, error)
}
