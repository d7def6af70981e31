package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

const reportRule = "============================================================"

// writeReport renders the plain-text statistics report. It is generated
// even when every count is zero.
func writeReport(path string, summary *Summary, generatedAt time.Time) error {
	var b strings.Builder

	b.WriteString(reportRule + "\n")
	b.WriteString("CLIP RATER - DATA EXPORT LOG\n")
	b.WriteString(reportRule + "\n")
	fmt.Fprintf(&b, "Generated at: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "Total ratings: %d\n", summary.TotalRatings)
	fmt.Fprintf(&b, "Number of unique actions rated: %d\n", summary.DistinctClips)
	fmt.Fprintf(&b, "Number of raters involved: %d\n\n", summary.DistinctRaters)

	if summary.SkippedRatings > 0 || summary.SkippedProfiles > 0 {
		fmt.Fprintf(&b, "Malformed files skipped: %d ratings, %d profiles\n\n",
			summary.SkippedRatings, summary.SkippedProfiles)
	}

	b.WriteString("Rating frequency distribution:\n")
	b.WriteString(renderFrequencyTable(summary.Frequency))
	b.WriteString("\n" + reportRule + "\n")

	return os.WriteFile(path, []byte(b.String()), 0644)
}

func renderFrequencyTable(freq []Frequency) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Times Rated", "Number of Actions"})
	for _, f := range freq {
		t.AppendRow(table.Row{f.TimesRated, f.Actions})
	}
	return t.Render() + "\n"
}
