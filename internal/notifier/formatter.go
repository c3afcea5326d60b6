package notifier

import (
	"fmt"
	"strings"
	"time"

	"JMeterDataGen/internal/model"

	"github.com/dustin/go-humanize"
)

// FormatReport formats batch statistics for the console.
func FormatReport(r *model.Report) string {
	var b strings.Builder

	b.WriteString("=== Test Data Statistics ===\n")
	b.WriteString(fmt.Sprintf("Total records: %s\n\n", humanize.Comma(int64(r.Total))))

	b.WriteString("Password distribution:\n")
	for _, p := range r.Passwords {
		b.WriteString(fmt.Sprintf("  %s: %s times (%.1f%%)\n", p.Value, humanize.Comma(int64(p.Count)), p.Percent))
	}

	b.WriteString("\nAmount statistics:\n")
	b.WriteString(fmt.Sprintf("  Min amount: ¥%s\n", r.MinAmount.StringFixed(2)))
	b.WriteString(fmt.Sprintf("  Max amount: ¥%s\n", r.MaxAmount.StringFixed(2)))
	b.WriteString(fmt.Sprintf("  Average amount: ¥%s\n", r.Mean.StringFixed(2)))
	b.WriteString(fmt.Sprintf("  Median: ¥%.2f | P95: ¥%.2f | Std dev: %.2f\n", r.Median, r.P95, r.StdDev))

	b.WriteString("\nAmount range distribution:\n")
	for _, band := range r.Bands {
		b.WriteString(fmt.Sprintf("  %s: %s times (%.1f%%)\n", band.Label, humanize.Comma(int64(band.Count)), band.Percent))
	}

	return b.String()
}

// FormatRunSummary formats the completion summary of a run.
func FormatRunSummary(run *model.RunInfo) string {
	var b strings.Builder
	b.WriteString("\nTest data generation completed!\n")
	b.WriteString(fmt.Sprintf("Run ID: %s\n", run.ID))
	b.WriteString(fmt.Sprintf("File location: %s (%s)\n", run.Output, humanize.Bytes(uint64(run.Bytes))))
	b.WriteString(fmt.Sprintf("Record count: %s\n", humanize.Comma(int64(run.Count))))
	b.WriteString(fmt.Sprintf("Seed: %d\n", run.Seed))
	b.WriteString(fmt.Sprintf("Generation time: %s\n", run.CreatedAt.Format(time.DateTime)))
	return b.String()
}
