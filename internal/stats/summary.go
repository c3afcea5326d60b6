// Package stats summarizes generated batches.
package stats

import (
	"errors"
	"sort"

	"JMeterDataGen/internal/model"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyBatch is returned when there is nothing to summarize.
var ErrEmptyBatch = errors.New("empty batch")

// Summarize computes password and amount distributions. It does not modify batch.
func Summarize(batch model.Batch) (*model.Report, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}
	total := len(batch)

	report := &model.Report{
		Total:     total,
		Passwords: passwordDistribution(batch),
		MinAmount: batch[0].Amount,
		MaxAmount: batch[0].Amount,
	}

	sum := decimal.Zero
	amounts := make([]float64, total)
	bandCounts := make([]int, len(ReportBands))
	for i, rec := range batch {
		sum = sum.Add(rec.Amount)
		if rec.Amount.LessThan(report.MinAmount) {
			report.MinAmount = rec.Amount
		}
		if rec.Amount.GreaterThan(report.MaxAmount) {
			report.MaxAmount = rec.Amount
		}
		amounts[i] = rec.Amount.InexactFloat64()
		if idx := bandIndex(rec.Amount); idx >= 0 {
			bandCounts[idx]++
		}
	}
	report.Mean = sum.Div(decimal.NewFromInt(int64(total)))

	sort.Float64s(amounts)
	report.Median = stat.Quantile(0.5, stat.Empirical, amounts, nil)
	report.P95 = stat.Quantile(0.95, stat.Empirical, amounts, nil)
	if total > 1 {
		report.StdDev = stat.StdDev(amounts, nil)
	}

	report.Bands = make([]model.BandCount, len(ReportBands))
	for i, b := range ReportBands {
		report.Bands[i] = model.BandCount{
			Label:   b.Label,
			Count:   bandCounts[i],
			Percent: percent(bandCounts[i], total),
		}
	}

	return report, nil
}

// passwordDistribution counts each distinct password, most frequent first.
// Ties keep first-seen order.
func passwordDistribution(batch model.Batch) []model.PasswordCount {
	index := make(map[string]int)
	var counts []model.PasswordCount
	for _, rec := range batch {
		i, ok := index[rec.Password]
		if !ok {
			i = len(counts)
			index[rec.Password] = i
			counts = append(counts, model.PasswordCount{Value: rec.Password})
		}
		counts[i].Count++
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	for i := range counts {
		counts[i].Percent = percent(counts[i].Count, len(batch))
	}
	return counts
}

func percent(n, total int) float64 {
	return float64(n) / float64(total) * 100
}
