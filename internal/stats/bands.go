package stats

import "github.com/shopspring/decimal"

// ReportBand is a human-facing amount range [Low, High). Open bands have no upper bound.
type ReportBand struct {
	Label string
	Low   decimal.Decimal
	High  decimal.Decimal
	Open  bool
}

// ReportBands defines the fixed report ranges, lowest first.
var ReportBands = []ReportBand{
	{Label: "Small (0-50)", Low: decimal.NewFromInt(0), High: decimal.NewFromInt(50)},
	{Label: "Medium (50-200)", Low: decimal.NewFromInt(50), High: decimal.NewFromInt(200)},
	{Label: "Large (200-500)", Low: decimal.NewFromInt(200), High: decimal.NewFromInt(500)},
	{Label: "High (500-1000)", Low: decimal.NewFromInt(500), High: decimal.NewFromInt(1000)},
	{Label: "Very High (1000+)", Low: decimal.NewFromInt(1000), Open: true},
}

func (b ReportBand) contains(amt decimal.Decimal) bool {
	if amt.LessThan(b.Low) {
		return false
	}
	return b.Open || amt.LessThan(b.High)
}

// bandIndex maps an amount to its report band, or -1 if none matches.
func bandIndex(amt decimal.Decimal) int {
	for i, b := range ReportBands {
		if b.contains(amt) {
			return i
		}
	}
	return -1
}
