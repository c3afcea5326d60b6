package model

import "github.com/shopspring/decimal"

// WeightedPassword is one entry of the password pool.
type WeightedPassword struct {
	Value   string
	Weight  float64
	Correct bool // the password the system under test accepts
}

// AmountBand is a weighted sub-range [Low, High) of amounts.
type AmountBand struct {
	Low    decimal.Decimal
	High   decimal.Decimal
	Weight float64
}

// Contains reports whether amt lies in [Low, High).
func (b AmountBand) Contains(amt decimal.Decimal) bool {
	return amt.GreaterThanOrEqual(b.Low) && amt.LessThan(b.High)
}
