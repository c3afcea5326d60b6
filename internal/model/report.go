package model

import "github.com/shopspring/decimal"

// PasswordCount is one row of the password distribution.
type PasswordCount struct {
	Value   string
	Count   int
	Percent float64
}

// BandCount is one row of the amount band distribution.
type BandCount struct {
	Label   string
	Count   int
	Percent float64
}

// Report is the summary of a generated batch.
type Report struct {
	Total     int
	Passwords []PasswordCount // count descending, ties in first-seen order
	MinAmount decimal.Decimal
	MaxAmount decimal.Decimal
	Mean      decimal.Decimal
	Median    float64
	P95       float64
	StdDev    float64
	Bands     []BandCount
}
