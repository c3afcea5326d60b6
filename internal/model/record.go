package model

import "github.com/shopspring/decimal"

// Record is a single generated test row.
type Record struct {
	Identifier string
	Password   string
	Amount     decimal.Decimal
}

// Batch is the ordered set of records produced by one run.
type Batch []Record
