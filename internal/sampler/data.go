package sampler

import (
	"math/rand/v2"

	"JMeterDataGen/internal/model"

	"github.com/shopspring/decimal"
)

// NewRand returns a PCG-backed source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// ReferencePool is the default password pool: one accepted password
// weighted 3 and eight common wrong ones weighted 1.
func ReferencePool() []model.WeightedPassword {
	return []model.WeightedPassword{
		{Value: "123456", Weight: 3, Correct: true},
		{Value: "111111", Weight: 1},
		{Value: "000000", Weight: 1},
		{Value: "888888", Weight: 1},
		{Value: "666666", Weight: 1},
		{Value: "123123", Weight: 1},
		{Value: "password", Weight: 1},
		{Value: "1234", Weight: 1},
		{Value: "12345678", Weight: 1},
	}
}

// ReferenceBands is the default amount mix; small payments dominate.
func ReferenceBands() []model.AmountBand {
	return []model.AmountBand{
		{Low: decimal.NewFromInt(10), High: decimal.NewFromInt(50), Weight: 0.40},
		{Low: decimal.NewFromInt(50), High: decimal.NewFromInt(200), Weight: 0.30},
		{Low: decimal.NewFromInt(200), High: decimal.NewFromInt(500), Weight: 0.20},
		{Low: decimal.NewFromInt(500), High: decimal.NewFromInt(1000), Weight: 0.08},
		{Low: decimal.NewFromInt(1000), High: decimal.NewFromInt(5000), Weight: 0.02},
	}
}
