// Package sampler draws passwords and amounts from weighted distributions.
package sampler

import (
	"fmt"
	"math/rand/v2"

	"JMeterDataGen/internal/model"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat/distuv"
)

var cent = decimal.New(1, -2)

// Sampler draws from a password pool and a set of amount bands.
// All draws consume the same random source, so a seeded source
// yields a reproducible sequence.
type Sampler struct {
	rng       *rand.Rand
	passwords []model.WeightedPassword
	pwCum     []float64
	bands     []model.AmountBand
	bandCum   []float64
}

// New validates the pool and bands and returns a Sampler bound to rng.
func New(passwords []model.WeightedPassword, bands []model.AmountBand, rng *rand.Rand) (*Sampler, error) {
	if rng == nil {
		return nil, &model.GenerationError{Field: "rng", Reason: "random source is required"}
	}
	if len(passwords) == 0 {
		return nil, &model.GenerationError{Field: "passwords", Reason: "pool is empty"}
	}
	if len(bands) == 0 {
		return nil, &model.GenerationError{Field: "amount_bands", Reason: "no bands configured"}
	}

	pwWeights := make([]float64, len(passwords))
	seen := make(map[string]bool, len(passwords))
	var maxCorrect, maxWrong float64
	for i, p := range passwords {
		if p.Weight <= 0 {
			return nil, &model.GenerationError{
				Field:  fmt.Sprintf("passwords[%d]", i),
				Reason: fmt.Sprintf("weight %v must be positive", p.Weight),
			}
		}
		if seen[p.Value] {
			return nil, &model.GenerationError{
				Field:  fmt.Sprintf("passwords[%d]", i),
				Reason: fmt.Sprintf("duplicate value %q", p.Value),
			}
		}
		seen[p.Value] = true
		if p.Correct {
			maxCorrect = max(maxCorrect, p.Weight)
		} else {
			maxWrong = max(maxWrong, p.Weight)
		}
		pwWeights[i] = p.Weight
	}
	if maxCorrect == 0 {
		return nil, &model.GenerationError{Field: "passwords", Reason: "no entry is marked correct"}
	}
	if maxCorrect <= maxWrong {
		return nil, &model.GenerationError{
			Field:  "passwords",
			Reason: fmt.Sprintf("correct weight %v must exceed every wrong weight (max %v)", maxCorrect, maxWrong),
		}
	}

	bandWeights := make([]float64, len(bands))
	for i, b := range bands {
		if !b.Low.LessThan(b.High) {
			return nil, &model.GenerationError{
				Field:  fmt.Sprintf("amount_bands[%d]", i),
				Reason: fmt.Sprintf("low %s must be below high %s", b.Low, b.High),
			}
		}
		if !b.Low.RoundCeil(2).LessThan(b.High) {
			return nil, &model.GenerationError{
				Field:  fmt.Sprintf("amount_bands[%d]", i),
				Reason: fmt.Sprintf("no whole-cent amount in [%s, %s)", b.Low, b.High),
			}
		}
		if b.Weight <= 0 {
			return nil, &model.GenerationError{
				Field:  fmt.Sprintf("amount_bands[%d]", i),
				Reason: fmt.Sprintf("weight %v must be positive", b.Weight),
			}
		}
		bandWeights[i] = b.Weight
	}

	return &Sampler{
		rng:       rng,
		passwords: passwords,
		pwCum:     cumulative(pwWeights),
		bands:     bands,
		bandCum:   cumulative(bandWeights),
	}, nil
}

// Password picks a pool entry with probability proportional to its weight.
func (s *Sampler) Password() string {
	return s.passwords[pick(s.rng, s.pwCum)].Value
}

// Amount picks a band by weight, then a uniform value in [Low, High)
// rounded to cents (half away from zero).
func (s *Sampler) Amount() decimal.Decimal {
	band := s.bands[pick(s.rng, s.bandCum)]

	u := distuv.Uniform{
		Min: band.Low.InexactFloat64(),
		Max: band.High.InexactFloat64(),
		Src: s.rng,
	}
	amt := decimal.NewFromFloat(u.Rand()).Round(2)

	// rounding must not push the value out of its band
	if amt.GreaterThanOrEqual(band.High) {
		amt = band.High.Sub(cent)
	}
	if amt.LessThan(band.Low) {
		amt = band.Low.RoundCeil(2)
	}
	return amt
}

// Bands returns the configured amount bands.
func (s *Sampler) Bands() []model.AmountBand {
	return s.bands
}

// Rand exposes the shared source for other draws of the same run.
func (s *Sampler) Rand() *rand.Rand {
	return s.rng
}

func cumulative(weights []float64) []float64 {
	cum := make([]float64, len(weights))
	total := 0.0
	for i, w := range weights {
		total += w
		cum[i] = total
	}
	return cum
}

// pick returns the index of the first cumulative weight above a uniform
// draw in [0, total).
func pick(rng *rand.Rand, cum []float64) int {
	target := rng.Float64() * cum[len(cum)-1]
	for i, c := range cum {
		if target < c {
			return i
		}
	}
	return len(cum) - 1
}
