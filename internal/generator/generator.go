// Package generator builds batches of test records.
package generator

import (
	"fmt"
	"strings"

	"JMeterDataGen/internal/model"
	"JMeterDataGen/internal/sampler"
)

const suffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Options controls identifier layout and progress reporting.
type Options struct {
	Prefix        string
	IndexWidth    int
	SuffixLength  int
	ProgressEvery int
	OnProgress    func(done, total int)
}

// DefaultOptions returns ORDER + 6-digit index + 6-char suffix, progress every 100.
func DefaultOptions() Options {
	return Options{
		Prefix:        "ORDER",
		IndexWidth:    6,
		SuffixLength:  6,
		ProgressEvery: 100,
	}
}

// Generator composes records from a sampler. It shares the sampler's
// random source, so one seed fixes the whole batch.
type Generator struct {
	Sampler *sampler.Sampler
	opts    Options
}

// New creates a Generator.
func New(s *sampler.Sampler, opts Options) *Generator {
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = 100
	}
	if opts.IndexWidth < 0 {
		opts.IndexWidth = 0
	}
	if opts.SuffixLength < 0 {
		opts.SuffixLength = 0
	}
	return &Generator{Sampler: s, opts: opts}
}

// Identifier returns prefix + zero-padded index + random suffix.
// Indices wider than IndexWidth are written in full.
func (g *Generator) Identifier(index int) string {
	var b strings.Builder
	b.WriteString(g.opts.Prefix)
	b.WriteString(fmt.Sprintf("%0*d", g.opts.IndexWidth, index))

	rng := g.Sampler.Rand()
	for range g.opts.SuffixLength {
		b.WriteByte(suffixChars[rng.IntN(len(suffixChars))])
	}
	return b.String()
}

// Batch generates exactly n records for indices 1..n.
func (g *Generator) Batch(n int) model.Batch {
	if n <= 0 {
		return model.Batch{}
	}

	batch := make(model.Batch, 0, n)
	for i := 1; i <= n; i++ {
		batch = append(batch, model.Record{
			Identifier: g.Identifier(i),
			Password:   g.Sampler.Password(),
			Amount:     g.Sampler.Amount(),
		})
		if g.opts.OnProgress != nil && i%g.opts.ProgressEvery == 0 {
			g.opts.OnProgress(i, n)
		}
	}
	return batch
}
