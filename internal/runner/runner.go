// Package runner executes one generation run end to end.
package runner

import (
	"errors"
	"fmt"
	"log"

	"JMeterDataGen/internal/exporter"
	"JMeterDataGen/internal/generator"
	"JMeterDataGen/internal/manifest"
	"JMeterDataGen/internal/model"
	"JMeterDataGen/internal/notifier"
	"JMeterDataGen/internal/recorder"
	"JMeterDataGen/internal/sampler"
	"JMeterDataGen/internal/stats"
)

// Options are the per-run parameters.
type Options struct {
	Count    int
	Seed     uint64
	Output   string
	Manifest bool
}

// Result is what a run produced. Report is nil for an empty batch.
type Result struct {
	Run    *model.RunInfo
	Batch  model.Batch
	Report *model.Report
}

// Runner wires generation, reporting and export.
type Runner struct {
	Pool      []model.WeightedPassword
	Bands     []model.AmountBand
	Generator generator.Options
	Exporter  *exporter.CSVExporter
	Recorder  recorder.Recorder
	Notifier  notifier.Notifier
}

// NewRunner creates a Runner. A nil recorder means no database copy.
func NewRunner(pool []model.WeightedPassword, bands []model.AmountBand, genOpts generator.Options,
	exp *exporter.CSVExporter, rec recorder.Recorder, n notifier.Notifier) *Runner {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	return &Runner{
		Pool:      pool,
		Bands:     bands,
		Generator: genOpts,
		Exporter:  exp,
		Recorder:  rec,
		Notifier:  n,
	}
}

// Run generates opts.Count records from opts.Seed, reports and exports them.
// The statistics report is sent even when the export fails; the
// *exporter.ExportError is returned afterwards.
func (r *Runner) Run(opts Options) (*Result, error) {
	s, err := sampler.New(r.Pool, r.Bands, sampler.NewRand(opts.Seed))
	if err != nil {
		return nil, err
	}

	genOpts := r.Generator
	if genOpts.OnProgress == nil {
		genOpts.OnProgress = func(done, _ int) {
			log.Printf("[INFO] generated %d records...", done)
		}
	}

	log.Printf("[INFO] generating %d test data records (seed %d)", opts.Count, opts.Seed)
	batch := generator.New(s, genOpts).Batch(opts.Count)
	log.Printf("[INFO] generation completed, %d records", len(batch))

	run := model.NewRunInfo(opts.Seed, len(batch), opts.Output)
	res := &Result{Run: run, Batch: batch}

	report, err := stats.Summarize(batch)
	if err != nil {
		if !errors.Is(err, stats.ErrEmptyBatch) {
			return nil, fmt.Errorf("summarize: %w", err)
		}
		log.Printf("[WARN] no records generated, skipping statistics")
	}
	res.Report = report

	size, exportErr := r.Exporter.WriteFile(opts.Output, batch)
	if exportErr != nil {
		log.Printf("[ERROR] error saving file: %v", exportErr)
	} else {
		run.Bytes = size
		log.Printf("[INFO] test data saved to file: %s", opts.Output)

		// only runs with a file on disk are recorded
		if err := r.Recorder.RecordBatch(run, batch); err != nil {
			log.Printf("[WARN] record batch: %v", err)
		}
	}

	if report != nil {
		r.trySend(notifier.FormatReport(report))
	}
	if exportErr != nil {
		return res, exportErr
	}

	r.trySend(notifier.FormatRunSummary(run))

	if opts.Manifest {
		path := manifest.PathFor(opts.Output)
		if err := manifest.Save(path, run); err != nil {
			log.Printf("[WARN] save manifest: %v", err)
		} else {
			log.Printf("[INFO] manifest written: %s", path)
		}
	}
	return res, nil
}

func (r *Runner) trySend(text string) {
	if r.Notifier == nil {
		return
	}
	if err := r.Notifier.Send(text); err != nil {
		log.Printf("[WARN] notify: %v", err)
	}
}
