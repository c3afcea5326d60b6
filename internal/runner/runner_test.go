package runner

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"JMeterDataGen/internal/exporter"
	"JMeterDataGen/internal/generator"
	"JMeterDataGen/internal/manifest"
	"JMeterDataGen/internal/model"
	"JMeterDataGen/internal/notifier"
	"JMeterDataGen/internal/recorder"
	"JMeterDataGen/internal/sampler"

	_ "modernc.org/sqlite"
)

type memRecorder struct {
	runs    []*model.RunInfo
	batches []model.Batch
}

func (m *memRecorder) RecordBatch(run *model.RunInfo, batch model.Batch) error {
	m.runs = append(m.runs, run)
	m.batches = append(m.batches, batch)
	return nil
}

func (m *memRecorder) Close() error { return nil }

func newTestRunner(out *bytes.Buffer, rec recorder.Recorder) *Runner {
	return NewRunner(
		sampler.ReferencePool(),
		sampler.ReferenceBands(),
		generator.DefaultOptions(),
		exporter.NewCSVExporter(','),
		rec,
		notifier.NewConsoleNotifier(out),
	)
}

func TestRun_SameSeedSameFile(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := newTestRunner(&out, nil)

	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	if _, err := r.Run(Options{Count: 250, Seed: 42, Output: a}); err != nil {
		t.Fatalf("run a: %v", err)
	}
	if _, err := r.Run(Options{Count: 250, Seed: 42, Output: b}); err != nil {
		t.Fatalf("run b: %v", err)
	}

	da, _ := os.ReadFile(a)
	db, _ := os.ReadFile(b)
	if len(da) == 0 || !bytes.Equal(da, db) {
		t.Error("same seed produced different files")
	}
	if lines := strings.Count(string(da), "\n"); lines != 251 {
		t.Errorf("file has %d lines, want header + 250", lines)
	}
}

func TestRun_ReportAndSummary(t *testing.T) {
	var out bytes.Buffer
	rec := &memRecorder{}
	r := newTestRunner(&out, rec)

	path := filepath.Join(t.TempDir(), "data.csv")
	res, err := r.Run(Options{Count: 100, Seed: 1, Output: path, Manifest: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if res.Report == nil || res.Report.Total != 100 {
		t.Fatalf("unexpected report: %+v", res.Report)
	}
	if res.Run.Bytes == 0 || res.Run.Count != 100 || res.Run.Seed != 1 {
		t.Errorf("run info = %+v", res.Run)
	}
	for _, want := range []string{"Test Data Statistics", "Password distribution", "Test data generation completed"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("console output missing %q", want)
		}
	}
	if len(rec.batches) != 1 || len(rec.batches[0]) != 100 {
		t.Errorf("recorder got %d batches", len(rec.batches))
	}

	m, err := manifest.Load(manifest.PathFor(path))
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if m.ID != res.Run.ID || m.Seed != 1 || m.Count != 100 {
		t.Errorf("manifest = %+v", m)
	}
}

func TestRun_ReplayFromManifest(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	r := newTestRunner(&out, nil)

	first := filepath.Join(dir, "first.csv")
	if _, err := r.Run(Options{Count: 40, Seed: 987654321, Output: first, Manifest: true}); err != nil {
		t.Fatalf("run: %v", err)
	}
	m, err := manifest.Load(manifest.PathFor(first))
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}

	replay := filepath.Join(dir, "replay.csv")
	if _, err := r.Run(Options{Count: m.Count, Seed: m.Seed, Output: replay}); err != nil {
		t.Fatalf("replay: %v", err)
	}
	a, _ := os.ReadFile(first)
	b, _ := os.ReadFile(replay)
	if !bytes.Equal(a, b) {
		t.Error("replayed run differs from original")
	}
}

func TestRun_ExportFailureStillReports(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	if err := os.Mkdir(blocked, 0755); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rec := &memRecorder{}
	r := newTestRunner(&out, rec)
	res, err := r.Run(Options{Count: 10, Seed: 3, Output: blocked})

	var exportErr *exporter.ExportError
	if !errors.As(err, &exportErr) {
		t.Fatalf("expected ExportError, got %v", err)
	}
	if res == nil || len(res.Batch) != 10 {
		t.Fatal("batch should survive an export failure")
	}
	if !strings.Contains(out.String(), "Test Data Statistics") {
		t.Error("report not sent after export failure")
	}
	if strings.Contains(out.String(), "generation completed") {
		t.Error("completion summary sent despite export failure")
	}
	if len(rec.runs) != 0 {
		t.Errorf("recorded %d runs without an output file", len(rec.runs))
	}
}

func TestRun_EmptyBatch(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(&out, nil)

	path := filepath.Join(t.TempDir(), "empty.csv")
	res, err := r.Run(Options{Count: 0, Seed: 1, Output: path})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.Report != nil {
		t.Error("empty batch should have no report")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "identifier,password,amount\n" {
		t.Errorf("empty export = %q", data)
	}
	if strings.Contains(out.String(), "Test Data Statistics") {
		t.Error("statistics printed for empty batch")
	}
}

func TestRun_InvalidPool(t *testing.T) {
	var out bytes.Buffer
	r := newTestRunner(&out, nil)
	r.Pool = nil

	_, err := r.Run(Options{Count: 1, Seed: 1, Output: filepath.Join(t.TempDir(), "x.csv")})
	var gerr *model.GenerationError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestRun_SQLiteRecorder(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "runs.db")
	rec, err := recorder.NewSQLiteRecorder(dbPath)
	if err != nil {
		t.Fatalf("open recorder: %v", err)
	}
	defer rec.Close()

	var out bytes.Buffer
	r := newTestRunner(&out, rec)
	csvPath := filepath.Join(dir, "data.csv")
	res, err := r.Run(Options{Count: 20, Seed: 5, Output: csvPath})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")[1:]

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM records WHERE run_id = ?`, res.Run.ID.String()).Scan(&count); err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 20 || count != len(lines) {
		t.Errorf("records = %d, csv rows = %d, want 20", count, len(lines))
	}

	for _, seq := range []int{1, 20} {
		var id, pw, amount string
		err := db.QueryRow(`SELECT identifier, password, amount FROM records WHERE run_id = ? AND seq = ?`,
			res.Run.ID.String(), seq).Scan(&id, &pw, &amount)
		if err != nil {
			t.Fatalf("query record %d: %v", seq, err)
		}
		if got, want := id+","+pw+","+amount, lines[seq-1]; got != want {
			t.Errorf("record %d = %q, csv row = %q", seq, got, want)
		}
	}

	var seed string
	var runCount int
	if err := db.QueryRow(`SELECT seed, count FROM runs WHERE id = ?`, res.Run.ID.String()).Scan(&seed, &runCount); err != nil {
		t.Fatalf("query run: %v", err)
	}
	if seed != "5" || runCount != 20 {
		t.Errorf("run row = (%s, %d)", seed, runCount)
	}
}
