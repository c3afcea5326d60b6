package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"JMeterDataGen/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists runs and their records to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id         TEXT PRIMARY KEY,
			created_at INTEGER NOT NULL,
			seed       TEXT NOT NULL,
			count      INTEGER NOT NULL,
			output     TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS records (
			run_id     TEXT NOT NULL REFERENCES runs(id),
			seq        INTEGER NOT NULL,
			identifier TEXT NOT NULL,
			password   TEXT NOT NULL,
			amount     TEXT NOT NULL,
			PRIMARY KEY (run_id, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_identifier ON records(identifier)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:30], err)
		}
	}
	return nil
}

// RecordBatch stores the run and all of its records in one transaction.
func (r *SQLiteRecorder) RecordBatch(run *model.RunInfo, batch model.Batch) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	// seed is stored as text: SQLite integers are signed 64-bit
	if _, err := tx.Exec(`INSERT INTO runs (id, created_at, seed, count, output) VALUES (?,?,?,?,?)`,
		run.ID.String(), run.CreatedAt.Unix(), fmt.Sprint(run.Seed), len(batch), run.Output,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO records (run_id, seq, identifier, password, amount) VALUES (?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare records: %w", err)
	}
	defer stmt.Close()

	for i, rec := range batch {
		if _, err := stmt.Exec(run.ID.String(), i+1, rec.Identifier, rec.Password, rec.Amount.StringFixed(2)); err != nil {
			return fmt.Errorf("insert record %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
