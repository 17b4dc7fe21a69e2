// Package store handles SQLite persistence of analysis runs.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordstats/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for run history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_lists (
			run_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			list_name TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			unique_word_count INTEGER NOT NULL,
			min_length INTEGER NOT NULL,
			max_length INTEGER NOT NULL,
			mean_length REAL NOT NULL,
			median_length REAL NOT NULL,
			stddev REAL NOT NULL,
			first_quartile REAL NOT NULL,
			third_quartile REAL NOT NULL,
			plot_file TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed analysis run and its per-list results.
func (s *Store) InsertRun(ctx context.Context, startedAt time.Time, results []model.Result) (id int64, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at) VALUES (?)`,
		startedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(results) > 0 {
		stmt, perr := tx.PrepareContext(ctx,
			`INSERT INTO run_lists (run_id, position, list_name, word_count, unique_word_count, min_length, max_length,
				mean_length, median_length, stddev, first_quartile, third_quartile, plot_file)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if perr != nil {
			err = perr
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, r := range results {
			st := r.Stats
			if _, err = stmt.ExecContext(ctx, id, i, st.ListName, st.WordCount, st.UniqueWordCount,
				st.MinLength, st.MaxLength, st.MeanLength, st.MedianLength, st.StdDev,
				st.FirstQuartile, st.ThirdQuartile, r.PlotFile); err != nil {
				return 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first. A limit <= 0 returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error) {
	query := `SELECT id, started_at FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunRecord
	for rows.Next() {
		var run model.RunRecord
		var startedAt string
		if err := rows.Scan(&run.RunID, &startedAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		run.StartedAt = parsed
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return runs, nil
	}

	ids := make([]int64, len(runs))
	for i, run := range runs {
		ids[i] = run.RunID
	}
	lists, err := s.listsForRuns(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range runs {
		runs[i].Lists = lists[runs[i].RunID]
	}
	return runs, nil
}

func (s *Store) listsForRuns(ctx context.Context, runIDs []int64) (map[int64][]model.ListRecord, error) {
	placeholders := make([]string, len(runIDs))
	args := make([]any, len(runIDs))
	for i, id := range runIDs {
		placeholders[i] = "?"
		args[i] = id
	}
	query := fmt.Sprintf(`SELECT run_id, list_name, word_count, unique_word_count, min_length, max_length,
		mean_length, median_length, stddev, first_quartile, third_quartile, plot_file
		FROM run_lists
		WHERE run_id IN (%s)
		ORDER BY run_id, position`, strings.Join(placeholders, ","))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[int64][]model.ListRecord{}
	for rows.Next() {
		var runID int64
		var rec model.ListRecord
		st := &rec.Stats
		if err := rows.Scan(&runID, &st.ListName, &st.WordCount, &st.UniqueWordCount, &st.MinLength, &st.MaxLength,
			&st.MeanLength, &st.MedianLength, &st.StdDev, &st.FirstQuartile, &st.ThirdQuartile, &rec.PlotFile); err != nil {
			return nil, err
		}
		result[runID] = append(result[runID], rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
