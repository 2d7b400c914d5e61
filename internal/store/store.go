// Package store persists pull runs and their holdings rows in SQLite so
// analysis can run without refetching from Alma.
package store

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ils-data/marc852-audit/constants"
	"github.com/ils-data/marc852-audit/internal/common"
	"github.com/ils-data/marc852-audit/internal/entity"
)

const schema = `
CREATE TABLE IF NOT EXISTS pull_run (
	id               TEXT PRIMARY KEY,
	institution_code TEXT NOT NULL,
	report_path      TEXT NOT NULL,
	row_count        INTEGER NOT NULL DEFAULT 0,
	status           TEXT NOT NULL,
	started_at       DATETIME NOT NULL,
	finished_at      DATETIME
);
CREATE INDEX IF NOT EXISTS idx_pull_run_institution ON pull_run(institution_code, started_at);

CREATE TABLE IF NOT EXISTS holding (
	id                         INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id                     TEXT NOT NULL,
	institution_code           TEXT NOT NULL,
	institution_name           TEXT DEFAULT '',
	mms_id                     TEXT DEFAULT '',
	holdings_id                TEXT DEFAULT '',
	permanent_call_number      TEXT DEFAULT '',
	permanent_call_number_type TEXT DEFAULT '',
	marc_852                   TEXT DEFAULT '',
	normalized_call_number     TEXT DEFAULT '',
	suppressed                 TEXT DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_holding_run ON holding(run_id);
CREATE INDEX IF NOT EXISTS idx_holding_institution ON holding(institution_code);
`

// Store wraps the SQLite holdings database.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (creating if needed) the database at path and applies the
// schema.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.NewAppError("STORE_ERROR", "failed to open database "+path, err)
	}
	// Single writer keeps the pure-Go driver out of SQLITE_BUSY loops.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logger.Warn("store.pragma.busy_timeout", "error", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		logger.Warn("store.pragma.journal_mode", "error", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, common.NewAppError("STORE_ERROR", "failed to apply schema", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records the start of a pull and returns its run ID.
func (s *Store) BeginRun(ctx context.Context, institutionCode, reportPath string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pull_run (id, institution_code, report_path, status, started_at)
		 VALUES (?, ?, ?, ?, ?)`,
		id.String(), institutionCode, reportPath, string(constants.RunStatusRunning), time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, common.NewAppError("STORE_ERROR", "failed to begin run", err)
	}
	s.logger.Info("store.run.begin", "run_id", id, "institution", institutionCode)
	return id, nil
}

// InsertHoldings bulk-inserts the records for a run in one transaction
// and returns the inserted count.
func (s *Store) InsertHoldings(ctx context.Context, runID uuid.UUID, institutionCode string, records []entity.HoldingRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, common.NewAppError("STORE_ERROR", "failed to begin transaction", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO holding (run_id, institution_code, institution_name, mms_id, holdings_id,
		   permanent_call_number, permanent_call_number_type, marc_852, normalized_call_number, suppressed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, common.NewAppError("STORE_ERROR", "failed to prepare insert", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			runID.String(), institutionCode, rec.InstitutionName, rec.MMSID, rec.HoldingsID,
			rec.PermanentCallNumber, rec.PermanentCallNumberType, rec.MARC852,
			rec.NormalizedCallNumber, rec.Suppressed,
		)
		if err != nil {
			return inserted, common.NewAppError("STORE_ERROR", "failed to insert holding", err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, common.NewAppError("STORE_ERROR", "failed to commit holdings", err)
	}
	s.logger.Info("store.holdings.inserted", "run_id", runID, "count", inserted)
	return inserted, nil
}

// FinishRun marks the run's terminal status and row count.
func (s *Store) FinishRun(ctx context.Context, runID uuid.UUID, status constants.RunStatus, rowCount int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE pull_run SET status = ?, row_count = ?, finished_at = ? WHERE id = ?`,
		string(status), rowCount, time.Now().UTC(), runID.String(),
	)
	if err != nil {
		return common.NewAppError("STORE_ERROR", "failed to finish run", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.NewAppError("STORE_ERROR", "run "+runID.String()+" not found", common.ErrNotFound)
	}
	s.logger.Info("store.run.finish", "run_id", runID, "status", string(status), "rows", rowCount)
	return nil
}

// LatestRun returns the most recent run for an institution, regardless
// of status.
func (s *Store) LatestRun(ctx context.Context, institutionCode string) (entity.PullRun, error) {
	var (
		run      entity.PullRun
		id       string
		finished sql.NullTime
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, institution_code, report_path, row_count, status, started_at, finished_at
		 FROM pull_run WHERE institution_code = ?
		 ORDER BY started_at DESC, rowid DESC LIMIT 1`,
		institutionCode,
	).Scan(&id, &run.InstitutionCode, &run.ReportPath, &run.RowCount, &run.Status, &run.StartedAt, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.PullRun{}, common.NewAppError("STORE_ERROR",
			"no runs recorded for institution "+institutionCode, common.ErrNotFound)
	}
	if err != nil {
		return entity.PullRun{}, common.NewAppError("STORE_ERROR", "failed to query latest run", err)
	}
	run.ID, err = uuid.Parse(id)
	if err != nil {
		return entity.PullRun{}, common.NewAppError("STORE_ERROR", "malformed run id "+id, err)
	}
	if finished.Valid {
		run.FinishedAt = finished.Time
	}
	return run, nil
}

// HoldingsByInstitution returns the holdings captured by the most
// recent successful run for the institution. A run that stored no rows
// counts as no data.
func (s *Store) HoldingsByInstitution(ctx context.Context, institutionCode string) ([]entity.HoldingRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT institution_name, mms_id, holdings_id, permanent_call_number,
		        permanent_call_number_type, marc_852, normalized_call_number, suppressed
		 FROM holding
		 WHERE run_id = (
		   SELECT id FROM pull_run
		   WHERE institution_code = ? AND status = ?
		   ORDER BY started_at DESC, rowid DESC LIMIT 1
		 )
		 ORDER BY id`,
		institutionCode, string(constants.RunStatusOK),
	)
	if err != nil {
		return nil, common.NewAppError("STORE_ERROR", "failed to query holdings", err)
	}
	defer rows.Close()

	var records []entity.HoldingRecord
	for rows.Next() {
		var rec entity.HoldingRecord
		err := rows.Scan(
			&rec.InstitutionName, &rec.MMSID, &rec.HoldingsID, &rec.PermanentCallNumber,
			&rec.PermanentCallNumberType, &rec.MARC852, &rec.NormalizedCallNumber, &rec.Suppressed,
		)
		if err != nil {
			return nil, common.NewAppError("STORE_ERROR", "failed to scan holding", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("STORE_ERROR", "failed to read holdings", err)
	}
	if len(records) == 0 {
		return nil, common.NewAppError("STORE_ERROR",
			"no pulled holdings for institution "+institutionCode, common.ErrNotFound)
	}
	return records, nil
}
