package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound is returned when a scenario ID is not in the journal.
var ErrNotFound = errors.New("scenario not found")

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordScenario(s ScenarioRecord) error {
	in, r := s.Inputs, s.Result
	_, err := j.db.Exec(`
		INSERT INTO scenarios
		(id, time, pair, investment_amount, entry_rate, exit_rate, lot_size, margin_per_lot,
		 usd_exposure, lots_needed, total_margin, usd_value_unhedged, futures_pnl_inr, inr_after_hedge, usd_value_hedged)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Time.UTC(), s.Pair,
		in.InvestmentAmount, in.EntryRate, in.ExitRate, in.LotSize, in.MarginPerLot,
		r.USDExposure, r.LotsNeeded, r.TotalMargin, r.USDValueUnhedged, r.FuturesPnLINR, r.INRAfterHedge, r.USDValueHedged,
	)
	return err
}

const selectScenarios = `
	SELECT id, time, pair, investment_amount, entry_rate, exit_rate, lot_size, margin_per_lot,
	       usd_exposure, lots_needed, total_margin, usd_value_unhedged, futures_pnl_inr, inr_after_hedge, usd_value_hedged
	FROM scenarios`

type scanner interface {
	Scan(dest ...any) error
}

func scanScenario(row scanner) (ScenarioRecord, error) {
	var s ScenarioRecord
	err := row.Scan(
		&s.ID, &s.Time, &s.Pair,
		&s.Inputs.InvestmentAmount, &s.Inputs.EntryRate, &s.Inputs.ExitRate,
		&s.Inputs.LotSize, &s.Inputs.MarginPerLot,
		&s.Result.USDExposure, &s.Result.LotsNeeded, &s.Result.TotalMargin,
		&s.Result.USDValueUnhedged, &s.Result.FuturesPnLINR, &s.Result.INRAfterHedge,
		&s.Result.USDValueHedged,
	)
	return s, err
}

// GetScenario returns a single scenario by ID.
func (j *SQLite) GetScenario(id string) (ScenarioRecord, error) {
	s, err := scanScenario(j.db.QueryRow(selectScenarios+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ScenarioRecord{}, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return ScenarioRecord{}, err
	}
	return s, nil
}

// ListScenariosBetween returns scenarios recorded within [start, end), oldest first.
func (j *SQLite) ListScenariosBetween(start, end time.Time) ([]ScenarioRecord, error) {
	return j.list(selectScenarios+`
		WHERE time >= ? AND time < ?
		ORDER BY time ASC, id ASC`, start.UTC(), end.UTC())
}

// ListRecent returns up to limit scenarios, newest first.
func (j *SQLite) ListRecent(limit int) ([]ScenarioRecord, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	return j.list(selectScenarios+`
		ORDER BY time DESC, id DESC
		LIMIT ?`, limit)
}

func (j *SQLite) list(query string, args ...any) ([]ScenarioRecord, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ScenarioRecord
	for rows.Next() {
		s, err := scanScenario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
