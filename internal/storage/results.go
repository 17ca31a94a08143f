package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/equata/internal/core"
)

// LevelRecord is a stored level attempt.
type LevelRecord struct {
	ID           int64
	RunID        string
	GameID       string
	LevelID      string
	Won          bool
	TimeTaken    float64
	MaxTime      float64
	WrongGuesses int
	CreatedAt    time.Time
}

// LevelStats aggregates all attempts at one level.
type LevelStats struct {
	LevelID  string
	Attempts int
	Wins     int
	BestTime float64 // 0 when the level was never won
}

// NewRunID returns a fresh identifier grouping the level results of one run.
func NewRunID() string {
	return uuid.NewString()
}

// SaveLevelResult records one finished level attempt under runID.
// runID must be a UUID, normally from NewRunID.
func (s *Store) SaveLevelResult(runID string, r core.LevelResult) (int64, error) {
	id, err := uuid.Parse(runID)
	if err != nil {
		return 0, fmt.Errorf("storage: invalid run id %q: %w", runID, err)
	}

	res, err := s.db.Exec(
		`INSERT INTO level_results
		 (run_id, game_id, level_id, won, time_taken, max_time, wrong_guesses)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id.String(), r.GameID, r.LevelID, r.Won, r.TimeTaken, r.MaxTime, r.WrongGuesses,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level result: %w", err)
	}

	rowID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return rowID, nil
}

const levelRecordColumns = `id, run_id, game_id, level_id, won, time_taken, max_time, wrong_guesses, created_at`

func scanLevelRecords(rows *sql.Rows) ([]LevelRecord, error) {
	defer rows.Close()

	var records []LevelRecord
	for rows.Next() {
		var r LevelRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.RunID,
			&r.GameID,
			&r.LevelID,
			&r.Won,
			&r.TimeTaken,
			&r.MaxTime,
			&r.WrongGuesses,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// BestTimes returns the fastest winning attempts at a level, fastest first.
func (s *Store) BestTimes(levelID string, limit int) ([]LevelRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+levelRecordColumns+`
		 FROM level_results
		 WHERE level_id = ? AND won = 1
		 ORDER BY time_taken ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	return scanLevelRecords(rows)
}

// RunResults returns every attempt recorded under runID in play order.
func (s *Store) RunResults(runID string) ([]LevelRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+levelRecordColumns+`
		 FROM level_results
		 WHERE run_id = ?
		 ORDER BY id ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run results: %w", err)
	}
	return scanLevelRecords(rows)
}

// ClearedLevels returns the set of level ids that have been won at least once.
func (s *Store) ClearedLevels() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT DISTINCT level_id FROM level_results WHERE won = 1`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query cleared levels: %w", err)
	}
	defer rows.Close()

	cleared := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		cleared[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return cleared, nil
}

// GetLevelStats aggregates attempts at a level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var best sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), MIN(CASE WHEN won = 1 THEN time_taken END)
		 FROM level_results WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Attempts, &stats.Wins, &best)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	if best.Valid {
		stats.BestTime = best.Float64
	}
	return stats, nil
}
