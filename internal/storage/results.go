package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// LevelResultEntry is a stored level completion.
type LevelResultEntry struct {
	ID        int64
	GameID    string
	LevelID   string
	Rotations int
	Ticks     uint64
	Score     int
	Par       int
	CreatedAt time.Time
}

const levelResultColumns = `id, game_id, level_id, rotations, ticks, score, par, created_at`

// SaveLevelResult records a cleared level.
// Returns the ID of the inserted record.
func (s *Store) SaveLevelResult(r core.LevelResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO level_results (game_id, level_id, rotations, ticks, score, par)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.GameID, r.LevelID, r.Rotations, int64(r.Ticks), r.Score, r.Par,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save level result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// LevelResults retrieves the best N results for a level, fewest rotations
// first and then fastest.
func (s *Store) LevelResults(levelID string, limit int) ([]LevelResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+levelResultColumns+`
		 FROM level_results
		 WHERE level_id = ?
		 ORDER BY rotations ASC, ticks ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	defer rows.Close()

	var entries []LevelResultEntry
	for rows.Next() {
		e, err := scanLevelResult(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestLevelResult returns the best result for a level, or nil if the level
// has never been cleared.
func (s *Store) BestLevelResult(levelID string) (*LevelResultEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+levelResultColumns+`
		 FROM level_results
		 WHERE level_id = ?
		 ORDER BY rotations ASC, ticks ASC, id ASC
		 LIMIT 1`,
		levelID,
	)

	e, err := scanLevelResult(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// BestLevelResults returns the best result of every cleared level, keyed by
// level ID.
func (s *Store) BestLevelResults() (map[string]LevelResultEntry, error) {
	rows, err := s.db.Query(
		`SELECT ` + levelResultColumns + `
		 FROM level_results
		 ORDER BY level_id, rotations ASC, ticks ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level results: %w", err)
	}
	defer rows.Close()

	best := make(map[string]LevelResultEntry)
	for rows.Next() {
		e, err := scanLevelResult(rows)
		if err != nil {
			return nil, err
		}
		if _, seen := best[e.LevelID]; !seen {
			best[e.LevelID] = e
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return best, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLevelResult(row rowScanner) (LevelResultEntry, error) {
	var e LevelResultEntry
	var ticks int64
	var createdAt any

	err := row.Scan(&e.ID, &e.GameID, &e.LevelID, &e.Rotations, &ticks, &e.Score, &e.Par, &createdAt)
	if err == sql.ErrNoRows {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan level result: %w", err)
	}

	e.Ticks = uint64(ticks)
	e.CreatedAt = parseTimestamp(createdAt)
	return e, nil
}
