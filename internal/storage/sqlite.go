// Package storage provides SQLite-based persistence for evaluation
// runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/minebench/internal/game"
	"github.com/vovakirdan/minebench/internal/harness"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord summarizes one stored evaluation run.
type RunRecord struct {
	ID         int64
	BotID      string
	Width      int
	Height     int
	Mines      int
	Games      int
	Seed       int64
	Wins       int
	Losses     int
	Invalid    int
	TotalMoves int
	CreatedAt  time.Time
}

// WinRate is the fraction of games won in the stored run.
func (r RunRecord) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// GameRecord is one stored per-game outcome.
type GameRecord struct {
	RunID     int64
	GameIndex int
	Won       bool
	Invalid   bool
	Moves     int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			bot_id TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			mines INTEGER NOT NULL,
			games INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			wins INTEGER NOT NULL,
			losses INTEGER NOT NULL,
			invalid INTEGER NOT NULL,
			total_moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_bot_id ON runs(bot_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(bot_id, created_at DESC);

		CREATE TABLE IF NOT EXISTS run_games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			game_index INTEGER NOT NULL,
			won INTEGER NOT NULL,
			invalid INTEGER NOT NULL,
			moves INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_run_games_run_id ON run_games(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and all of its per-game outcomes in
// one transaction. Returns the run ID.
func (s *Store) SaveRun(botID string, cfg game.Config, seed int64, results harness.Results) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (bot_id, width, height, mines, games, seed, wins, losses, invalid, total_moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		botID, cfg.Width, cfg.Height, cfg.Mines, len(results), seed,
		results.Wins(), results.Losses(), results.Invalid(), results.TotalMoves(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, g := range results {
		_, err := tx.Exec(
			`INSERT INTO run_games (run_id, game_index, won, invalid, moves)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, g.Game, g.Won, g.Invalid, g.Moves,
		)
		if err != nil {
			return 0, fmt.Errorf("storage: cannot save game %d: %w", g.Game, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return runID, nil
}

// RecentRuns retrieves the latest runs, newest first. An empty botID
// matches every bot.
func (s *Store) RecentRuns(botID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, bot_id, width, height, mines, games, seed, wins, losses, invalid, total_moves, created_at
		 FROM runs`
	args := []any{}
	if botID != "" {
		query += " WHERE bot_id = ?"
		args = append(args, botID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.BotID, &r.Width, &r.Height, &r.Mines, &r.Games,
			&r.Seed, &r.Wins, &r.Losses, &r.Invalid, &r.TotalMoves, &createdAt); err != nil {
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

// RunGames retrieves the per-game outcomes of a stored run, in order.
func (s *Store) RunGames(runID int64) ([]GameRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, game_index, won, invalid, moves
		 FROM run_games
		 WHERE run_id = ?
		 ORDER BY game_index`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var g GameRecord
		if err := rows.Scan(&g.RunID, &g.GameIndex, &g.Won, &g.Invalid, &g.Moves); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// BestWinRate returns the highest win rate among the bot's stored
// runs. Returns 0 if no runs exist.
func (s *Store) BestWinRate(botID string) (float64, error) {
	var rate sql.NullFloat64
	err := s.db.QueryRow(
		`SELECT MAX(CAST(wins AS REAL) / games) FROM runs WHERE bot_id = ? AND games > 0`,
		botID,
	).Scan(&rate)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best win rate: %w", err)
	}

	if !rate.Valid {
		return 0, nil
	}

	return rate.Float64, nil
}

// ClearRuns deletes the stored runs of one bot, or every run when
// botID is empty.
func (s *Store) ClearRuns(botID string) error {
	if botID == "" {
		if _, err := s.db.Exec("DELETE FROM run_games"); err != nil {
			return fmt.Errorf("storage: cannot clear games: %w", err)
		}
		if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
			return fmt.Errorf("storage: cannot clear runs: %w", err)
		}
		return nil
	}
	if _, err := s.db.Exec(
		"DELETE FROM run_games WHERE run_id IN (SELECT id FROM runs WHERE bot_id = ?)",
		botID,
	); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE bot_id = ?", botID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
