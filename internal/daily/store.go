package daily

import (
	"context"
	"database/sql"
)

// Result is one finished daily game.
type Result struct {
	PlayerID  string `json:"playerId"`
	Date      string `json:"date"`
	Lang      string `json:"lang"`
	Length    int    `json:"length"`
	WordIndex int    `json:"wordIndex"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Store persists daily results in the daily_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether the player has a result for the day's
// (lang, length) challenge.
func (s *Store) AlreadyPlayed(ctx context.Context, playerID, date, lang string, length int) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM daily_results WHERE player_id=? AND date=? AND lang=? AND length=?`,
		playerID, date, lang, length,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records r. A second result for the same player and challenge
// is ignored, so the first finish counts.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(player_id, date, lang, length, word_index, guesses, elapsed_ms)
		 VALUES(?,?,?,?,?,?,?)`,
		r.PlayerID, r.Date, r.Lang, r.Length, r.WordIndex, r.Guesses, r.ElapsedMs,
	)
	return err
}

// LBRow is a leaderboard line.
type LBRow struct {
	PlayerID  string `json:"playerId"`
	Name      string `json:"name"`
	Guesses   int    `json:"guesses"`
	ElapsedMs int    `json:"elapsedMs"`
}

// Leaderboard returns the best results of a challenge: fewest guesses first,
// then fastest, then earliest.
func (s *Store) Leaderboard(ctx context.Context, date, lang string, length, limit int) ([]LBRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.player_id, COALESCE(p.name, ''), r.guesses, r.elapsed_ms
		   FROM daily_results r
		   LEFT JOIN players p ON p.id = r.player_id
		  WHERE r.date=? AND r.lang=? AND r.length=?
		  ORDER BY r.guesses ASC, r.elapsed_ms ASC, r.created_at ASC
		  LIMIT ?`, date, lang, length, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LBRow{}
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.PlayerID, &r.Name, &r.Guesses, &r.ElapsedMs); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
