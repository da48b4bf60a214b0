// FILE: internal/storage/game.go
package storage

import (
	"database/sql"
	"fmt"

	"github.com/apex/log"
)

// RecordNewGame asynchronously records a new game
func (s *Store) RecordNewGame(record GameRecord) error {
	if !s.healthStatus.Load() {
		return nil // Silently drop if degraded
	}

	select {
	case s.writeChan <- func(tx *sql.Tx) error {
		query := `INSERT INTO games (game_id, initial_state, start_time_utc) VALUES (?, ?, ?)`
		_, err := tx.Exec(query, record.GameID, record.InitialState, record.StartTimeUTC)
		return err
	}:
		return nil
	default:
		log.Warn("storage write queue full, dropping game record")
		return nil
	}
}

// RecordMove asynchronously records a move
func (s *Store) RecordMove(record MoveRecord) error {
	if !s.healthStatus.Load() {
		return nil // Silently drop if degraded
	}

	select {
	case s.writeChan <- func(tx *sql.Tx) error {
		query := `INSERT INTO moves (
			game_id, move_number, move_text, state_after, side, captured, move_time_utc
		) VALUES (?, ?, ?, ?, ?, ?, ?)`

		_, err := tx.Exec(query,
			record.GameID, record.MoveNumber, record.MoveText,
			record.StateAfter, record.Side, record.Captured, record.MoveTimeUTC,
		)
		return err
	}:
		return nil
	default:
		log.Warn("storage write queue full, dropping move record")
		return nil
	}
}

// RecordOutcome asynchronously stores a finished game's verdict
func (s *Store) RecordOutcome(gameID, result, reason string) error {
	if !s.healthStatus.Load() {
		return nil // Silently drop if degraded
	}

	select {
	case s.writeChan <- func(tx *sql.Tx) error {
		query := `UPDATE games SET result = ?, reason = ? WHERE game_id = ?`
		_, err := tx.Exec(query, result, reason, gameID)
		return err
	}:
		return nil
	default:
		log.Warn("storage write queue full, dropping outcome record")
		return nil
	}
}

// DeleteUndoneMoves asynchronously deletes moves after undo
func (s *Store) DeleteUndoneMoves(gameID string, afterMoveNumber int) error {
	if !s.healthStatus.Load() {
		return nil // Silently drop if degraded
	}

	select {
	case s.writeChan <- func(tx *sql.Tx) error {
		query := `DELETE FROM moves WHERE game_id = ? AND move_number > ?`
		_, err := tx.Exec(query, gameID, afterMoveNumber)
		return err
	}:
		return nil
	default:
		log.Warn("storage write queue full, dropping undo operation")
		return nil
	}
}

// QueryGames retrieves games, optionally filtered to one ID
func (s *Store) QueryGames(gameID string) ([]GameRecord, error) {
	query := `SELECT game_id, initial_state, result, reason, start_time_utc FROM games WHERE 1=1`

	var args []interface{}
	if gameID != "" && gameID != "*" {
		query += " AND game_id = ?"
		args = append(args, gameID)
	}
	query += " ORDER BY start_time_utc DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		if err := rows.Scan(&g.GameID, &g.InitialState, &g.Result, &g.Reason, &g.StartTimeUTC); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return games, nil
}

// QueryMoves retrieves the recorded moves of a game in order
func (s *Store) QueryMoves(gameID string) ([]MoveRecord, error) {
	query := `SELECT move_id, game_id, move_number, move_text, state_after, side, captured, move_time_utc
		FROM moves WHERE game_id = ? ORDER BY move_number ASC`

	rows, err := s.db.Query(query, gameID)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.GameID, &m.MoveNumber, &m.MoveText,
			&m.StateAfter, &m.Side, &m.Captured, &m.MoveTimeUTC); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		moves = append(moves, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}
	return moves, nil
}
