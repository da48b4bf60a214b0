// FILE: internal/service/service.go
package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gridchess/internal/board"
	"gridchess/internal/core"
	"gridchess/internal/rules"
	"gridchess/internal/storage"

	"github.com/google/uuid"
)

// ErrGameNotFound is returned for unknown game IDs.
var ErrGameNotFound = errors.New("game not found")

// Service is a state manager for concurrent games with optional persistence
type Service struct {
	games map[string]*rules.Engine
	mu    sync.RWMutex
	store *storage.Store // nil if persistence disabled
}

// New creates a new service instance with optional storage
func New(store *storage.Store) *Service {
	return &Service{
		games: make(map[string]*rules.Engine),
		store: store,
	}
}

// CreateGame registers a new game. An empty initialState starts from the
// classic layout; otherwise the game resumes from the given state string.
// Returns the generated game ID.
func (s *Service) CreateGame(initialState string) (string, error) {
	var engine *rules.Engine
	if initialState == "" {
		engine = rules.New()
		initialState = engine.StateString()
	} else {
		var err error
		engine, err = rules.Resume(initialState)
		if err != nil {
			return "", err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.generateGameID()
	s.games[id] = engine

	if s.store != nil {
		s.store.RecordNewGame(storage.GameRecord{
			GameID:       id,
			InitialState: initialState,
			StartTimeUTC: time.Now().UTC(),
		})
	}
	return id, nil
}

// generateGameID creates a new unique game ID; callers hold the lock.
func (s *Service) generateGameID() string {
	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// MakeMove validates and applies a move, persisting it and any resulting
// game end.
func (s *Service) MakeMove(gameID, moveText string) (*MoveResult, error) {
	m, err := core.ParseMove(moveText)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	engine, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	mover := engine.OnMove()
	taken, err := engine.Commit(m)
	if err != nil {
		return nil, err
	}

	result := &MoveResult{
		Move:  m.String(),
		State: engine.StateString(),
	}
	if taken != nil {
		result.Captured = taken.String()
	}
	winners, reason := engine.Outcome()
	for _, side := range winners {
		result.Winners = append(result.Winners, side.String())
	}
	result.Reason = reason
	result.InCheck = engine.InCheck(engine.OnMove())

	if s.store != nil {
		s.store.RecordMove(storage.MoveRecord{
			GameID:      gameID,
			MoveNumber:  len(engine.History()),
			MoveText:    m.String(),
			StateAfter:  result.State,
			Side:        mover.String(),
			Captured:    result.Captured,
			MoveTimeUTC: time.Now().UTC(),
		})
		if reason != "" {
			s.store.RecordOutcome(gameID, verdictText(winners, reason), reason)
		}
	}
	return result, nil
}

// UndoMoves rolls back the given number of moves.
func (s *Service) UndoMoves(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	engine, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	originalMoveCount := len(engine.History())
	if err := engine.Rollback(count); err != nil {
		return err
	}

	if s.store != nil {
		s.store.DeleteUndoneMoves(gameID, originalMoveCount-count)
	}
	return nil
}

// GetView returns a read-only snapshot of a game.
func (s *Service) GetView(gameID string) (*GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	engine, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return newGameView(gameID, engine), nil
}

// LegalMoves lists every legal move for the side on turn.
func (s *Service) LegalMoves(gameID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	engine, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	moves := engine.AllLegalMoves(engine.OnMove())
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out, nil
}

// CurrentBoard returns an independent copy of the game's board.
func (s *Service) CurrentBoard(gameID string) (*board.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	engine, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return engine.Board().Clone(), nil
}

// BoardASCII renders the current board for terminals.
func (s *Service) BoardASCII(gameID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	engine, ok := s.games[gameID]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return engine.Board().ASCII(), nil
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	delete(s.games, gameID)
	return nil
}

// GameIDs lists the registered games.
func (s *Service) GameIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.games))
	for id := range s.games {
		out = append(out, id)
	}
	return out
}

// StorageHealth returns the storage component status
func (s *Service) StorageHealth() string {
	if s.store == nil {
		return "disabled"
	}
	if s.store.IsHealthy() {
		return "ok"
	}
	return "degraded"
}

// Close cleans up resources
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*rules.Engine)
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
