// Package session holds the game state behind a protocol front end: the
// current position and the selector that answers for the engine.
package session

import (
	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/engine"
	"github.com/lgbarn/dokchess-go/internal/errors"
	"github.com/lgbarn/dokchess-go/internal/hashing"
	"github.com/lgbarn/dokchess-go/internal/search"
)

// Session is a single game. It is not safe for concurrent use.
type Session struct {
	pos      engine.Position
	selector search.Selector
	logger   zerolog.Logger
	history  *hashing.History
	ply      int
}

// New creates a session at the initial position.
func New(selector search.Selector, logger zerolog.Logger) *Session {
	s := &Session{
		selector: selector,
		logger:   logger,
		history:  hashing.NewHistory(),
	}
	s.start(engine.NewInitialPosition())
	return s
}

// start begins a new game history at pos.
func (s *Session) start(pos engine.Position) {
	s.pos = pos
	s.ply = 0
	s.history.Reset()
	s.history.Push(pos)
}

// Reset returns to the initial position.
func (s *Session) Reset() {
	s.start(engine.NewInitialPosition())
	s.logger.Debug().Str("fen", s.pos.FEN()).Msg("reset")
}

// SetPosition replaces the current position. On error the session is
// unchanged.
func (s *Session) SetPosition(fen string) error {
	pos, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	s.start(pos)
	s.logger.Debug().Str("fen", s.pos.FEN()).Msg("position set")
	return nil
}

// Position returns the current position.
func (s *Session) Position() engine.Position {
	return s.pos
}

// Ply returns the number of moves played since the last reset.
func (s *Session) Ply() int {
	return s.ply
}

// ApplyMoveText parses text and applies it without a legality check.
// Unparseable text, or a move from an empty square, leaves the session
// unchanged and returns false.
func (s *Session) ApplyMoveText(text string) bool {
	m, ok := chess.ParseMove(text)
	if !ok {
		s.logger.Debug().Str("text", text).Msg("not a move")
		return false
	}
	return s.ApplyMove(m)
}

// ApplyMove plays m on the current position. It returns false and leaves
// the session unchanged when m does not change the position.
func (s *Session) ApplyMove(m chess.Move) bool {
	next := s.pos.Apply(m)
	if next == s.pos {
		s.logger.Debug().Stringer("move", m).Msg("move changes nothing")
		return false
	}
	s.pos = next
	s.ply++
	seen := s.history.Push(s.pos)
	s.logger.Debug().
		Stringer("move", m).
		Str("fen", s.pos.FEN()).
		Int("seen", seen).
		Msg("move applied")
	return true
}

// IsLegal reports whether m is legal in the current position.
func (s *Session) IsLegal(m chess.Move) bool {
	return slices.Contains(engine.LegalMoves(s.pos), m)
}

// PlayUserMove parses text and plays it if it is legal. The returned
// error is a *errors.MoveError wrapping ErrParseFailure, ErrNoLegalMoves
// once the game is over, or ErrIllegalMove.
func (s *Session) PlayUserMove(text string) error {
	m, ok := chess.ParseMove(text)
	if !ok {
		return s.moveError(errors.ErrParseFailure, text)
	}
	if !engine.HasLegalMoves(s.pos) {
		return s.moveError(errors.ErrNoLegalMoves, text)
	}
	if !s.IsLegal(m) {
		return s.moveError(errors.ErrIllegalMove, text)
	}
	s.ApplyMove(m)
	return nil
}

func (s *Session) moveError(err error, text string) error {
	return &errors.MoveError{
		Err:      err,
		FEN:      s.pos.FEN(),
		PlyNum:   s.ply + 1,
		MoveText: text,
	}
}

// EngineMove searches the current position, plays the chosen move and
// returns it. The second result is false when there is no legal move.
func (s *Session) EngineMove() (chess.Move, bool) {
	result := s.selector.Search(s.pos)
	if !result.Found {
		s.logger.Debug().Str("fen", s.pos.FEN()).Msg("no legal move")
		return chess.Move{}, false
	}
	s.logger.Debug().
		Stringer("move", result.Move).
		Int("score", result.Score).
		Uint64("nodes", result.Nodes).
		Msg("engine move")
	s.ApplyMove(result.Move)
	return result.Move, true
}

// Status reports whether the game in the current position is over,
// counting a position seen three times as a draw.
func (s *Session) Status() engine.GameStatus {
	status := engine.Status(s.pos)
	if status == engine.Ongoing && s.history.Count(s.pos) >= 3 {
		return engine.ThreefoldRepetition
	}
	return status
}
