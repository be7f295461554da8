// Package xboard speaks the subset of the Chess Engine Communication
// Protocol (xboard/WinBoard) needed to play a game.
package xboard

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/config"
	"github.com/lgbarn/dokchess-go/internal/engine"
	"github.com/lgbarn/dokchess-go/internal/errors"
	"github.com/lgbarn/dokchess-go/internal/session"
)

// Protocol reads xboard commands and answers for a session.
type Protocol struct {
	in      io.Reader
	out     io.Writer
	session *session.Session
	cfg     *config.ProtocolConfig
	logger  zerolog.Logger
	force   bool
}

// New creates a protocol handler. A nil cfg uses the default settings.
func New(in io.Reader, out io.Writer, s *session.Session, cfg *config.ProtocolConfig, logger zerolog.Logger) *Protocol {
	if cfg == nil {
		cfg = config.NewProtocolConfig()
	}
	return &Protocol{
		in:      in,
		out:     out,
		session: s,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run processes commands until quit, end of input or cancellation of ctx.
// Only read and write failures are returned.
func (p *Protocol) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(p.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return errors.Wrap(err, "read command")
				default:
					return nil
				}
			}
			quit, err := p.handle(line)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// handle executes one command line. It reports true on quit.
func (p *Protocol) handle(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	p.logger.Debug().Str("line", line).Msg("command received")

	command, args := fields[0], fields[1:]
	switch command {
	case "quit":
		return true, nil
	case "xboard":
		return false, p.send("")
	case "protover":
		return false, p.send(fmt.Sprintf(
			"feature myname=%q setboard=1 usermove=0 sigint=0 sigterm=0 done=1", p.cfg.EngineName))
	case "new":
		p.session.Reset()
		p.force = false
		return false, nil
	case "force":
		p.force = true
		return false, nil
	case "go", "white":
		p.force = false
		return false, p.engineMove()
	case "setboard":
		return false, p.setBoard(strings.Join(args, " "))
	case "usermove":
		if len(args) == 0 {
			return false, nil
		}
		return false, p.userMove(args[0])
	}

	if _, ok := chess.ParseMove(command); ok {
		return false, p.userMove(command)
	}
	p.logger.Debug().Str("command", command).Msg("command ignored")
	return false, nil
}

func (p *Protocol) setBoard(fen string) error {
	if err := p.session.SetPosition(fen); err != nil {
		p.logger.Warn().Err(err).Msg("setboard rejected")
		return p.send("tellusererror Illegal position")
	}
	return nil
}

func (p *Protocol) userMove(text string) error {
	if err := p.session.PlayUserMove(text); err != nil {
		p.logger.Info().Err(err).Msg("move rejected")
		return p.send("Illegal move: " + text)
	}
	if over, err := p.reportResult(); over || err != nil {
		return err
	}
	if p.force {
		return nil
	}
	return p.engineMove()
}

func (p *Protocol) engineMove() error {
	move, ok := p.session.EngineMove()
	if !ok {
		_, err := p.reportResult()
		return err
	}
	if err := p.send("move " + move.String()); err != nil {
		return err
	}
	_, err := p.reportResult()
	return err
}

// reportResult prints the result line when the game has ended.
func (p *Protocol) reportResult() (bool, error) {
	status := p.session.Status()
	if !status.IsOver() {
		return false, nil
	}
	p.logger.Info().Stringer("status", status).Str("fen", p.session.Position().FEN()).Msg("game over")
	return true, p.send(ResultLine(status, p.session.Position().SideToMove()))
}

// ResultLine formats the xboard result for a finished game. toMove is the
// side to move in the final position.
func ResultLine(status engine.GameStatus, toMove chess.Colour) string {
	switch status {
	case engine.Checkmate:
		if toMove == chess.White {
			return "0-1 {Black mates}"
		}
		return "1-0 {White mates}"
	case engine.Stalemate:
		return "1/2-1/2 {Stalemate}"
	case engine.InsufficientMaterial:
		return "1/2-1/2 {Insufficient material}"
	case engine.ThreefoldRepetition:
		return "1/2-1/2 {Draw by repetition}"
	}
	return ""
}

func (p *Protocol) send(line string) error {
	if _, err := fmt.Fprintln(p.out, line); err != nil {
		return errors.Wrap(err, "write response")
	}
	return nil
}
