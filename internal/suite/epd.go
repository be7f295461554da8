// Package suite loads EPD test positions and checks the engine's choice
// against their best-move and avoid-move operations.
package suite

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/dokchess-go/internal/chess"
	"github.com/lgbarn/dokchess-go/internal/engine"
	"github.com/lgbarn/dokchess-go/internal/errors"
	"github.com/lgbarn/dokchess-go/internal/hashing"
)

// epdFenFields is the number of FEN fields an EPD record starts with.
const epdFenFields = 4

// Case is one test position.
type Case struct {
	Name       string
	Line       int // 1-based line in the suite file
	Position   engine.Position
	BestMoves  []chess.Move // bm: any of these passes
	AvoidMoves []chess.Move // am: none of these may be played
}

// Accepts reports whether playing m passes the case.
func (c Case) Accepts(m chess.Move) bool {
	if slices.Contains(c.AvoidMoves, m) {
		return false
	}
	return len(c.BestMoves) == 0 || slices.Contains(c.BestMoves, m)
}

// LoadFile reads a suite from the named file.
func LoadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open suite %s", path)
	}
	defer f.Close()
	return Load(f, path)
}

// Load reads EPD records, one per line. Blank lines and lines starting
// with '#' are skipped. Moves are in coordinate notation (e2e4, a7a8q).
// A malformed record or a repeated position stops the load with a
// *errors.ParseError naming the line.
func Load(r io.Reader, name string) ([]Case, error) {
	var cases []Case
	seen := hashing.NewDuplicateDetector()
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := parseRecord(line)
		if err != nil {
			err.File = name
			err.Line = lineNum
			return nil, err
		}
		if first, dup := seen.CheckAndAdd(c.Position, lineNum); dup {
			return nil, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				File:     name,
				Line:     lineNum,
				Expected: "unique position",
				Got:      fmt.Sprintf("repeat of line %d", first),
			}
		}
		c.Line = lineNum
		if c.Name == "" {
			c.Name = fmt.Sprintf("%s:%d", name, lineNum)
		}
		cases = append(cases, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read suite %s", name)
	}
	return cases, nil
}

func parseRecord(line string) (Case, *errors.ParseError) {
	fields := strings.Fields(line)
	if len(fields) < epdFenFields {
		return Case{}, &errors.ParseError{
			Err:      errors.ErrInvalidFEN,
			Expected: "placement, side, castling and en passant fields",
			Got:      line,
		}
	}

	pos, err := engine.NewPositionFromFEN(strings.Join(fields[:epdFenFields], " "))
	if err != nil {
		return Case{}, &errors.ParseError{Err: err}
	}

	c := Case{Position: pos}
	for _, op := range strings.Split(strings.Join(fields[epdFenFields:], " "), ";") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		opcode, operand, _ := strings.Cut(op, " ")
		switch opcode {
		case "bm", "am":
			moves, perr := parseMoves(pos, operand, opcode == "bm")
			if perr != nil {
				return Case{}, perr
			}
			if opcode == "bm" {
				c.BestMoves = append(c.BestMoves, moves...)
			} else {
				c.AvoidMoves = append(c.AvoidMoves, moves...)
			}
		case "id":
			c.Name = strings.Trim(strings.TrimSpace(operand), `"`)
		}
	}

	if len(c.BestMoves) == 0 && len(c.AvoidMoves) == 0 {
		return Case{}, &errors.ParseError{
			Err:      errors.ErrParseFailure,
			Expected: "bm or am operation",
			Got:      line,
		}
	}
	return c, nil
}

// parseMoves reads a move list. Best moves must be legal; avoid moves only
// need to parse, so a position without legal moves can still be a case.
func parseMoves(pos engine.Position, operand string, requireLegal bool) ([]chess.Move, *errors.ParseError) {
	var moves []chess.Move
	for _, text := range strings.Fields(operand) {
		m, ok := chess.ParseMove(text)
		if !ok {
			return nil, &errors.ParseError{
				Err:      errors.ErrParseFailure,
				Expected: "move in coordinate notation",
				Got:      text,
			}
		}
		if requireLegal && !engine.IsLegalMove(pos, m) {
			return nil, &errors.ParseError{Err: errors.ErrIllegalMove, Got: text}
		}
		moves = append(moves, m)
	}
	if len(moves) == 0 {
		return nil, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "at least one move"}
	}
	return moves, nil
}
