// dokchess is a small chess engine speaking the xboard protocol.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"

	"github.com/lgbarn/dokchess-go/internal/config"
	"github.com/lgbarn/dokchess-go/internal/engine"
	"github.com/lgbarn/dokchess-go/internal/errors"
	"github.com/lgbarn/dokchess-go/internal/logging"
	"github.com/lgbarn/dokchess-go/internal/output"
	"github.com/lgbarn/dokchess-go/internal/session"
	"github.com/lgbarn/dokchess-go/internal/suite"
	"github.com/lgbarn/dokchess-go/internal/xboard"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("dokchess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	file, err := openLogFile(*logFile, *appendLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if file != nil {
		cfg.LogFile = file
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger := setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitCode := 0
	if err := run(ctx, cfg, os.Stdin, logger); err != nil {
		logger.Error().Err(err).Msg("dokchess failed")
		exitCode = 1
	}
	stop()
	if file != nil {
		_ = file.Close()
	}
	os.Exit(exitCode)
}

// run dispatches to the mode selected on the command line.
func run(ctx context.Context, cfg *config.Config, in io.Reader, logger zerolog.Logger) error {
	switch {
	case *perftDepth > 0:
		pos, err := startPosition()
		if err != nil {
			return err
		}
		return runPerft(cfg.Output, pos, *perftDepth)
	case *bestMove:
		pos, err := startPosition()
		if err != nil {
			return err
		}
		return runBestMove(cfg, pos, logger)
	case *suiteFile != "":
		return runSuite(ctx, cfg, *suiteFile, logger)
	default:
		return runXBoard(ctx, cfg, in, logger)
	}
}

// startPosition returns the -fen position or the initial position.
func startPosition() (engine.Position, error) {
	if *startFEN == "" {
		return engine.NewInitialPosition(), nil
	}
	return engine.NewPositionFromFEN(*startFEN)
}

// runPerft prints a divide listing for pos.
func runPerft(out io.Writer, pos engine.Position, depth int) error {
	for _, line := range engine.DivideLines(engine.Divide(pos, depth)) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// runBestMove prints the engine's choice for pos, or "none" when the side
// to move has no legal move.
func runBestMove(cfg *config.Config, pos engine.Position, logger zerolog.Logger) error {
	selector, err := cfg.Search.NewSelector()
	if err != nil {
		return err
	}
	result := selector.Search(pos)
	logger.Info().Str("fen", pos.FEN()).Stringer("result", result).Msg("search finished")
	if !result.Found {
		_, err = fmt.Fprintf(cfg.Output, "bestmove none (%s)\n", engine.Status(pos))
		return err
	}
	_, err = fmt.Fprintf(cfg.Output, "bestmove %s\n", result.Move)
	return err
}

// runSuite runs an EPD suite and writes the results in the configured
// format.
func runSuite(ctx context.Context, cfg *config.Config, path string, logger zerolog.Logger) error {
	cases, err := suite.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Info().Str("suite", path).Int("cases", len(cases)).Msg("suite loaded")

	runner := &suite.Runner{
		Workers:    cfg.Suite.Workers,
		BufferSize: cfg.Suite.BufferSize,
		Logger:     logger,
	}
	results, summary, err := runner.Run(ctx, cases, cfg.Search.NewSelector)
	if err != nil {
		return err
	}

	rw, err := output.New(cfg.Output, cfg.Suite.Format)
	if err != nil {
		return err
	}
	return output.WriteAll(rw, results, summary)
}

// runXBoard plays games over the xboard protocol.
func runXBoard(ctx context.Context, cfg *config.Config, in io.Reader, logger zerolog.Logger) error {
	selector, err := cfg.Search.NewSelector()
	if err != nil {
		return err
	}
	s := session.New(selector, logger)
	return xboard.New(in, cfg.Output, s, cfg.Protocol, logger).Run(ctx)
}

// openLogFile opens the log file named by -log (truncated) or -L
// (appended). It returns a nil file when neither flag is set; the caller
// closes the file.
func openLogFile(createPath, appendPath string) (*os.File, error) {
	switch {
	case createPath != "" && appendPath != "":
		return nil, errors.Wrap(errors.ErrInvalidConfig, "-log and -L are mutually exclusive")
	case createPath != "":
		file, err := os.Create(createPath)
		if err != nil {
			return nil, fmt.Errorf("creating log file %s: %w", createPath, err)
		}
		return file, nil
	case appendPath != "":
		file, err := os.OpenFile(appendPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", appendPath, err)
		}
		return file, nil
	}
	return nil, nil
}

// setupLogger builds the logger writing to the configured log file.
func setupLogger(cfg *config.Config) zerolog.Logger {
	newLogger := logging.New
	if *console {
		newLogger = logging.NewConsole
	}
	logger, err := newLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	return logger
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: dokchess [options]\n\n")
	fmt.Fprintf(os.Stderr, "A minimax chess engine. Without a mode flag it speaks the xboard\n")
	fmt.Fprintf(os.Stderr, "protocol on standard input and output.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nModes:\n")
	fmt.Fprintf(os.Stderr, "  -perft N [-fen F]     divide listing and node count\n")
	fmt.Fprintf(os.Stderr, "  -bestmove [-fen F]    engine move for one position\n")
	fmt.Fprintf(os.Stderr, "  -suite FILE           EPD suite with bm/am operations\n")
}
