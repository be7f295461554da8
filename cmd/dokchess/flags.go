// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/dokchess-go/internal/config"
	"github.com/lgbarn/dokchess-go/internal/output"
)

var (
	// Modes (default: xboard protocol on stdin/stdout)
	perftDepth = flag.Int("perft", 0, "Print a divide listing and node count to depth N")
	bestMove   = flag.Bool("bestmove", false, "Print the engine's move for the start position and exit")
	suiteFile  = flag.String("suite", "", "Run the EPD test suite in this file")
	startFEN   = flag.String("fen", "", "Start position in FEN (default: initial position)")

	// Search options
	depth    = flag.Int("depth", 4, "Search depth in plies")
	strategy = flag.String("strategy", "minimax", "Move selector: minimax or greedy")

	// Performance options
	workers    = flag.Int("workers", 0, "Number of suite workers (0 = auto-detect based on CPU cores)")
	bufferSize = flag.Int("buffer", 16, "Suite work queue size")

	// Output options
	jsonOutput = flag.Bool("J", false, "Write suite results in JSON format")

	// Protocol options
	engineName = flag.String("name", "DokChess", "Engine name announced to the GUI")

	// Logging
	logFile   = flag.String("log", "", "Write log output to this file (default: stderr)")
	appendLog = flag.String("L", "", "Append log output to this file")
	logLevel  = flag.String("loglevel", config.DefaultLogLevel, "Log level: trace, debug, info, warn, error")
	console   = flag.Bool("console", false, "Human-readable log lines instead of JSON")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applySuiteFlags(cfg)
	cfg.Protocol.EngineName = *engineName
	cfg.LogLevel = *logLevel
}

// applySearchFlags configures move selection.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *depth
	cfg.Search.Strategy = *strategy
}

// applySuiteFlags configures the suite worker pool.
func applySuiteFlags(cfg *config.Config) {
	cfg.Suite.Workers = *workers
	if cfg.Suite.Workers == 0 {
		cfg.Suite.Workers = runtime.NumCPU()
	}
	cfg.Suite.BufferSize = *bufferSize
	if *jsonOutput {
		cfg.Suite.Format = output.FormatJSON
	}
}
