// backrooms-crawl plays one arena in the local terminal. Build:
//
//	go build -o backrooms-crawl ./cmd/arena
//
// Usage:
//
//	./backrooms-crawl [--config crawl.yaml] [--scenario arena.yaml] [--log backrooms-crawl.log]
//	./backrooms-crawl --replay turns.jsonl.zst
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/game"
	"backrooms-crawl/internal/scenario"
	"backrooms-crawl/internal/trace"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "", "YAML tuning file layered over the defaults")
	scenarioPath := flag.String("scenario", "", "arena YAML (default: embedded Level 0)")
	logPath := flag.String("log", "backrooms-crawl.log", "log file; the terminal belongs to the game")
	replayPath := flag.String("replay", "", "print a recorded turn trace and exit")
	flag.Parse()

	if *replayPath != "" {
		if err := replay(*replayPath, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*cfgPath, *scenarioPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, scenarioPath, logPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	sc, err := loadScenario(scenarioPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.Engine.Debug, logPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	var sink trace.Recorder
	if cfg.Engine.TracePath != "" {
		fw, err := trace.Create(cfg.Engine.TracePath)
		if err != nil {
			return err
		}
		defer func() {
			if err := fw.Close(); err != nil {
				logger.Warn("trace not flushed", zap.String("path", cfg.Engine.TracePath), zap.Error(err))
			}
		}()
		sink = fw
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	return game.New(screen, sc, cfg, logger, sink).Run()
}

// replay prints every event of a trace file, one line each.
func replay(path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	events, err := trace.Read(f)
	if err != nil {
		return fmt.Errorf("read trace %s: %w", path, err)
	}
	for _, e := range events {
		if _, err := fmt.Fprintf(out, "%4d  %s\n", e.Turn, e); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Default()
	}
	return scenario.Load(path)
}

// newLogger writes development (debug) or production JSON logs to path.
func newLogger(debug bool, path string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if debug {
		zc = zap.NewDevelopmentConfig()
	}
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{path}
	return zc.Build()
}
