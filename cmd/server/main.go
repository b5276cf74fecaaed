// backrooms-server serves the arena over SSH. Every connection gets its own
// level and its own turn engine. Build:
//
//	go build -o backrooms-server ./cmd/server
//
// Usage:
//
//	./backrooms-server [--config crawl.yaml] [--scenario arena.yaml]
//
// Connect:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"os"
	"sync/atomic"

	"backrooms-crawl/internal/config"
	"backrooms-crawl/internal/game"
	"backrooms-crawl/internal/scenario"
	internalssh "backrooms-crawl/internal/ssh"
	"backrooms-crawl/internal/trace"

	gossh "github.com/gliderlabs/ssh"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfgPath := flag.String("config", "", "YAML tuning file layered over the defaults")
	scenarioPath := flag.String("scenario", "", "arena YAML (default: embedded Level 0)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	var logger *zap.Logger
	var err error
	if cfg.Engine.Debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	sc, err := scenario.Default()
	if *scenarioPath != "" {
		sc, err = scenario.Load(*scenarioPath)
	}
	if err != nil {
		logger.Fatal("scenario", zap.Error(err))
	}

	signer, err := loadOrCreateHostKey(cfg.Server.HostKey, logger)
	if err != nil {
		logger.Fatal("host key", zap.Error(err))
	}

	a := &arenas{cfg: cfg, scenario: sc, log: logger}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: a.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("ssh server listening", zap.Int("port", cfg.Server.Port), zap.String("scenario", sc.Name))
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("ssh server stopped", zap.Error(err))
	}
}

// arenas starts one independent game per SSH session.
type arenas struct {
	cfg      *config.Config
	scenario *scenario.Scenario
	log      *zap.Logger
	sessions atomic.Uint64
}

// handleSession blocks for the lifetime of the connection.
func (a *arenas) handleSession(s gossh.Session) {
	n := a.sessions.Add(1)
	log := a.log.With(
		zap.Uint64("session", n),
		zap.String("player", internalssh.SanitizeName(s.User())),
		zap.String("remote", s.RemoteAddr().String()),
	)

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game needs a terminal. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		log.Warn("session rejected", zap.Error(err))
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}

	sink, closeSink := a.sessionTrace(n, log)
	defer closeSink()

	log.Info("session started")
	if err := game.New(screen, a.scenario, a.cfg, log, sink).Run(); err != nil {
		log.Error("arena failed", zap.Error(err))
	}
	log.Info("session ended")
}

// sessionTrace opens <trace_path>.<session> when tracing is configured.
func (a *arenas) sessionTrace(n uint64, log *zap.Logger) (trace.Recorder, func()) {
	if a.cfg.Engine.TracePath == "" {
		return nil, func() {}
	}
	path := fmt.Sprintf("%s.%d", a.cfg.Engine.TracePath, n)
	fw, err := trace.Create(path)
	if err != nil {
		log.Warn("trace disabled", zap.Error(err))
		return nil, func() {}
	}
	return fw, func() {
		if err := fw.Close(); err != nil {
			log.Warn("trace not flushed", zap.String("path", path), zap.Error(err))
		}
	}
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, log *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	log.Info("generating ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; the server still runs with an ephemeral key.
	pemBlock, err := xssh.MarshalPrivateKey(key, "backrooms-crawl server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		log.Warn("host key not saved", zap.Error(err))
	}
	return signer, nil
}
