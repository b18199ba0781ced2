// ascii-dungeon-server serves the dungeon over SSH. Every connection gets its
// own freshly generated dungeon. Build:
//
//	go build -o ascii-dungeon-server ./cmd/server
//
// Usage:
//
//	./ascii-dungeon-server [--port 2222] [--key server_host_key] [--seed 0]
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
	"log/slog"
	"os"
	"sync/atomic"

	"ascii-dungeon/internal/game"
	internalssh "ascii-dungeon/internal/ssh"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (generated if absent)")
	seed := flag.Int64("seed", 0, "Dungeon seed for every session; 0 picks a new one per session")
	debug := flag.Bool("debug", false, "Log pipeline and state changes")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	h := &handler{seed: *seed, logger: logger}
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: anyone who can reach the port may play.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("ascii-dungeon SSH server listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// handler runs one independent game per SSH session.
type handler struct {
	seed     int64
	logger   *slog.Logger
	sessions atomic.Int64
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the game so the session stays open.
func (h *handler) handleSession(s gossh.Session) {
	id := h.sessions.Add(1)
	logger := h.logger.With("session", id, "user", s.User(), "remote", s.RemoteAddr().String())

	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p <port> <host>")
		return
	}
	if err != nil {
		logger.Warn("terminal setup failed", "error", err)
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	// Closing the connection finalizes the screen, which ends Play.
	go func() {
		<-s.Context().Done()
		screen.Fini()
	}()

	g, err := game.New(h.config(), logger)
	if err != nil {
		logger.Error("new game", "error", err)
		return
	}
	logger.Info("session started")
	g.Play(screen)
	logger.Info("session ended", "dead", g.Dead(), "log_lines", g.Log().Len())
}

func (h *handler) config() game.Config {
	cfg := game.DefaultConfig()
	if h.seed != 0 {
		cfg.Seed = h.seed
	}
	return cfg
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating new ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "ascii-dungeon server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		// The key still works for this run.
		logger.Warn("could not persist host key", "path", path, "error", err)
	}
	return signer, nil
}
