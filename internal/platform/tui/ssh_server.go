package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/wildfire/internal/core"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.wildfire/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MaxSessions caps concurrent viewers. Each one runs its own simulation.
	// Zero means no limit.
	MaxSessions int

	// FrameRate is the initial playback rate of each session.
	FrameRate int

	// BaseSeed makes session n simulate seed BaseSeed+n.
	// Zero seeds every session from the clock.
	BaseSeed uint64

	// Generate simulates the trace a session watches.
	Generate Generator

	// Logger receives session events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		MaxSessions: 16,
		FrameRate:   core.DefaultConfig().FrameRate,
	}
}

// SSHServer serves the trace viewer over SSH, one fresh simulation per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger

	active   atomic.Int64
	sessions atomic.Uint64
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if cfg.Generate == nil {
		return nil, errors.New("tui: ssh server needs a trace generator")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "wildfire-ssh",
		})
	}

	keyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}

	// The last middleware runs first: log, then limit, then require a PTY.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.limitMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	srv.server = server
	return srv, nil
}

// resolveHostKey returns the key path to use, creating its directory.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".wildfire", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// sessionSeed returns the seed for the n-th session, counting from 1.
func (s *SSHServer) sessionSeed(n uint64) uint64 {
	if s.config.BaseSeed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return s.config.BaseSeed + n
}

// teaHandler creates a viewer for each SSH session. The trace is simulated
// in the background so the session opens immediately; the simulation is
// cancelled with the session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sshSession.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:   pty.Window.Width,
		ScreenH:   pty.Window.Height,
		FrameRate: s.config.FrameRate,
		Seed:      s.sessionSeed(s.sessions.Add(1)),
	}
	return NewModel(sshSession.Context(), nil, s.config.Generate, cfg), []tea.ProgramOption{tea.WithAltScreen()}
}

// limitMiddleware turns sessions away once MaxSessions are simulating.
func (s *SSHServer) limitMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		n := s.active.Add(1)
		defer s.active.Add(-1)
		if limit := s.config.MaxSessions; limit > 0 && n > int64(limit) {
			s.logger.Warn("session refused", "user", sshSession.User(), "active", n-1)
			wish.Fatalln(sshSession, "wildfire: server is full, try again later")
			return
		}
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		started := time.Now()
		remote := sshSession.RemoteAddr().String()
		s.logger.Info("session started", "user", sshSession.User(), "remote", remote)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", remote,
			"duration", time.Since(started).Round(time.Second),
		)
	}
}

// Active reports how many sessions are connected.
func (s *SSHServer) Active() int {
	return int(s.active.Load())
}

// Serve accepts sessions until ctx is done, then shuts down gracefully.
func (s *SSHServer) Serve(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "max_sessions", s.config.MaxSessions)

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down", "active", s.Active())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
