package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-paddle/internal/config"
	"github.com/vovakirdan/tui-paddle/internal/game"
	"github.com/vovakirdan/tui-paddle/internal/scene"
)

// SSHServer serves the paddle toy over SSH. Every session gets its own
// simulation loop and model; nothing is shared between sessions.
type SSHServer struct {
	config config.Config
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a server from the ssh section of the configuration.
func NewSSHServer(cfg config.Config, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.SSH.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".paddle", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSH.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(time.Duration(cfg.SSH.IdleMinutes) * time.Minute),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session, with a
// per-session simulation seeded from the connection time.
func (s *SSHServer) teaHandler(session ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := session.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", session.User())
		return nil, nil
	}

	sc := scene.New()
	loop := game.New(sc, game.Options{
		Interval: time.Duration(s.config.Display.TickMillis) * time.Millisecond,
		Seed:     time.Now().UnixNano(),
	})

	model := NewModel(loop, sc, s.logger.With("user", session.User()), s.config.Display.Debug)

	// Seed the surface from the PTY before the first resize message.
	model.width = pty.Window.Width
	model.height = pty.Window.Height
	model.renderer.Resize(model.width, model.contentHeight())

	// The quit key is not the only way a session ends; disconnects and idle
	// timeouts must stop the per-session simulation goroutine too.
	model.stopWhenDone(session.Context())

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs session lifecycle events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(session ssh.Session) {
		s.logger.Info("session started",
			"user", session.User(),
			"remote", session.RemoteAddr().String(),
		)
		next(session)
		s.logger.Info("session ended",
			"user", session.User(),
			"remote", session.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the server and blocks until interrupted.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.SSH.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.SSH.Address
}
