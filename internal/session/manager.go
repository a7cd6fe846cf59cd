package session

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pixil98/go-codex/internal/commands"
	log "github.com/pixil98/go-log"
)

// Manager creates sessions for accepted connections. Sessions share
// one command handler; all per-connection state lives in the Session.
type Manager struct {
	handler *commands.Handler
}

func NewManager(h *commands.Handler) *Manager {
	return &Manager{handler: h}
}

// RunSession drives a connection until the player quits, the
// connection drops, or the context is canceled.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	s := &Session{
		id:      uuid.NewString(),
		conn:    conn,
		handler: m.handler,
	}

	logger := log.GetLogger(ctx).WithField("session", s.Id())
	logger.Info("session started")

	err := s.Run(log.SetLogger(ctx, logger))
	if err != nil {
		return err
	}

	logger.Info("session ended")
	return nil
}
