package stats

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/pixil98/go-log"
)

// Publisher pushes snapshots onto the message bus.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Manager reports query totals on driver ticks. Unchanged totals are
// skipped so idle periods stay quiet.
type Manager struct {
	counter *Counter

	publisher Publisher
	subject   string

	lastTotal uint64
}

type ManagerOpt func(*Manager)

// WithPublisher additionally publishes each changed snapshot as JSON
// to subject.
func WithPublisher(p Publisher, subject string) ManagerOpt {
	return func(m *Manager) {
		m.publisher = p
		m.subject = subject
	}
}

func NewManager(counter *Counter, opts ...ManagerOpt) *Manager {
	m := &Manager{counter: counter}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Manager) Tick(ctx context.Context) error {
	snap := m.counter.Snapshot()
	total := snap.Total()
	if total == m.lastTotal {
		return nil
	}
	m.lastTotal = total

	log.GetLogger(ctx).Infof("served %d queries (craft=%d research=%d recycle=%d durability=%d)",
		total, snap.Craft, snap.Research, snap.Recycle, snap.Durability)

	if m.publisher == nil {
		return nil
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding stats snapshot: %w", err)
	}
	if err := m.publisher.Publish(m.subject, data); err != nil {
		// A bus hiccup shouldn't stop the driver.
		log.GetLogger(ctx).Warnf("publishing stats: %s", err)
	}

	return nil
}
