package command

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-codex/internal/messaging"
	"github.com/pixil98/go-codex/internal/stats"
	"github.com/pixil98/go-errors"
)

type StatsConfig struct {
	Publish bool   `json:"publish"`
	Subject string `json:"subject,omitempty"`
}

func (c *StatsConfig) validate() error {
	el := errors.NewErrorList()

	if strings.ContainsAny(c.Subject, " \t") {
		el.Add(fmt.Errorf("subject must not contain whitespace"))
	}

	return el.Err()
}

// managerOpts wires snapshot publishing when enabled. The subject
// defaults to the bus's stats subject.
func (c *StatsConfig) managerOpts(server *messaging.NatsServer) []stats.ManagerOpt {
	if !c.Publish {
		return nil
	}

	subject := c.Subject
	if subject == "" {
		subject = messaging.SubjectStats
	}
	return []stats.ManagerOpt{stats.WithPublisher(server, subject)}
}
