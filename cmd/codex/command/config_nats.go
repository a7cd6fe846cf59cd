package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/pixil98/go-codex/internal/messaging"
	"github.com/pixil98/go-errors"
)

type NatsConfig struct {
	Host         string `json:"host"`
	Port         int    `json:"port"`
	StartTimeout string `json:"start_timeout"`

	// Name labels the embedded broker in monitoring output.
	Name string `json:"name,omitempty"`
}

func (c *NatsConfig) validate() error {
	el := errors.NewErrorList()

	if c.StartTimeout != "" {
		if _, err := time.ParseDuration(c.StartTimeout); err != nil {
			el.Add(fmt.Errorf("parsing start_timeout: %w", err))
		}
	}

	// -1 asks the OS for a free port.
	if c.Port < -1 || c.Port > 65535 {
		el.Add(fmt.Errorf("port %d is out of range", c.Port))
	}

	if strings.ContainsAny(c.Name, " \t") {
		el.Add(fmt.Errorf("name must not contain whitespace"))
	}

	return el.Err()
}

func (c *NatsConfig) buildNatsServer() (*messaging.NatsServer, error) {
	var opts []messaging.NatsServerOpt
	if c.StartTimeout != "" {
		d, err := time.ParseDuration(c.StartTimeout)
		if err != nil {
			return nil, fmt.Errorf("parsing start_timeout: %w", err)
		}
		opts = append(opts, messaging.WithStartTimeout(d))
	}
	if c.Host != "" {
		opts = append(opts, messaging.WithHost(c.Host))
	}
	if c.Port != 0 {
		opts = append(opts, messaging.WithPort(c.Port))
	}
	if c.Name != "" {
		opts = append(opts, messaging.WithServerName(c.Name))
	}

	return messaging.NewNatsServer(opts...)
}
