package command

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pixil98/go-codex/internal/listener"
	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-service"
	"golang.org/x/crypto/ssh"
)

type ListenerType int

const (
	ListenerTypeTelnet ListenerType = iota
	ListenerTypeSSH
)

func (lt ListenerType) String() string {
	switch lt {
	case ListenerTypeTelnet:
		return "telnet"
	case ListenerTypeSSH:
		return "ssh"
	default:
		return fmt.Sprintf("ListenerType(%d)", int(lt))
	}
}

func (lt *ListenerType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "telnet":
		*lt = ListenerTypeTelnet
	case "ssh":
		*lt = ListenerTypeSSH
	default:
		return fmt.Errorf("unknown listener type: %s", text)
	}
	return nil
}

type ListenerConfig struct {
	Protocol    ListenerType `json:"protocol"`
	Port        uint16       `json:"port"`
	HostKeyPath string       `json:"host_key_path,omitempty"`
}

func (c *ListenerConfig) validate() error {
	el := errors.NewErrorList()

	if c.Port == 0 {
		el.Add(fmt.Errorf("port must be set to a positive integer"))
	}

	if c.Protocol == ListenerTypeTelnet && c.HostKeyPath != "" {
		el.Add(fmt.Errorf("host_key_path only applies to ssh listeners"))
	}

	return el.Err()
}

func (c *ListenerConfig) BuildListener(cm *listener.ConnectionManager) (service.Worker, error) {
	switch c.Protocol {
	case ListenerTypeTelnet:
		return listener.NewTelnetListener(c.Port, cm), nil
	case ListenerTypeSSH:
		hostKey, err := c.hostKey()
		if err != nil {
			return nil, fmt.Errorf("setting up ssh host key: %w", err)
		}
		return listener.NewSshListener(c.Port, cm, hostKey), nil
	default:
		return nil, fmt.Errorf("unknown listener type: %v", c.Protocol)
	}
}

// hostKey loads the configured host key, or mints an ephemeral one so
// the listener can still come up. Clients see a new host identity
// every restart until a key is configured.
func (c *ListenerConfig) hostKey() (ssh.Signer, error) {
	if c.HostKeyPath == "" {
		slog.Warn("no host_key_path configured for ssh listener, generating ephemeral key")
		_, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generating ephemeral key: %w", err)
		}
		signer, err := ssh.NewSignerFromKey(priv)
		if err != nil {
			return nil, fmt.Errorf("creating signer from ephemeral key: %w", err)
		}
		return signer, nil
	}

	raw, err := os.ReadFile(c.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("reading host key %q: %w", c.HostKeyPath, err)
	}
	signer, err := ssh.ParsePrivateKey(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing host key %q: %w", c.HostKeyPath, err)
	}
	return signer, nil
}
