package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pixil98/go-codex/internal/commands"
	"github.com/pixil98/go-codex/internal/display"
)

const greeting = `Welcome to the codex!
Look up crafting, research, recycling, and durability data.
Type 'help' for the command list.`

// Session drives one console connection: read a line, run it through
// the command handler, write the reply.
type Session struct {
	id      string
	conn    io.ReadWriter
	handler *commands.Handler
}

// Id returns the session's unique identifier.
func (s *Session) Id() string {
	return s.id
}

func (s *Session) Run(ctx context.Context) error {
	if err := s.writeLine(greeting); err != nil {
		return err
	}
	if err := s.prompt(); err != nil {
		return err
	}

	// Read input lines into a channel so the loop can also watch ctx.
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			inputChan <- scanner.Text()
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				// Connection lost.
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			resp, err := s.handler.Exec(ctx, line)
			if err != nil {
				var userErr *commands.UserError
				if !errors.As(err, &userErr) {
					return fmt.Errorf("executing command: %w", err)
				}
				if err := s.writeLine(userErr.Message); err != nil {
					return err
				}
				if err := s.prompt(); err != nil {
					return err
				}
				continue
			}

			if resp.Text != "" {
				if err := s.writeLine(display.Wrap(resp.Text)); err != nil {
					return err
				}
			}
			if resp.Quit {
				return nil
			}

			if err := s.prompt(); err != nil {
				return err
			}
		}
	}
}

func (s *Session) prompt() error {
	_, err := s.conn.Write([]byte("> "))
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(msg + "\n\n"))
	return err
}
