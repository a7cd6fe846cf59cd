package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/pixil98/go-codex/internal/codex"
	"github.com/pixil98/go-codex/internal/commands"
	"github.com/pixil98/go-codex/internal/items"
	"github.com/pixil98/go-codex/internal/storage"
)

// nullEngine answers every query with "not found".
type nullEngine struct{}

func (nullEngine) GetCraftDetails(string) *codex.CraftDetails       { return nil }
func (nullEngine) GetResearchDetails(string) *codex.ResearchDetails { return nil }
func (nullEngine) GetRecycleDetails(string) *codex.RecycleDetails   { return nil }
func (nullEngine) GetDurabilityDetails(string, codex.Query) *codex.DurabilityDetails {
	return nil
}
func (nullEngine) ResolveItem(string) (storage.Identifier, bool) { return "", false }
func (nullEngine) GetItemInfo(storage.Identifier) *items.Item    { return nil }

// scriptedConn feeds canned input and captures everything written.
type scriptedConn struct {
	io.Reader
	out bytes.Buffer
}

func (c *scriptedConn) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

func testSession(t *testing.T, input string) (*Session, *scriptedConn) {
	t.Helper()

	h, err := commands.NewHandler(nullEngine{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conn := &scriptedConn{Reader: strings.NewReader(input)}
	return &Session{id: "test-session", conn: conn, handler: h}, conn
}

func TestSession_RunUntilQuit(t *testing.T) {
	s, conn := testSession(t, "groups\nquit\n")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := conn.out.String()
	for _, want := range []string{
		"Welcome to the codex!",
		"Damage groups: explosive, melee, throw, guns, torpedo, turret",
		"Happy surviving!",
		"> ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSession_RunUntilDisconnect(t *testing.T) {
	s, conn := testSession(t, "which\n")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(conn.out.String(), "Sides: hard, soft, both") {
		t.Errorf("output missing reply:\n%s", conn.out.String())
	}
}

func TestSession_ShowsUserErrors(t *testing.T) {
	s, conn := testSession(t, "bogus\nquit\n")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := conn.out.String()
	if !strings.Contains(out, `Unknown command "bogus". Type 'help' for a list.`) {
		t.Errorf("output missing user error:\n%s", out)
	}
	if !strings.Contains(out, "Happy surviving!") {
		t.Errorf("session did not continue after user error:\n%s", out)
	}
}

func TestSession_BlankLinesReprompt(t *testing.T) {
	s, conn := testSession(t, "\n\nquit\n")

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Greeting prompt, two blank-line prompts.
	if got := strings.Count(conn.out.String(), "> "); got < 3 {
		t.Errorf("prompt count = %d, expected at least 3", got)
	}
}

func TestSession_ContextCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	h, err := commands.NewHandler(nullEngine{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := &Session{id: "test-session", conn: &scriptedConn{Reader: pr}, handler: h}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, expected context.Canceled", err)
	}
}

func TestManager_RunSession(t *testing.T) {
	h, err := commands.NewHandler(nullEngine{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := NewManager(h)

	conn := &scriptedConn{Reader: strings.NewReader("quit\n")}
	if err := m.RunSession(context.Background(), conn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(conn.out.String(), "Happy surviving!") {
		t.Errorf("output missing goodbye:\n%s", conn.out.String())
	}
}
