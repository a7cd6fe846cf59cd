package listener

import (
	"bytes"
	"testing"
)

type fakeConn struct {
	in  *bytes.Buffer
	out *bytes.Buffer
}

func (f *fakeConn) Read(p []byte) (int, error)  { return f.in.Read(p) }
func (f *fakeConn) Write(p []byte) (int, error) { return f.out.Write(p) }

func TestConsoleWire_Read(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"crlf pairs":     {input: "craft wood\r\n", exp: "craft wood\n"},
		"bare cr":        {input: "craft wood\r", exp: "craft wood\n"},
		"plain lf":       {input: "craft wood\n", exp: "craft wood\n"},
		"no line ending": {input: "craft", exp: "craft"},
		"crlf run":       {input: "a\r\n\r\nb\r\n", exp: "a\n\nb\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conn := &fakeConn{in: bytes.NewBufferString(tt.input), out: &bytes.Buffer{}}
			rw := newConsoleWire(conn)

			p := make([]byte, 64)
			n, err := rw.Read(p)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got := string(p[:n]); got != tt.exp {
				t.Errorf("read %q, expected %q", got, tt.exp)
			}
		})
	}
}

func TestConsoleWire_ReadSplitPair(t *testing.T) {
	conn := &fakeConn{in: bytes.NewBufferString("craft\r"), out: &bytes.Buffer{}}
	rw := newConsoleWire(conn)

	p := make([]byte, 64)
	n, err := rw.Read(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(p[:n]); got != "craft\n" {
		t.Errorf("read %q, expected %q", got, "craft\n")
	}

	// The \n that completes the pair arrives in the next read and must
	// not produce a second line break.
	conn.in.WriteString("\nquit\r\n")
	n, err = rw.Read(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := string(p[:n]); got != "quit\n" {
		t.Errorf("read %q, expected %q", got, "quit\n")
	}
}

func TestConsoleWire_Write(t *testing.T) {
	tests := map[string]struct {
		input string
		exp   string
	}{
		"lf converted": {input: "hello\nworld\n", exp: "hello\r\nworld\r\n"},
		"no newline":   {input: "> ", exp: "> "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			conn := &fakeConn{in: &bytes.Buffer{}, out: &bytes.Buffer{}}
			rw := newConsoleWire(conn)

			n, err := rw.Write([]byte(tt.input))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			// Callers see the pre-conversion length.
			if n != len(tt.input) {
				t.Errorf("n = %d, expected %d", n, len(tt.input))
			}
			if got := conn.out.String(); got != tt.exp {
				t.Errorf("wrote %q, expected %q", got, tt.exp)
			}
		})
	}
}
