package listener

import (
	"bytes"
	"io"
)

// consoleWire sits between a network connection and the session loop.
// Reads fold telnet's \r\n and a pty-less ssh client's bare \r into
// \n; writes expand \n back to \r\n so both client types render line
// breaks. A \r\n pair split across two reads folds correctly.
type consoleWire struct {
	rw     io.ReadWriter
	lastCR bool
}

func newConsoleWire(rw io.ReadWriter) io.ReadWriter {
	return &consoleWire{rw: rw}
}

func (w *consoleWire) Read(p []byte) (int, error) {
	n, err := w.rw.Read(p)

	j := 0
	for _, b := range p[:n] {
		switch {
		case b == '\r':
			p[j] = '\n'
			j++
			w.lastCR = true
		case b == '\n' && w.lastCR:
			// Second half of a \r\n pair, already emitted as \n.
			w.lastCR = false
		default:
			p[j] = b
			j++
			w.lastCR = false
		}
	}

	return j, err
}

func (w *consoleWire) Write(p []byte) (int, error) {
	_, err := w.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n")))
	// Callers see the pre-conversion length.
	return len(p), err
}
