package core

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func nopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// newTestSession builds a session over one end of a pipe and drains the
// client end into a channel of decoded lines.
func newTestSession(t *testing.T) (*Session, <-chan string) {
	t.Helper()

	server, client := net.Pipe()
	s := NewSession(server, time.Second)
	t.Cleanup(func() {
		s.Close()
		_ = client.Close()
	})

	lines := make(chan string, 64)
	go func() {
		sc := bufio.NewScanner(client)
		for sc.Scan() {
			lines <- sc.Text()
		}
		close(lines)
	}()
	return s, lines
}

func waitForPrefix(t *testing.T, ch <-chan string, prefix string) string {
	t.Helper()

	deadline := time.NewTimer(2 * time.Second)
	defer deadline.Stop()
	for {
		select {
		case line, ok := <-ch:
			if !ok {
				t.Fatalf("connection closed while waiting for prefix %q", prefix)
			}
			if strings.HasPrefix(line, prefix) {
				return line
			}
			// ignore other lines (OK, INFO, etc.)
		case <-deadline.C:
			t.Fatalf("timeout waiting for prefix %q", prefix)
		}
	}
}

func expectNoLine(t *testing.T, ch <-chan string, wait time.Duration) {
	t.Helper()

	select {
	case line := <-ch:
		t.Fatalf("unexpected line %q", line)
	case <-time.After(wait):
	}
}
