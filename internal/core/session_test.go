package core

import (
	"testing"
	"time"
)

func TestSessionLineDecoding(t *testing.T) {
	s, _ := newTestSession(t)

	// Partial command stays buffered until the terminator arrives.
	s.Feed([]byte("MS"))
	if _, ok := s.NextLine(); ok {
		t.Fatal("extracted a line from a partial buffer")
	}
	s.Feed([]byte("G hello\n"))
	line, ok := s.NextLine()
	if !ok || line != "MSG hello" {
		t.Fatalf("got %q, %v", line, ok)
	}

	// Two terminated lines in one read decode in order.
	s.Feed([]byte("PING\r\nWHO\nleft"))
	if line, ok = s.NextLine(); !ok || line != "PING" {
		t.Fatalf("got %q, %v", line, ok)
	}
	if line, ok = s.NextLine(); !ok || line != "WHO" {
		t.Fatalf("got %q, %v", line, ok)
	}
	if _, ok = s.NextLine(); ok {
		t.Fatal("extracted a line from unterminated leftover")
	}
}

func TestSessionSendAppendsTerminator(t *testing.T) {
	s, lines := newTestSession(t)

	s.Send("PONG")
	if got := waitForPrefix(t, lines, "PONG"); got != "PONG" {
		t.Fatalf("got %q", got)
	}

	s.Send("OK\n")
	if got := waitForPrefix(t, lines, "OK"); got != "OK" {
		t.Fatalf("got %q", got)
	}
}

func TestSessionIdleTracking(t *testing.T) {
	s, _ := newTestSession(t)

	time.Sleep(20 * time.Millisecond)
	if s.IdleFor() < 10*time.Millisecond {
		t.Fatal("idle duration did not grow")
	}
	s.Touch()
	if s.IdleFor() > 10*time.Millisecond {
		t.Fatal("Touch did not reset idle duration")
	}
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	s, _ := newTestSession(t)
	s.Close()
	s.Close() // must not panic
}
