package core

import (
	"bytes"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state for one connected client. It owns its
// connection exclusively; only Close releases it, and only once.
type Session struct {
	// ID identifies the session in logs before (and after) it has a name.
	ID string
	// Name is empty until a successful LOGIN. It is written exactly once,
	// by Registry.Register while holding the registry lock, and never
	// changes for the rest of the session's lifetime.
	Name string

	conn         net.Conn
	writeTimeout time.Duration

	// buf holds partially received bytes; after a decode pass it never
	// contains a processed line terminator.
	buf        []byte
	lastActive time.Time

	sendMu    sync.Mutex
	closeOnce sync.Once
}

// NewSession wraps an accepted connection.
func NewSession(conn net.Conn, writeTimeout time.Duration) *Session {
	return &Session{
		ID:           uuid.NewString(),
		conn:         conn,
		writeTimeout: writeTimeout,
		lastActive:   time.Now(),
	}
}

// Send writes one full line to the client, appending the terminator if
// absent. Writes are serialized per session so concurrent broadcast and DM
// deliveries never interleave partial lines. Failures are swallowed: the
// session's own read loop will observe the broken connection and tear down.
func (s *Session) Send(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	if s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	_, _ = s.conn.Write([]byte(text))
}

// Feed appends freshly read bytes to the inbound buffer.
func (s *Session) Feed(p []byte) {
	s.buf = append(s.buf, p...)
}

// NextLine extracts the next complete line from the inbound buffer, trimmed
// of surrounding whitespace. Returns false when no terminator is buffered;
// leftover partial data stays for the next read.
func (s *Session) NextLine() (string, bool) {
	i := bytes.IndexByte(s.buf, '\n')
	if i < 0 {
		return "", false
	}
	line := string(s.buf[:i])
	s.buf = s.buf[i+1:]
	return strings.TrimSpace(line), true
}

// Touch records inbound activity for idle detection.
func (s *Session) Touch() {
	s.lastActive = time.Now()
}

// IdleFor reports how long the session has been silent.
func (s *Session) IdleFor() time.Duration {
	return time.Since(s.lastActive)
}

// RemoteAddr reports the peer address for logging.
func (s *Session) RemoteAddr() string {
	return s.conn.RemoteAddr().String()
}

// Close closes the connection, exactly once, ignoring close errors.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
	})
}
