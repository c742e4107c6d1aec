// Package tcp implements the newline-delimited chat transport: the accept
// loop, the per-connection read loop with idle detection, and teardown.
package tcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/relaykit/linechat/internal/config"
	"github.com/relaykit/linechat/internal/core"
)

const welcomeBanner = "Welcome! Please LOGIN <username>"

// readChunk is the per-read scratch buffer size.
const readChunk = 4096

// Server supervises client connections: one goroutine per accepted
// connection, coordinated only through the registry.
type Server struct {
	cfg    config.Config
	log    *zerolog.Logger
	reg    *core.Registry
	disp   *core.Dispatcher
	router *core.Router

	ln net.Listener
	wg sync.WaitGroup
}

// NewServer builds the supervisor over an already wired core.
func NewServer(cfg config.Config, reg *core.Registry, disp *core.Dispatcher, router *core.Router, logger *zerolog.Logger) *Server {
	return &Server{
		cfg:    cfg,
		log:    logger,
		reg:    reg,
		disp:   disp,
		router: router,
	}
}

// Listen binds the chat listener. Failure here is fatal for the process.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.ln = ln
	return nil
}

// Addr reports the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Serve accepts connections until the context is cancelled, then closes the
// listener and every live session and waits for all handlers to drain.
// Accept failures outside shutdown are fatal.
func (s *Server) Serve(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = s.ln.Close()
		for _, sess := range s.reg.Live() {
			sess.Close()
		}
	}()

	var retErr error
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if ctx.Err() == nil {
				retErr = fmt.Errorf("accept: %w", err)
			}
			break
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handle(ctx, conn)
		}()
	}

	close(done)
	s.wg.Wait()
	return retErr
}

// handle runs one session from accept to teardown.
func (s *Server) handle(ctx context.Context, conn net.Conn) {
	sess := core.NewSession(conn, s.cfg.WriteTimeout)
	s.reg.Add(sess)
	core.ConnectedSessions.Set(float64(s.reg.Len()))

	logger := s.log.With().Str("session", sess.ID).Str("addr", sess.RemoteAddr()).Logger()
	logger.Info().Msg("client connected")

	defer s.teardown(sess, &logger)

	sess.Send(welcomeBanner)

	scratch := make([]byte, readChunk)
	for {
		_ = conn.SetReadDeadline(time.Now().Add(s.cfg.PollInterval))
		n, err := conn.Read(scratch)
		if n > 0 {
			sess.Touch()
			sess.Feed(scratch[:n])
			for {
				line, ok := sess.NextLine()
				if !ok {
					break
				}
				if line == "" {
					continue
				}
				s.disp.Dispatch(sess, line)
			}
		}
		if err == nil {
			continue
		}

		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			if ctx.Err() != nil {
				return
			}
			// Opportunistic liveness check: kicks may lag the threshold
			// by up to one poll interval.
			if sess.IdleFor() > s.cfg.IdleTimeout {
				logger.Info().Dur("idle", sess.IdleFor()).Msg("idle timeout")
				sess.Send(core.ErrLine(core.ReasonIdleTimeout))
				return
			}
			continue
		}

		if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
			logger.Debug().Err(err).Msg("read error")
		}
		return
	}
}

// teardown runs on every handler exit: releases the username, notifies the
// other sessions, and closes the socket.
func (s *Server) teardown(sess *core.Session, logger *zerolog.Logger) {
	name := sess.Name
	s.reg.Unregister(sess)
	if name != "" {
		s.router.Broadcast("INFO "+name+" disconnected", sess)
	}
	sess.Close()
	core.ConnectedSessions.Set(float64(s.reg.Len()))

	logger.Info().Str("username", name).Msg("client disconnected")
}
