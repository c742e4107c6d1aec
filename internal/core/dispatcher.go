package core

import (
	"strings"

	"github.com/rs/zerolog"
)

// maxUsernameLen bounds LOGIN names; longer claims are rejected outright.
const maxUsernameLen = 16

// Dispatcher routes decoded lines to command handlers. Each session moves
// through two phases: unauthenticated (LOGIN only) and authenticated
// (everything else). The phase is keyed off Session.Name, which only a
// successful LOGIN sets; there is no transition back.
type Dispatcher struct {
	reg    *Registry
	router *Router
	log    *zerolog.Logger
}

// NewDispatcher builds a dispatcher over the registry and router.
func NewDispatcher(reg *Registry, router *Router, logger *zerolog.Logger) *Dispatcher {
	return &Dispatcher{reg: reg, router: router, log: logger}
}

// Dispatch handles one decoded, trimmed line. Malformed input produces an
// ERR reply on the offending session and never aborts line processing.
func (d *Dispatcher) Dispatch(s *Session, line string) {
	cmd := Parse(line)
	CommandsTotal.WithLabelValues(commandLabel(cmd.Kind)).Inc()

	if s.Name == "" {
		if cmd.Kind != CommandLogin {
			s.Send(ErrLine(ReasonLoginFirst))
			return
		}
		d.handleLogin(s, cmd.Args)
		return
	}

	switch cmd.Kind {
	case CommandLogin:
		// Usernames are immutable for the session's lifetime; a second
		// LOGIN is rejected explicitly rather than treated as a rename.
		s.Send(ErrLine(ReasonAlreadyLoggedIn))
	case CommandMsg:
		d.handleMsg(s, cmd.Args)
	case CommandDM:
		d.handleDM(s, cmd.Args)
	case CommandWho:
		d.handleWho(s)
	case CommandPing:
		s.Send("PONG")
	default:
		s.Send(ErrLine(ReasonUnknownCommand))
	}
}

func (d *Dispatcher) handleLogin(s *Session, name string) {
	if name == "" {
		s.Send(ErrLine(ReasonInvalidLogin))
		return
	}
	if len(name) > maxUsernameLen || strings.ContainsAny(name, " \t") {
		s.Send(ErrLine(ReasonInvalidUsername))
		return
	}
	if !d.reg.Register(name, s) {
		s.Send(ErrLine(ReasonUsernameTaken))
		return
	}

	d.log.Info().Str("session", s.ID).Str("username", name).Msg("user logged in")

	s.Send("OK")
	d.router.Broadcast("INFO "+name+" connected", s)
}

func (d *Dispatcher) handleMsg(s *Session, text string) {
	if text == "" {
		return
	}
	d.router.Broadcast("MSG "+s.Name+" "+text, s)
}

func (d *Dispatcher) handleDM(s *Session, args string) {
	target, text := splitWord(args)
	if target == "" || text == "" {
		s.Send(ErrLine(ReasonDMFormat))
		return
	}
	d.router.DirectMessage(s, target, text)
}

func (d *Dispatcher) handleWho(s *Session) {
	for _, name := range d.reg.Usernames() {
		s.Send("USER " + name)
	}
}

func commandLabel(kind CommandKind) string {
	switch kind {
	case CommandLogin:
		return "login"
	case CommandMsg:
		return "msg"
	case CommandDM:
		return "dm"
	case CommandWho:
		return "who"
	case CommandPing:
		return "ping"
	default:
		return "unknown"
	}
}
