package core

import "github.com/rs/zerolog"

// Router delivers formatted lines to sessions. All sends are fire-and-forget:
// a write to a vanished peer fails silently and that peer's own read loop is
// what eventually tears the session down.
type Router struct {
	reg *Registry
	log *zerolog.Logger
}

// NewRouter builds a router over the registry.
func NewRouter(reg *Registry, logger *zerolog.Logger) *Router {
	return &Router{reg: reg, log: logger}
}

// SendTo delivers one line to a single session.
func (rt *Router) SendTo(s *Session, text string) {
	s.Send(text)
}

// Broadcast delivers text to every authenticated session except exclude.
// Targets are copied out under the registry lock first; the writes happen
// lock-free on each recipient's own send guard, so one stalled peer cannot
// hold up the rest.
func (rt *Router) Broadcast(text string, exclude *Session) {
	for _, target := range rt.reg.Targets(exclude) {
		target.Send(text)
		DeliveriesTotal.WithLabelValues("broadcast").Inc()
	}
}

// DirectMessage delivers a DM to the named target and echoes the identical
// line back to the sender, so senders see their own DMs in their timeline.
// The dual-send is part of the protocol contract.
func (rt *Router) DirectMessage(sender *Session, targetName, text string) {
	target, ok := rt.reg.Lookup(targetName)
	if !ok {
		sender.Send(ErrLine(ReasonUserNotFound))
		return
	}

	line := "DM " + sender.Name + " " + text
	target.Send(line)
	sender.Send(line)
	DeliveriesTotal.WithLabelValues("dm").Add(2)

	rt.log.Debug().
		Str("from", sender.Name).
		Str("to", targetName).
		Msg("direct message delivered")
}
