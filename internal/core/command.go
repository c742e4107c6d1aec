package core

import "strings"

// CommandKind describes what the client wants to do.
type CommandKind int

const (
	// CommandLogin claims a username; only valid before authentication.
	CommandLogin CommandKind = iota
	// CommandMsg broadcasts text to all other authenticated sessions.
	CommandMsg
	// CommandDM sends text to one named recipient.
	CommandDM
	// CommandWho lists connected usernames.
	CommandWho
	// CommandPing is a liveness check.
	CommandPing
	// CommandUnknown is anything the protocol does not recognize.
	CommandUnknown
)

// Command is a parsed client line: a keyword plus its raw argument string.
type Command struct {
	Kind CommandKind
	Args string
}

// Parse splits a trimmed line into a command. Keywords are matched
// case-insensitively; the remainder of the line is carried verbatim.
func Parse(line string) Command {
	keyword, rest := splitWord(line)

	switch strings.ToUpper(keyword) {
	case "LOGIN":
		return Command{Kind: CommandLogin, Args: rest}
	case "MSG":
		return Command{Kind: CommandMsg, Args: rest}
	case "DM":
		return Command{Kind: CommandDM, Args: rest}
	case "WHO":
		return Command{Kind: CommandWho}
	case "PING":
		return Command{Kind: CommandPing}
	default:
		return Command{Kind: CommandUnknown, Args: rest}
	}
}

// splitWord cuts the first whitespace-delimited word off s and returns it
// with the trimmed remainder.
func splitWord(s string) (word, rest string) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}
