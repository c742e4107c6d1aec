package core

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		line string
		kind CommandKind
		args string
	}{
		{"login", "LOGIN alice", CommandLogin, "alice"},
		{"login lowercase", "login alice", CommandLogin, "alice"},
		{"login bare", "LOGIN", CommandLogin, ""},
		{"msg", "MSG hello there", CommandMsg, "hello there"},
		{"msg mixed case", "Msg hi", CommandMsg, "hi"},
		{"dm", "DM bob secret stuff", CommandDM, "bob secret stuff"},
		{"who", "WHO", CommandWho, ""},
		{"who with args", "who cares", CommandWho, ""},
		{"ping", "PING", CommandPing, ""},
		{"ping lowercase", "ping", CommandPing, ""},
		{"unknown", "FROBNICATE now", CommandUnknown, "now"},
		{"tab separated", "MSG\thello", CommandMsg, "hello"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := Parse(tc.line)
			if cmd.Kind != tc.kind {
				t.Fatalf("Parse(%q) kind = %v, want %v", tc.line, cmd.Kind, tc.kind)
			}
			if cmd.Args != tc.args {
				t.Fatalf("Parse(%q) args = %q, want %q", tc.line, cmd.Args, tc.args)
			}
		})
	}
}

func TestSplitWord(t *testing.T) {
	word, rest := splitWord("bob hello there")
	if word != "bob" || rest != "hello there" {
		t.Fatalf("splitWord = %q, %q", word, rest)
	}

	word, rest = splitWord("solo")
	if word != "solo" || rest != "" {
		t.Fatalf("splitWord = %q, %q", word, rest)
	}
}
