package main

type Command int

const (
	CmdNone Command = iota
	CmdJump
)

type CommandInput struct {
	cmd Command
	buf string
}

func CommandFromPrefix(r rune) Command {
	switch r {
	case ':':
		return CmdJump
	default:
		return CmdNone
	}
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "[CMD]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdJump:
		return ": "
	default:
		return ""
	}
}

func (m *model) commandHintsLine() string {
	return "N: go to TR N   tr D: set TR duration   tr auto: detected TRs   enter: apply   esc: cancel"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ci.cmd)
	prompt := m.commandPrompt(m.ci.cmd)
	return badge + " " + prompt + m.ci.buf
}
