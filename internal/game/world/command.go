package world

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrUnknownCommand is returned for a script character with no command.
var ErrUnknownCommand = errors.New("unknown command")

// Command is one tick of hero input.
type Command byte

// Commands, spelled as they appear in scripts.
const (
	Idle        Command = '.'
	Forward     Command = 'f'
	Backward    Command = 'b'
	TurnLeft    Command = 'l'
	TurnRight   Command = 'r'
	ToggleNight Command = 'n'
)

func (c Command) String() string {
	switch c {
	case Idle:
		return "idle"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	case ToggleNight:
		return "toggle-night"
	default:
		return fmt.Sprintf("Command(%q)", byte(c))
	}
}

// ParseScript converts a command string into commands. Whitespace is
// ignored and letters are case-insensitive.
func ParseScript(script string) ([]Command, error) {
	cmds := make([]Command, 0, len(script))
	for i, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		if r > unicode.MaxASCII {
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownCommand, r, i)
		}
		c := Command(unicode.ToLower(r))
		switch c {
		case Idle, Forward, Backward, TurnLeft, TurnRight, ToggleNight:
			cmds = append(cmds, c)
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrUnknownCommand, r, i)
		}
	}
	return cmds, nil
}
