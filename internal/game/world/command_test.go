package world

import (
	"errors"
	"testing"
)

func TestParseScript(t *testing.T) {
	cmds, err := ParseScript("ff L r\n.bN")
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	want := []Command{Forward, Forward, TurnLeft, TurnRight, Idle, Backward, ToggleNight}
	if len(cmds) != len(want) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(want))
	}
	for i := range want {
		if cmds[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, cmds[i], want[i])
		}
	}
}

func TestParseScriptEmpty(t *testing.T) {
	cmds, err := ParseScript("")
	if err != nil || len(cmds) != 0 {
		t.Errorf("got %v, %v", cmds, err)
	}
}

func TestParseScriptUnknown(t *testing.T) {
	for _, s := range []string{"fx", "Ŧ", "f?"} {
		if _, err := ParseScript(s); !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("ParseScript(%q) err = %v, want ErrUnknownCommand", s, err)
		}
	}
}

func TestCommandString(t *testing.T) {
	if Forward.String() != "forward" || ToggleNight.String() != "toggle-night" {
		t.Errorf("got %s and %s", Forward, ToggleNight)
	}
	if Command('z').String() != `Command('z')` {
		t.Errorf("got %s", Command('z'))
	}
}
