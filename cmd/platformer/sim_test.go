package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

func newSimSession() *game.Session {
	return game.NewSession(config.DefaultPlatformerConfig())
}

func TestParseScript(t *testing.T) {
	script, err := ParseScript([]byte(`
steps:
  - ticks: 30
    actions: [right, jump]
  - actions: [music]
  - click: {x: 714, y: 26}
`))
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	if len(script.Steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(script.Steps))
	}
	if len(script.Steps[0].held) != 2 || len(script.Steps[0].commands) != 0 {
		t.Errorf("movement should be held: %+v", script.Steps[0])
	}
	if len(script.Steps[1].commands) != 1 {
		t.Errorf("music should be a command: %+v", script.Steps[1])
	}
	if c := script.Steps[2].Click; c == nil || c.X != 714 || c.Y != 26 {
		t.Errorf("unexpected click %+v", c)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"unknown action", "steps: [{ticks: 1, actions: [fly]}]", `unknown action "fly"`},
		{"negative ticks", "steps: [{ticks: -1}]", "must not be negative"},
		{"bad yaml", "steps: [", "invalid script"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScript([]byte(tc.yaml))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %v, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestRunScriptMovement(t *testing.T) {
	script, err := ParseScript([]byte("steps: [{ticks: 10, actions: [right]}]"))
	if err != nil {
		t.Fatal(err)
	}

	report := RunScript(newSimSession(), script, 5)

	if report.Ticks != 15 {
		t.Errorf("ticks = %d, expected 15", report.Ticks)
	}
	if report.State != "playing" {
		t.Errorf("state = %s, expected playing", report.State)
	}
	if report.Player.X != 235 || report.Player.Y != 340 {
		t.Errorf("player at %+v, expected (235, 340)", report.Player)
	}
	if len(report.Enemies) != 3 {
		t.Errorf("expected 3 enemies, got %d", len(report.Enemies))
	}
}

func TestRunScriptFromMenu(t *testing.T) {
	script, err := ParseScript([]byte(`
from_menu: true
steps:
  - actions: [down, down, confirm]
  - actions: [up, up, confirm]
    ticks: 3
`))
	if err != nil {
		t.Fatal(err)
	}

	s := newSimSession()
	report := RunScript(s, script, 0)

	if s.SoundOn() {
		t.Error("sound should have been toggled off from the menu")
	}
	if report.State != "playing" || report.Ticks != 3 {
		t.Errorf("state=%s ticks=%d, expected playing / 3", report.State, report.Ticks)
	}
}

func TestRunScriptCloseAndQuit(t *testing.T) {
	script, err := ParseScript([]byte(`
steps:
  - ticks: 5
  - actions: [close]
  - actions: [down, down, down, confirm]
  - ticks: 100
`))
	if err != nil {
		t.Fatal(err)
	}

	report := RunScript(newSimSession(), script, 0)

	if report.State != "menu" || !report.Quit {
		t.Errorf("state=%s quit=%v, expected menu / true", report.State, report.Quit)
	}
	if report.Ticks != 5 {
		t.Errorf("ticks = %d, expected 5", report.Ticks)
	}
}

func TestRunScriptDeterministic(t *testing.T) {
	script, err := ParseScript([]byte(`
steps:
  - ticks: 40
    actions: [right]
  - ticks: 20
    actions: [right, jump]
  - ticks: 200
    actions: [left]
`))
	if err != nil {
		t.Fatal(err)
	}

	a := RunScript(newSimSession(), script, 100)
	b := RunScript(newSimSession(), script, 100)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same script gave different reports:\n%+v\n%+v", a, b)
	}
}
