package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
)

var (
	flagScript   string
	flagSimTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game headlessly",
	Long: `Run the simulation without a terminal and print the final state as YAML.

The script lists steps. Movement actions (left, right, jump, continue) are
held for every tick of the step; menu and audio actions (up, down, confirm,
close, music, sound, quit) are applied once when the step begins. A click is
given in level coordinates.

  from_menu: false        # start on the menu instead of in a new game
  steps:
    - ticks: 30
      actions: [right]
    - ticks: 1
      actions: [right, jump]
    - click: {x: 714, y: 26}

The same script always produces the same result.

Examples:
  platformer sim --script ./run.yaml
  platformer sim --ticks 600 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to a YAML input script")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 0, "Idle ticks to run after the script")
}

// Script is a recorded sequence of inputs.
type Script struct {
	FromMenu bool   `yaml:"from_menu"`
	Steps    []Step `yaml:"steps"`
}

// Step holds a set of actions for a number of ticks.
type Step struct {
	Ticks   int      `yaml:"ticks"`
	Actions []string `yaml:"actions"`
	Click   *Point   `yaml:"click"`

	held     []core.Action
	commands []core.Action
}

// Point is a position in level coordinates.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SimReport is the final state printed by the sim command.
type SimReport struct {
	Ticks    int            `yaml:"ticks"` // Ticks stepped, across restarts
	State    string         `yaml:"state"`
	Score    int            `yaml:"score"`
	Progress int            `yaml:"progress"`
	Lives    int            `yaml:"lives"`
	Player   Point          `yaml:"player"`
	Enemies  []EnemyReport  `yaml:"enemies"`
	Events   map[string]int `yaml:"events,omitempty"`
	Quit     bool           `yaml:"quit,omitempty"`
}

// EnemyReport summarizes one enemy.
type EnemyReport struct {
	Kind  string `yaml:"kind"`
	X     int    `yaml:"x"`
	Alive bool   `yaml:"alive"`
}

// ParseScript decodes and checks a YAML script.
func ParseScript(data []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return Script{}, fmt.Errorf("invalid script: %w", err)
	}

	for i := range script.Steps {
		step := &script.Steps[i]
		if step.Ticks < 0 {
			return Script{}, fmt.Errorf("step %d: ticks must not be negative", i+1)
		}
		for _, name := range step.Actions {
			a, ok := core.ParseAction(name)
			if !ok {
				return Script{}, fmt.Errorf("step %d: unknown action %q", i+1, name)
			}
			if isHeld(a) {
				step.held = append(step.held, a)
			} else {
				step.commands = append(step.commands, a)
			}
		}
	}
	return script, nil
}

func isHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionContinue:
		return true
	}
	return false
}

// RunScript plays a script against a session and reports the final state.
func RunScript(s *game.Session, script Script, idleTicks int) SimReport {
	report := SimReport{Events: make(map[string]int)}
	collect := func(res game.StepResult) {
		for _, e := range res.Events {
			report.Events[e.String()]++
		}
	}

	if !script.FromMenu {
		s.Select(game.MenuStart)
	}

	steps := append(slices.Clone(script.Steps), Step{Ticks: idleTicks})
	for _, step := range steps {
		if step.Click != nil {
			collect(s.Click(step.Click.X, step.Click.Y))
		}
		for _, a := range step.commands {
			if a == core.ActionQuit {
				report.Quit = true
				return finish(s, report)
			}
			collect(s.HandleAction(a))
		}

		frame := core.FrameOf(step.held...)
		for i := 0; i < step.Ticks && !s.Quit(); i++ {
			collect(s.Step(frame))
			report.Ticks++
		}
		if s.Quit() {
			report.Quit = true
			break
		}
	}

	return finish(s, report)
}

func finish(s *game.Session, report SimReport) SimReport {
	snap := s.Snapshot()
	report.State = snap.State.String()
	report.Score = snap.Player.Score
	report.Progress = snap.Player.Progress
	report.Lives = snap.Player.Lives
	report.Player = Point{X: int(snap.Player.X), Y: int(snap.Player.Y)}
	for _, e := range snap.Enemies {
		report.Enemies = append(report.Enemies, EnemyReport{
			Kind:  e.Kind.String(),
			X:     int(e.X),
			Alive: e.Alive,
		})
	}
	return report
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr, "platformer-sim")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var script Script
	if flagScript != "" {
		data, readErr := os.ReadFile(flagScript)
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot read script: %v\n", readErr)
			os.Exit(1)
		}
		if script, err = ParseScript(data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	session := game.NewSession(gameCfg, game.WithLogger(logger))
	report := RunScript(session, script, flagSimTicks)
	logger.Debug("simulation finished", "ticks", report.Ticks, "state", report.State)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}
