package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func openScoreStore(t *testing.T, results ...game.Result) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range results {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}
	return store
}

func updateScoreboard(t *testing.T, m ScoreboardModel, msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestScoreboardEmpty(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) *storage.Store
	}{
		{"no store", func(*testing.T) *storage.Store { return nil }},
		{"empty store", func(t *testing.T) *storage.Store { return openScoreStore(t) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			view := NewScoreboardModel(tc.store(t), 80, 24).View()
			for _, want := range []string{"HIGH SCORES", "No sessions played", "No scores recorded yet."} {
				if !strings.Contains(view, want) {
					t.Errorf("view is missing %q:\n%s", want, view)
				}
			}
		})
	}
}

func TestScoreboardViews(t *testing.T) {
	store := openScoreStore(t,
		game.Result{Player: "alice", Ending: game.EndingGameOver, Score: 150, Progress: 30},
		game.Result{Player: "carol", Ending: game.EndingWin, Score: 500, Progress: 100},
		game.Result{Player: "", Ending: game.EndingAborted, Score: 50, Progress: 10},
	)
	m := NewScoreboardModel(store, 80, 24)

	tests := []struct {
		title  string
		first  []string // Player, Score, Result of row #1
		header string
	}{
		{"HIGH SCORES", []string{"carol", "500", "Won"}, "HIGH SCORES"},
		{"RECENT SESSIONS", []string{"-", "50", "Quit"}, "RECENT SESSIONS"},
		{"HIGH SCORES", []string{"carol", "500", "Won"}, "HIGH SCORES"},
	}

	for i, tc := range tests {
		if i > 0 {
			m, _ = updateScoreboard(t, m, tea.KeyMsg{Type: tea.KeyTab})
		}

		rows := m.table.Rows()
		if len(rows) != 3 {
			t.Fatalf("%s: %d rows, expected 3", tc.title, len(rows))
		}
		if rows[0][0] != "#1" || rows[0][1] != tc.first[0] || rows[0][2] != tc.first[1] || rows[0][3] != tc.first[2] {
			t.Errorf("%s: first row = %v, expected %v", tc.title, rows[0], tc.first)
		}

		view := m.View()
		if !strings.Contains(view, tc.header) {
			t.Errorf("view should be titled %q", tc.header)
		}
		if !strings.Contains(view, "3 sessions  |  1 won  |  best 500  |  avg 233") {
			t.Errorf("view is missing the stats line:\n%s", view)
		}
	}
}

func TestScoreboardResizeKeepsRows(t *testing.T) {
	store := openScoreStore(t, game.Result{Player: "alice", Ending: game.EndingWin, Score: 150})
	m := NewScoreboardModel(store, 80, 24)

	m, _ = updateScoreboard(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if len(m.table.Rows()) != 1 {
		t.Errorf("rows after resize = %d, expected 1", len(m.table.Rows()))
	}
	if m.table.Columns()[1].Width != 8 {
		t.Errorf("player column = %d wide, expected 8 on a narrow terminal", m.table.Columns()[1].Width)
	}
}

func TestScoreboardExit(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		back     bool
		quitting bool
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"b", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}, true, false},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, false, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, cmd := updateScoreboard(t, NewScoreboardModel(nil, 80, 24), tc.msg)
			if cmd == nil {
				t.Fatal("expected a quit command")
			}
			if m.IsGoingBack() != tc.back || m.IsQuitting() != tc.quitting {
				t.Errorf("back=%v quitting=%v, expected %v/%v", m.IsGoingBack(), m.IsQuitting(), tc.back, tc.quitting)
			}
			if m.View() != "" {
				t.Error("view should be empty once leaving")
			}
		})
	}
}
