package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	GroundChar = '═'
	HeartChar  = '♥'
	PlayerHead = 'O'
)

// Projection maps world coordinates onto a character grid and back.
type Projection struct {
	levelW, levelH   float64
	screenW, screenH int
}

// NewProjection creates a projection of the level onto a w×h screen.
func NewProjection(level config.Level, w, h int) Projection {
	return Projection{
		levelW:  level.Width,
		levelH:  level.Height,
		screenW: w,
		screenH: h,
	}
}

// ToScreen converts a world point to a cell.
func (p Projection) ToScreen(x, y float64) (int, int) {
	if p.levelW <= 0 || p.levelH <= 0 {
		return 0, 0
	}
	return int(x * float64(p.screenW) / p.levelW), int(y * float64(p.screenH) / p.levelH)
}

// ToWorld converts a cell to the world point at its center.
func (p Projection) ToWorld(cx, cy int) (int, int) {
	if p.screenW <= 0 || p.screenH <= 0 {
		return 0, 0
	}
	x := (float64(cx) + 0.5) * p.levelW / float64(p.screenW)
	y := (float64(cy) + 0.5) * p.levelH / float64(p.screenH)
	return int(x), int(y)
}

// RectToScreen converts a world rectangle to the cells it covers.
func (p Projection) RectToScreen(r core.Rect) core.Rect {
	x0, y0 := p.ToScreen(float64(r.X), float64(r.Y))
	x1, y1 := p.ToScreen(float64(r.Right()), float64(r.Bottom()))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Render draws the current state into the screen buffer.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()
	proj := NewProjection(s.cfg.Level, dst.Width(), dst.Height())
	snap := s.Snapshot()

	switch snap.State {
	case StateMenu:
		s.renderMenu(dst, proj, snap)
	case StatePlaying:
		s.renderWorld(dst, proj, snap)
		s.renderHUD(dst, proj, snap)
	case StateWin:
		s.renderWin(dst, proj, snap)
	case StateGameOver:
		renderGameOver(dst)
	}
}

func (s *Session) renderMenu(dst *core.Screen, proj Projection, snap Snapshot) {
	_, titleY := proj.ToScreen(0, s.cfg.Level.Height/2-150)
	dst.DrawTextCentered(core.Max(titleY, 0), "P L A T F O R M   G A M E S", core.ColorBrightYellow)

	for i, b := range MenuButtons(s.cfg.Level.Width, s.cfg.Level.Height) {
		label := b.Item.Label(snap.MusicOn, snap.SoundOn)

		color := core.ColorBlue
		text := "[ " + label + " ]"
		if i == snap.MenuCursor {
			color = core.ColorBrightYellow
			text = "> " + label + " <"
		}

		box := buttonBox(proj.RectToScreen(b.Rect))
		dst.DrawRect(box, ' ', core.ColorDefault)
		dst.DrawBox(box, color)
		dst.DrawTextCentered(box.Y+box.H/2, text, color)
	}

	if snap.BestScore > 0 {
		dst.DrawTextCentered(dst.Height()-2, fmt.Sprintf("Best: %d", snap.BestScore), core.ColorGold)
	}
	dst.DrawTextCentered(dst.Height()-1, "Up/Down: Navigate  |  Enter: Select  |  Click a button  |  Q: Quit", core.ColorGray)
}

// buttonBox grows a projected button to at least three rows so the outline
// leaves a middle row for the caption.
func buttonBox(cells core.Rect) core.Rect {
	cells.H = core.Max(cells.H, 3)
	return cells
}

func (s *Session) renderWorld(dst *core.Screen, proj Projection, snap Snapshot) {
	_, groundRow := proj.ToScreen(0, s.cfg.Level.GroundY())
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGreen)

	for _, e := range snap.Enemies {
		if !e.Alive {
			continue
		}
		x, y := proj.ToScreen(e.X, e.Y)
		s.drawEnemy(dst, x, y-1, e)
	}

	if snap.Player.Visible() {
		x, y := proj.ToScreen(snap.Player.X, snap.Player.Y)
		s.drawPlayer(dst, x, y-1, snap.Player)
	}
}

// drawPlayer renders a two-row figure with its feet on row y.
func (s *Session) drawPlayer(dst *core.Screen, x, y int, p PlayerView) {
	dst.SetColored(x, y-1, PlayerHead, core.ColorCyan)
	if p.Facing > 0 {
		dst.SetColored(x+1, y-1, '>', core.ColorCyan)
	} else {
		dst.SetColored(x-1, y-1, '<', core.ColorCyan)
	}

	legs := 'Λ'
	if p.WalkFrame(s.cfg.Physics.AnimationSpeed) == 1 {
		legs = '|'
	}
	dst.SetColored(x, y, legs, core.ColorCyan)
}

func (s *Session) drawEnemy(dst *core.Screen, x, y int, e EnemyView) {
	switch e.Kind {
	case KindSnake:
		if e.Facing > 0 {
			dst.DrawTextColored(x-1, y, "~~>", core.ColorBrightGreen)
		} else {
			dst.DrawTextColored(x-1, y, "<~~", core.ColorBrightGreen)
		}
	case KindMushroom:
		top := "(@)"
		if (e.Frame/core.Max(s.cfg.Physics.AnimationSpeed, 1))%2 == 1 {
			top = "(o)"
		}
		dst.DrawTextColored(x-1, y-1, top, core.ColorRed)
		dst.SetColored(x, y, '|', core.ColorWhite)
	}
}

func (s *Session) renderHUD(dst *core.Screen, proj Projection, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Player.Score))
	dst.DrawText(1, 1, fmt.Sprintf("Progress: %d%%", snap.Player.Progress))

	hearts := strings.Repeat(string(HeartChar)+" ", core.Max(snap.Player.Lives, 0))
	dst.DrawTextColored(dst.Width()-len([]rune(hearts))-1, 2, hearts, core.ColorBrightRed)

	s.drawCloseButton(dst, proj)
}

func (s *Session) drawCloseButton(dst *core.Screen, proj Projection) {
	cells := proj.RectToScreen(CloseButton(s.cfg.Level.Width))
	x := core.Min(cells.X, dst.Width()-3)
	dst.DrawTextColored(x, cells.Y+cells.H/2, "[X]", core.ColorRed)
}

func (s *Session) renderWin(dst *core.Screen, proj Projection, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "CONGRATULATIONS!", core.ColorGold)
	dst.DrawTextCentered(mid, fmt.Sprintf("Total Score: %d", snap.Player.Score), core.ColorWhite)
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Best: %d", snap.BestScore), core.ColorGold)
	dst.DrawTextCentered(mid+3, "Click [X] or press Esc to return to the menu  |  SPACE: play again", core.ColorGray)
	s.drawCloseButton(dst, proj)
}

func renderGameOver(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid, "GAME OVER", core.ColorBrightRed)
	dst.DrawTextCentered(mid+2, "Press SPACE to try again", core.ColorWhite)
}
