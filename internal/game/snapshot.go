package game

// PlayerView is the render-facing copy of the player.
type PlayerView struct {
	X, Y         float64
	Facing       int
	Frame        int
	Invulnerable int
	Score        int
	Progress     int
	Lives        int
	Alive        bool
}

// Visible implements the invulnerability flicker: hidden 5 of every 10 ticks.
func (p PlayerView) Visible() bool {
	return p.Invulnerable == 0 || p.Invulnerable%10 < 5
}

// WalkFrame returns 0 or 1 for a two-frame walk cycle.
func (p PlayerView) WalkFrame(animSpeed int) int {
	if animSpeed <= 0 {
		animSpeed = 1
	}
	return (p.Frame / animSpeed) % 2
}

// EnemyView is the render-facing copy of one enemy.
type EnemyView struct {
	X, Y   float64
	Kind   EnemyKind
	Alive  bool
	Facing int
	Frame  int
}

// Snapshot captures everything presentation needs for one frame, and doubles
// as the determinism check for scripted runs.
type Snapshot struct {
	Tick       uint64
	State      State
	MusicOn    bool
	SoundOn    bool
	MenuCursor int
	BestScore  int
	Player     PlayerView
	Enemies    []EnemyView
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Tick:       s.tick,
		State:      s.state,
		MusicOn:    s.musicOn,
		SoundOn:    s.soundOn,
		MenuCursor: s.menuCursor,
		BestScore:  s.bestScore,
		Player: PlayerView{
			X:            p.X,
			Y:            p.Y,
			Facing:       p.Facing,
			Frame:        p.Frame,
			Invulnerable: p.Invulnerable,
			Score:        p.Score,
			Progress:     p.Progress,
			Lives:        p.Lives,
			Alive:        p.Alive,
		},
		Enemies: make([]EnemyView, 0, len(s.enemies)),
	}

	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			X:      e.X,
			Y:      e.Y,
			Kind:   e.Kind,
			Alive:  e.Alive,
			Facing: e.Facing,
			Frame:  e.Frame,
		})
	}
	return snap
}
