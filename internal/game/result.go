package game

// Ending describes how a playing session finished.
type Ending string

const (
	EndingWin      Ending = "win"
	EndingGameOver Ending = "game_over"
	EndingAborted  Ending = "aborted" // Closed from the playing screen
)

// Result is the summary of one finished playing session.
type Result struct {
	Player    string
	Ending    Ending
	Score     int
	Progress  int
	LivesLeft int
	Ticks     uint64
}

// ResultRecorder persists finished sessions. Implemented by storage.Store.
type ResultRecorder interface {
	RecordResult(r Result) error
}
