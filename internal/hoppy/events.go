package hoppy

// Event is emitted by GameLoop to its Listener.
type Event interface {
	hoppyEvent()
}

// ScoreEvent is emitted after each goal pass.
type ScoreEvent struct {
	Score int
}

func (ScoreEvent) hoppyEvent() {}

// GameOverEvent is emitted once, when the run ends.
type GameOverEvent struct {
	Score int
	Other Tag // What the player hit
}

func (GameOverEvent) hoppyEvent() {}

// RestartEvent asks the host to discard the loop and build a fresh one.
type RestartEvent struct {
	Score int // Final score of the finished run
}

func (RestartEvent) hoppyEvent() {}

// Listener receives loop events. It is called synchronously from the
// GameLoop method that produced the event.
type Listener func(Event)
