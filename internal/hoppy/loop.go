package hoppy

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Default tuning for the loop.
const (
	FixedDelta   = 1.0 / 60.0 // Seconds per tick supplied by the host
	HopImpulse   = 300.0      // Upward impulse per input
	MaxRiseSpeed = 400.0      // Upward velocity cap; falling is never capped
)

var (
	ErrNoPlayer     = errors.New("no player body")
	ErrNoBackground = errors.New("no scrolling background")
	ErrNoObstacles  = errors.New("no obstacle spawner")
	ErrNoDisplay    = errors.New("no display")
)

var discardLogger = log.New(io.Discard)

// State is the run state of a GameLoop.
type State uint8

const (
	StateActive State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "active"
}

// Body is the physics handle of the player entity.
type Body interface {
	Entity() *Entity
	Velocity() Vec
	SetVelocity(v Vec)
	ApplyImpulse(impulse Vec)
	StopAnimation()
}

// Display shows the score and the restart control.
type Display interface {
	ScoreChanged(score int)
	RestartAvailable(enabled bool)
}

// LoopConfig holds the player tuning applied by GameLoop.
type LoopConfig struct {
	HopImpulse   float64
	MaxRiseSpeed float64
}

// DefaultLoopConfig returns the standard tuning.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		HopImpulse:   HopImpulse,
		MaxRiseSpeed: MaxRiseSpeed,
	}
}

// Deps are the collaborators a GameLoop is built from. Everything except
// Listener and Logger is required.
type Deps struct {
	Player     Body
	Background *ScrollingBackground
	Obstacles  *ObstacleSpawner
	Display    Display
	Listener   Listener
	Logger     *log.Logger
}

// GameLoop owns the state of one run: state, score and spawn timer.
// A restart is a new GameLoop.
type GameLoop struct {
	cfg        LoopConfig
	player     Body
	background *ScrollingBackground
	obstacles  *ObstacleSpawner
	display    Display
	listener   Listener
	logger     *log.Logger

	state      State
	score      int
	spawnTimer float64
}

// NewGameLoop validates the collaborators and returns a loop in the Active
// state with a zero score.
func NewGameLoop(cfg LoopConfig, deps Deps) (*GameLoop, error) {
	switch {
	case deps.Player == nil || deps.Player.Entity() == nil:
		return nil, fmt.Errorf("hoppy: cannot build loop: %w", ErrNoPlayer)
	case deps.Background == nil:
		return nil, fmt.Errorf("hoppy: cannot build loop: %w", ErrNoBackground)
	case deps.Obstacles == nil:
		return nil, fmt.Errorf("hoppy: cannot build loop: %w", ErrNoObstacles)
	case deps.Display == nil:
		return nil, fmt.Errorf("hoppy: cannot build loop: %w", ErrNoDisplay)
	}
	if cfg.MaxRiseSpeed <= 0 {
		return nil, fmt.Errorf("hoppy: max rise speed must be positive, got %v", cfg.MaxRiseSpeed)
	}

	logger := deps.Logger
	if logger == nil {
		logger = discardLogger
	}
	deps.Obstacles.SetLogger(logger)

	g := &GameLoop{
		cfg:        cfg,
		player:     deps.Player,
		background: deps.Background,
		obstacles:  deps.Obstacles,
		display:    deps.Display,
		listener:   deps.Listener,
		logger:     logger,
	}
	g.display.ScoreChanged(0)
	g.display.RestartAvailable(false)
	return g, nil
}

// OnInput hops the player. Input during game over is ignored.
func (g *GameLoop) OnInput() {
	if g.state != StateActive {
		return
	}
	g.player.ApplyImpulse(Vec{Y: g.cfg.HopImpulse})
}

// Tick advances the run by dt seconds. It does nothing after game over.
func (g *GameLoop) Tick(dt float64) {
	if g.state != StateActive {
		return
	}

	v := g.player.Velocity()
	if v.Y > g.cfg.MaxRiseSpeed {
		v.Y = g.cfg.MaxRiseSpeed
		g.player.SetVelocity(v)
	}

	g.background.Update(dt)
	if g.obstacles.Update(dt, g.spawnTimer) {
		g.spawnTimer = 0
	}
	g.spawnTimer += dt
}

// OnCollision handles the first contact between two entities and returns
// how it was classified.
//
// Goal contacts score even after game over. Terminal contacts end the run
// once; later ones are ignored.
func (g *GameLoop) OnCollision(a, b *Entity) Contact {
	if a == nil || b == nil {
		return ContactIgnore
	}

	contact := Resolve(a.Tag, b.Tag)
	switch contact {
	case ContactScore:
		g.score++
		g.display.ScoreChanged(g.score)
		g.logger.Debug("goal passed", "score", g.score)
		g.emit(ScoreEvent{Score: g.score})

	case ContactTerminal:
		if g.state != StateActive {
			return contact
		}
		g.state = StateGameOver
		g.player.StopAnimation()
		g.display.RestartAvailable(true)

		other := a.Tag
		if other == TagPlayer {
			other = b.Tag
		}
		g.logger.Debug("game over", "score", g.score, "hit", other)
		g.emit(GameOverEvent{Score: g.score, Other: other})
	}
	return contact
}

// RequestRestart is called when the restart control is activated. It emits a
// RestartEvent if the run is over and reports whether it did.
func (g *GameLoop) RequestRestart() bool {
	if g.state != StateGameOver {
		return false
	}
	g.logger.Debug("restart requested", "score", g.score)
	g.emit(RestartEvent{Score: g.score})
	return true
}

func (g *GameLoop) emit(e Event) {
	if g.listener != nil {
		g.listener(e)
	}
}

// State returns the current run state.
func (g *GameLoop) State() State {
	return g.state
}

// Score returns the number of goals passed.
func (g *GameLoop) Score() int {
	return g.score
}

// SpawnTimer returns the seconds accumulated since the last spawn.
func (g *GameLoop) SpawnTimer() float64 {
	return g.spawnTimer
}

// Player returns the player body.
func (g *GameLoop) Player() Body {
	return g.player
}

// Background returns the scrolling background.
func (g *GameLoop) Background() *ScrollingBackground {
	return g.background
}

// Obstacles returns the obstacle spawner.
func (g *GameLoop) Obstacles() *ObstacleSpawner {
	return g.obstacles
}
