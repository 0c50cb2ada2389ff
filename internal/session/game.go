// Package session wires one playable game for a host: it builds the physics
// world, the scrolling layers and the game loop from a HoppyConfig, delivers
// input at a fixed timestep and rebuilds everything when a restart is
// requested.
package session

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hoppy/internal/config"
	"github.com/vovakirdan/tui-hoppy/internal/core"
	"github.com/vovakirdan/tui-hoppy/internal/hoppy"
	"github.com/vovakirdan/tui-hoppy/internal/physics"
)

// Reloader returns the tuning for the next run and whether it differs from
// the current one. It is consulted on every restart.
type Reloader func() (config.HoppyConfig, bool)

// Options configure a Game.
type Options struct {
	Config  config.HoppyConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Reload  Reloader
}

// Game is one player's session. It is driven from a single goroutine.
type Game struct {
	cfg    config.HoppyConfig
	rt     core.RuntimeConfig
	rng    *rand.Rand
	reload Reloader
	logger *log.Logger

	world  *physics.World
	player *physics.PlayerBody
	loop   *hoppy.GameLoop

	score            int
	best             int
	restartAvailable bool
	restartPending   bool
	paused           bool
	runs             int
}

// New validates the config and builds the first run.
func New(opts Options) (*Game, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, fmt.Errorf("session: invalid config: %w", err)
	}

	seed := opts.Runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    opts.Config,
		rt:     opts.Runtime,
		rng:    rand.New(rand.NewSource(seed)),
		reload: opts.Reload,
		logger: logger,
	}
	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

// build replaces the world and the loop with a fresh run.
func (g *Game) build() error {
	c := g.cfg

	world := physics.NewWorld(physics.Config{
		Width:   c.Viewport.Width,
		Height:  c.Viewport.Height,
		Gravity: c.Physics.Gravity,
		Floor:   c.Ground.Height,
	})
	world.SetLogger(g.logger)

	tiles := make([]*hoppy.Entity, c.Ground.Tiles)
	for i := range tiles {
		tiles[i] = &hoppy.Entity{
			Tag:  hoppy.TagGround,
			Pos:  hoppy.Vec{X: c.Ground.Width/2 + float64(i)*c.Ground.Width, Y: c.Ground.Height / 2},
			Size: hoppy.Vec{X: c.Ground.Width, Y: c.Ground.Height},
		}
	}
	background, err := hoppy.NewScrollingBackground(tiles, c.Scroll.Speed, c.Viewport.Width)
	if err != nil {
		return fmt.Errorf("session: cannot build background: %w", err)
	}
	for _, tile := range tiles {
		tile := tile
		world.AddStatic(tile, func() hoppy.Vec { return background.ViewportPos(tile) })
	}

	spawner, err := hoppy.NewObstacleSpawner(
		hoppy.SpawnerConfig{
			Speed:         c.Scroll.Speed,
			Interval:      c.Spawner.Interval,
			SpawnX:        c.Spawner.SpawnX,
			MinY:          c.Spawner.MinY,
			MaxY:          c.Spawner.MaxY,
			ExitThreshold: c.Spawner.ExitThreshold,
		},
		hoppy.Template{
			Width:         c.Obstacle.Width,
			GapHeight:     c.Obstacle.GapHeight,
			BarrierHeight: c.Obstacle.BarrierHeight,
			GoalWidth:     c.Obstacle.GoalWidth,
		},
		g.rng,
		world,
	)
	if err != nil {
		return fmt.Errorf("session: cannot build spawner: %w", err)
	}

	player := physics.NewPlayerBody(
		&hoppy.Entity{
			Tag:  hoppy.TagPlayer,
			Pos:  hoppy.Vec{X: c.Player.X, Y: c.Player.Y},
			Size: hoppy.Vec{X: c.Player.Width, Y: c.Player.Height},
		},
		c.Physics.PlayerMass,
		physics.NewAnimator(c.Player.FlapPeriod, len(flapFrames)),
	)
	world.SetPlayer(player)

	loop, err := hoppy.NewGameLoop(
		hoppy.LoopConfig{HopImpulse: c.Physics.HopImpulse, MaxRiseSpeed: c.Physics.MaxRiseSpeed},
		hoppy.Deps{
			Player:     player,
			Background: background,
			Obstacles:  spawner,
			Display:    g,
			Listener:   g.handleEvent,
			Logger:     g.logger,
		},
	)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	world.OnContact(func(a, b *hoppy.Entity) {
		loop.OnCollision(a, b)
	})

	g.world = world
	g.player = player
	g.loop = loop
	g.paused = false
	g.restartPending = false
	g.runs++
	g.logger.Debug("run started", "run", g.runs)
	return nil
}

// restart discards the finished run, picking up new tuning if any.
func (g *Game) restart() {
	prev := g.cfg
	if g.reload != nil {
		if next, changed := g.reload(); changed {
			if err := next.Validate(); err != nil {
				g.logger.Warn("ignoring reloaded config", "err", err)
			} else {
				g.cfg = next
				g.logger.Info("config reloaded")
			}
		}
	}
	if err := g.build(); err != nil {
		g.logger.Error("cannot restart with new config", "err", err)
		g.cfg = prev
		if err := g.build(); err != nil {
			g.logger.Error("cannot restart", "err", err)
		}
	}
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	gameOver := g.loop.State() == hoppy.StateGameOver

	if in.Has(core.ActionPause) && !gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.loop.RequestRestart()
	}
	if g.restartPending {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	for i := 0; i < in.Count(core.ActionJump); i++ {
		g.loop.OnInput()
	}
	g.loop.Tick(hoppy.FixedDelta)
	g.world.Step(hoppy.FixedDelta)

	return core.StepResult{State: g.State()}
}

// ScoreChanged implements hoppy.Display.
func (g *Game) ScoreChanged(score int) {
	g.score = score
	if score > g.best {
		g.best = score
	}
}

// RestartAvailable implements hoppy.Display.
func (g *Game) RestartAvailable(enabled bool) {
	g.restartAvailable = enabled
}

func (g *Game) handleEvent(e hoppy.Event) {
	switch ev := e.(type) {
	case hoppy.ScoreEvent:
		g.logger.Debug("goal", "score", ev.Score)
	case hoppy.GameOverEvent:
		g.logger.Info("run over", "run", g.runs, "score", ev.Score, "hit", ev.Other)
	case hoppy.RestartEvent:
		g.restartPending = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:            g.score,
		GameOver:         g.loop.State() == hoppy.StateGameOver,
		Paused:           g.paused,
		RestartAvailable: g.restartAvailable,
	}
}

// Config returns the tuning of the current run.
func (g *Game) Config() config.HoppyConfig {
	return g.cfg
}

// Runtime returns the runtime config the session was created with.
func (g *Game) Runtime() core.RuntimeConfig {
	return g.rt
}

// Best returns the highest score reached in this session.
func (g *Game) Best() int {
	return g.best
}

// Runs returns how many runs have been started, including the current one.
func (g *Game) Runs() int {
	return g.runs
}

// Loop returns the current run's game loop.
func (g *Game) Loop() *hoppy.GameLoop {
	return g.loop
}

// Player returns the current run's player body.
func (g *Game) Player() *physics.PlayerBody {
	return g.player
}
