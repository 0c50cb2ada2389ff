package session

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hoppy/internal/config"
	"github.com/vovakirdan/tui-hoppy/internal/core"
	"github.com/vovakirdan/tui-hoppy/internal/hoppy"
)

func newTestGame(t *testing.T, reload Reloader) *Game {
	t.Helper()
	g, err := New(Options{
		Config:  config.DefaultHoppyConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 40, ScreenH: 30, TickRate: 60, Seed: 42},
		Reload:  reload,
	})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// runUntilGameOver steps without input until the player hits the ground.
func runUntilGameOver(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 600; i++ {
		if g.Step(idle()).State.GameOver {
			return
		}
	}
	t.Fatal("game never ended without input")
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultHoppyConfig()
	cfg.Scroll.Speed = 0

	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("expected an error for zero scroll speed")
	}
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, nil)

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused || state.RestartAvailable {
		t.Errorf("unexpected initial state %+v", state)
	}
	if g.Runs() != 1 {
		t.Errorf("Runs() = %d, expected 1", g.Runs())
	}
}

func TestFallingEndsRun(t *testing.T) {
	g := newTestGame(t, nil)
	runUntilGameOver(t, g)

	state := g.State()
	if !state.RestartAvailable {
		t.Error("restart should be available after game over")
	}
	if !g.Player().Animation().Stopped() {
		t.Error("flap animation should stop on game over")
	}
}

func TestJumpRaisesPlayer(t *testing.T) {
	g := newTestGame(t, nil)
	y := g.Player().Entity().Pos.Y

	g.Step(press(core.ActionJump))

	if got := g.Player().Entity().Pos.Y; got <= y {
		t.Errorf("player y after jump = %v, expected above %v", got, y)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, nil)

	// Ignored while the run is active
	g.Step(press(core.ActionRestart))
	if g.Runs() != 1 {
		t.Fatalf("restart during an active run started run %d", g.Runs())
	}

	runUntilGameOver(t, g)
	old := g.Loop()

	state := g.Step(press(core.ActionRestart)).State
	if state.GameOver || state.RestartAvailable || state.Score != 0 {
		t.Errorf("state after restart = %+v", state)
	}
	if g.Loop() == old {
		t.Error("restart should build a new loop")
	}
	if g.Runs() != 2 {
		t.Errorf("Runs() = %d, expected 2", g.Runs())
	}
}

func TestRestartPicksUpReload(t *testing.T) {
	next := config.DefaultHoppyConfig()
	next.Scroll.Speed = 150
	calls := 0
	g := newTestGame(t, func() (config.HoppyConfig, bool) {
		calls++
		return next, true
	})

	runUntilGameOver(t, g)
	g.Step(press(core.ActionRestart))

	if calls != 1 {
		t.Errorf("reload called %d times, expected 1", calls)
	}
	if g.Config().Scroll.Speed != 150 {
		t.Errorf("scroll speed after restart = %v, expected 150", g.Config().Scroll.Speed)
	}
}

func TestRestartIgnoresInvalidReload(t *testing.T) {
	bad := config.DefaultHoppyConfig()
	bad.Spawner.Interval = -1
	g := newTestGame(t, func() (config.HoppyConfig, bool) {
		return bad, true
	})

	runUntilGameOver(t, g)
	g.Step(press(core.ActionRestart))

	if g.Config().Spawner.Interval != 1.5 {
		t.Errorf("invalid reload was applied: interval %v", g.Config().Spawner.Interval)
	}
	if g.State().GameOver {
		t.Error("restart should still happen with the previous config")
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, nil)
	g.Step(idle())

	if !g.Step(press(core.ActionPause)).State.Paused {
		t.Fatal("expected paused state")
	}
	y := g.Player().Entity().Pos.Y
	timer := g.Loop().SpawnTimer()
	for i := 0; i < 30; i++ {
		g.Step(idle())
	}
	if g.Player().Entity().Pos.Y != y || g.Loop().SpawnTimer() != timer {
		t.Error("paused game should not advance")
	}

	if g.Step(press(core.ActionPause)).State.Paused {
		t.Error("second pause should resume")
	}
}

func TestScoreReachesDisplay(t *testing.T) {
	g := newTestGame(t, nil)
	goal := &hoppy.Entity{Tag: hoppy.TagGoal}

	g.Loop().OnCollision(g.Player().Entity(), goal)
	g.Loop().OnCollision(goal, g.Player().Entity())

	if g.State().Score != 2 {
		t.Errorf("score = %d, expected 2", g.State().Score)
	}
	if g.Best() != 2 {
		t.Errorf("best = %d, expected 2", g.Best())
	}

	runUntilGameOver(t, g)
	g.Step(press(core.ActionRestart))
	if g.State().Score != 0 || g.Best() != 2 {
		t.Errorf("after restart score = %d best = %d, expected 0 and 2", g.State().Score, g.Best())
	}
}

func TestObstaclesSpawnDuringPlay(t *testing.T) {
	g := newTestGame(t, nil)

	// Hop whenever the player drops below its start height.
	start := g.Player().Entity().Pos.Y
	for i := 0; i < 100; i++ {
		in := idle()
		if g.Player().Entity().Pos.Y < start {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	if n := len(g.Loop().Obstacles().Obstacles()); n == 0 {
		t.Error("expected an obstacle after 1.5 seconds")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() (float64, []float64) {
		g := newTestGame(t, nil)
		for i := 0; i < 240; i++ {
			in := idle()
			if i%20 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		var ys []float64
		for _, o := range g.Loop().Obstacles().Obstacles() {
			ys = append(ys, o.ViewportPos().Y)
		}
		return g.Player().Entity().Pos.Y, ys
	}

	y1, obs1 := run()
	y2, obs2 := run()
	if y1 != y2 {
		t.Errorf("player y differs: %v vs %v", y1, y2)
	}
	if len(obs1) != len(obs2) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(obs1), len(obs2))
	}
	for i := range obs1 {
		if obs1[i] != obs2[i] {
			t.Errorf("obstacle %d y differs: %v vs %v", i, obs1[i], obs2[i])
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, nil)
	s := core.NewScreen(40, 30)

	g.Render(s)
	if !strings.Contains(s.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", s.Row(0))
	}
	if !strings.ContainsRune(s.Row(s.Height()-1), GroundChar) {
		t.Errorf("bottom row should be ground, got %q", s.Row(s.Height()-1))
	}
	if !strings.ContainsRune(s.String(), PlayerChar) {
		t.Error("player not drawn")
	}

	runUntilGameOver(t, g)
	g.Render(s)
	if !strings.Contains(s.String(), "GAME OVER") {
		t.Error("game over box not drawn")
	}
}

func TestRenderEmptyScreen(t *testing.T) {
	g := newTestGame(t, nil)
	g.Render(core.NewScreen(0, 0))
}
