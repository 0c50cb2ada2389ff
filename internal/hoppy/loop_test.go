package hoppy

import (
	"errors"
	"testing"
)

type loopFixture struct {
	loop    *GameLoop
	body    *fakeBody
	display *fakeDisplay
	scene   *fakeScene
	events  []Event
}

func newLoopFixture(t *testing.T) *loopFixture {
	t.Helper()

	f := &loopFixture{
		body:    newFakeBody(),
		display: &fakeDisplay{},
		scene:   &fakeScene{},
	}
	bg, err := NewScrollingBackground(testTiles(), 100, 320)
	if err != nil {
		t.Fatalf("NewScrollingBackground() failed: %v", err)
	}
	spawner, err := NewObstacleSpawner(testSpawnerConfig(), testTemplate(), &seqRand{vals: []float64{0.5}}, f.scene)
	if err != nil {
		t.Fatalf("NewObstacleSpawner() failed: %v", err)
	}

	f.loop, err = NewGameLoop(DefaultLoopConfig(), Deps{
		Player:     f.body,
		Background: bg,
		Obstacles:  spawner,
		Display:    f.display,
		Listener:   func(e Event) { f.events = append(f.events, e) },
	})
	if err != nil {
		t.Fatalf("NewGameLoop() failed: %v", err)
	}
	return f
}

func TestNewGameLoopRequiresCollaborators(t *testing.T) {
	bg, _ := NewScrollingBackground(testTiles(), 100, 320)
	spawner, _ := NewObstacleSpawner(testSpawnerConfig(), testTemplate(), &seqRand{vals: []float64{0}}, nil)
	full := Deps{Player: newFakeBody(), Background: bg, Obstacles: spawner, Display: &fakeDisplay{}}

	tests := []struct {
		name   string
		mutate func(d *Deps)
		want   error
	}{
		{"player", func(d *Deps) { d.Player = nil }, ErrNoPlayer},
		{"player entity", func(d *Deps) { d.Player = &fakeBody{} }, ErrNoPlayer},
		{"background", func(d *Deps) { d.Background = nil }, ErrNoBackground},
		{"obstacles", func(d *Deps) { d.Obstacles = nil }, ErrNoObstacles},
		{"display", func(d *Deps) { d.Display = nil }, ErrNoDisplay},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			deps := full
			tc.mutate(&deps)
			if _, err := NewGameLoop(DefaultLoopConfig(), deps); !errors.Is(err, tc.want) {
				t.Errorf("NewGameLoop() error = %v, expected %v", err, tc.want)
			}
		})
	}

	if _, err := NewGameLoop(DefaultLoopConfig(), full); err != nil {
		t.Errorf("NewGameLoop() with all collaborators failed: %v", err)
	}
}

func TestNewGameLoopInitialState(t *testing.T) {
	f := newLoopFixture(t)

	if f.loop.State() != StateActive {
		t.Errorf("initial state = %s, expected active", f.loop.State())
	}
	if f.loop.Score() != 0 || f.loop.SpawnTimer() != 0 {
		t.Errorf("initial score/timer = %d/%v, expected 0/0", f.loop.Score(), f.loop.SpawnTimer())
	}
	if len(f.display.scores) != 1 || f.display.scores[0] != 0 {
		t.Errorf("display should be reset to 0, got %v", f.display.scores)
	}
	if f.display.restartEnables() != 0 {
		t.Error("restart must not be available at start")
	}
}

func TestOnInputAppliesImpulseOncePerEvent(t *testing.T) {
	f := newLoopFixture(t)

	f.loop.OnInput()
	if len(f.body.impulses) != 1 || f.body.impulses[0] != (Vec{Y: 300}) {
		t.Fatalf("impulses = %v, expected one (0, 300)", f.body.impulses)
	}

	f.loop.OnInput()
	if len(f.body.impulses) != 2 {
		t.Errorf("second input should add a second impulse, got %d", len(f.body.impulses))
	}
}

func TestOnInputIgnoredAfterGameOver(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.OnCollision(&Entity{Tag: TagGround}, f.body.Entity())

	f.loop.OnInput()
	if len(f.body.impulses) != 0 {
		t.Errorf("input during game over applied %d impulses", len(f.body.impulses))
	}
}

func TestTickCapsRiseSpeedOnly(t *testing.T) {
	tests := []struct {
		name    string
		vy      float64
		want    float64
		setCall bool
	}{
		{"runaway ascent", 900, 400, true},
		{"just above cap", 400.0001, 400, true},
		{"at cap", 400, 400, false},
		{"rising slowly", 120, 120, false},
		{"falling fast", -5000, -5000, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newLoopFixture(t)
			f.body.vel = Vec{X: 3, Y: tc.vy}

			f.loop.Tick(FixedDelta)

			if f.body.vel.Y != tc.want {
				t.Errorf("vy after tick = %v, expected %v", f.body.vel.Y, tc.want)
			}
			if f.body.vel.X != 3 {
				t.Errorf("horizontal velocity changed to %v", f.body.vel.X)
			}
			if (f.body.setCalls > 0) != tc.setCall {
				t.Errorf("SetVelocity calls = %d, expected call=%v", f.body.setCalls, tc.setCall)
			}
		})
	}
}

func TestGoalCollisionScores(t *testing.T) {
	f := newLoopFixture(t)

	got := f.loop.OnCollision(&Entity{Tag: TagGoal}, f.body.Entity())

	if got != ContactScore {
		t.Errorf("contact = %s, expected score", got)
	}
	if f.loop.Score() != 1 {
		t.Errorf("score = %d, expected 1", f.loop.Score())
	}
	if f.loop.State() != StateActive {
		t.Error("goal pass must keep the run active")
	}
	if last := f.display.scores[len(f.display.scores)-1]; last != 1 {
		t.Errorf("display shows %d, expected 1", last)
	}
	if len(f.events) != 1 {
		t.Fatalf("events = %d, expected 1", len(f.events))
	}
	if e, ok := f.events[0].(ScoreEvent); !ok || e.Score != 1 {
		t.Errorf("event = %#v, expected ScoreEvent{1}", f.events[0])
	}
}

func TestTerminalCollisionEndsRunOnce(t *testing.T) {
	f := newLoopFixture(t)

	got := f.loop.OnCollision(&Entity{Tag: TagGround}, f.body.Entity())
	if got != ContactTerminal {
		t.Errorf("contact = %s, expected terminal", got)
	}
	if f.loop.State() != StateGameOver {
		t.Fatalf("state = %s, expected game over", f.loop.State())
	}
	if f.body.stops != 1 {
		t.Errorf("StopAnimation calls = %d, expected 1", f.body.stops)
	}
	if f.display.restartEnables() != 1 {
		t.Errorf("restart enables = %d, expected 1", f.display.restartEnables())
	}

	// A second hit changes nothing.
	f.loop.OnCollision(f.body.Entity(), &Entity{Tag: TagObstacle})
	if f.body.stops != 1 || f.display.restartEnables() != 1 {
		t.Errorf("second terminal contact produced duplicate notifications: stops=%d enables=%d",
			f.body.stops, f.display.restartEnables())
	}

	gameOvers := 0
	for _, e := range f.events {
		if ev, ok := e.(GameOverEvent); ok {
			gameOvers++
			if ev.Other != TagGround {
				t.Errorf("game over reports hit %s, expected ground", ev.Other)
			}
		}
	}
	if gameOvers != 1 {
		t.Errorf("GameOverEvent emitted %d times, expected 1", gameOvers)
	}
}

func TestGoalStillScoresAfterGameOver(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.OnCollision(&Entity{Tag: TagObstacle}, f.body.Entity())

	f.loop.OnCollision(&Entity{Tag: TagGoal}, f.body.Entity())

	if f.loop.Score() != 1 {
		t.Errorf("score = %d, expected goal to count after game over", f.loop.Score())
	}
	if f.loop.State() != StateGameOver {
		t.Error("scoring must not revive the run")
	}
}

func TestOnCollisionNilEntityIgnored(t *testing.T) {
	f := newLoopFixture(t)
	if got := f.loop.OnCollision(nil, f.body.Entity()); got != ContactIgnore {
		t.Errorf("contact = %s, expected ignore", got)
	}
	if f.loop.State() != StateActive {
		t.Error("nil contact must not end the run")
	}
}

func TestTickFrozenAfterGameOver(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Tick(1)
	f.loop.OnCollision(&Entity{Tag: TagGround}, f.body.Entity())

	timer := f.loop.SpawnTimer()
	bgOffset := f.loop.Background().Offset()
	obOffset := f.loop.Obstacles().Offset()
	f.body.vel = Vec{Y: 1000}

	for i := 0; i < 200; i++ {
		f.loop.Tick(FixedDelta)
	}

	if f.loop.SpawnTimer() != timer {
		t.Errorf("spawn timer advanced during game over: %v -> %v", timer, f.loop.SpawnTimer())
	}
	if f.loop.Background().Offset() != bgOffset || f.loop.Obstacles().Offset() != obOffset {
		t.Error("world scrolled during game over")
	}
	if f.body.vel.Y != 1000 {
		t.Error("velocity cap applied during game over")
	}
	if len(f.scene.spawned) != 0 {
		t.Errorf("spawned %d obstacles during game over", len(f.scene.spawned))
	}
}

func TestSpawnAtExactlyInterval(t *testing.T) {
	f := newLoopFixture(t)

	f.loop.Tick(1.5)
	if len(f.scene.spawned) != 0 {
		t.Fatal("spawn must wait for the accumulated time to be checked on the next tick")
	}
	if f.loop.SpawnTimer() != 1.5 {
		t.Fatalf("spawn timer = %v, expected 1.5", f.loop.SpawnTimer())
	}

	f.loop.Tick(0)
	if len(f.scene.spawned) != 1 {
		t.Fatalf("spawned %d obstacles, expected 1", len(f.scene.spawned))
	}
	if f.loop.SpawnTimer() != 0 {
		t.Errorf("spawn timer after spawn = %v, expected 0", f.loop.SpawnTimer())
	}

	pos := f.scene.spawned[0].ViewportPos()
	if pos.X != 347 || pos.Y < 234 || pos.Y > 382 {
		t.Errorf("spawned at %v, expected x=347 and y in [234, 382]", pos)
	}
}

func TestTickZeroIsIdempotent(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.Tick(0.7)

	bg := f.loop.Background()
	tiles := bg.Tiles()
	before := []Vec{bg.ViewportPos(tiles[0]), bg.ViewportPos(tiles[1])}
	timer := f.loop.SpawnTimer()

	for i := 0; i < 50; i++ {
		f.loop.Tick(0)
	}

	for i, tile := range tiles {
		if bg.ViewportPos(tile) != before[i] {
			t.Errorf("tile %d moved on zero ticks", i)
		}
	}
	if f.loop.SpawnTimer() != timer {
		t.Errorf("spawn timer changed on zero ticks: %v -> %v", timer, f.loop.SpawnTimer())
	}
	if len(f.scene.spawned) != 0 {
		t.Errorf("zero ticks spawned %d obstacles", len(f.scene.spawned))
	}
}

func TestFixedRateRunLifecycle(t *testing.T) {
	f := newLoopFixture(t)

	// Ten seconds at 60 FPS.
	for i := 0; i < 600; i++ {
		f.loop.Tick(FixedDelta)
	}

	if len(f.scene.spawned) != 6 {
		t.Errorf("spawned %d obstacles in 10s, expected 6", len(f.scene.spawned))
	}
	if len(f.scene.removed) != 4 {
		t.Errorf("removed %d obstacles, expected 4", len(f.scene.removed))
	}
	if live := len(f.loop.Obstacles().Obstacles()); live+len(f.scene.removed) != len(f.scene.spawned) {
		t.Errorf("live %d + removed %d != spawned %d", live, len(f.scene.removed), len(f.scene.spawned))
	}
	for _, o := range f.loop.Obstacles().Obstacles() {
		if o.Removed() {
			t.Error("a removed obstacle is still live")
		}
	}
}

func TestRequestRestart(t *testing.T) {
	f := newLoopFixture(t)

	if f.loop.RequestRestart() {
		t.Error("restart must not be possible while active")
	}

	f.loop.OnCollision(&Entity{Tag: TagGoal}, f.body.Entity())
	f.loop.OnCollision(&Entity{Tag: TagGround}, f.body.Entity())
	if !f.loop.RequestRestart() {
		t.Fatal("restart should be accepted after game over")
	}

	last, ok := f.events[len(f.events)-1].(RestartEvent)
	if !ok {
		t.Fatalf("last event = %#v, expected RestartEvent", f.events[len(f.events)-1])
	}
	if last.Score != 1 {
		t.Errorf("restart event score = %d, expected 1", last.Score)
	}
}
