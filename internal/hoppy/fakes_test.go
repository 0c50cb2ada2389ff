package hoppy

import "math"

type fakeBody struct {
	entity   *Entity
	vel      Vec
	impulses []Vec
	setCalls int
	stops    int
}

func newFakeBody() *fakeBody {
	return &fakeBody{entity: &Entity{Tag: TagPlayer, Pos: Vec{X: 80, Y: 300}, Size: Vec{X: 30, Y: 30}}}
}

func (b *fakeBody) Entity() *Entity { return b.entity }
func (b *fakeBody) Velocity() Vec   { return b.vel }
func (b *fakeBody) SetVelocity(v Vec) {
	b.setCalls++
	b.vel = v
}
func (b *fakeBody) ApplyImpulse(i Vec) {
	b.impulses = append(b.impulses, i)
	b.vel = b.vel.Add(i)
}
func (b *fakeBody) StopAnimation() { b.stops++ }

type fakeDisplay struct {
	scores  []int
	restart []bool
}

func (d *fakeDisplay) ScoreChanged(score int)        { d.scores = append(d.scores, score) }
func (d *fakeDisplay) RestartAvailable(enabled bool) { d.restart = append(d.restart, enabled) }

func (d *fakeDisplay) restartEnables() int {
	n := 0
	for _, e := range d.restart {
		if e {
			n++
		}
	}
	return n
}

type fakeScene struct {
	spawned []*Obstacle
	removed []*Obstacle
}

func (s *fakeScene) Spawn(o *Obstacle)  { s.spawned = append(s.spawned, o) }
func (s *fakeScene) Remove(o *Obstacle) { s.removed = append(s.removed, o) }

// seqRand returns its values in order, repeating the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i]
	if r.i < len(r.vals)-1 {
		r.i++
	}
	return v
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func testTiles() []*Entity {
	return []*Entity{
		{Tag: TagGround, Pos: Vec{X: 160, Y: 50}, Size: Vec{X: 320, Y: 100}},
		{Tag: TagGround, Pos: Vec{X: 480, Y: 50}, Size: Vec{X: 320, Y: 100}},
	}
}

func testSpawnerConfig() SpawnerConfig {
	return SpawnerConfig{
		Speed:         100,
		Interval:      1.5,
		SpawnX:        347,
		MinY:          234,
		MaxY:          382,
		ExitThreshold: 26,
	}
}

func testTemplate() Template {
	return Template{Width: 52, GapHeight: 110, BarrierHeight: 400, GoalWidth: 8}
}
