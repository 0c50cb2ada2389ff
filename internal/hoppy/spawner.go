package hoppy

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// RandSource supplies uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Scene receives spawn and removal intents for obstacles. It is typically the
// physics world, which creates and destroys the bodies behind each piece.
type Scene interface {
	Spawn(o *Obstacle)
	Remove(o *Obstacle)
}

// SpawnerConfig holds the obstacle timing and placement rules.
type SpawnerConfig struct {
	Speed         float64 // Scroll speed in units per second
	Interval      float64 // Seconds between spawns
	SpawnX        float64 // Viewport x of new obstacles
	MinY, MaxY    float64 // Vertical band for the gap center
	ExitThreshold float64 // Obstacles at viewport x <= -ExitThreshold are removed
}

// Validate checks the spawner rules for consistency.
func (c SpawnerConfig) Validate() error {
	switch {
	case c.Speed <= 0:
		return fmt.Errorf("scroll speed must be positive, got %v", c.Speed)
	case c.Interval <= 0:
		return fmt.Errorf("spawn interval must be positive, got %v", c.Interval)
	case c.MinY > c.MaxY:
		return fmt.Errorf("spawn band [%v, %v] is inverted", c.MinY, c.MaxY)
	case c.ExitThreshold < 0:
		return fmt.Errorf("exit threshold must not be negative, got %v", c.ExitThreshold)
	}
	return nil
}

// ObstacleSpawner scrolls live obstacles, removes those that left the
// viewport and clones new ones from a template on a timer.
//
// The spawn timer itself is owned by GameLoop; Update only reads it.
type ObstacleSpawner struct {
	cfg       SpawnerConfig
	template  Template
	layer     Layer
	obstacles []*Obstacle
	rng       RandSource
	scene     Scene
	logger    *log.Logger
}

// NewObstacleSpawner creates a spawner. The scene may be nil when no engine
// needs to be told about spawns, as in tests.
func NewObstacleSpawner(cfg SpawnerConfig, tmpl Template, rng RandSource, scene Scene) (*ObstacleSpawner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("spawner needs a random source")
	}

	return &ObstacleSpawner{
		cfg:       cfg,
		template:  tmpl,
		obstacles: make([]*Obstacle, 0, 8),
		rng:       rng,
		scene:     scene,
		logger:    discardLogger,
	}, nil
}

// SetLogger replaces the spawner's logger.
func (s *ObstacleSpawner) SetLogger(l *log.Logger) {
	if l != nil {
		s.logger = l
	}
}

// Update scrolls the obstacle layer, destroys obstacles past the exit
// threshold and spawns a new obstacle when elapsed has reached the interval.
// It reports whether a spawn happened so the owner can reset its timer.
func (s *ObstacleSpawner) Update(dt, elapsed float64) bool {
	s.layer.Offset.X -= s.cfg.Speed * dt

	live := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.ViewportPos().X <= -s.cfg.ExitThreshold {
			s.destroy(o)
			continue
		}
		live = append(live, o)
	}
	// Nil out the tail so removed obstacles are not retained.
	for i := len(live); i < len(s.obstacles); i++ {
		s.obstacles[i] = nil
	}
	s.obstacles = live

	if elapsed < s.cfg.Interval {
		return false
	}
	s.spawn()
	return true
}

func (s *ObstacleSpawner) spawn() {
	o := s.template.Clone()
	o.layer = &s.layer

	y := s.cfg.MinY + s.rng.Float64()*(s.cfg.MaxY-s.cfg.MinY)
	o.Pos = s.layer.FromViewport(Vec{X: s.cfg.SpawnX, Y: y})

	s.obstacles = append(s.obstacles, o)
	if s.scene != nil {
		s.scene.Spawn(o)
	}
	s.logger.Debug("obstacle spawned", "x", s.cfg.SpawnX, "y", y, "live", len(s.obstacles))
}

func (s *ObstacleSpawner) destroy(o *Obstacle) {
	o.removed = true
	if s.scene != nil {
		s.scene.Remove(o)
	}
	s.logger.Debug("obstacle removed", "x", o.ViewportPos().X)
}

// Obstacles returns the live obstacles, oldest first.
func (s *ObstacleSpawner) Obstacles() []*Obstacle {
	return s.obstacles
}

// Offset returns the current layer offset.
func (s *ObstacleSpawner) Offset() Vec {
	return s.layer.Offset
}
