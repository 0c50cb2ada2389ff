// Package config provides YAML-based tuning for the game, with embedded
// defaults and an optional file watcher for hot reload.
package config

import "fmt"

// HoppyConfig contains all tuning for one run.
type HoppyConfig struct {
	Viewport ViewportConfig `yaml:"viewport"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Scroll   ScrollConfig   `yaml:"scroll"`
	Spawner  SpawnerConfig  `yaml:"spawner"`
	Obstacle ObstacleConfig `yaml:"obstacle"`
	Ground   GroundConfig   `yaml:"ground"`
	Player   PlayerConfig   `yaml:"player"`
}

// ViewportConfig is the size of the visible world.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the forces acting on the player.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	HopImpulse   float64 `yaml:"hop_impulse"`
	MaxRiseSpeed float64 `yaml:"max_rise_speed"`
	PlayerMass   float64 `yaml:"player_mass"`
}

// ScrollConfig defines how fast the world moves left.
type ScrollConfig struct {
	Speed float64 `yaml:"speed"`
}

// SpawnerConfig defines obstacle timing and placement.
type SpawnerConfig struct {
	Interval      float64 `yaml:"interval"`
	SpawnX        float64 `yaml:"spawn_x"`
	MinY          float64 `yaml:"min_y"`
	MaxY          float64 `yaml:"max_y"`
	ExitThreshold float64 `yaml:"exit_threshold"`
}

// ObstacleConfig defines the obstacle prototype.
type ObstacleConfig struct {
	Width         float64 `yaml:"width"`
	GapHeight     float64 `yaml:"gap_height"`
	BarrierHeight float64 `yaml:"barrier_height"`
	GoalWidth     float64 `yaml:"goal_width"`
}

// GroundConfig defines the recycled ground tile pool.
type GroundConfig struct {
	Tiles  int     `yaml:"tiles"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's start position, hitbox and animation.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FlapPeriod float64 `yaml:"flap_period"`
}

// Validate reports the first value that would make the game unplayable.
func (c HoppyConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"viewport.width", c.Viewport.Width},
		{"viewport.height", c.Viewport.Height},
		{"physics.max_rise_speed", c.Physics.MaxRiseSpeed},
		{"physics.player_mass", c.Physics.PlayerMass},
		{"scroll.speed", c.Scroll.Speed},
		{"spawner.interval", c.Spawner.Interval},
		{"obstacle.width", c.Obstacle.Width},
		{"obstacle.gap_height", c.Obstacle.GapHeight},
		{"obstacle.barrier_height", c.Obstacle.BarrierHeight},
		{"obstacle.goal_width", c.Obstacle.GoalWidth},
		{"ground.width", c.Ground.Width},
		{"ground.height", c.Ground.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.flap_period", c.Player.FlapPeriod},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v", p.name, p.val)
		}
	}

	if c.Physics.Gravity < 0 {
		return fmt.Errorf("config: physics.gravity must not be negative, got %v", c.Physics.Gravity)
	}
	if c.Ground.Tiles < 1 {
		return fmt.Errorf("config: ground.tiles must be at least 1, got %d", c.Ground.Tiles)
	}
	if c.Spawner.MinY > c.Spawner.MaxY {
		return fmt.Errorf("config: spawner band [%v, %v] is inverted", c.Spawner.MinY, c.Spawner.MaxY)
	}
	if c.Spawner.ExitThreshold < 0 {
		return fmt.Errorf("config: spawner.exit_threshold must not be negative, got %v", c.Spawner.ExitThreshold)
	}
	return nil
}
