package config

import (
	_ "embed"
)

//go:embed defaults/hoppy.yaml
var defaultHoppyYAML []byte

// DefaultHoppyConfig returns the built-in tuning. It mirrors
// defaults/hoppy.yaml and is used when the embedded file cannot be parsed.
func DefaultHoppyConfig() HoppyConfig {
	return HoppyConfig{
		Viewport: ViewportConfig{
			Width:  320,
			Height: 568,
		},
		Physics: PhysicsConfig{
			Gravity:      600,
			HopImpulse:   300,
			MaxRiseSpeed: 400,
			PlayerMass:   1,
		},
		Scroll: ScrollConfig{
			Speed: 100,
		},
		Spawner: SpawnerConfig{
			Interval:      1.5,
			SpawnX:        347,
			MinY:          234,
			MaxY:          382,
			ExitThreshold: 26,
		},
		Obstacle: ObstacleConfig{
			Width:         52,
			GapHeight:     110,
			BarrierHeight: 400,
			GoalWidth:     8,
		},
		Ground: GroundConfig{
			Tiles:  2,
			Width:  320,
			Height: 100,
		},
		Player: PlayerConfig{
			X:          80,
			Y:          300,
			Width:      30,
			Height:     30,
			FlapPeriod: 0.25,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHoppyYAML
}
