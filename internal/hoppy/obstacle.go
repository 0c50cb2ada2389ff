package hoppy

import "fmt"

// Obstacle is a pair of barriers with a goal sensor in the gap between them.
// The obstacle's own Entity is the anchor at the gap center; piece positions
// are relative to it.
type Obstacle struct {
	Entity

	Top    *Entity
	Bottom *Entity
	Goal   *Entity

	layer   *Layer
	removed bool
}

// Pieces returns the physical parts of the obstacle.
func (o *Obstacle) Pieces() []*Entity {
	return []*Entity{o.Top, o.Bottom, o.Goal}
}

// ViewportPos returns the anchor position in viewport coordinates.
func (o *Obstacle) ViewportPos() Vec {
	if o.layer == nil {
		return o.Pos
	}
	return o.layer.ToViewport(o.Pos)
}

// PieceViewportPos returns the center of one of the obstacle's pieces in
// viewport coordinates.
func (o *Obstacle) PieceViewportPos(p *Entity) Vec {
	return o.ViewportPos().Add(p.Pos)
}

// Removed reports whether the spawner has destroyed this obstacle.
func (o *Obstacle) Removed() bool {
	return o.removed
}

// Template is the prototype every spawned obstacle is cloned from.
type Template struct {
	Width         float64 // Barrier and anchor width
	GapHeight     float64 // Vertical size of the passable gap
	BarrierHeight float64 // Height of each barrier piece
	GoalWidth     float64 // Width of the goal sensor inside the gap
}

// Validate checks that every dimension is positive.
func (t Template) Validate() error {
	switch {
	case t.Width <= 0:
		return fmt.Errorf("obstacle width must be positive, got %v", t.Width)
	case t.GapHeight <= 0:
		return fmt.Errorf("obstacle gap must be positive, got %v", t.GapHeight)
	case t.BarrierHeight <= 0:
		return fmt.Errorf("obstacle barrier height must be positive, got %v", t.BarrierHeight)
	case t.GoalWidth <= 0:
		return fmt.Errorf("obstacle goal width must be positive, got %v", t.GoalWidth)
	}
	return nil
}

// Clone creates a fresh obstacle with the template's structure, anchored at
// the layer-local origin.
func (t Template) Clone() *Obstacle {
	offset := t.GapHeight/2 + t.BarrierHeight/2
	return &Obstacle{
		Entity: Entity{Tag: TagObstacle, Size: Vec{X: t.Width, Y: t.GapHeight + 2*t.BarrierHeight}},
		Top: &Entity{
			Tag:  TagObstacle,
			Pos:  Vec{Y: offset},
			Size: Vec{X: t.Width, Y: t.BarrierHeight},
		},
		Bottom: &Entity{
			Tag:  TagObstacle,
			Pos:  Vec{Y: -offset},
			Size: Vec{X: t.Width, Y: t.BarrierHeight},
		},
		Goal: &Entity{
			Tag:  TagGoal,
			Size: Vec{X: t.GoalWidth, Y: t.GapHeight},
		},
	}
}
