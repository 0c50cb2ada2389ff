// Package hoppy implements the per-frame core of an endless side-scroller:
// a recycled background tile pool, a timed obstacle spawner, contact
// classification and the Active/GameOver state machine.
//
// The package does no rendering, timing or physics integration. A host drives
// GameLoop.Tick at a fixed rate, forwards input and contact events, and
// carries out the intents the loop issues through the Body, Scene and Display
// collaborators.
//
// Coordinates are y-up, with the viewport spanning [0, width] x [0, height]
// and entity positions marking the entity center.
package hoppy

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Tag is the category of an entity, used to classify contacts.
type Tag uint8

const (
	TagNone Tag = iota
	TagGround
	TagObstacle
	TagGoal
	TagPlayer
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagGround:
		return "ground"
	case TagObstacle:
		return "obstacle"
	case TagGoal:
		return "goal"
	case TagPlayer:
		return "player"
	default:
		return "none"
	}
}

// Entity is a positioned, sized object with a category tag.
// Pos is relative to whatever contains the entity (a layer, or an obstacle).
type Entity struct {
	Tag  Tag
	Pos  Vec
	Size Vec
}

// HalfWidth returns half the entity width.
func (e *Entity) HalfWidth() float64 {
	return e.Size.X / 2
}

// Layer is a container whose children are positioned relative to Offset.
// Scrolling moves the layer, not the children.
type Layer struct {
	Offset Vec
}

// ToViewport converts a layer-local point to viewport coordinates.
func (l *Layer) ToViewport(p Vec) Vec {
	return p.Add(l.Offset)
}

// FromViewport converts a viewport point to layer-local coordinates.
func (l *Layer) FromViewport(p Vec) Vec {
	return p.Sub(l.Offset)
}
