// Package physics is a small physics engine for the game host: it integrates
// the player under gravity, keeps static bodies in sync with the scrolling
// layers and reports the first touch between the player and any other body.
package physics

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-hoppy/internal/hoppy"
)

// contactSkin pads the player's broadphase box so that boxes sharing only
// an edge still land in a common cell.
const contactSkin = 1.0

// ContactFunc receives the two entities of a new contact.
type ContactFunc func(a, b *hoppy.Entity)

// Config sizes the world.
type Config struct {
	Width, Height float64 // Viewport size
	Gravity       float64 // Downward acceleration
	Floor         float64 // Lowest y the player's bottom edge can reach
	Margin        float64 // Tracked area beyond each viewport edge
	CellSize      int     // Broadphase cell size
}

type staticBody struct {
	entity *hoppy.Entity
	locate func() hoppy.Vec
	obj    *resolv.Object
}

// World holds the player body and static bodies. It implements hoppy.Scene
// so the obstacle spawner can add and remove obstacle pieces.
type World struct {
	cfg       Config
	space     *resolv.Space
	player    *PlayerBody
	statics   []*staticBody
	owners    map[*resolv.Object]*hoppy.Entity
	touching  map[*resolv.Object]bool
	onContact ContactFunc
	logger    *log.Logger
}

// NewWorld creates an empty world.
func NewWorld(cfg Config) *World {
	if cfg.Margin <= 0 {
		cfg.Margin = 256
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = 32
	}
	w := int(math.Ceil(cfg.Width + 2*cfg.Margin))
	h := int(math.Ceil(cfg.Height + 2*cfg.Margin))

	return &World{
		cfg:      cfg,
		space:    resolv.NewSpace(w, h, cfg.CellSize, cfg.CellSize),
		owners:   make(map[*resolv.Object]*hoppy.Entity),
		touching: make(map[*resolv.Object]bool),
		logger:   log.New(io.Discard),
	}
}

// SetLogger replaces the world's logger.
func (w *World) SetLogger(l *log.Logger) {
	if l != nil {
		w.logger = l
	}
}

// OnContact registers the contact callback.
func (w *World) OnContact(fn ContactFunc) {
	w.onContact = fn
}

// SetPlayer installs the player body.
func (w *World) SetPlayer(p *PlayerBody) {
	if w.player != nil {
		w.space.Remove(w.player.obj)
		delete(w.owners, w.player.obj)
	}
	w.player = p
	w.owners[p.obj] = p.entity
	w.space.Add(p.obj)
	w.placePlayer()
}

// AddStatic adds a body for e. locate returns the entity center in viewport
// coordinates and is called every step.
func (w *World) AddStatic(e *hoppy.Entity, locate func() hoppy.Vec) {
	obj := resolv.NewObject(0, 0, e.Size.X, e.Size.Y, e.Tag.String())
	w.owners[obj] = e
	w.space.Add(obj)
	w.place(obj, locate(), e.Size)
	w.statics = append(w.statics, &staticBody{entity: e, locate: locate, obj: obj})
}

// RemoveStatic removes the body for e, if any.
func (w *World) RemoveStatic(e *hoppy.Entity) {
	for i, s := range w.statics {
		if s.entity != e {
			continue
		}
		w.space.Remove(s.obj)
		delete(w.touching, s.obj)
		delete(w.owners, s.obj)
		w.statics = append(w.statics[:i], w.statics[i+1:]...)
		return
	}
}

// Spawn adds bodies for every piece of a new obstacle.
func (w *World) Spawn(o *hoppy.Obstacle) {
	for _, piece := range o.Pieces() {
		piece := piece
		w.AddStatic(piece, func() hoppy.Vec { return o.PieceViewportPos(piece) })
	}
}

// Remove deletes the bodies of an obstacle.
func (w *World) Remove(o *hoppy.Obstacle) {
	for _, piece := range o.Pieces() {
		w.RemoveStatic(piece)
	}
}

// Bodies returns the number of static bodies.
func (w *World) Bodies() int {
	return len(w.statics)
}

// Step integrates the player, syncs static bodies and reports new contacts.
func (w *World) Step(dt float64) {
	if w.player != nil {
		w.player.integrate(dt, w.cfg.Gravity, w.cfg.Floor)
		w.placePlayer()
	}
	for _, s := range w.statics {
		w.place(s.obj, s.locate(), s.entity.Size)
	}
	w.detectContacts()
}

// place sizes obj and positions it so that its center is at the viewport
// point center.
func (w *World) place(obj *resolv.Object, center, size hoppy.Vec) {
	obj.W, obj.H = size.X, size.Y
	obj.X = center.X - size.X/2 + w.cfg.Margin
	obj.Y = center.Y - size.Y/2 + w.cfg.Margin
	obj.Update()
}

func (w *World) placePlayer() {
	e := w.player.entity
	w.place(w.player.obj, e.Pos, e.Size.Add(hoppy.Vec{X: 2 * contactSkin, Y: 2 * contactSkin}))
}

func (w *World) detectContacts() {
	if w.player == nil {
		return
	}
	p := w.player.obj

	now := make(map[*resolv.Object]bool, len(w.touching))
	if check := p.Check(0, 0); check != nil {
		for _, o := range check.Objects {
			if o == p || now[o] || !touches(p, o, contactSkin) {
				continue
			}
			now[o] = true
			if w.touching[o] {
				continue
			}
			other, ok := w.owners[o]
			if !ok {
				continue
			}
			w.logger.Debug("contact", "with", other.Tag, "x", o.X-w.cfg.Margin, "y", o.Y-w.cfg.Margin)
			if w.onContact != nil {
				w.onContact(w.player.entity, other)
			}
		}
	}
	w.touching = now
}

// touches reports whether a, shrunk by inset on every side, overlaps or
// shares an edge with b.
func touches(a, b *resolv.Object, inset float64) bool {
	ax, ay := a.X+inset, a.Y+inset
	aw, ah := a.W-2*inset, a.H-2*inset
	return ax <= b.X+b.W && b.X <= ax+aw &&
		ay <= b.Y+b.H && b.Y <= ay+ah
}
