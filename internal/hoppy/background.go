package hoppy

import (
	"errors"
	"fmt"
)

// ErrNoTiles is returned when a background is built without tiles.
var ErrNoTiles = errors.New("background has no tiles")

// ScrollingBackground scrolls a fixed pool of tiles leftward and moves each
// tile that leaves the viewport back in on the right.
type ScrollingBackground struct {
	layer     Layer
	tiles     []*Entity
	speed     float64
	viewportW float64
}

// NewScrollingBackground builds a background over the given tile pool.
// Tile positions are layer-local; the layer starts at the viewport origin.
func NewScrollingBackground(tiles []*Entity, speed, viewportW float64) (*ScrollingBackground, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	for i, t := range tiles {
		if t == nil {
			return nil, fmt.Errorf("tile %d is nil: %w", i, ErrNoTiles)
		}
		if t.Tag != TagGround {
			return nil, fmt.Errorf("tile %d has tag %s, expected %s", i, t.Tag, TagGround)
		}
		if t.Size.X <= 0 {
			return nil, fmt.Errorf("tile %d has non-positive width %v", i, t.Size.X)
		}
	}

	return &ScrollingBackground{
		tiles:     tiles,
		speed:     speed,
		viewportW: viewportW,
	}, nil
}

// Update scrolls the layer by speed*dt and recycles every tile whose right
// edge has crossed the left side of the viewport.
func (b *ScrollingBackground) Update(dt float64) {
	b.layer.Offset.X -= b.speed * dt

	for _, tile := range b.tiles {
		pos := b.layer.ToViewport(tile.Pos)
		if pos.X > -tile.HalfWidth() {
			continue
		}
		next := Vec{X: b.viewportW/2 + tile.Size.X, Y: pos.Y}
		tile.Pos = b.layer.FromViewport(next)
	}
}

// Tiles returns the tile pool. Callers must not modify the entities.
func (b *ScrollingBackground) Tiles() []*Entity {
	return b.tiles
}

// ViewportPos returns the tile's center in viewport coordinates.
func (b *ScrollingBackground) ViewportPos(tile *Entity) Vec {
	return b.layer.ToViewport(tile.Pos)
}

// Offset returns the current layer offset.
func (b *ScrollingBackground) Offset() Vec {
	return b.layer.Offset
}
