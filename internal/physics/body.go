package physics

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-hoppy/internal/hoppy"
)

// PlayerBody is the dynamic body behind the player entity. It implements
// hoppy.Body.
type PlayerBody struct {
	entity *hoppy.Entity
	vel    hoppy.Vec
	mass   float64
	anim   *Animator
	obj    *resolv.Object
}

// NewPlayerBody wraps the player entity. A nil animator is allowed.
func NewPlayerBody(e *hoppy.Entity, mass float64, anim *Animator) *PlayerBody {
	if mass <= 0 {
		mass = 1
	}
	return &PlayerBody{
		entity: e,
		mass:   mass,
		anim:   anim,
		obj:    resolv.NewObject(0, 0, e.Size.X, e.Size.Y, hoppy.TagPlayer.String()),
	}
}

// Entity returns the player entity.
func (p *PlayerBody) Entity() *hoppy.Entity {
	return p.entity
}

// Velocity returns the current velocity.
func (p *PlayerBody) Velocity() hoppy.Vec {
	return p.vel
}

// SetVelocity overwrites the velocity.
func (p *PlayerBody) SetVelocity(v hoppy.Vec) {
	p.vel = v
}

// ApplyImpulse changes the velocity by impulse/mass.
func (p *PlayerBody) ApplyImpulse(impulse hoppy.Vec) {
	p.vel.X += impulse.X / p.mass
	p.vel.Y += impulse.Y / p.mass
}

// StopAnimation freezes the flap animation.
func (p *PlayerBody) StopAnimation() {
	if p.anim != nil {
		p.anim.Stop()
	}
}

// Animation returns the body's animator, or nil.
func (p *PlayerBody) Animation() *Animator {
	return p.anim
}

func (p *PlayerBody) integrate(dt, gravity, floor float64) {
	p.vel.Y -= gravity * dt
	p.entity.Pos.X += p.vel.X * dt
	p.entity.Pos.Y += p.vel.Y * dt

	// Rest on the floor instead of sinking through it.
	if bottom := p.entity.Pos.Y - p.entity.Size.Y/2; bottom < floor {
		p.entity.Pos.Y = floor + p.entity.Size.Y/2
		if p.vel.Y < 0 {
			p.vel.Y = 0
		}
	}

	if p.anim != nil {
		p.anim.Update(dt)
	}
}
