// Package motion holds the two per-frame effect state machines: rotation and
// bounce. Both are advanced once per tick and never block.
package motion

import (
	"math/rand"

	"github.com/iburimskiy/pulse-heart/internal/config"
)

// Vec is a 2D position or velocity in canvas pixels.
type Vec struct {
	X, Y float64
}

// Rotation accumulates one degree per frame while enabled. The angle is
// unbounded; consumers take it modulo 360.
type Rotation struct {
	Enabled bool
	Angle   float64
	Step    float64
}

// NewRotation returns a disabled rotation at angle 0.
func NewRotation() *Rotation {
	return &Rotation{Step: config.RotationStep}
}

// Toggle flips the enabled state and reports the new state.
func (r *Rotation) Toggle() bool {
	r.Enabled = !r.Enabled
	return r.Enabled
}

// Update advances the angle when enabled and returns it.
func (r *Rotation) Update() float64 {
	if r.Enabled {
		r.Angle += r.Step
	}
	return r.Angle
}

// Applied is the rotation to apply to this frame's transform: the accumulated
// angle while enabled, none while disabled.
func (r *Rotation) Applied() float64 {
	if !r.Enabled {
		return 0
	}
	return r.Angle
}

// Bounce moves the shape around the canvas, reflecting off the walls. While
// disabled the shape is pinned to the canvas center.
type Bounce struct {
	Enabled  bool
	Position Vec
	Velocity Vec

	rng *rand.Rand
}

// NewBounce returns a disabled bounce centered on a width x height canvas,
// with a positive random velocity on both axes.
func NewBounce(width, height float64, rng *rand.Rand) *Bounce {
	b := &Bounce{rng: rng}
	b.Position = Vec{X: width / 2, Y: height / 2}
	b.Velocity = Vec{X: b.speed(), Y: b.speed()}
	return b
}

// Toggle flips the enabled state. Turning bounce on reseeds the velocity with
// a random speed and a random direction on each axis.
func (b *Bounce) Toggle() bool {
	b.Enabled = !b.Enabled
	if b.Enabled {
		b.Velocity = Vec{X: b.speed() * b.sign(), Y: b.speed() * b.sign()}
	}
	return b.Enabled
}

// Update advances one frame on a width x height canvas for a shape of the
// given size and returns the new position.
func (b *Bounce) Update(width, height, shapeSize float64) Vec {
	if !b.Enabled {
		b.Position = Vec{X: width / 2, Y: height / 2}
		return b.Position
	}

	b.Position.X += b.Velocity.X
	b.Position.Y += b.Velocity.Y

	half := shapeSize / 2
	if b.Position.X+half > width || b.Position.X-half < 0 {
		b.Velocity.X = -b.Velocity.X
	}
	if b.Position.Y+half > height || b.Position.Y-half < 0 {
		b.Velocity.Y = -b.Velocity.Y
	}
	return b.Position
}

// speed is uniform in [BounceMinSpeed, BounceMaxSpeed).
func (b *Bounce) speed() float64 {
	return config.BounceMinSpeed + b.rng.Float64()*(config.BounceMaxSpeed-config.BounceMinSpeed)
}

func (b *Bounce) sign() float64 {
	if b.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}

// State is the complete motion state owned by the frame orchestrator.
type State struct {
	Rotation *Rotation
	Bounce   *Bounce
}

// NewState returns both effects disabled, centered on the canvas.
func NewState(width, height float64, rng *rand.Rand) *State {
	return &State{
		Rotation: NewRotation(),
		Bounce:   NewBounce(width, height, rng),
	}
}
