// Package physics implements a fixed-pipeline 2D pass over entities carrying
// a Body and a CircleCollider: integration with damping and speed ceilings,
// bounds resolution with a minimum-bounce floor, and O(n²) pairwise impulse
// resolution with positional correction. Physics is opt-in per entity; run
// the System as a scene pre-step so integration completes before any
// component update reads positions.
package physics

import (
	"math"

	"github.com/plus3/pyre/engine"
	"github.com/plus3/pyre/gmath"
)

const (
	// minMass floors body mass so inverse mass never divides by zero.
	minMass = 1e-6

	// MaxFallSpeed caps vertical speed, preventing runaway velocities from
	// discrete-time instability.
	MaxFallSpeed = 1800.0

	// MaxAngularSpeed caps angular velocity in radians per second.
	MaxAngularSpeed = 50.0

	// MinBounceSpeed is the post-reflection speed floor at a bound. A body
	// slower than this after a bounce is pushed away at this magnitude so it
	// cannot stick against a wall at near-zero velocity.
	MinBounceSpeed = 5.0
)

// Body holds linear and angular motion state for a physics-driven entity.
// It is a pure data component: all behavior lives in System.
type Body struct {
	engine.BaseComponent

	VX, VY          float64
	AngularVelocity float64
	Mass            float64
	Restitution     float64
	LinearDamping   float64
	AngularDamping  float64
	Immovable       bool
}

// NewBody creates a body with the given mass (floored above zero) and
// restitution (clamped to [0, 1]).
func NewBody(mass, restitution float64) *Body {
	return &Body{
		Mass:        math.Max(mass, minMass),
		Restitution: gmath.Clamp(restitution, 0, 1),
	}
}

// SetDamping sets linear and angular damping, clamped to be non-negative.
func (b *Body) SetDamping(linear, angular float64) *Body {
	b.LinearDamping = math.Max(linear, 0)
	b.AngularDamping = math.Max(angular, 0)
	return b
}

// InvMass returns the inverse mass used for impulse and correction splits.
// Immovable bodies contribute zero and are never moved by resolution.
func (b *Body) InvMass() float64 {
	if b.Immovable {
		return 0
	}
	return 1 / b.Mass
}

// CircleCollider gives an entity a circular collision shape. It is a pure
// data component read by System.
type CircleCollider struct {
	engine.BaseComponent

	Radius float64

	// IsTrigger colliders report contacts but receive no impulse response.
	IsTrigger bool

	// Bounciness scales the body's restitution for this collider, in [0, 1].
	Bounciness float64

	// Friction is the tangential friction coefficient, in [0, 1].
	Friction float64

	// CollideWithBounds enrolls the entity in the physics pass. Entities with
	// it unset are ignored entirely.
	CollideWithBounds bool
}

// NewCircleCollider creates a collider with the given radius, full bounciness,
// no friction, and bounds collision enabled.
func NewCircleCollider(radius float64) *CircleCollider {
	return &CircleCollider{
		Radius:            radius,
		Bounciness:        1,
		CollideWithBounds: true,
	}
}

// SetBounciness sets the restitution scale, clamped to [0, 1].
func (c *CircleCollider) SetBounciness(b float64) *CircleCollider {
	c.Bounciness = gmath.Clamp(b, 0, 1)
	return c
}

// SetFriction sets the friction coefficient, clamped to [0, 1].
func (c *CircleCollider) SetFriction(f float64) *CircleCollider {
	c.Friction = gmath.Clamp(f, 0, 1)
	return c
}
