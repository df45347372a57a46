package physics

import (
	"math"

	"github.com/plus3/pyre/engine"
	"github.com/plus3/pyre/gmath"
)

type entry struct {
	entity   *engine.Entity
	body     *Body
	collider *CircleCollider
}

// System runs the physics pass over one scene. Register Step as a scene
// pre-step so the whole pass completes before any per-entity update reads a
// transform. Pairwise resolution is O(n²) with no broad phase, which is fine
// for the tens of collidable bodies this targets.
type System struct {
	Gravity gmath.Vec2
	Bounds  gmath.Rect

	// OnContact fires for overlapping pairs where at least one collider is a
	// trigger. Trigger pairs receive no impulse or correction.
	OnContact func(a, b *engine.Entity)

	// collected is scratch reused across frames to avoid per-frame allocation.
	collected []entry
}

// NewSystem creates a physics system with the given gravity and world bounds.
func NewSystem(gravity gmath.Vec2, bounds gmath.Rect) *System {
	return &System{Gravity: gravity, Bounds: bounds}
}

// BodyCount returns the number of entities collected in the last pass.
func (s *System) BodyCount() int { return len(s.collected) }

// Step runs the full pipeline for one frame: collect, integrate, bounds
// resolution, pairwise resolution.
func (s *System) Step(frame *engine.UpdateFrame) {
	dt := frame.DeltaTime
	s.collect(frame.Scene)
	s.integrate(dt)
	s.resolveBounds()
	s.resolvePairs()
}

// collect gathers active entities enrolled for physics. Enrollment is opt-in
// through a CircleCollider with CollideWithBounds set; an enrolled entity
// without a Body is a configuration error and fails fast via Require, so the
// hot loops below need no existence re-checks.
func (s *System) collect(scene *engine.Scene) {
	s.collected = s.collected[:0]
	for _, e := range scene.Entities() {
		if !e.Active {
			continue
		}
		collider, ok := engine.Get[*CircleCollider](e)
		if !ok || !collider.CollideWithBounds {
			continue
		}
		body := engine.Require[*Body](e)
		s.collected = append(s.collected, entry{entity: e, body: body, collider: collider})
	}
}

// integrate accumulates gravity, applies damping, clamps to the speed
// ceilings, and advances position and rotation. Immovable bodies never move.
func (s *System) integrate(dt float64) {
	for i := range s.collected {
		en := &s.collected[i]
		b := en.body
		if b.Immovable {
			continue
		}

		b.VX += s.Gravity.X * dt
		b.VY += s.Gravity.Y * dt

		linear := math.Max(0, 1-b.LinearDamping*dt)
		b.VX *= linear
		b.VY *= linear
		b.AngularVelocity *= math.Max(0, 1-b.AngularDamping*dt)

		b.VY = gmath.Clamp(b.VY, -MaxFallSpeed, MaxFallSpeed)
		b.AngularVelocity = gmath.Clamp(b.AngularVelocity, -MaxAngularSpeed, MaxAngularSpeed)

		e := en.entity
		e.X += b.VX * dt
		e.Y += b.VY * dt
		e.Rotation += b.AngularVelocity * dt
	}
}

// resolveBounds clamps each circle inside the world bounds axis by axis,
// reflecting the into-the-wall velocity component scaled by the effective
// restitution.
func (s *System) resolveBounds() {
	for i := range s.collected {
		en := &s.collected[i]
		e, b, c := en.entity, en.body, en.collider

		k := c.Bounciness * b.Restitution
		minX, maxX := s.Bounds.X+c.Radius, s.Bounds.MaxX()-c.Radius
		minY, maxY := s.Bounds.Y+c.Radius, s.Bounds.MaxY()-c.Radius

		if e.X < minX {
			e.X = minX
			if !b.Immovable && b.VX < 0 {
				b.VX = bounce(b.VX, k, 1)
			}
		} else if e.X > maxX {
			e.X = maxX
			if !b.Immovable && b.VX > 0 {
				b.VX = bounce(b.VX, k, -1)
			}
		}

		if e.Y < minY {
			e.Y = minY
			if !b.Immovable && b.VY < 0 {
				b.VY = bounce(b.VY, k, 1)
			}
		} else if e.Y > maxY {
			e.Y = maxY
			if !b.Immovable && b.VY > 0 {
				b.VY = bounce(b.VY, k, -1)
			}
		}
	}
}

// bounce reflects a wall-bound velocity component. If the reflected speed
// falls under MinBounceSpeed it is forced to that magnitude away from the
// wall, so bodies never stick at near-zero velocity against a bound.
func bounce(v, restitution, away float64) float64 {
	out := -v * restitution
	if math.Abs(out) < MinBounceSpeed {
		out = math.Copysign(MinBounceSpeed, away)
	}
	return out
}

// resolvePairs scans all collected pairs, applying positional correction
// split by inverse mass, a normal impulse bounded by the minimum effective
// restitution of the pair, and a tangential friction impulse bounded by the
// minimum friction coefficient.
func (s *System) resolvePairs() {
	for i := 0; i < len(s.collected); i++ {
		for j := i + 1; j < len(s.collected); j++ {
			a, b := &s.collected[i], &s.collected[j]

			dx := b.entity.X - a.entity.X
			dy := b.entity.Y - a.entity.Y
			rsum := a.collider.Radius + b.collider.Radius
			distSq := dx*dx + dy*dy
			if distSq >= rsum*rsum {
				continue
			}

			if a.collider.IsTrigger || b.collider.IsTrigger {
				if s.OnContact != nil {
					s.OnContact(a.entity, b.entity)
				}
				continue
			}

			invA, invB := a.body.InvMass(), b.body.InvMass()
			invSum := invA + invB
			if invSum <= 0 {
				continue
			}

			var nx, ny, penetration float64
			dist := math.Sqrt(distSq)
			if dist < 1e-9 {
				// Coincident centers: separate along x rather than divide by zero.
				nx, ny = 1, 0
				penetration = rsum
			} else {
				nx, ny = dx/dist, dy/dist
				penetration = rsum - dist
			}

			corrA := penetration * invA / invSum
			corrB := penetration * invB / invSum
			a.entity.X -= nx * corrA
			a.entity.Y -= ny * corrA
			b.entity.X += nx * corrB
			b.entity.Y += ny * corrB

			rvx := b.body.VX - a.body.VX
			rvy := b.body.VY - a.body.VY
			velAlongNormal := rvx*nx + rvy*ny
			if velAlongNormal >= 0 {
				// Already separating, no impulse.
				continue
			}

			e := math.Min(a.collider.Bounciness*a.body.Restitution, b.collider.Bounciness*b.body.Restitution)
			jn := -(1 + e) * velAlongNormal / invSum
			a.body.VX -= jn * nx * invA
			a.body.VY -= jn * ny * invA
			b.body.VX += jn * nx * invB
			b.body.VY += jn * ny * invB

			rvx = b.body.VX - a.body.VX
			rvy = b.body.VY - a.body.VY
			along := rvx*nx + rvy*ny
			tx := rvx - along*nx
			ty := rvy - along*ny
			tLen := math.Sqrt(tx*tx + ty*ty)
			if tLen < 1e-9 {
				continue
			}
			tx /= tLen
			ty /= tLen

			mu := math.Min(a.collider.Friction, b.collider.Friction)
			jt := gmath.Clamp(-(rvx*tx+rvy*ty)/invSum, -jn*mu, jn*mu)
			a.body.VX -= jt * tx * invA
			a.body.VY -= jt * ty * invA
			b.body.VX += jt * tx * invB
			b.body.VY += jt * ty * invB
		}
	}
}
