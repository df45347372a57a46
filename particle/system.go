package particle

import (
	"math"
	"math/rand"
)

const (
	// DefaultMaxParticles is the hard pool cap used when NewSystem is given a
	// non-positive capacity.
	DefaultMaxParticles = 2048

	// initialPoolSize is pre-allocated at construction; the pool then grows
	// lazily up to the cap.
	initialPoolSize = 256

	// msDeltaThreshold guards the update entry point against deltas passed in
	// milliseconds instead of seconds. A real frame delta is clamped well
	// under a second by the driver, so anything above this is rescaled.
	msDeltaThreshold = 1.0

	// minLife keeps a zero-length configured lifespan from producing a
	// divide-by-zero life ratio.
	minLife = 1e-3
)

// EmitConfig describes one emission request. Speed, life, and size are drawn
// uniformly from their [Min, Max] ranges per particle; direction is a random
// sub-angle inside the Spread cone centered on Angle.
type EmitConfig struct {
	X, Y  float64
	Count int

	// Angle is the base direction in radians; Spread the full cone width.
	Angle  float64
	Spread float64

	SpeedMin, SpeedMax float64
	LifeMin, LifeMax   float64
	SizeMin, SizeMax   float64

	Gravity float64

	// Friction is the per-second velocity decay factor. Zero and negative
	// values mean no decay.
	Friction float64

	ScaleSpeedX, ScaleSpeedY float64
	RotationSpeed            float64

	StartColor, EndColor RGB
	StartAlpha, EndAlpha float64
}

// Stats is a snapshot of pool occupancy for debug panels and stress reports.
type Stats struct {
	Active    int
	Pooled    int
	Allocated int
	Capacity  int
}

// System owns the particle pool and active list. Active-list removal swaps
// with the last slot, so particle order is not stable across frames.
type System struct {
	max       int
	pool      []*Particle
	active    []*Particle
	allocated int
}

// NewSystem creates a system with the given hard capacity, pre-allocating an
// initial pool chunk.
func NewSystem(maxParticles int) *System {
	if maxParticles <= 0 {
		maxParticles = DefaultMaxParticles
	}
	s := &System{max: maxParticles}

	n := initialPoolSize
	if n > maxParticles {
		n = maxParticles
	}
	s.pool = make([]*Particle, 0, n)
	for i := 0; i < n; i++ {
		s.pool = append(s.pool, &Particle{})
	}
	s.allocated = n
	return s
}

// Emit issues up to cfg.Count particles and returns how many were actually
// emitted. Once the hard capacity is reached the request is silently
// truncated: effects are cosmetic and degrade under load instead of failing.
func (s *System) Emit(cfg EmitConfig) int {
	for i := 0; i < cfg.Count; i++ {
		p := s.obtain()
		if p == nil {
			return i
		}
		s.initParticle(p, &cfg)
		s.active = append(s.active, p)
	}
	return cfg.Count
}

// obtain reuses a pooled record, growing the pool lazily while under the hard
// cap. Returns nil at capacity.
func (s *System) obtain() *Particle {
	if n := len(s.pool); n > 0 {
		p := s.pool[n-1]
		s.pool = s.pool[:n-1]
		return p
	}
	if s.allocated >= s.max {
		return nil
	}
	s.allocated++
	return &Particle{}
}

// initParticle resets every simulated field of a reused record, including the
// interpolation endpoints.
func (s *System) initParticle(p *Particle, cfg *EmitConfig) {
	angle := cfg.Angle + (rand.Float64()-0.5)*cfg.Spread
	speed := uniform(cfg.SpeedMin, cfg.SpeedMax)
	life := math.Max(uniform(cfg.LifeMin, cfg.LifeMax), minLife)

	friction := cfg.Friction
	if friction <= 0 {
		friction = 1
	}

	p.X, p.Y = cfg.X, cfg.Y
	p.VX = math.Cos(angle) * speed
	p.VY = math.Sin(angle) * speed
	p.Life, p.MaxLife = life, life
	p.Gravity = cfg.Gravity
	p.Friction = friction
	p.Size = uniform(cfg.SizeMin, cfg.SizeMax)
	p.ScaleX, p.ScaleY = 1, 1
	p.ScaleSpeedX, p.ScaleSpeedY = cfg.ScaleSpeedX, cfg.ScaleSpeedY
	p.Rotation = 0
	p.RotationSpeed = cfg.RotationSpeed
	p.StartColor, p.EndColor = cfg.StartColor, cfg.EndColor
	p.StartAlpha, p.EndAlpha = cfg.StartAlpha, cfg.EndAlpha
	p.Alpha = cfg.StartAlpha
	p.Tint = cfg.StartColor.Pack()
	p.active = true
}

func uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rand.Float64()*(hi-lo)
}

// Update advances every active particle by dt seconds. Expired particles
// return to the pool via swap-with-last and are never updated again.
func (s *System) Update(dt float64) {
	if dt > msDeltaThreshold {
		// Unit-mismatch guard: the caller passed milliseconds.
		dt /= 1000
	}

	for i := 0; i < len(s.active); {
		p := s.active[i]

		p.Life -= dt
		if p.Life <= 0 {
			p.Life = 0
			s.release(i)
			continue
		}

		p.VY += p.Gravity * dt
		decay := math.Pow(p.Friction, dt)
		p.VX *= decay
		p.VY *= decay
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rotation += p.RotationSpeed * dt

		ratio := p.LifeRatio()
		p.ScaleX += p.ScaleSpeedX * dt
		p.ScaleY += p.ScaleSpeedY * dt
		p.Alpha = p.StartAlpha + (p.EndAlpha-p.StartAlpha)*ratio
		p.Tint = lerpRGB(p.StartColor, p.EndColor, ratio).Pack()
		i++
	}
}

// release deactivates the active particle at index i and returns it to the
// pool.
func (s *System) release(i int) {
	p := s.active[i]
	p.active = false

	last := len(s.active) - 1
	s.active[i] = s.active[last]
	s.active[last] = nil
	s.active = s.active[:last]

	s.pool = append(s.pool, p)
}

// Clear synchronously returns every active particle to the pool.
func (s *System) Clear() {
	for i := len(s.active) - 1; i >= 0; i-- {
		s.release(i)
	}
}

// Active returns the live particle list for rendering. The slice is owned by
// the system, reused across frames, and unordered; read it only after Update
// completes.
func (s *System) Active() []*Particle { return s.active }

// ActiveCount returns the number of live particles.
func (s *System) ActiveCount() int { return len(s.active) }

// PoolCount returns the number of idle pooled records.
func (s *System) PoolCount() int { return len(s.pool) }

// Capacity returns the hard particle cap.
func (s *System) Capacity() int { return s.max }

// CollectStats returns a snapshot of pool occupancy.
func (s *System) CollectStats() Stats {
	return Stats{
		Active:    len(s.active),
		Pooled:    len(s.pool),
		Allocated: s.allocated,
		Capacity:  s.max,
	}
}
