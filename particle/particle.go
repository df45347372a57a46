// Package particle implements a capacity-bounded, pool-backed simulator for
// purely visual moving points. It is independent of the entity/component
// substrate but consumes the same clamped frame delta. After the pool's lazy
// startup growth there is no per-particle heap allocation.
package particle

// RGB is a color triple used for particle tint interpolation.
type RGB struct {
	R, G, B uint8
}

// Pack returns the color packed as 0xRRGGBB.
func (c RGB) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func lerpRGB(a, b RGB, t float64) RGB {
	return RGB{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
	}
}

// Particle is one pooled visual record. Renderers read the exported fields
// after the frame's update completes; Tint and Alpha carry the current
// life-ratio interpolated appearance.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Life    float64
	MaxLife float64

	Gravity float64

	// Friction is the per-second exponential velocity decay factor, applied
	// to each axis (1 = no decay).
	Friction float64

	Size                     float64
	ScaleX, ScaleY           float64
	ScaleSpeedX, ScaleSpeedY float64

	Rotation      float64
	RotationSpeed float64

	StartColor, EndColor RGB
	StartAlpha, EndAlpha float64

	// Alpha and Tint are the interpolated output values for this frame.
	Alpha float64
	Tint  uint32

	active bool
}

// Active reports whether the record is currently issued from the pool.
func (p *Particle) Active() bool { return p.active }

// LifeRatio returns the elapsed fraction of the particle's lifespan in
// [0, 1]. All visual interpolation derives from this, never from wall-clock
// time, keeping effects frame-rate independent.
func (p *Particle) LifeRatio() float64 {
	if p.MaxLife <= 0 {
		return 1
	}
	return 1 - p.Life/p.MaxLife
}
