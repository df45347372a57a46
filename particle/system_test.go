package particle_test

import (
	"testing"

	"github.com/plus3/pyre/particle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steadyConfig pins every randomized range to a single value so tests are
// deterministic: direction +X, speed 100, one-second life.
func steadyConfig(count int) particle.EmitConfig {
	return particle.EmitConfig{
		Count:      count,
		SpeedMin:   100,
		SpeedMax:   100,
		LifeMin:    1,
		LifeMax:    1,
		SizeMin:    2,
		SizeMax:    2,
		StartAlpha: 1,
		EndAlpha:   0,
	}
}

func assertPoolInvariant(t *testing.T, s *particle.System) {
	t.Helper()
	stats := s.CollectStats()
	assert.Equal(t, stats.Allocated, stats.Active+stats.Pooled)
	assert.LessOrEqual(t, stats.Allocated, stats.Capacity)
}

func TestEmitDeterministic(t *testing.T) {
	s := particle.NewSystem(64)
	n := s.Emit(steadyConfig(1))
	require.Equal(t, 1, n)

	p := s.Active()[0]
	assert.InDelta(t, 100.0, p.VX, 1e-9)
	assert.InDelta(t, 0.0, p.VY, 1e-9)
	assert.Equal(t, 1.0, p.Life)
	assert.Equal(t, 1.0, p.MaxLife)
	assert.Equal(t, 2.0, p.Size)
	assert.Equal(t, 1.0, p.ScaleX)
	assert.Equal(t, 1.0, p.Alpha)
	assert.True(t, p.Active())
}

// Once the hard capacity is reached, further emission requests are truncated
// without error and nothing already live is touched.
func TestEmitTruncatesAtCapacity(t *testing.T) {
	s := particle.NewSystem(10)

	require.Equal(t, 10, s.Emit(steadyConfig(10)))
	require.Equal(t, 10, s.ActiveCount())

	assert.NotPanics(t, func() {
		assert.Equal(t, 0, s.Emit(steadyConfig(50)))
	})
	assert.Equal(t, 10, s.ActiveCount())
	assertPoolInvariant(t, s)
}

func TestEmitPartialTruncation(t *testing.T) {
	s := particle.NewSystem(10)
	s.Emit(steadyConfig(7))

	assert.Equal(t, 3, s.Emit(steadyConfig(50)))
	assert.Equal(t, 10, s.ActiveCount())
}

func TestPoolConservation(t *testing.T) {
	s := particle.NewSystem(100)

	for cycle := 0; cycle < 5; cycle++ {
		s.Emit(steadyConfig(40))
		assertPoolInvariant(t, s)

		// Half a lifetime, then past the end.
		s.Update(0.5)
		assertPoolInvariant(t, s)
		s.Update(0.6)
		assertPoolInvariant(t, s)

		assert.Equal(t, 0, s.ActiveCount())
	}

	stats := s.CollectStats()
	assert.Equal(t, stats.Allocated, stats.Pooled, "everything returned to the pool")
}

func TestLifeNeverNegative(t *testing.T) {
	s := particle.NewSystem(8)
	s.Emit(steadyConfig(4))
	p := s.Active()[0]

	prev := p.Life
	for i := 0; i < 10; i++ {
		s.Update(0.3)
		assert.GreaterOrEqual(t, p.Life, 0.0)
		assert.LessOrEqual(t, p.Life, prev)
		prev = p.Life
	}

	assert.Equal(t, 0.0, p.Life)
	assert.False(t, p.Active())
	assert.Equal(t, 0, s.ActiveCount())
}

func TestExpiredParticleNotUpdated(t *testing.T) {
	s := particle.NewSystem(8)
	s.Emit(steadyConfig(1))
	p := s.Active()[0]

	s.Update(0.6)
	s.Update(0.6) // past the one-second life
	require.False(t, p.Active())
	x := p.X

	s.Update(0.5)
	assert.Equal(t, x, p.X, "released particles stop moving")
}

func TestLifeRatioInterpolation(t *testing.T) {
	s := particle.NewSystem(8)
	cfg := steadyConfig(1)
	cfg.SpeedMin, cfg.SpeedMax = 0, 0
	cfg.StartColor = particle.RGB{R: 255}
	cfg.EndColor = particle.RGB{B: 255}
	s.Emit(cfg)
	p := s.Active()[0]

	s.Update(0.5)

	assert.InDelta(t, 0.5, p.LifeRatio(), 1e-9)
	assert.InDelta(t, 0.5, p.Alpha, 1e-9)
	assert.Equal(t, uint32(0x7F007F), p.Tint)
}

func TestZeroLifeNormalized(t *testing.T) {
	s := particle.NewSystem(8)
	cfg := steadyConfig(1)
	cfg.LifeMin, cfg.LifeMax = 0, 0
	s.Emit(cfg)

	p := s.Active()[0]
	assert.Greater(t, p.MaxLife, 0.0)
	assert.InDelta(t, 0.0, p.LifeRatio(), 1e-9)
}

func TestGravityAndMotion(t *testing.T) {
	s := particle.NewSystem(8)
	cfg := steadyConfig(1)
	cfg.Gravity = 50
	s.Emit(cfg)
	p := s.Active()[0]

	s.Update(0.1)

	assert.InDelta(t, 5.0, p.VY, 1e-9)
	assert.InDelta(t, 10.0, p.X, 1e-9)
	assert.InDelta(t, 0.5, p.Y, 1e-9)
}

func TestFrictionDecay(t *testing.T) {
	s := particle.NewSystem(8)
	cfg := steadyConfig(1)
	cfg.LifeMin, cfg.LifeMax = 3, 3
	cfg.Friction = 0.5
	s.Emit(cfg)
	p := s.Active()[0]

	s.Update(1)

	assert.InDelta(t, 50.0, p.VX, 1e-9, "per-second decay factor applied over one second")
}

func TestScaleSpeed(t *testing.T) {
	s := particle.NewSystem(8)
	cfg := steadyConfig(1)
	cfg.ScaleSpeedX = 2
	cfg.ScaleSpeedY = -0.5
	s.Emit(cfg)
	p := s.Active()[0]

	s.Update(0.5)

	assert.InDelta(t, 2.0, p.ScaleX, 1e-9)
	assert.InDelta(t, 0.75, p.ScaleY, 1e-9)
}

// A delta that is obviously milliseconds gets rescaled to seconds, so a
// misconfigured caller does not kill every particle in one frame.
func TestMillisecondDeltaRescaled(t *testing.T) {
	s := particle.NewSystem(8)
	s.Emit(steadyConfig(1))
	p := s.Active()[0]

	s.Update(16.0)

	assert.Equal(t, 1, s.ActiveCount())
	assert.InDelta(t, 1.0-0.016, p.Life, 1e-9)
	assert.InDelta(t, 100*0.016, p.X, 1e-9)
}

func TestClear(t *testing.T) {
	s := particle.NewSystem(32)
	s.Emit(steadyConfig(20))
	require.Equal(t, 20, s.ActiveCount())

	s.Clear()

	assert.Equal(t, 0, s.ActiveCount())
	assertPoolInvariant(t, s)

	// The pool is immediately reusable.
	assert.Equal(t, 20, s.Emit(steadyConfig(20)))
}

func TestRecycledParticleFullyReset(t *testing.T) {
	s := particle.NewSystem(1)
	cfg := steadyConfig(1)
	cfg.ScaleSpeedX = 10
	cfg.Gravity = 500
	s.Emit(cfg)
	s.Update(0.6)
	s.Update(0.6) // expire it

	fresh := steadyConfig(1)
	require.Equal(t, 1, s.Emit(fresh))
	p := s.Active()[0]

	assert.Equal(t, 1.0, p.ScaleX)
	assert.Equal(t, 0.0, p.Gravity)
	assert.Equal(t, 0.0, p.Rotation)
	assert.InDelta(t, 0.0, p.VY, 1e-9)
}

func TestDefaultCapacity(t *testing.T) {
	s := particle.NewSystem(0)
	assert.Equal(t, particle.DefaultMaxParticles, s.Capacity())
}

func TestPresets(t *testing.T) {
	s := particle.NewSystem(256)

	burst := particle.Burst(10, 20, 32, particle.RGB{R: 255, G: 128})
	require.Equal(t, 32, s.Emit(burst))
	for _, p := range s.Active() {
		assert.Equal(t, 10.0, p.X)
		assert.Equal(t, 20.0, p.Y)
		assert.Equal(t, 1.0, p.Alpha)
	}

	s.Clear()

	fountain := particle.Fountain(0, 0, 16, particle.RGB{B: 200})
	require.Equal(t, 16, s.Emit(fountain))
	for _, p := range s.Active() {
		assert.Less(t, p.VY, 0.0, "fountain particles start moving up")
		assert.Equal(t, 300.0, p.Gravity)
	}
}

func TestPackRGB(t *testing.T) {
	assert.Equal(t, uint32(0xFF8040), particle.RGB{R: 0xFF, G: 0x80, B: 0x40}.Pack())
	assert.Equal(t, uint32(0), particle.RGB{}.Pack())
}

func BenchmarkUpdate(b *testing.B) {
	s := particle.NewSystem(4096)
	cfg := steadyConfig(4096)
	cfg.LifeMin, cfg.LifeMax = 1e6, 1e6
	s.Emit(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Update(0.016)
	}
}
