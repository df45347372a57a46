package particle

import "math"

// Burst returns a full-circle radial burst at (x, y), fading out over its
// lifetime. Tune the returned config before emitting if needed.
func Burst(x, y float64, count int, color RGB) EmitConfig {
	return EmitConfig{
		X: x, Y: y,
		Count:      count,
		Spread:     2 * math.Pi,
		SpeedMin:   40,
		SpeedMax:   160,
		LifeMin:    0.4,
		LifeMax:    1.2,
		SizeMin:    1,
		SizeMax:    3,
		Friction:   0.4,
		StartColor: color,
		EndColor:   color,
		StartAlpha: 1,
		EndAlpha:   0,
	}
}

// Fountain returns an upward cone spray at (x, y) pulled back down by
// gravity, darkening toward black as it dies.
func Fountain(x, y float64, count int, color RGB) EmitConfig {
	return EmitConfig{
		X: x, Y: y,
		Count:      count,
		Angle:      -math.Pi / 2,
		Spread:     math.Pi / 6,
		SpeedMin:   120,
		SpeedMax:   260,
		LifeMin:    0.8,
		LifeMax:    1.6,
		SizeMin:    1,
		SizeMax:    2,
		Gravity:    300,
		StartColor: color,
		EndColor:   RGB{},
		StartAlpha: 1,
		EndAlpha:   0.1,
	}
}
