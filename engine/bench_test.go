package engine_test

import (
	"testing"

	"github.com/plus3/pyre/engine"
)

func BenchmarkSceneUpdate(b *testing.B) {
	scene := engine.NewScene("bench")
	for i := 0; i < 1000; i++ {
		e := engine.NewEntity("e")
		e.Add(&spinner{rate: 1})
		scene.Add(e)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scene.Update(0.016)
	}
}

func BenchmarkGetExact(b *testing.B) {
	e := engine.NewEntity("e")
	e.Add(&walker{})
	e.Add(&runner{})
	e.Add(&spinner{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Get[*runner](e)
	}
}

func BenchmarkGetInterfaceFallback(b *testing.B) {
	e := engine.NewEntity("e")
	e.Add(&walker{})
	e.Add(&runner{})
	e.Add(&spinner{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		engine.Get[mover](e)
	}
}
