package engine_test

import "github.com/plus3/pyre/engine"

// recorder counts lifecycle calls and appends to an optional shared log so
// tests can assert cross-entity ordering.
type recorder struct {
	engine.BaseComponent

	added   int
	removed int
	updates int

	// updatedBeforeAdded flags the lifecycle violation the substrate must
	// never produce.
	updatedBeforeAdded bool

	log  *[]string
	name string
}

func (r *recorder) OnAdded() {
	r.added++
	if r.log != nil {
		*r.log = append(*r.log, r.name+":added")
	}
}

func (r *recorder) OnRemoved() {
	r.removed++
	if r.log != nil {
		*r.log = append(*r.log, r.name+":removed")
	}
}

func (r *recorder) Update(frame *engine.UpdateFrame) {
	if r.added == 0 {
		r.updatedBeforeAdded = true
	}
	r.updates++
	if r.log != nil {
		*r.log = append(*r.log, r.name+":update")
	}
}

// mover is a behavior interface used to exercise polymorphic component
// lookup: callers asking for the interface must find a concrete instance.
type mover interface {
	engine.Component
	Speed() float64
}

type walker struct {
	engine.BaseComponent
	speed float64
}

func (w *walker) Speed() float64 { return w.speed }

type runner struct {
	engine.BaseComponent
	speed float64
}

func (r *runner) Speed() float64 { return r.speed * 2 }

// spinner rotates its entity a fixed rate per second.
type spinner struct {
	engine.BaseComponent
	rate float64
}

func (s *spinner) Update(frame *engine.UpdateFrame) {
	s.Owner().Rotation += s.rate * frame.DeltaTime
}
