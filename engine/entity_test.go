package engine_test

import (
	"reflect"
	"testing"

	"github.com/plus3/pyre/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIDsMonotonic(t *testing.T) {
	a := engine.NewEntity("a")
	b := engine.NewEntity("b")
	c := engine.NewEntity("c")

	assert.Less(t, a.ID(), b.ID())
	assert.Less(t, b.ID(), c.ID())
}

func TestNewEntityDefaults(t *testing.T) {
	e := engine.NewEntity("thing")

	assert.Equal(t, "thing", e.Name)
	assert.Equal(t, 1.0, e.Scale)
	assert.True(t, e.Active)
	assert.Nil(t, e.Scene())
	assert.Empty(t, e.Components())
}

func TestAddGetHas(t *testing.T) {
	e := engine.NewEntity("e")
	w := &walker{speed: 3}
	e.Add(w)

	got, ok := engine.Get[*walker](e)
	require.True(t, ok)
	assert.Same(t, w, got)

	assert.True(t, engine.Has[*walker](e))
	assert.False(t, engine.Has[*runner](e))

	_, ok = engine.Get[*runner](e)
	assert.False(t, ok)
}

func TestGetByInterfaceFindsConcrete(t *testing.T) {
	e := engine.NewEntity("e")
	r := &runner{speed: 2}
	e.Add(r)

	// Exact-type index misses interfaces; the linear fallback must find the
	// concrete instance.
	m, ok := engine.Get[mover](e)
	require.True(t, ok)
	assert.Same(t, engine.Component(r), engine.Component(m))
	assert.Equal(t, 4.0, m.Speed())
}

func TestAddDuplicateTypePanics(t *testing.T) {
	e := engine.NewEntity("e")
	e.Add(&walker{})

	assert.Panics(t, func() {
		e.Add(&walker{})
	})
}

func TestRequire(t *testing.T) {
	e := engine.NewEntity("e")
	w := &walker{}
	e.Add(w)

	assert.Same(t, w, engine.Require[*walker](e))

	assert.Panics(t, func() {
		engine.Require[*runner](e)
	})
}

func TestRemove(t *testing.T) {
	e := engine.NewEntity("e")
	w := &walker{}
	r := &runner{}
	e.Add(w)
	e.Add(r)

	assert.True(t, engine.Remove[*walker](e))
	assert.False(t, engine.Has[*walker](e))
	assert.True(t, engine.Has[*runner](e))

	// Removing again is a no-op.
	assert.False(t, engine.Remove[*walker](e))
	assert.Len(t, e.Components(), 1)
}

// Index consistency: after any add/remove sequence, Has(T) is true iff the
// backing list holds an instance of T, and Get(T) returns that same instance.
func TestIndexConsistency(t *testing.T) {
	e := engine.NewEntity("e")
	w := &walker{}
	r := &runner{}
	rec := &recorder{}

	e.Add(w)
	e.Add(r)
	e.Add(rec)
	engine.Remove[*runner](e)
	e.Add(&runner{})
	engine.Remove[*recorder](e)

	for _, c := range e.Components() {
		typ := reflect.TypeOf(c)
		assert.True(t, e.Has(typ))
		assert.Same(t, c, e.Get(typ))
	}
	assert.False(t, engine.Has[*recorder](e))
}

func TestLifecycleOrdering(t *testing.T) {
	scene := engine.NewScene("test")
	e := engine.NewEntity("e")
	rec := &recorder{}

	// Components on inert entities are not live yet.
	e.Add(rec)
	assert.Equal(t, 0, rec.added)

	// Entering a scene fires OnAdded on all current components.
	scene.Add(e)
	assert.Equal(t, 1, rec.added)

	scene.Update(0.016)
	assert.Equal(t, 1, rec.updates)
	assert.False(t, rec.updatedBeforeAdded)

	// Adding to an already-live entity fires OnAdded immediately.
	late := &recorder{}
	e.Add(late)
	assert.Equal(t, 1, late.added)

	// Removal fires OnRemoved exactly once.
	scene.Remove(e)
	assert.Equal(t, 1, rec.removed)
	assert.Equal(t, 1, late.removed)
}

func TestRemoveOnInertEntitySkipsOnRemoved(t *testing.T) {
	e := engine.NewEntity("e")
	rec := &recorder{}
	e.Add(rec)

	engine.Remove[*recorder](e)
	assert.Equal(t, 0, rec.removed, "never-live components get no OnRemoved")
}

func TestInactiveEntitySkipped(t *testing.T) {
	scene := engine.NewScene("test")
	e := engine.NewEntity("e")
	rec := &recorder{}
	e.Add(rec)
	scene.Add(e)

	e.Active = false
	scene.Update(0.016)
	assert.Equal(t, 0, rec.updates)

	// Inactive entities stay in the scene and resume on reactivation.
	assert.Equal(t, 1, scene.Len())
	e.Active = true
	scene.Update(0.016)
	assert.Equal(t, 1, rec.updates)
}

func TestDestroy(t *testing.T) {
	scene := engine.NewScene("test")
	e := engine.NewEntity("e")
	rec := &recorder{}
	e.Add(rec)
	scene.Add(e)

	e.Destroy()
	assert.Equal(t, 0, scene.Len())
	assert.Nil(t, e.Scene())
	assert.Equal(t, 1, rec.removed)

	// Destroying an inert entity is a no-op.
	e.Destroy()
	assert.Equal(t, 1, rec.removed)
}
