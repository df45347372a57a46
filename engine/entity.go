package engine

import (
	"fmt"
	"reflect"
)

// EntityID uniquely identifies an entity. IDs are monotonically increasing
// and never reused within a process.
type EntityID uint64

// entitySeq is the process-wide ID counter. The engine runs on a single
// logical thread, so no synchronization is needed.
var entitySeq EntityID

// Entity is one simulated object: a 2D transform plus an insertion-ordered
// set of components. Entities are constructed inert and become live once
// added to a Scene.
type Entity struct {
	id       EntityID
	Name     string
	X, Y     float64
	Rotation float64
	Scale    float64
	Active   bool

	scene      *Scene
	components []Component
	index      map[reflect.Type]Component
}

// NewEntity creates an inert entity with the given name, unit scale, and the
// active flag set.
func NewEntity(name string) *Entity {
	entitySeq++
	return &Entity{
		id:     entitySeq,
		Name:   name,
		Scale:  1,
		Active: true,
		index:  make(map[reflect.Type]Component),
	}
}

// ID returns the entity's unique identifier.
func (e *Entity) ID() EntityID { return e.id }

// Scene returns the scene containing this entity, or nil while it is inert.
func (e *Entity) Scene() *Scene { return e.scene }

// Add attaches a component and returns the entity for chaining. If the entity
// is already live in a scene, OnAdded fires immediately; a component is never
// updated before OnAdded has run. Attaching a second component of the same
// concrete type is a configuration error and panics.
func (e *Entity) Add(component Component) *Entity {
	t := reflect.TypeOf(component)
	if _, exists := e.index[t]; exists {
		panic(fmt.Sprintf("entity %q: component type %s already attached", e.Name, t))
	}

	component.attach(e)
	e.index[t] = component
	e.components = append(e.components, component)

	if e.scene != nil {
		component.OnAdded()
	}
	return e
}

// Get returns the component of the given type, or nil. Exact concrete types
// resolve in O(1) through the type index; interface and base types fall back
// to a linear scan over the component list.
func (e *Entity) Get(t reflect.Type) Component {
	if c, ok := e.index[t]; ok {
		return c
	}
	for _, c := range e.components {
		if reflect.TypeOf(c).AssignableTo(t) {
			return c
		}
	}
	return nil
}

// Has reports whether a component of the given type is attached.
func (e *Entity) Has(t reflect.Type) bool {
	return e.Get(t) != nil
}

// Require returns the component of the given type, panicking if it is absent.
// Use it where a missing component is a configuration error that must surface
// immediately rather than corrupt downstream state.
func (e *Entity) Require(t reflect.Type) Component {
	c := e.Get(t)
	if c == nil {
		panic(fmt.Sprintf("entity %q: required component %s not present", e.Name, t))
	}
	return c
}

// Remove detaches the component of the given type, firing OnRemoved first if
// the entity is live. Removal swaps with the last component, so component
// order is not stable across removals. Returns false if no such component.
func (e *Entity) Remove(t reflect.Type) bool {
	c := e.Get(t)
	if c == nil {
		return false
	}

	if e.scene != nil {
		c.OnRemoved()
	}
	c.detach()

	concrete := reflect.TypeOf(c)
	delete(e.index, concrete)

	for i, held := range e.components {
		if held == c {
			last := len(e.components) - 1
			e.components[i] = e.components[last]
			e.components[last] = nil
			e.components = e.components[:last]
			break
		}
	}
	return true
}

// Components returns the attached components in insertion order (subject to
// the swap-with-last caveat on Remove).
func (e *Entity) Components() []Component {
	return e.components
}

// Destroy removes the entity from its current scene, firing the removal
// lifecycle on all components. Inert entities are untouched.
func (e *Entity) Destroy() {
	if e.scene != nil {
		e.scene.Remove(e)
	}
}

// update dispatches the frame to every component in insertion order. Inactive
// entities are skipped entirely but keep their state for reactivation.
func (e *Entity) update(frame *UpdateFrame) {
	if !e.Active {
		return
	}
	for _, c := range e.components {
		c.Update(frame)
	}
}

// setLive marks the entity as contained in scene and fires OnAdded on every
// component in insertion order.
func (e *Entity) setLive(scene *Scene) {
	e.scene = scene
	for _, c := range e.components {
		c.OnAdded()
	}
}

// clearLive fires OnRemoved on every component in reverse insertion order and
// detaches the entity from its scene.
func (e *Entity) clearLive() {
	for i := len(e.components) - 1; i >= 0; i-- {
		e.components[i].OnRemoved()
	}
	e.scene = nil
}

// Get returns the component of type T attached to e, using the O(1) exact-type
// index with a linear assignability fallback.
func Get[T Component](e *Entity) (T, bool) {
	c := e.Get(reflect.TypeFor[T]())
	if c == nil {
		var zero T
		return zero, false
	}
	return c.(T), true
}

// Has reports whether e carries a component of type T.
func Has[T Component](e *Entity) bool {
	return e.Has(reflect.TypeFor[T]())
}

// Require returns the component of type T attached to e, panicking if absent.
func Require[T Component](e *Entity) T {
	return e.Require(reflect.TypeFor[T]()).(T)
}

// Remove detaches the component of type T from e.
func Remove[T Component](e *Entity) bool {
	return e.Remove(reflect.TypeFor[T]())
}
