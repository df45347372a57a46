// Package engine provides the entity/component substrate and scene stack at the
// core of a pyre game: entities own components, scenes own entities, and a
// SceneManager owns the stack of scenes. The whole package assumes the
// single-threaded frame model: all mutation happens inside one Update call
// driven by the host's frame clock.
package engine

// Component is a unit of behavior or data attached to exactly one Entity.
// Implementations embed BaseComponent to inherit the owner back-reference and
// no-op lifecycle hooks, overriding only what they need.
type Component interface {
	// OnAdded is called once the component is live: either when it is added to
	// an entity already contained in a scene, or when its entity enters one.
	OnAdded()

	// OnRemoved is called when the component leaves a live entity, or when its
	// entity leaves the scene. It is never called for components that were
	// never live.
	OnRemoved()

	// Update advances the component by one frame. It is only called between
	// OnAdded and OnRemoved, and never for inactive entities.
	Update(frame *UpdateFrame)

	attach(owner *Entity)
	detach()
	Owner() *Entity
}

// BaseComponent provides the owning-entity back-reference and default no-op
// lifecycle hooks. Embed it in every component implementation.
type BaseComponent struct {
	owner *Entity
}

func (b *BaseComponent) attach(owner *Entity) { b.owner = owner }
func (b *BaseComponent) detach()              { b.owner = nil }

// Owner returns the entity this component is attached to, or nil.
func (b *BaseComponent) Owner() *Entity { return b.owner }

// Scene returns the scene containing the owning entity, or nil while the
// entity is not live.
func (b *BaseComponent) Scene() *Scene {
	if b.owner == nil {
		return nil
	}
	return b.owner.scene
}

// OnAdded implements Component.
func (b *BaseComponent) OnAdded() {}

// OnRemoved implements Component.
func (b *BaseComponent) OnRemoved() {}

// Update implements Component.
func (b *BaseComponent) Update(frame *UpdateFrame) {}
