package engine

import "reflect"

// Commands buffers structural changes requested during a frame so the entity
// collection and component lists stay stable while steps and components
// iterate them. The buffer is flushed by Scene.Update at the end of the frame.
type Commands struct {
	adds        []*Entity
	destroys    []*Entity
	compAdds    []addComponentCommand
	compRemoves []removeComponentCommand
	defers      []func()
}

func newCommands() *Commands {
	return &Commands{}
}

type addComponentCommand struct {
	entity    *Entity
	component Component
}

type removeComponentCommand struct {
	entity   *Entity
	compType reflect.Type
}

// Add queues an entity to be added to the scene at the end of the frame.
func (c *Commands) Add(e *Entity) {
	c.adds = append(c.adds, e)
}

// Destroy queues an entity removal from its current scene.
func (c *Commands) Destroy(e *Entity) {
	c.destroys = append(c.destroys, e)
}

// AddComponent queues a component attachment.
func (c *Commands) AddComponent(e *Entity, component Component) {
	c.compAdds = append(c.compAdds, addComponentCommand{entity: e, component: component})
}

// RemoveComponent queues a component removal by type.
func (c *Commands) RemoveComponent(e *Entity, compType reflect.Type) {
	c.compRemoves = append(c.compRemoves, removeComponentCommand{entity: e, compType: compType})
}

// Defer queues an arbitrary function to run after all structural changes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies all buffered commands to the given scene, resetting the buffer.
// Destroys run first so later commands against destroyed entities are dropped.
func (c *Commands) Flush(scene *Scene) {
	destroyed := make(map[EntityID]bool)

	for _, e := range c.destroys {
		if e.scene != nil {
			e.scene.Remove(e)
		}
		destroyed[e.id] = true
	}

	for _, cmd := range c.compRemoves {
		if !destroyed[cmd.entity.id] {
			cmd.entity.Remove(cmd.compType)
		}
	}

	for _, cmd := range c.compAdds {
		if !destroyed[cmd.entity.id] {
			cmd.entity.Add(cmd.component)
		}
	}

	for _, e := range c.adds {
		scene.Add(e)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.adds = c.adds[:0]
	c.destroys = c.destroys[:0]
	c.compAdds = c.compAdds[:0]
	c.compRemoves = c.compRemoves[:0]
	c.defers = c.defers[:0]
}
