package engine

// SceneManager owns the stack of scenes and governs transitions. Current is
// always the top of the stack; only the current scene is updated each frame,
// which gives pushed overlay scenes pause semantics for whatever they cover.
type SceneManager struct {
	stack []*Scene
}

// NewSceneManager creates a scene manager with an empty stack.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// Current returns the top of the stack, or nil when the stack is empty.
func (m *SceneManager) Current() *Scene {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of scenes on the stack.
func (m *SceneManager) Depth() int { return len(m.stack) }

// Switch replaces the top of the stack with next. The outgoing scene's OnExit
// runs first (receiving the incoming scene), then the incoming scene's
// OnEnter. Entities of the outgoing scene are left in place; use Replace to
// tear them down.
func (m *SceneManager) Switch(next *Scene) {
	out := m.Current()
	if out != nil {
		out.exit(next)
		m.stack = m.stack[:len(m.stack)-1]
	}
	m.stack = append(m.stack, next)
	next.enter(out)
}

// Replace swaps the current scene for next, draining every entity of the
// outgoing scene first so no live component survives the transition. The
// drain bypasses per-entity Remove bookkeeping since the outgoing scene is
// being discarded wholesale. All OnRemoved hooks have fired before next's
// OnEnter runs.
func (m *SceneManager) Replace(next *Scene) {
	out := m.Current()
	if out != nil {
		out.exit(next)
		out.drain()
		m.stack = m.stack[:len(m.stack)-1]
	}
	m.stack = append(m.stack, next)
	next.enter(out)
}

// Push overlays next on top of the current scene. The prior top is suspended,
// not exited, and resumes when the overlay pops.
func (m *SceneManager) Push(next *Scene) {
	if cur := m.Current(); cur != nil {
		cur.suspend()
	}
	m.stack = append(m.stack, next)
	next.enter(nil)
}

// Pop removes and exits the top scene, resuming the newly exposed one.
// Returns the popped scene, or nil if the stack was empty.
func (m *SceneManager) Pop() *Scene {
	out := m.Current()
	if out == nil {
		return nil
	}
	m.stack = m.stack[:len(m.stack)-1]
	out.exit(nil)
	if cur := m.Current(); cur != nil {
		cur.resume()
	}
	return out
}

// Update advances the current scene by one frame. A frame with an empty stack
// is a no-op.
func (m *SceneManager) Update(dt float64) {
	if cur := m.Current(); cur != nil {
		cur.Update(dt)
	}
}
