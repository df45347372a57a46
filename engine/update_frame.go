package engine

// UpdateFrame carries the per-frame context handed to scene steps and
// component updates: the clamped delta time, the scene being updated, and the
// command buffer for deferred structural changes.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Scene     *Scene
}

func newUpdateFrame(dt float64, scene *Scene) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Scene:     scene,
	}
}
