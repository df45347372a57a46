package engine

import (
	"fmt"
	"time"

	"github.com/kamstrup/intmap"
)

// SceneState tracks a scene's position in its lifecycle. A scene moves
// constructed -> entered -> (suspended <-> entered)* -> exited, and is not
// reusable after exit.
type SceneState int

const (
	SceneConstructed SceneState = iota
	SceneEntered
	SceneSuspended
	SceneExited
)

func (s SceneState) String() string {
	switch s {
	case SceneConstructed:
		return "constructed"
	case SceneEntered:
		return "entered"
	case SceneSuspended:
		return "suspended"
	case SceneExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Step is a named per-frame callback registered on a scene, used for
// cross-cutting systems that must run before or after per-entity updates
// (physics before, effects after).
type Step struct {
	Name string
	Func func(frame *UpdateFrame)
}

// StepStats provides execution statistics for a single registered step.
type StepStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stepStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scene owns a collection of entities and drives their per-frame update.
// Entity removal swaps with the last slot, so iteration order is not stable
// across removals and must not be relied on between frames.
type Scene struct {
	name     string
	entities []*Entity
	byID     *intmap.Map[EntityID, int]

	preSteps  []Step
	postSteps []Step
	preStats  []*stepStatsInternal
	postStats []*stepStatsInternal

	state SceneState

	// Lifecycle hooks, invoked by the SceneManager at transition boundaries.
	// OnExit receives the incoming scene (nil on pop) so cross-fade style
	// logic can inspect it.
	OnEnter   func(prev *Scene)
	OnExit    func(next *Scene)
	OnSuspend func()
	OnResume  func()
}

// NewScene creates an empty scene in the constructed state.
func NewScene(name string) *Scene {
	return &Scene{
		name: name,
		byID: intmap.New[EntityID, int](256),
	}
}

// Name returns the scene's name.
func (s *Scene) Name() string { return s.name }

// State returns the scene's current lifecycle state.
func (s *Scene) State() SceneState { return s.state }

// Add inserts an entity into the scene and fires the added lifecycle on all
// of its components. Adding an entity already contained in a scene is a
// configuration error and panics.
func (s *Scene) Add(e *Entity) {
	if e.scene == s {
		return
	}
	if e.scene != nil {
		panic(fmt.Sprintf("entity %q already contained in scene %q", e.Name, e.scene.name))
	}

	s.entities = append(s.entities, e)
	s.byID.Put(e.id, len(s.entities)-1)
	e.setLive(s)
}

// Remove evicts an entity, firing the removal lifecycle on its components in
// reverse order. The vacated slot is filled by swapping with the last entity,
// keeping removal O(1) at the cost of iteration order.
func (s *Scene) Remove(e *Entity) {
	idx, ok := s.byID.Get(e.id)
	if !ok || e.scene != s {
		return
	}

	last := len(s.entities) - 1
	moved := s.entities[last]
	s.entities[idx] = moved
	s.entities[last] = nil
	s.entities = s.entities[:last]

	s.byID.Del(e.id)
	if idx != last {
		s.byID.Put(moved.id, idx)
	}

	e.clearLive()
}

// Entities returns the scene's entity collection. The slice is owned by the
// scene; callers must not mutate it.
func (s *Scene) Entities() []*Entity { return s.entities }

// Len returns the number of contained entities.
func (s *Scene) Len() int { return len(s.entities) }

// FindByID returns the contained entity with the given ID, or nil.
func (s *Scene) FindByID(id EntityID) *Entity {
	idx, ok := s.byID.Get(id)
	if !ok {
		return nil
	}
	return s.entities[idx]
}

// FindByName returns the first contained entity with the given name, or nil.
func (s *Scene) FindByName(name string) *Entity {
	for _, e := range s.entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// AddPreStep registers a named callback that runs before per-entity updates.
func (s *Scene) AddPreStep(name string, fn func(frame *UpdateFrame)) {
	s.preSteps = append(s.preSteps, Step{Name: name, Func: fn})
	s.preStats = append(s.preStats, newStepStats(name))
}

// AddPostStep registers a named callback that runs after per-entity updates.
func (s *Scene) AddPostStep(name string, fn func(frame *UpdateFrame)) {
	s.postSteps = append(s.postSteps, Step{Name: name, Func: fn})
	s.postStats = append(s.postStats, newStepStats(name))
}

func newStepStats(name string) *stepStatsInternal {
	return &stepStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

// Update runs one frame: pre-steps, then every active entity's components in
// order, then post-steps, then the deferred command buffer. Structural
// changes requested mid-frame must go through frame.Commands so the entity
// collection stays stable during iteration.
func (s *Scene) Update(dt float64) {
	frame := newUpdateFrame(dt, s)

	s.runSteps(s.preSteps, s.preStats, frame)
	for _, e := range s.entities {
		e.update(frame)
	}
	s.runSteps(s.postSteps, s.postStats, frame)

	frame.Commands.Flush(s)
}

func (s *Scene) runSteps(steps []Step, stats []*stepStatsInternal, frame *UpdateFrame) {
	for i, step := range steps {
		start := time.Now()
		step.Func(frame)
		duration := time.Since(start)

		st := stats[i]
		st.executionCount++
		st.lastDuration = duration
		st.totalDuration += duration
		if duration < st.minDuration {
			st.minDuration = duration
		}
		if duration > st.maxDuration {
			st.maxDuration = duration
		}
	}
}

// StepStats returns execution statistics for all registered steps, pre-steps
// first.
func (s *Scene) StepStats() []StepStats {
	out := make([]StepStats, 0, len(s.preStats)+len(s.postStats))
	for _, internal := range s.preStats {
		out = append(out, internal.snapshot())
	}
	for _, internal := range s.postStats {
		out = append(out, internal.snapshot())
	}
	return out
}

func (st *stepStatsInternal) snapshot() StepStats {
	avg := time.Duration(0)
	if st.executionCount > 0 {
		avg = st.totalDuration / time.Duration(st.executionCount)
	}
	return StepStats{
		Name:           st.name,
		ExecutionCount: st.executionCount,
		MinDuration:    st.minDuration,
		MaxDuration:    st.maxDuration,
		AvgDuration:    avg,
		LastDuration:   st.lastDuration,
		TotalDuration:  st.totalDuration,
	}
}

// enter transitions the scene to entered. Scenes are single-use: re-entering
// an exited scene panics.
func (s *Scene) enter(prev *Scene) {
	if s.state == SceneExited {
		panic(fmt.Sprintf("scene %q is exited and cannot be entered again", s.name))
	}
	s.state = SceneEntered
	if s.OnEnter != nil {
		s.OnEnter(prev)
	}
}

func (s *Scene) exit(next *Scene) {
	s.state = SceneExited
	if s.OnExit != nil {
		s.OnExit(next)
	}
}

func (s *Scene) suspend() {
	s.state = SceneSuspended
	if s.OnSuspend != nil {
		s.OnSuspend()
	}
}

func (s *Scene) resume() {
	s.state = SceneEntered
	if s.OnResume != nil {
		s.OnResume()
	}
}

// drain force-removes every entity, firing the removal lifecycle in reverse
// insertion order. Used on scene teardown, where per-entity swap bookkeeping
// is pointless because the whole collection is discarded.
func (s *Scene) drain() {
	for i := len(s.entities) - 1; i >= 0; i-- {
		s.entities[i].clearLive()
		s.entities[i] = nil
	}
	s.entities = s.entities[:0]
	s.byID.Clear()
}
