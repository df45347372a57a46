package debugui

import "github.com/plus3/pyre/engine"

// EntityBrowser lists a scene's entities in a filterable, sortable table.
type EntityBrowser struct {
	cache              *entityBrowserCache
	selectedEntityID   engine.EntityID
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

// ComponentInspector shows and edits the components of the entity selected in
// the browser.
type ComponentInspector struct {
	selectedEntityID engine.EntityID
}

// PerformanceStats plots frame times and lists scene step timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// ParticleStats shows pool occupancy gauges for a particle system.
type ParticleStats struct{}
