package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pyre/particle"
)

func NewParticleStats() *ParticleStats {
	return &ParticleStats{}
}

func (pv *ParticleStats) Render(system *particle.System) {
	if !imgui.BeginV("Particle Pool", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := system.CollectStats()

	imgui.Text(fmt.Sprintf("Active: %d", stats.Active))
	imgui.Text(fmt.Sprintf("Pooled: %d", stats.Pooled))
	imgui.Text(fmt.Sprintf("Allocated: %d / %d", stats.Allocated, stats.Capacity))

	occupancy := float32(0)
	if stats.Capacity > 0 {
		occupancy = float32(stats.Active) / float32(stats.Capacity)
	}
	imgui.ProgressBarV(occupancy, imgui.NewVec2(-1, 0), fmt.Sprintf("%d / %d active", stats.Active, stats.Capacity))

	growth := float32(0)
	if stats.Capacity > 0 {
		growth = float32(stats.Allocated) / float32(stats.Capacity)
	}
	imgui.ProgressBarV(growth, imgui.NewVec2(-1, 0), fmt.Sprintf("%d / %d allocated", stats.Allocated, stats.Capacity))

	imgui.End()
}
