// Package debugui provides immediate-mode debug panels for pyre games using
// Dear ImGui: a scene entity browser, a component inspector, frame and step
// timing stats, and particle pool gauges.
package debugui

import "github.com/AllenDang/cimgui-go/imgui"

// Overlay collects panel render functions and draws them when visible.
// Register it once and call Render between the backend's BeginFrame and
// EndFrame.
type Overlay struct {
	Visible bool
	items   []func()
}

// Add registers a panel render function.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, render)
}

// Render draws all registered panels. Hidden overlays draw nothing.
func (o *Overlay) Render() {
	if !o.Visible {
		return
	}
	for _, render := range o.items {
		render()
	}
}

// InputState tracks Dear ImGui's input capture state. Use it to keep panel
// interaction from leaking into game input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CaptureState returns ImGui's current input capture state.
func CaptureState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
