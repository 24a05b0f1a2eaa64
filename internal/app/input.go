package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/segdraw/pkg/segdraw"
)

// handleInput forwards keyboard and mouse input to the drawer and the orbit
// controls. The controls ignore input while draw mode has them disabled.
func (app *App) handleInput() {
	app.handleViewKeys()
	app.forwardKeys()
	app.forwardPointer()
	app.handleOrbit()
}

// handleViewKeys toggles display settings. Keys claimed by the drawer are
// skipped.
func (app *App) handleViewKeys() {
	cfg := app.Session.Drawer.Config()
	claimed := func(key int32) bool {
		code := keyCode(key)
		return code == cfg.DrawKey || code == cfg.HideKey
	}

	toggles := []struct {
		key int32
		fn  func()
	}{
		{rl.KeyHome, app.resetCameraView},
		{rl.KeyW, func() { app.View.showWireframe = !app.View.showWireframe }},
		{rl.KeyF, func() { app.View.showFilled = !app.View.showFilled }},
		{rl.KeyB, func() { app.View.showBoundingBox = !app.View.showBoundingBox }},
		{rl.KeyH, func() { app.View.showHelp = !app.View.showHelp }},
	}

	for _, t := range toggles {
		if rl.IsKeyPressed(t.key) && !claimed(t.key) {
			t.fn()
		}
	}
}

// forwardKeys reports key presses and releases to the drawer
func (app *App) forwardKeys() {
	d := app.Session.Drawer
	for key, code := range keyCodes {
		if rl.IsKeyPressed(key) {
			d.KeyDown(code)
		}
		if rl.IsKeyReleased(key) {
			d.KeyUp(code)
		}
	}
}

func (app *App) pointerEvent(pos rl.Vector2) segdraw.PointerEvent {
	return segdraw.PointerEvent{
		ClientX: float64(pos.X),
		ClientY: float64(pos.Y),
		Width:   float64(rl.GetScreenWidth()),
		Height:  float64(rl.GetScreenHeight()),
	}
}

// forwardPointer reports mouse moves and left button changes to the drawer
func (app *App) forwardPointer() {
	d := app.Session.Drawer
	pos := rl.GetMousePosition()
	ev := app.pointerEvent(pos)

	if pos != app.Pointer.lastPos {
		d.PointerMove(ev)
		app.Pointer.lastPos = pos
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		d.PointerDown(ev)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		d.PointerUp(ev)
	}
}

// handleOrbit rotates on left drag, pans on shift drag or middle drag and
// dollies on the wheel
func (app *App) handleOrbit() {
	controls := app.Session.Controls

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Pointer.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	}

	delta := rl.GetMouseDelta()
	moved := delta.X != 0 || delta.Y != 0
	panning := (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Pointer.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton)

	switch {
	case moved && panning:
		controls.Pan(float64(delta.X)*0.001, float64(delta.Y)*0.001)
		app.Camera.anim = nil
	case moved && rl.IsMouseButtonDown(rl.MouseLeftButton):
		controls.Rotate(-float64(delta.Y)*0.01, float64(delta.X)*0.01)
		app.Camera.anim = nil
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		controls.Dolly(1.0 - float64(wheel)*0.03)
	}
}
