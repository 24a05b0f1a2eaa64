package segdraw

import "github.com/philipparndt/segdraw/pkg/geometry"

// PointerEvent carries a raw pointer position in viewport pixels
type PointerEvent struct {
	ClientX, ClientY float64
	Width, Height    float64
}

// Normalized converts the event to normalized device coordinates, +Y up
func (e PointerEvent) Normalized() geometry.Vector2 {
	return geometry.Vector2{
		X: (e.ClientX/e.Width)*2 - 1,
		Y: -(e.ClientY/e.Height)*2 + 1,
	}
}

// Pointer returns the normalized pointer position used for ray casting
func (d *Drawer) Pointer() geometry.Vector2 {
	if d.extPointer != nil {
		return *d.extPointer
	}
	return d.pointer
}

// PointerPressed reports whether the pointer button is held
func (d *Drawer) PointerPressed() bool {
	return d.pointerDown
}

// PointerMove updates the pointer and, mid stroke, drags the segment end
func (d *Drawer) PointerMove(ev PointerEvent) {
	if !d.enabled {
		return
	}

	if d.extPointer == nil && ev.Width > 0 && ev.Height > 0 {
		d.pointer = ev.Normalized()
	}

	if d.segment.Active {
		d.continueSegment(d.raycast())
	}
}

// PointerDown starts a stroke when draw mode is armed and the pointer is
// over the container
func (d *Drawer) PointerDown(ev PointerEvent) {
	if !d.enabled {
		return
	}

	d.pointerDown = true

	if d.drawMode {
		d.startSegment(d.raycast())
	}
}

// PointerUp ends the stroke. Draw mode stays armed.
func (d *Drawer) PointerUp(ev PointerEvent) {
	if !d.enabled {
		return
	}

	d.pointerDown = false
	d.segment.Active = false
}

// KeyDown arms draw mode when code is the draw key
func (d *Drawer) KeyDown(code string) {
	if !d.enabled {
		return
	}

	if code == d.cfg.DrawKey && !d.drawMode {
		d.drawMode = true
		d.suspendControls()
		d.emitStart()
	}
}

// KeyUp releases draw mode on the draw key and hides the segment on the
// hide key
func (d *Drawer) KeyUp(code string) {
	if !d.enabled {
		return
	}

	switch code {
	case d.cfg.DrawKey:
		d.stopDrawMode()
	case d.cfg.HideKey:
		d.Hide()
	}
}

func (d *Drawer) stopDrawMode() {
	d.drawMode = false
	d.segment.Active = false
	d.resumeControls()
	d.emitStop()
}

// Raycast casts a ray through the normalized pointer position and returns
// the nearest container hit inside the bounding box
func (d *Drawer) Raycast(pointer geometry.Vector2) (geometry.Hit, bool) {
	if d.container == nil || d.camera == nil {
		return geometry.Hit{}, false
	}

	ray := d.camera.Ray(pointer)
	for _, hit := range d.container.Intersect(ray, true) {
		if d.bounds.ContainsPoint(hit.Point) {
			return hit, true
		}
	}
	return geometry.Hit{}, false
}

func (d *Drawer) raycast() (geometry.Vector3, bool) {
	hit, ok := d.Raycast(d.Pointer())
	return hit.Point, ok
}

// suspendControls saves the camera pose, if the controls are live, and
// disables them
func (d *Drawer) suspendControls() {
	if d.controls == nil {
		return
	}

	if d.controls.Enabled() {
		d.snapshot = ControlSnapshot{
			Target:   d.controls.Target(),
			Position: d.controls.Position(),
			Zoom:     d.controls.Zoom(),
		}
		d.hasSnapshot = true
	}

	d.controls.SetEnabled(false)
}

// resumeControls enables the controls and returns them to the saved pose.
// Controls that are already enabled are left alone.
func (d *Drawer) resumeControls() {
	if d.controls == nil || d.controls.Enabled() {
		return
	}

	d.controls.SetEnabled(true)
	if d.hasSnapshot {
		d.controls.SaveState(d.snapshot.Target, d.snapshot.Position, d.snapshot.Zoom)
		d.controls.Reset()
	}
}
