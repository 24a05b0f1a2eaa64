package segdraw

import "github.com/philipparndt/segdraw/pkg/geometry"

// EventKind names the notifications a Drawer emits
type EventKind int

const (
	// StartInteraction fires when draw mode is armed
	StartInteraction EventKind = iota
	// StopInteraction fires when draw mode is released
	StopInteraction
	// Draw fires with both endpoints whenever the segment is redrawn by a
	// drag or by DrawSegment
	Draw
)

// String returns the event name
func (k EventKind) String() string {
	switch k {
	case StartInteraction:
		return "startInteraction"
	case StopInteraction:
		return "stopInteraction"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// ParseEventKind resolves an event name as returned by String
func ParseEventKind(name string) (EventKind, bool) {
	for _, k := range []EventKind{StartInteraction, StopInteraction, Draw} {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// DrawFunc receives copies of the segment endpoints
type DrawFunc func(start, end geometry.Vector3)

type listeners struct {
	start []func()
	stop  []func()
	draw  []DrawFunc
}

// OnStartInteraction registers fn to run when draw mode is armed
func (d *Drawer) OnStartInteraction(fn func()) {
	if fn != nil {
		d.listeners.start = append(d.listeners.start, fn)
	}
}

// OnStopInteraction registers fn to run when draw mode is released
func (d *Drawer) OnStopInteraction(fn func()) {
	if fn != nil {
		d.listeners.stop = append(d.listeners.stop, fn)
	}
}

// OnDraw registers fn to run every time the segment is redrawn
func (d *Drawer) OnDraw(fn DrawFunc) {
	if fn != nil {
		d.listeners.draw = append(d.listeners.draw, fn)
	}
}

// On registers callback for kind. It accepts func() for the interaction
// events and func(start, end geometry.Vector3) or DrawFunc for Draw.
// Unknown kinds, nil callbacks and callbacks of the wrong shape are ignored
// without error.
func (d *Drawer) On(kind EventKind, callback any) {
	switch kind {
	case StartInteraction:
		if fn, ok := callback.(func()); ok {
			d.OnStartInteraction(fn)
		}
	case StopInteraction:
		if fn, ok := callback.(func()); ok {
			d.OnStopInteraction(fn)
		}
	case Draw:
		switch fn := callback.(type) {
		case DrawFunc:
			d.OnDraw(fn)
		case func(start, end geometry.Vector3):
			d.OnDraw(fn)
		}
	}
}

// Listeners run in registration order. A panicking listener is not
// recovered and aborts the remaining ones.
func (d *Drawer) emitStart() {
	for _, fn := range d.listeners.start {
		fn()
	}
}

func (d *Drawer) emitStop() {
	for _, fn := range d.listeners.stop {
		fn()
	}
}

func (d *Drawer) emitDraw() {
	for _, fn := range d.listeners.draw {
		fn(d.segment.Start, d.segment.End)
	}
}
