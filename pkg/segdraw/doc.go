// Package segdraw draws a single 3D line segment on the surface of a scene
// object with the mouse, while a keyboard key is held.
//
// Holding the draw key suspends the camera controls and arms draw mode.
// Pressing the pointer starts the segment at the surface point under the
// cursor, dragging moves its second end, releasing the pointer ends the
// stroke. Releasing the draw key restores the camera controls exactly as they
// were when draw mode started.
//
// The Drawer is driven by the host: it does not subscribe to any input
// source itself. The host must deliver events one at a time, in order, from
// a single goroutine; no method is safe for concurrent use and listeners run
// inline on the caller's goroutine.
package segdraw
