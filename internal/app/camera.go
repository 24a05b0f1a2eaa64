package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/philipparndt/segdraw/internal/session"
)

const homeAnimDuration = 0.6 // seconds

// syncCamera copies the session camera into the raylib camera
func (app *App) syncCamera() {
	cam := app.Session.Camera
	app.Camera.camera = rl.Camera3D{
		Position:   toRaylib(cam.Position),
		Target:     toRaylib(cam.Target),
		Up:         toRaylib(cam.Up),
		Fovy:       float32(cam.EffectiveFovY()),
		Projection: rl.CameraPerspective,
	}
}

// resetCameraView animates the camera back to the home view. Ignored while
// draw mode holds the controls.
func (app *App) resetCameraView() {
	if !app.Session.Controls.Enabled() {
		return
	}

	from := app.Session.CurrentView()
	to := app.Session.Home()

	// Turn the short way round
	delta := math.Remainder(to.AngleY-from.AngleY, 2*math.Pi)
	to.AngleY = from.AngleY + delta

	app.Camera.anim = &cameraAnim{
		tween:    gween.New(0, 1, homeAnimDuration, ease.OutCubic),
		from:     from,
		to:       to,
		fromZoom: app.Session.Camera.Zoom,
	}
}

// updateCameraAnimation advances a running Home animation
func (app *App) updateCameraAnimation(dt float32) {
	anim := app.Camera.anim
	if anim == nil {
		return
	}

	// Draw mode took over the controls, leave the pose to the drawer
	if !app.Session.Controls.Enabled() {
		app.Camera.anim = nil
		return
	}

	v, done := anim.tween.Update(dt)
	t := float64(v)

	view := session.View{
		Target:   anim.from.Target.Lerp(anim.to.Target, t),
		Distance: lerp(anim.from.Distance, anim.to.Distance, t),
		AngleX:   lerp(anim.from.AngleX, anim.to.AngleX, t),
		AngleY:   lerp(anim.from.AngleY, anim.to.AngleY, t),
	}
	app.Session.Controls.SetView(view.Target, view.Distance, view.AngleX, view.AngleY)
	app.Session.Camera.Zoom = lerp(anim.fromZoom, 1, t)

	if done {
		app.Camera.anim = nil
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
