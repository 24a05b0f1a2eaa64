package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/segdraw/pkg/analysis"
	"github.com/philipparndt/segdraw/pkg/segdraw"
	"github.com/philipparndt/segdraw/version"
)

const (
	lineHeight = int32(20)
	fontSize14 = int32(14)
	fontSize16 = int32(16)
	fontSize18 = int32(18)
)

var stateColors = map[segdraw.State]rl.Color{
	segdraw.Disabled:      rl.Gray,
	segdraw.Idle:          rl.White,
	segdraw.DrawModeArmed: rl.Yellow,
	segdraw.DrawingActive: rl.Green,
}

// drawUI draws the HUD
func (app *App) drawUI() {
	d := app.Session.Drawer
	cfg := d.Config()
	y := int32(10)

	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	if app.FileWatch.isLoading {
		elapsed := time.Since(app.FileWatch.loadingStartTime).Seconds()
		spinnerChars := []string{"|", "/", "-", "\\"}
		loadingText := fmt.Sprintf("%s Loading... (%.1fs)", spinnerChars[int(elapsed*10)%len(spinnerChars)], elapsed)

		boxWidth := int32(250)
		boxX := screenWidth - boxWidth - 20
		rl.DrawRectangle(boxX, 20, boxWidth, 40, rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(boxX, 20, boxWidth, 40, rl.Yellow)
		rl.DrawText(loadingText, boxX+15, 31, fontSize18, rl.Yellow)
	}

	// === MODEL ===
	s := app.Model.summary
	rl.DrawText("Model:", 10, y, fontSize16, rl.Yellow)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  %s", app.Session.Model().Name), 10, y, fontSize14, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Triangles: %d", s.TriangleCount), 10, y, fontSize14, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Size: %.2f x %.2f x %.2f", s.Dimensions.X, s.Dimensions.Y, s.Dimensions.Z), 10, y, fontSize14, rl.White)
	y += lineHeight * 2

	// === SEGMENT ===
	state := d.State()
	rl.DrawText(fmt.Sprintf("Mode: %s", state), 10, y, fontSize16, stateColors[state])
	y += lineHeight

	seg := d.Segment()
	if seg.Visible {
		r := analysis.MeasureSegment(seg.Start, seg.End, app.Session.Model())
		rl.DrawText(fmt.Sprintf("  Start: (%.2f, %.2f, %.2f)", r.Start.X, r.Start.Y, r.Start.Z), 10, y, fontSize14, rl.Green)
		y += lineHeight
		rl.DrawText(fmt.Sprintf("  End:   (%.2f, %.2f, %.2f)", r.End.X, r.End.Y, r.End.Z), 10, y, fontSize14, rl.Green)
		y += lineHeight
		rl.DrawText(fmt.Sprintf("  Length: %.3f", r.Length), 10, y, fontSize14, rl.Green)
		y += lineHeight
		rl.DrawText(fmt.Sprintf("  dX %.2f  dY %.2f  dZ %.2f", r.Delta.X, r.Delta.Y, r.Delta.Z), 10, y, fontSize14, rl.NewColor(100, 200, 255, 255))
		y += lineHeight
	}
	rl.DrawText(fmt.Sprintf("  Draw events: %d", app.Draws.draws), 10, y, fontSize14, rl.LightGray)
	y += lineHeight * 2

	// === CONTROLS ===
	if app.View.showHelp {
		help := []string{
			fmt.Sprintf("Hold %s + drag: draw segment", cfg.DrawKey),
			fmt.Sprintf("%s: hide segment", cfg.HideKey),
			"Drag: rotate, Shift+drag: pan, Wheel: zoom",
			"Home: reset view",
			"W: wireframe, F: faces, B: bounding box, H: help",
		}
		rl.DrawText("Controls:", 10, y, fontSize16, rl.Yellow)
		y += lineHeight
		for _, line := range help {
			rl.DrawText("  "+line, 10, y, fontSize14, rl.LightGray)
			y += lineHeight
		}
	}

	rl.DrawText(fmt.Sprintf("segdraw %s", version.GetVersion()), 10, screenHeight-lineHeight, fontSize14, rl.DarkGray)
}
