package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"

	"github.com/philipparndt/segdraw/internal/config"
	"github.com/philipparndt/segdraw/internal/session"
	"github.com/philipparndt/segdraw/pkg/analysis"
	"github.com/philipparndt/segdraw/pkg/stl"
	"github.com/philipparndt/segdraw/pkg/watcher"
)

// CameraState holds the raylib camera mirrored from the session camera
type CameraState struct {
	camera rl.Camera3D
	anim   *cameraAnim // running Home animation, nil when idle
}

// cameraAnim interpolates the orbit pose from one view to another
type cameraAnim struct {
	tween    *gween.Tween
	from, to session.View
	fromZoom float64
}

// ModelData holds the GPU side of the model
type ModelData struct {
	mesh     rl.Mesh
	material rl.Material
	summary  analysis.ModelSummary
}

// ViewSettings holds display settings
type ViewSettings struct {
	showFilled      bool
	showWireframe   bool
	showBoundingBox bool
	showHelp        bool
}

// PointerState tracks the mouse between frames
type PointerState struct {
	lastPos   rl.Vector2
	isPanning bool
}

// loadResult is a model parsed in the background
type loadResult struct {
	model *stl.Model
	err   error
}

// FileWatchState holds file watching and reload state
type FileWatchState struct {
	sourceFile       string
	configFile       string
	overrides        config.Overrides
	fileWatcher      *watcher.FileWatcher
	isLoading        bool
	loadingStartTime time.Time
	loaded           chan loadResult
}

// DrawLog counts draw events for the HUD
type DrawLog struct {
	draws int
}
