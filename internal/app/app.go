// Package app is the interactive raylib viewer: it shows a model and lets
// the user draw a segment on it while the draw key is held.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/segdraw/internal/config"
	"github.com/philipparndt/segdraw/internal/session"
	"github.com/philipparndt/segdraw/pkg/analysis"
	"github.com/philipparndt/segdraw/pkg/geometry"
)

// Options selects what the viewer opens
type Options struct {
	ModelFile  string
	ConfigFile string // optional, watched for bounding box changes
	Config     config.Config
	Overrides  config.Overrides // reapplied on config reload
}

type App struct {
	Session   *session.Session
	Camera    CameraState
	Model     ModelData
	View      ViewSettings
	Pointer   PointerState
	FileWatch FileWatchState
	Draws     DrawLog
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	model, err := loadModel(opts.ModelFile)
	if err != nil {
		return err
	}

	sess, err := session.New(model, opts.Config)
	if err != nil {
		return err
	}

	app := &App{
		Session: sess,
		View: ViewSettings{
			showFilled:      true,
			showBoundingBox: true,
			showHelp:        true,
		},
		FileWatch: FileWatchState{
			sourceFile: opts.ModelFile,
			configFile: opts.ConfigFile,
			overrides:  opts.Overrides,
			loaded:     make(chan loadResult, 1),
		},
	}
	app.registerListeners()

	if opts.Config.Watch {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(opts.Config.Width), int32(opts.Config.Height), "segdraw - "+model.Name)
	rl.SetTargetFPS(60)
	// Escape may be the hide key, only closing the window quits
	rl.SetExitKey(rl.KeyNull)

	app.Model.mesh = stlToRaylibMesh(model)
	app.Model.material = rl.LoadMaterialDefault()
	app.Model.summary = analysis.SummarizeModel(model)
	fmt.Printf("Model: %s, %d triangles, avg edge %.2f\n", model.Name, app.Model.summary.TriangleCount, app.Model.summary.AvgEdgeLength)

	for !rl.WindowShouldClose() {
		app.checkFileChanges()
		app.applyLoadedModel()

		app.Session.SetAspect(rl.GetScreenWidth(), rl.GetScreenHeight())
		app.handleInput()
		app.updateCameraAnimation(rl.GetFrameTime())
		app.syncCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showFilled {
			rl.DrawMesh(app.Model.mesh, app.Model.material, rl.MatrixIdentity())
		}
		if app.View.showWireframe {
			app.drawWireframe()
		}
		if app.View.showBoundingBox {
			app.drawBoundingBox()
		}
		app.drawSegment()
		rl.EndMode3D()

		app.drawUI()
		rl.EndDrawing()
	}

	rl.UnloadMesh(&app.Model.mesh)
	rl.CloseWindow()
	return nil
}

// registerListeners logs the drawer events to stdout
func (app *App) registerListeners() {
	d := app.Session.Drawer

	d.OnStartInteraction(func() {
		fmt.Println("Draw mode on")
	})
	d.OnStopInteraction(func() {
		seg := d.Segment()
		if seg.Visible {
			fmt.Printf("Draw mode off, segment %s -> %s, length %.3f\n",
				analysis.FormatVector(seg.Start), analysis.FormatVector(seg.End), seg.Length())
		} else {
			fmt.Println("Draw mode off")
		}
	})
	d.OnDraw(func(start, end geometry.Vector3) {
		app.Draws.draws++
		fmt.Printf("draw %s -> %s\n", analysis.FormatVector(start), analysis.FormatVector(end))
	})
}
