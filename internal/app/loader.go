package app

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/segdraw/internal/config"
	"github.com/philipparndt/segdraw/pkg/analysis"
	"github.com/philipparndt/segdraw/pkg/stl"
	"github.com/philipparndt/segdraw/pkg/watcher"
)

// loadModel loads an STL file
func loadModel(filePath string) (*stl.Model, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext != ".stl" {
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl)", ext)
	}

	model, err := stl.Parse(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse STL file: %w", err)
	}
	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}
	return model, nil
}

// setupFileWatcher watches the model and, when given, the config file
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(500 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := fw.Watch(app.FileWatch.sourceFile, watcher.Model); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}
	fmt.Printf("Watching file for changes: %s\n", app.FileWatch.sourceFile)

	if app.FileWatch.configFile != "" {
		if err := fw.Watch(app.FileWatch.configFile, watcher.Config); err != nil {
			fw.Close()
			return fmt.Errorf("failed to watch files: %w", err)
		}
		fmt.Printf("Watching file for changes: %s\n", app.FileWatch.configFile)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	return nil
}

// checkFileChanges drains the watcher without blocking the frame
func (app *App) checkFileChanges() {
	if app.FileWatch.fileWatcher == nil {
		return
	}

	for {
		select {
		case change, ok := <-app.FileWatch.fileWatcher.Changes():
			if !ok {
				return
			}
			fmt.Printf("\nFile changed: %s\n", change.Path)
			switch change.Kind {
			case watcher.Model:
				app.reloadModel()
			case watcher.Config:
				app.reloadConfig()
			}
		default:
			return
		}
	}
}

// reloadModel parses the model in the background
func (app *App) reloadModel() {
	if app.FileWatch.isLoading {
		return
	}

	app.FileWatch.isLoading = true
	app.FileWatch.loadingStartTime = time.Now()
	fmt.Println("Reloading model...")

	source := app.FileWatch.sourceFile
	done := app.FileWatch.loaded
	go func() {
		model, err := loadModel(source)
		done <- loadResult{model: model, err: err}
	}()
}

// applyLoadedModel swaps in a model parsed by reloadModel. The GPU mesh is
// created here because raylib calls must stay on the main thread.
func (app *App) applyLoadedModel() {
	var res loadResult
	select {
	case res = <-app.FileWatch.loaded:
	default:
		return
	}
	app.FileWatch.isLoading = false

	if res.err != nil {
		fmt.Printf("Error reloading model: %v\n", res.err)
		return
	}

	newMesh := stlToRaylibMesh(res.model)
	oldMesh := app.Model.mesh

	app.Session.ReplaceModel(res.model)
	app.Model.mesh = newMesh
	app.Model.summary = analysis.SummarizeModel(res.model)

	rl.UnloadMesh(&oldMesh)

	elapsed := time.Since(app.FileWatch.loadingStartTime)
	fmt.Printf("Model reloaded successfully (%.2fs)\n", elapsed.Seconds())
}

// reloadConfig re-reads the config file with the command line overrides on
// top. Only the bounding box can change at runtime, keys and style are fixed
// when the drawer is built.
func (app *App) reloadConfig() {
	cfg, err := config.Resolve(app.FileWatch.configFile, app.FileWatch.overrides)
	if err != nil {
		fmt.Printf("Error reloading config: %v\n", err)
		return
	}

	box, _ := cfg.BoundingBox()
	app.Session.Drawer.SetBoundingBox(box)
	fmt.Printf("Bounding box: %s - %s\n", analysis.FormatVector(box.Min), analysis.FormatVector(box.Max))
}
