package mixer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fosdem/trianglix/lib/api"
	"github.com/fosdem/trianglix/lib/config"
	"github.com/fosdem/trianglix/lib/rendering"
	"github.com/fosdem/trianglix/lib/rendering/gpu"
	"github.com/fosdem/trianglix/lib/rendering/gpu/gldriver"
	"github.com/fosdem/trianglix/lib/rendering/shaders"
	"github.com/fosdem/trianglix/lib/renderloop"
	"github.com/fosdem/trianglix/lib/shaderwatch"
	"github.com/fosdem/trianglix/lib/sink/windowsink"
	"github.com/fosdem/trianglix/lib/stats"
)

// ErrShaderBuild wraps shader compile and link failures that abort
// startup; the diagnostic has already been logged by then.
var ErrShaderBuild = errors.New("shader program could not be built")

// MakeWindowAndDraw opens the window, builds the shader program, uploads
// the triangle and draws it until the window is closed. It must run on
// the main, OS-locked thread.
func MakeWindowAndDraw(cfg *config.Config) error {
	vertexSource, fragmentSource, err := shaders.LoadSources(cfg.Shaders.VertexPath(), cfg.Shaders.FragmentPath())
	if err != nil {
		return fmt.Errorf("could not load shaders: %w", err)
	}

	window := windowsink.New(windowsink.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	})
	err = window.Start()
	if err != nil {
		return fmt.Errorf("could not open window: %w", err)
	}
	defer window.Close()

	drv, err := gldriver.Init()
	if err != nil {
		return fmt.Errorf("could not initialise renderer: %w", err)
	}
	log("OpenGL version %s", drv.Version())

	width, height := window.FramebufferSize()
	drv.Viewport(0, 0, int32(width), int32(height))

	st := stats.New()

	program, err := buildProgram(drv, vertexSource, fragmentSource, cfg.Shaders, st)
	if err != nil {
		return err
	}

	mesh, err := rendering.NewMesh(drv, rendering.TriangleVertices, rendering.TriangleIndices)
	if err != nil {
		return fmt.Errorf("could not upload geometry: %w", err)
	}

	loop := renderloop.New(drv, window, program.ID, mesh, cfg.Window.Background(), st)
	loop.SetFramebufferSize(width, height)

	theApi := api.ServeInBackground(cfg.Api, loop, st)
	if theApi != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = theApi.Shutdown(ctx)
		}()
	}

	if cfg.Shaders.Watch {
		watcher, err := shaderwatch.New(st, cfg.Shaders.VertexPath(), cfg.Shaders.FragmentPath())
		if err != nil {
			slog.Warn(fmt.Sprintf("not watching shaders: %s", err), slog.String("module", "mixer"))
		} else {
			watcher.Start()
			defer func() {
				_ = watcher.Close()
			}()
		}
	}

	loop.Run()
	return nil
}

// buildProgram applies the on_error policy to a shader build. With
// continue the failed program is returned with ID 0, which draws nothing.
func buildProgram(drv gpu.Driver, vertexSource, fragmentSource string, cfg *config.ShadersCfg, st *stats.Stats) (*shaders.Program, error) {
	program, err := shaders.Build(drv, vertexSource, fragmentSource)
	st.SetShader(program.State.String(), program.Log)
	if err == nil {
		return program, nil
	}
	if cfg.OnError != config.OnErrorContinue {
		return nil, fmt.Errorf("%w: %w", ErrShaderBuild, err)
	}
	slog.Warn("continuing without a valid shader program, nothing will be drawn", slog.String("module", "mixer"))
	program.ID = 0
	return program, nil
}

func log(msg string, args ...interface{}) {
	slog.Info(fmt.Sprintf(msg, args...), slog.String("module", "mixer"))
}
