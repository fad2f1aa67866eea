package windowsink

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config describes the one window trianglix opens.
type Config struct {
	Title  string
	Width  int
	Height int

	GLMajor int
	GLMinor int
}

// WindowSink owns the GLFW window and its GL context. There is at most
// one per process; Close must be called exactly once.
type WindowSink struct {
	cfg    Config
	Window *glfw.Window
}

func New(cfg Config) *WindowSink {
	if cfg.GLMajor == 0 {
		cfg.GLMajor, cfg.GLMinor = 3, 3
	}
	return &WindowSink{cfg: cfg}
}

// Start creates the window and makes its context current on the calling
// thread, which must stay locked to the OS thread.
func (w *WindowSink) Start() error {
	if w.Window != nil {
		return nil
	}
	w.debug("Initializing window")
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, w.cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, w.cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(w.cfg.Width, w.cfg.Height, w.cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("could not create window: %w", err)
	}

	window.MakeContextCurrent()
	w.Window = window

	return nil
}

// FramebufferSize is the drawable size in pixels, which differs from the
// window size on HiDPI screens.
func (w *WindowSink) FramebufferSize() (int, int) {
	return w.Window.GetFramebufferSize()
}

func (w *WindowSink) ShouldClose() bool {
	return w.Window.ShouldClose()
}

func (w *WindowSink) SwapBuffers() {
	w.Window.SwapBuffers()
}

func (w *WindowSink) PollEvents() {
	glfw.PollEvents()
}

func (w *WindowSink) Close() {
	if w.Window == nil {
		return
	}
	w.debug("Destroying window")
	w.Window.Destroy()
	w.Window = nil
	glfw.Terminate()
}

func (w *WindowSink) debug(msg string) {
	slog.Debug(msg, slog.String("module", "window"))
}
