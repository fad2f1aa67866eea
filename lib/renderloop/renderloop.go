package renderloop

import (
	"context"
	"image"
	"log/slog"
	"sync/atomic"

	"github.com/fosdem/trianglix/lib/metrics"
	"github.com/fosdem/trianglix/lib/rendering"
	"github.com/fosdem/trianglix/lib/rendering/gpu"
	"github.com/fosdem/trianglix/lib/stats"
	"github.com/fosdem/trianglix/lib/utils"
)

// Surface is where frames are presented; windowsink.WindowSink is one.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

type Loop struct {
	drv     gpu.Driver
	surface Surface
	program uint32
	mesh    *rendering.Mesh
	bg      utils.Colour
	stats   *stats.Stats

	width, height int
	captures      chan captureRequest

	shutdownRequested atomic.Bool
}

type captureRequest struct {
	reply chan *image.NRGBA
}

func New(drv gpu.Driver, surface Surface, program uint32, mesh *rendering.Mesh, bg utils.Colour, st *stats.Stats) *Loop {
	if st == nil {
		st = stats.New()
	}
	return &Loop{
		drv:     drv,
		surface: surface,
		program: program,
		mesh:    mesh,
		bg:      bg,
		stats:   st,

		captures: make(chan captureRequest),
	}
}

// SetFramebufferSize sets the size used when capturing frames.
func (l *Loop) SetFramebufferSize(width, height int) {
	l.width = width
	l.height = height
}

// RequestShutdown makes Run return after the current frame. Safe to call
// from any goroutine.
func (l *Loop) RequestShutdown() {
	l.shutdownRequested.Store(true)
}

func (l *Loop) ShutdownRequested() bool {
	return l.shutdownRequested.Load()
}

// Run draws until the surface is closed or shutdown is requested.
func (l *Loop) Run() {
	for !l.ShutdownRequested() && !l.surface.ShouldClose() {
		l.DrawFrame()
		l.serviceCaptures()
		l.surface.SwapBuffers()
		l.surface.PollEvents()

		l.stats.Update()
		metrics.FramesRendered.Inc()
	}
	slog.Debug("render loop finished", slog.String("module", "renderloop"))
}

func (l *Loop) DrawFrame() {
	l.drv.ClearColor(l.bg.R, l.bg.G, l.bg.B, l.bg.A)
	l.drv.Clear()
	l.drv.UseProgram(l.program)
	l.mesh.Bind()
	l.mesh.Draw()
}

// Capture returns a copy of the next frame drawn. It can be called from
// any goroutine; the read back happens on the render thread.
func (l *Loop) Capture(ctx context.Context) (image.Image, error) {
	req := captureRequest{reply: make(chan *image.NRGBA, 1)}
	select {
	case l.captures <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case img := <-req.reply:
		return img, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (l *Loop) serviceCaptures() {
	for {
		select {
		case req := <-l.captures:
			req.reply <- rendering.GetFrameFromGPU(l.drv, l.width, l.height)
		default:
			return
		}
	}
}
