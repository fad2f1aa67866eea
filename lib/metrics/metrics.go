package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trianglix_frames_rendered_total",
		Help: "Total number of frames drawn and presented",
	})
	ShaderCompileFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trianglix_shader_compile_failures_total",
		Help: "Total number of shader stages that failed to compile",
	}, []string{"stage"})
	ShaderLinkFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trianglix_shader_link_failures_total",
		Help: "Total number of shader programs that failed to link",
	})
	ShaderSourcesStale = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trianglix_shader_sources_stale",
		Help: "1 if a shader source changed on disk after the program was built",
	})
)

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
