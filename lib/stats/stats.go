package stats

import (
	"encoding/json"
	"sync"
	"time"
)

type Report struct {
	Frames       uint64  `json:"frames"`
	Uptime       float64 `json:"uptime"`
	FPS          uint64  `json:"fps"`
	WsClients    int     `json:"ws_clients"`
	ShaderState  string  `json:"shader_state"`
	ShaderLog    string  `json:"shader_log,omitempty"`
	ShadersStale bool    `json:"shaders_stale"`
}

// Stats is written by the render loop and read by the API goroutines.
type Stats struct {
	mu     sync.Mutex
	report Report

	frameCounter uint64
	frameTimer   time.Time
	start        time.Time

	now func() time.Time
}

func New() *Stats {
	s := &Stats{now: time.Now}
	s.start = s.now()
	s.frameTimer = s.start
	return s
}

// Update is called once per presented frame.
func (s *Stats) Update() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.report.Frames++
	s.frameCounter++
	if now.Sub(s.frameTimer) > 1*time.Second {
		s.report.FPS = s.frameCounter
		s.frameCounter = 0
		s.frameTimer = now
	}

	s.report.Uptime = float64(now.Sub(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) SetShader(state string, log string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.ShaderState = state
	s.report.ShaderLog = log
}

func (s *Stats) SetShadersStale(stale bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.ShadersStale = stale
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report.WsClients = n
}

func (s *Stats) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

func (s *Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Report())
}
