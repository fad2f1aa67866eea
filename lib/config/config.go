package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fosdem/trianglix/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

const (
	DefaultTitle    = "triangle"
	DefaultWidth    = 500
	DefaultHeight   = 500
	DefaultVertex   = "default.vert"
	DefaultFragment = "default.frag"

	OnErrorAbort    = "abort"
	OnErrorContinue = "continue"
)

// DefaultBackground is the clear colour used when none is configured.
var DefaultBackground = utils.Colour{R: 0.071, G: 0.071, B: 0.071, A: 1.0}

type Config struct {
	LogLevel string `yaml:"log_level"`
	Window   *WindowCfg
	Shaders  *ShadersCfg
	Api      *ApiCfg
}

type WindowCfg struct {
	Title            string
	Width            int
	Height           int
	BackgroundColour string `yaml:"background_colour"`
}

type ShadersCfg struct {
	// nil means the default file name, an empty path means the built-in
	// source
	Vertex   *CfgPath
	Fragment *CfgPath
	OnError  string `yaml:"on_error"`
	Watch    bool
}

type ApiCfg struct {
	Bind           string
	EnableProfiler bool `yaml:"enable_profiler"`
}

// Default is the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	absFilename, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("somehow, %s is malformed: %w", filename, err)
	}

	m := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", filename, err)
	}

	cfg.applyDefaults()
	cfg.resolvePaths(filepath.Dir(absFilename))

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolvePaths runs after applyDefaults so the default shader names are
// also taken relative to the config file.
func (c *Config) resolvePaths(base string) {
	if c.Shaders.Vertex != nil {
		p := c.Shaders.Vertex.Resolve(base)
		c.Shaders.Vertex = &p
	}
	if c.Shaders.Fragment != nil {
		p := c.Shaders.Fragment.Resolve(base)
		c.Shaders.Fragment = &p
	}
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Window == nil {
		c.Window = &WindowCfg{}
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Width == 0 {
		c.Window.Width = DefaultWidth
	}
	if c.Window.Height == 0 {
		c.Window.Height = DefaultHeight
	}
	if c.Shaders == nil {
		c.Shaders = &ShadersCfg{}
	}
	if c.Shaders.Vertex == nil {
		p := CfgPath(DefaultVertex)
		c.Shaders.Vertex = &p
	}
	if c.Shaders.Fragment == nil {
		p := CfgPath(DefaultFragment)
		c.Shaders.Fragment = &p
	}
	if c.Shaders.OnError == "" {
		c.Shaders.OnError = OnErrorAbort
	}
}

func (c *Config) Validate() error {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return fmt.Errorf("log_level %s is invalid: %w", c.LogLevel, err)
	}
	err = c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	err = c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders are invalid: %w", err)
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api is invalid: %w", err)
		}
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width < 0 || w.Height < 0 {
		return fmt.Errorf("window size %dx%d must not be negative", w.Width, w.Height)
	}
	if w.BackgroundColour != "" && !utils.ColourValidate(w.BackgroundColour) {
		return fmt.Errorf("%s is not a valid RGBA hex colour", w.BackgroundColour)
	}
	return nil
}

func (s *ShadersCfg) Validate() error {
	switch s.OnError {
	case OnErrorAbort, OnErrorContinue:
	default:
		return fmt.Errorf("on_error must be %s or %s, not %s", OnErrorAbort, OnErrorContinue, s.OnError)
	}
	if s.Watch && (s.VertexPath() == "" || s.FragmentPath() == "") {
		return fmt.Errorf("cannot watch built-in shader sources")
	}
	return nil
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}

func (c *Config) LogLevelValue() slog.Level {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.LogLevel))
	return level
}

func (w *WindowCfg) Background() utils.Colour {
	if w.BackgroundColour == "" {
		return DefaultBackground
	}
	c, err := utils.ColourParse(w.BackgroundColour)
	if err != nil {
		return DefaultBackground
	}
	return c
}

func (s *ShadersCfg) VertexPath() string {
	if s.Vertex == nil {
		return DefaultVertex
	}
	return string(*s.Vertex)
}

func (s *ShadersCfg) FragmentPath() string {
	if s.Fragment == nil {
		return DefaultFragment
	}
	return string(*s.Fragment)
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %s (%dx%d)\n", c.Window.Title, c.Window.Width, c.Window.Height))

	b.WriteString("\nShaders:\n")
	for _, s := range []struct{ stage, path string }{
		{"vertex", c.Shaders.VertexPath()},
		{"fragment", c.Shaders.FragmentPath()},
	} {
		if s.path == "" {
			s.path = "(built-in)"
		}
		b.WriteString(fmt.Sprintf("  %s: %s\n", s.stage, s.path))
	}
	b.WriteString(fmt.Sprintf("  on error: %s\n", c.Shaders.OnError))

	if c.Api != nil {
		b.WriteString("\nApi:\n")
		b.WriteString(fmt.Sprintf("  %s\n", c.Api.Bind))
	}

	return b.String()
}
