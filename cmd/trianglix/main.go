package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/fosdem/trianglix/lib/config"
	"github.com/fosdem/trianglix/lib/log"
	"github.com/fosdem/trianglix/lib/mixer"
)

var makeWindowAndDraw = mixer.MakeWindowAndDraw

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args, os.Stderr))
}

// run returns the process exit code: 1 for any fatal error, 0 once the
// window was closed.
func run(args []string, stderr io.Writer) int {
	setupLogging(stderr, slog.LevelInfo)

	if len(args) > 2 {
		fatal("Usage: %s [config file]", args[0])
		return 1
	}

	cfg := config.Default()
	if len(args) == 2 {
		var err error
		cfg, err = config.Parse(args[1])
		if err != nil {
			fatal("%s", err)
			return 1
		}
		setupLogging(stderr, cfg.LogLevelValue())
	}

	err := makeWindowAndDraw(cfg)
	if errors.Is(err, mixer.ErrShaderBuild) {
		fatal("%s", mixer.ErrShaderBuild)
		return 1
	}
	if err != nil {
		fatal("%s", err)
		return 1
	}
	return 0
}

func setupLogging(out io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(log.NewHandlerTo(out, &slog.HandlerOptions{Level: level})))
}

func fatal(msg string, args ...interface{}) {
	slog.Error(fmt.Sprintf(msg, args...))
}
