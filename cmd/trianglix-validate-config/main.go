package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fosdem/trianglix/lib/config"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintf(stderr, "Usage: %s <config file>\n", args[0])
		return 1
	}
	cfg, err := config.Parse(args[1])
	if err != nil {
		fmt.Fprintf(stdout, "Config invalid: %s\n", err)
		return 1
	}

	fmt.Fprint(stdout, "Config valid!\n\n")

	fmt.Fprint(stdout, cfg)

	return 0
}
