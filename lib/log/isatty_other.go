//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package log

import "io"

func isTerminal(io.Writer) bool {
	return false
}
