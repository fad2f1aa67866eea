package loader

import (
	"fmt"
	"io"
	"os"
)

// Slurp reads the whole file at path. Any failure is returned with the
// path in the message; a short read is an error.
func Slurp(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not read file `%s`: %w", path, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("could not read file `%s`: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("could not read file `%s`: is a directory", path)
	}

	buf := make([]byte, info.Size())
	_, err = io.ReadFull(f, buf)
	if err != nil {
		return "", fmt.Errorf("could not read file `%s`: %w", path, err)
	}

	return string(buf), nil
}
