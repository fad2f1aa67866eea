package utils

import (
	"fmt"
	"regexp"
)

var colourPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{8}$`)

// Colour is a normalised RGBA colour as GL consumes it.
type Colour struct {
	R, G, B, A float32
}

func ColourValidate(c string) bool {
	return colourPattern.MatchString(c)
}

// ColourParse parses a #rrggbbaa hex string.
func ColourParse(s string) (Colour, error) {
	if !ColourValidate(s) {
		return Colour{}, fmt.Errorf("%s is not a valid RGBA hex colour", s)
	}
	var r, g, b, a uint8
	_, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	if err != nil {
		return Colour{}, fmt.Errorf("could not parse colour %s: %w", s, err)
	}
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}, nil
}
