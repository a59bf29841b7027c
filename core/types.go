package core

import "fmt"

type Color struct {
	R, G, B, A float32
}

var ColorBlack = Color{0, 0, 0, 1}

// ParseColor reads up to four components; missing alpha defaults to 1.
func ParseColor(c []float32) (Color, error) {
	switch len(c) {
	case 3:
		return Color{c[0], c[1], c[2], 1}, nil
	case 4:
		return Color{c[0], c[1], c[2], c[3]}, nil
	}
	return Color{}, fmt.Errorf("color needs 3 or 4 components, got %d", len(c))
}
