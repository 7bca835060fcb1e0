// Package panel drives SPI display panels as host surfaces.
//
// Panels keep their own controller RAM in a format of their choosing (RGB565 for
// the ST7789), so they expose a 32-bit memory surface for drawing and convert it when
// the surface is flipped.
package panel

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// ParseRotation parses the rotation names accepted on the command line.
func ParseRotation(s string) (Rotation, bool) {
	switch s {
	case "", "no", "0":
		return NoRotation, true
	case "90", "right", "cw":
		return Rotate90, true
	case "180", "flip":
		return Rotate180, true
	case "270", "left", "ccw":
		return Rotate270, true
	default:
		return NoRotation, false
	}
}

// Config is the panel configuration.
type Config struct {
	// Width of the panel in pixels, 0 for the controller default.
	Width int

	// Height of the panel in pixels, 0 for the controller default.
	Height int

	// Rotation of the panel.
	Rotation Rotation
}

// DefaultConfig uses the controller defaults.
var DefaultConfig = Config{}

// withDefaults returns a copy of c with the controller size filled in.
func (c *Config) withDefaults(width, height int) *Config {
	out := DefaultConfig
	if c != nil {
		out = *c
	}
	if out.Width == 0 {
		out.Width = width
	}
	if out.Height == 0 {
		out.Height = height
	}
	return &out
}
