package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// IsZero reports whether the color is the zero value, used as "inherit" by tui
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Basic named colors, the xterm values of the 16-color palette
var (
	RGBBlack   = RGB{0, 0, 0}
	RGBRed     = RGB{205, 0, 0}
	RGBGreen   = RGB{0, 205, 0}
	RGBYellow  = RGB{205, 205, 0}
	RGBBlue    = RGB{0, 0, 238}
	RGBMagenta = RGB{205, 0, 205}
	RGBCyan    = RGB{0, 205, 205}
	RGBWhite   = RGB{229, 229, 229}
	RGBGray    = RGB{127, 127, 127}
)

// cubeLevels are the channel values of the 6x6x6 palette cube (indices 16-231)
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// RGBTo256 converts RGB to the nearest xterm 256-color palette index
func RGBTo256(c RGB) uint8 {
	r, g, b := int(c.R), int(c.G), int(c.B)
	ri, gi, bi := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cube := uint8(16 + 36*ri + 6*gi + bi)
	cubeDist := sq(r-cubeLevels[ri]) + sq(g-cubeLevels[gi]) + sq(b-cubeLevels[bi])

	// Grayscale ramp 232-255, levels 8..238 step 10
	avg := (r + g + b) / 3
	step := (avg - 8 + 5) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	level := 8 + 10*step
	grayDist := sq(r-level) + sq(g-level) + sq(b-level)

	if grayDist < cubeDist {
		return uint8(232 + step)
	}
	return cube
}

func cubeIndex(v int) int {
	best := 0
	for i := 1; i < len(cubeLevels); i++ {
		if abs(v-cubeLevels[i]) < abs(v-cubeLevels[best]) {
			best = i
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sq(x int) int { return x * x }

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, env := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"WEZTERM_PANE",
	} {
		if os.Getenv(env) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode maps a flag value to a mode; "auto" and unknown values detect
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}
