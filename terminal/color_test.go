package terminal

import "testing"

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"black", RGB{0, 0, 0}, 16},
		{"white", RGB{255, 255, 255}, 231},
		{"pure red", RGB{255, 0, 0}, 196},
		{"pure blue", RGB{0, 0, 255}, 21},
		{"mid gray", RGB{128, 128, 128}, 244},
		{"xterm green", RGBGreen, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.in); got != tt.want {
				t.Errorf("RGBTo256(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("256") != ColorMode256 {
		t.Error("Expected 256 to parse as ColorMode256")
	}
	if ParseColorMode("truecolor") != ColorModeTrueColor {
		t.Error("Expected truecolor to parse as ColorModeTrueColor")
	}
	if ParseColorMode("24BIT") != ColorModeTrueColor {
		t.Error("Expected 24BIT to parse case-insensitively")
	}

	t.Setenv("COLORTERM", "truecolor")
	if ParseColorMode("auto") != ColorModeTrueColor {
		t.Error("Expected auto to detect truecolor from COLORTERM")
	}
}

func TestRGBIsZero(t *testing.T) {
	if !(RGB{}).IsZero() {
		t.Error("Expected zero RGB to report IsZero")
	}
	if RGBBlue.IsZero() {
		t.Error("Expected blue to not report IsZero")
	}
}
