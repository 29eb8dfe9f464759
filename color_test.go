package polarstrip

import (
	"errors"
	"image/color"
	"testing"
)

func TestColorIsSkip(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want bool
	}{
		{"opaque black", RGB(0, 0, 0), true},
		{"transparent black", RGBA(0, 0, 0, 0), true},
		{"half alpha black", RGBA(0, 0, 0, 128), true},
		{"red", Red, false},
		{"dim blue", RGB(0, 0, 1), false},
		{"transparent white", RGBA(255, 255, 255, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsSkip(); got != tt.want {
				t.Errorf("%v.IsSkip() = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"nrgba passthrough", color.NRGBA{R: 200, G: 100, B: 50, A: 128}, RGBA(200, 100, 50, 128)},
		{"opaque rgba", color.RGBA{R: 10, G: 20, B: 30, A: 255}, RGB(10, 20, 30)},
		{"premultiplied rgba", color.RGBA{R: 64, G: 0, B: 0, A: 128}, RGBA(127, 0, 0, 128)},
		{"gray", color.Gray{Y: 77}, RGB(77, 77, 77)},
		{"transparent", color.RGBA{}, Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromColor(tt.in)
			if !colorApproxEqual(got, tt.want, 1) {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = RGBA(255, 0, 0, 255)
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want (65535, 0, 0, 65535)", r, g, b, a)
	}
}

func TestColorString(t *testing.T) {
	if got := RGBA(1, 0xab, 0xff, 0x80).String(); got != "#01abff80" {
		t.Errorf("String() = %q, want %q", got, "#01abff80")
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#f00", RGB(255, 0, 0)},
		{"0f08", RGBA(0, 255, 0, 136)},
		{"#00ff00", RGB(0, 255, 0)},
		{"FF7800", RGB(255, 120, 0)},
		{"#11223344", RGBA(0x11, 0x22, 0x33, 0x44)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "12", "#12345", "zzzzzz", "#1234567890"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrUnknownColor", in, err)
		}
	}
}
