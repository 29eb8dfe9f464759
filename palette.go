package polarstrip

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// palette holds the Helios LED color names. Brightness variants
// (brimedium, brilow, brilowest) are derived from the base colors;
// saturation variants (satmedium, satlow, satlowest) come from the
// satColors table.
var palette = buildPalette()

var baseColors = []struct {
	name string
	c    Color
}{
	{"off", RGB(0, 0, 0)},
	{"white", RGB(255, 255, 255)},
	{"red", RGB(255, 0, 0)},
	{"coralorange", RGB(255, 30, 0)},
	{"orange", RGB(255, 60, 0)},
	{"yellow", RGB(255, 120, 0)},
	{"limegreen", RGB(89, 255, 0)},
	{"green", RGB(0, 255, 0)},
	{"seafoam", RGB(0, 255, 60)},
	{"turquoise", RGB(0, 255, 209)},
	{"iceblue", RGB(0, 167, 255)},
	{"lightblue", RGB(0, 71, 255)},
	{"blue", RGB(0, 0, 255)},
	{"royalblue", RGB(29, 0, 255)},
	{"purple", RGB(131, 0, 255)},
	{"pink", RGB(210, 0, 255)},
	{"hotpink", RGB(255, 0, 180)},
	{"magenta", RGB(255, 0, 60)},
}

// brightness levels scale the 0..255 range down to the given peak.
var brightness = []struct {
	suffix string
	peak   uint32
}{
	{"brimedium", 120},
	{"brilow", 60},
	{"brilowest", 10},
}

// satColors lists the desaturated variants of every hue. The device firmware
// tunes these by hand, so they are not derived.
var satColors = []struct {
	name                string
	medium, low, lowest Color
}{
	{"red", RGB(255, 34, 34), RGB(255, 85, 85), RGB(255, 125, 125)},
	{"coralorange", RGB(255, 60, 34), RGB(255, 105, 85), RGB(255, 140, 125)},
	{"orange", RGB(255, 86, 34), RGB(255, 125, 85), RGB(255, 155, 125)},
	{"yellow", RGB(255, 138, 34), RGB(255, 165, 85), RGB(255, 186, 125)},
	{"limegreen", RGB(111, 255, 34), RGB(144, 255, 85), RGB(170, 255, 125)},
	{"green", RGB(34, 255, 34), RGB(85, 255, 85), RGB(125, 255, 125)},
	{"seafoam", RGB(34, 255, 86), RGB(85, 255, 125), RGB(125, 255, 155)},
	{"turquoise", RGB(34, 255, 215), RGB(85, 255, 224), RGB(125, 255, 231)},
	{"iceblue", RGB(34, 179, 255), RGB(85, 196, 255), RGB(125, 210, 255)},
	{"lightblue", RGB(34, 96, 255), RGB(85, 132, 255), RGB(125, 161, 255)},
	{"blue", RGB(34, 34, 255), RGB(85, 85, 255), RGB(125, 125, 255)},
	{"royalblue", RGB(60, 34, 255), RGB(104, 85, 255), RGB(139, 125, 255)},
	{"purple", RGB(148, 34, 255), RGB(172, 85, 255), RGB(191, 125, 255)},
	{"pink", RGB(216, 34, 255), RGB(224, 85, 255), RGB(232, 125, 255)},
	{"hotpink", RGB(255, 34, 190), RGB(255, 85, 205), RGB(255, 125, 216)},
	{"magenta", RGB(255, 34, 86), RGB(255, 85, 125), RGB(255, 125, 155)},
}

func buildPalette() map[string]Color {
	m := make(map[string]Color, len(baseColors)*(len(brightness)+1)+len(satColors)*3)
	for _, bc := range baseColors {
		m[bc.name] = bc.c
		if bc.name == "off" {
			continue
		}
		for _, b := range brightness {
			m[bc.name+b.suffix] = RGB(
				scaleChannel(bc.c.R, b.peak),
				scaleChannel(bc.c.G, b.peak),
				scaleChannel(bc.c.B, b.peak),
			)
		}
	}
	for _, sc := range satColors {
		m[sc.name+"satmedium"] = sc.medium
		m[sc.name+"satlow"] = sc.low
		m[sc.name+"satlowest"] = sc.lowest
	}
	return m
}

func scaleChannel(v uint8, peak uint32) uint8 {
	return uint8(uint32(v) * peak / 255)
}

// Named returns the palette color with the given name. Matching ignores case.
func Named(name string) (Color, bool) {
	c, ok := palette[cases.Fold().String(name)]
	return c, ok
}

// ParseColor resolves a palette name or a hex value.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := Named(s); ok {
		return c, nil
	}
	return ParseHex(s)
}

// ParseColorset parses a comma-separated list of palette names or hex values,
// e.g. "red,off,#00ff00".
func ParseColorset(s string) ([]Color, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("polarstrip: parse colorset: %w", ErrEmptyStrip)
	}
	parts := strings.Split(s, ",")
	colors := make([]Color, 0, len(parts))
	for _, p := range parts {
		c, err := ParseColor(p)
		if err != nil {
			return nil, fmt.Errorf("polarstrip: parse colorset: %w", err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}
