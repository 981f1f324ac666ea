package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is an RGBA color with channels normalized to [0,1].
type Color struct {
	R, G, B, A float64
}

// Transparent is a sentinel color: fully transparent magenta. Stylesheets
// refer to it by the keyword `transparent`.
var Transparent = Color{R: 1, G: 0, B: 1, A: 0}

func (c Color) String() string {
	return fmt.Sprintf("rgba(%.3g,%.3g,%.3g,%.3g)", c.R, c.G, c.B, c.A)
}

// RGBA makes Color satisfy the color.Color interface of the standard
// library's image/color package.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R * c.A * 0xffff)
	g = uint32(c.G * c.A * 0xffff)
	b = uint32(c.B * c.A * 0xffff)
	a = uint32(c.A * 0xffff)
	return
}

// rgb8 builds a fully opaque color from 8-bit channels.
func rgb8(r, g, b int) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// ColorFromName looks up one of the ~140 supported color names
// (lowercase). The name `transparent` maps to the transparent sentinel.
func ColorFromName(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

// IsColorName is a predicate for the color-name lookup table, used by the
// tokenizer to classify identifiers.
func IsColorName(name string) bool {
	_, ok := colorNames[name]
	return ok
}

// ParseColor decodes a color literal in one of the 5 supported syntaxes:
// a color name, `#RRGGBB`, `rgb(r,g,b)`, `rgba(r,g,b,a)`,
// `hsl(h,s%,l%)` or `hsla(h,s%,l%,a)`. r,g,b are 0–255, h is 0–360,
// s,l are percentages, a is 0–1. Alpha defaults to 1 when omitted.
func ParseColor(lit string) (Color, error) {
	lit = strings.TrimSpace(lit)
	if c, ok := colorNames[lit]; ok {
		return c, nil
	}
	switch {
	case strings.HasPrefix(lit, "#"):
		return parseHexColor(lit)
	case strings.HasPrefix(lit, "rgba(") || strings.HasPrefix(lit, "rgb("):
		return parseRGBColor(lit)
	case strings.HasPrefix(lit, "hsla(") || strings.HasPrefix(lit, "hsl("):
		return parseHSLColor(lit)
	}
	return Color{}, fmt.Errorf("cannot decode %q as a color", lit)
}

func parseHexColor(lit string) (Color, error) {
	if len(lit) != 7 {
		return Color{}, fmt.Errorf("hex color %q is not of form #RRGGBB", lit)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(lit[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("hex color %q is not of form #RRGGBB", lit)
		}
		ch[i] = float64(v) / 255
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: 1}, nil
}

// funcArgs strips `name( ... )` and splits the arguments at commas.
func funcArgs(lit string) []float64 {
	open := strings.IndexByte(lit, '(')
	clos := strings.LastIndexByte(lit, ')')
	if open < 0 || clos < open {
		return nil
	}
	parts := strings.Split(lit[open+1:clos], ",")
	args := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSuffix(strings.TrimSpace(p), "%")
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil
		}
		args = append(args, f)
	}
	return args
}

func parseRGBColor(lit string) (Color, error) {
	args := funcArgs(lit)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("cannot decode %q as rgb()/rgba() color", lit)
	}
	c := Color{R: args[0] / 255, G: args[1] / 255, B: args[2] / 255, A: 1}
	if len(args) == 4 {
		c.A = args[3]
	}
	return c, nil
}

func parseHSLColor(lit string) (Color, error) {
	args := funcArgs(lit)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("cannot decode %q as hsl()/hsla() color", lit)
	}
	h, s, l := args[0]/360, args[1]/100, args[2]/100
	c := Color{A: 1}
	if len(args) == 4 {
		c.A = args[3]
	}
	if s <= 0.00001 {
		// achromatic: gray at the lightness level
		c.R, c.G, c.B = l, l, l
		return c, nil
	}
	q := l + s - l*s
	if l < 0.5 {
		q = l * (1 + s)
	}
	p := 2*l - q
	c.R = hueToChannel(p, q, h+1.0/3.0)
	c.G = hueToChannel(p, q, h)
	c.B = hueToChannel(p, q, h-1.0/3.0)
	return c, nil
}

func hueToChannel(p, q, t float64) float64 {
	t = t - math.Floor(t)
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// colorNames holds the supported CSS color keywords
// (https://www.quackit.com/css/css_color_codes.cfm).
var colorNames = map[string]Color{
	"transparent": Transparent,
	// reds
	"indianred":   rgb8(205, 92, 92),
	"lightcoral":  rgb8(240, 128, 128),
	"salmon":      rgb8(250, 128, 114),
	"darksalmon":  rgb8(233, 150, 122),
	"lightsalmon": rgb8(255, 160, 122),
	"crimson":     rgb8(220, 20, 60),
	"red":         rgb8(255, 0, 0),
	"firebrick":   rgb8(178, 34, 34),
	"darkred":     rgb8(139, 0, 0),
	// pinks
	"pink":            rgb8(255, 192, 203),
	"lightpink":       rgb8(255, 182, 193),
	"hotpink":         rgb8(255, 105, 180),
	"deeppink":        rgb8(255, 20, 147),
	"mediumvioletred": rgb8(199, 21, 133),
	"palevioletred":   rgb8(219, 112, 147),
	// oranges
	"coral":      rgb8(255, 127, 80),
	"tomato":     rgb8(255, 99, 71),
	"orangered":  rgb8(255, 69, 0),
	"darkorange": rgb8(255, 140, 0),
	"orange":     rgb8(255, 165, 0),
	// yellows
	"gold":                 rgb8(255, 215, 0),
	"yellow":               rgb8(255, 255, 0),
	"lightyellow":          rgb8(255, 255, 224),
	"lemonchiffon":         rgb8(255, 250, 205),
	"lightgoldenrodyellow": rgb8(250, 250, 210),
	"papayawhip":           rgb8(255, 239, 213),
	"moccasin":             rgb8(255, 228, 181),
	"peachpuff":            rgb8(255, 218, 185),
	"palegoldenrod":        rgb8(238, 232, 170),
	"khaki":                rgb8(240, 230, 140),
	"darkkhaki":            rgb8(189, 183, 107),
	// purples
	"lavender":        rgb8(230, 230, 250),
	"thistle":         rgb8(216, 191, 216),
	"plum":            rgb8(221, 160, 221),
	"violet":          rgb8(238, 130, 238),
	"orchid":          rgb8(218, 112, 214),
	"fuchsia":         rgb8(255, 0, 255),
	"magenta":         rgb8(255, 0, 255),
	"mediumorchid":    rgb8(186, 85, 211),
	"mediumpurple":    rgb8(147, 112, 219),
	"blueviolet":      rgb8(138, 43, 226),
	"darkviolet":      rgb8(148, 0, 211),
	"darkorchid":      rgb8(153, 50, 204),
	"darkmagenta":     rgb8(139, 0, 139),
	"purple":          rgb8(128, 0, 128),
	"rebeccapurple":   rgb8(102, 51, 153),
	"indigo":          rgb8(75, 0, 130),
	"mediumslateblue": rgb8(123, 104, 238),
	"slateblue":       rgb8(106, 90, 205),
	"darkslateblue":   rgb8(72, 61, 139),
	// greens
	"greenyellow":       rgb8(173, 255, 47),
	"chartreuse":        rgb8(127, 255, 0),
	"lawngreen":         rgb8(124, 252, 0),
	"lime":              rgb8(0, 255, 0),
	"limegreen":         rgb8(50, 205, 50),
	"palegreen":         rgb8(152, 251, 152),
	"lightgreen":        rgb8(144, 238, 144),
	"mediumspringgreen": rgb8(0, 250, 154),
	"springgreen":       rgb8(0, 255, 127),
	"mediumseagreen":    rgb8(60, 179, 113),
	"seagreen":          rgb8(46, 139, 87),
	"forestgreen":       rgb8(34, 139, 34),
	"green":             rgb8(0, 128, 0),
	"darkgreen":         rgb8(0, 100, 0),
	"yellowgreen":       rgb8(154, 205, 50),
	"olivedrab":         rgb8(107, 142, 35),
	"olive":             rgb8(128, 128, 0),
	"darkolivegreen":    rgb8(85, 107, 47),
	"mediumaquamarine":  rgb8(102, 205, 170),
	"darkseagreen":      rgb8(143, 188, 143),
	"lightseagreen":     rgb8(32, 178, 170),
	"darkcyan":          rgb8(0, 139, 139),
	"teal":              rgb8(0, 128, 128),
	// blues
	"aqua":            rgb8(0, 255, 255),
	"cyan":            rgb8(0, 255, 255),
	"lightcyan":       rgb8(224, 255, 255),
	"paleturquoise":   rgb8(175, 238, 238),
	"aquamarine":      rgb8(127, 255, 212),
	"turquoise":       rgb8(64, 224, 208),
	"mediumturquoise": rgb8(72, 209, 204),
	"darkturquoise":   rgb8(0, 206, 209),
	"cadetblue":       rgb8(95, 158, 160),
	"steelblue":       rgb8(70, 130, 180),
	"lightsteelblue":  rgb8(176, 196, 222),
	"powderblue":      rgb8(176, 224, 230),
	"lightblue":       rgb8(173, 216, 230),
	"skyblue":         rgb8(135, 206, 235),
	"lightskyblue":    rgb8(135, 206, 250),
	"deepskyblue":     rgb8(0, 191, 255),
	"dodgerblue":      rgb8(30, 144, 255),
	"cornflowerblue":  rgb8(100, 149, 237),
	"royalblue":       rgb8(65, 105, 225),
	"blue":            rgb8(0, 0, 255),
	"mediumblue":      rgb8(0, 0, 205),
	"darkblue":        rgb8(0, 0, 139),
	"navy":            rgb8(0, 0, 128),
	"midnightblue":    rgb8(25, 25, 112),
	// browns
	"cornsilk":       rgb8(255, 248, 220),
	"blanchedalmond": rgb8(255, 235, 205),
	"bisque":         rgb8(255, 228, 196),
	"navajowhite":    rgb8(255, 222, 173),
	"wheat":          rgb8(245, 222, 179),
	"burlywood":      rgb8(222, 184, 135),
	"tan":            rgb8(210, 180, 140),
	"rosybrown":      rgb8(188, 143, 143),
	"sandybrown":     rgb8(244, 164, 96),
	"goldenrod":      rgb8(218, 165, 32),
	"darkgoldenrod":  rgb8(184, 134, 11),
	"peru":           rgb8(205, 133, 63),
	"chocolate":      rgb8(210, 105, 30),
	"saddlebrown":    rgb8(139, 69, 19),
	"sienna":         rgb8(160, 82, 45),
	"brown":          rgb8(165, 42, 42),
	"maroon":         rgb8(128, 0, 0),
	// whites
	"white":         rgb8(255, 255, 255),
	"snow":          rgb8(255, 250, 250),
	"honeydew":      rgb8(240, 255, 240),
	"mintcream":     rgb8(245, 255, 250),
	"azure":         rgb8(240, 255, 255),
	"aliceblue":     rgb8(240, 248, 255),
	"ghostwhite":    rgb8(248, 248, 255),
	"whitesmoke":    rgb8(245, 245, 245),
	"seashell":      rgb8(255, 245, 238),
	"beige":         rgb8(245, 245, 220),
	"oldlace":       rgb8(253, 245, 230),
	"floralwhite":   rgb8(255, 250, 240),
	"ivory":         rgb8(255, 255, 240),
	"antiquewhite":  rgb8(250, 235, 215),
	"linen":         rgb8(250, 240, 230),
	"lavenderblush": rgb8(255, 240, 245),
	"mistyrose":     rgb8(255, 228, 225),
	// grays
	"gainsboro":      rgb8(220, 220, 220),
	"lightgray":      rgb8(211, 211, 211),
	"lightgrey":      rgb8(211, 211, 211),
	"silver":         rgb8(192, 192, 192),
	"darkgray":       rgb8(169, 169, 169),
	"darkgrey":       rgb8(169, 169, 169),
	"gray":           rgb8(128, 128, 128),
	"grey":           rgb8(128, 128, 128),
	"dimgray":        rgb8(105, 105, 105),
	"dimgrey":        rgb8(105, 105, 105),
	"lightslategray": rgb8(119, 136, 153),
	"lightslategrey": rgb8(119, 136, 153),
	"slategray":      rgb8(112, 128, 144),
	"slategrey":      rgb8(112, 128, 144),
	"darkslategray":  rgb8(47, 79, 79),
	"darkslategrey":  rgb8(47, 79, 79),
	"black":          rgb8(0, 0, 0),
}
