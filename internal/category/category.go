// Package category defines the closed set of surface categories the analyzer
// assigns to pixels, together with their reference and display colors.
package category

import (
	"fmt"
)

// Category identifies one surface class. The zero-based constants below are
// the canonical enumeration order: the distance classifier iterates them in
// this order, so the first category wins distance ties.
type Category int

const (
	Sky Category = iota
	Pavement
	Rock
	Building
	Vegetation
	Tunnel
	// Unknown is the sentinel for pixels no rule or reference color claims.
	Unknown
)

// NumAssignable is the number of real categories, excluding Unknown.
const NumAssignable = int(Unknown)

// Count is the total number of labels including Unknown.
const Count = int(Unknown) + 1

// All lists every category including Unknown, in canonical order.
var All = []Category{Sky, Pavement, Rock, Building, Vegetation, Tunnel, Unknown}

// Assignable lists the categories a classifier may assign by color rule,
// in canonical (tie-break) order.
var Assignable = []Category{Sky, Pavement, Rock, Building, Vegetation, Tunnel}

func (c Category) String() string {
	switch c {
	case Sky:
		return "sky"
	case Pavement:
		return "pavement"
	case Rock:
		return "rock"
	case Building:
		return "building"
	case Vegetation:
		return "vegetation"
	case Tunnel:
		return "tunnel"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Valid reports whether c is one of the defined labels.
func (c Category) Valid() bool {
	return c >= Sky && c <= Unknown
}

// BGR is an 8-bit color in blue-green-red channel order, the order every raw
// image buffer in this module uses.
type BGR struct {
	B, G, R uint8
}

// RGB is an 8-bit color in red-green-blue channel order, used for display
// colors only.
type RGB struct {
	R, G, B uint8
}

// ToBGR reorders the channels.
func (c RGB) ToBGR() BGR {
	return BGR{B: c.B, G: c.G, R: c.R}
}

// Palette carries the reference colors used for distance matching and the
// display colors used for rendering. It is plain configuration data passed
// explicitly into classifiers and aggregators so alternative schemes can
// coexist in tests.
type Palette struct {
	// Reference colors in BGR, indexed by assignable category.
	Reference [NumAssignable]BGR
	// Display colors in RGB, indexed by category including Unknown.
	Display [Count]RGB
}

// DefaultPalette returns the built-in tunnel survey palette.
func DefaultPalette() Palette {
	var p Palette
	p.Reference[Sky] = BGR{B: 235, G: 206, R: 135}
	p.Reference[Pavement] = BGR{B: 128, G: 128, R: 128}
	p.Reference[Rock] = BGR{B: 19, G: 69, R: 139}
	p.Reference[Building] = BGR{B: 192, G: 192, R: 192}
	p.Reference[Vegetation] = BGR{B: 34, G: 139, R: 34}
	p.Reference[Tunnel] = BGR{B: 50, G: 50, R: 50}

	p.Display[Sky] = RGB{R: 135, G: 206, B: 235}
	p.Display[Pavement] = RGB{R: 169, G: 169, B: 169}
	p.Display[Rock] = RGB{R: 205, G: 133, B: 63}
	p.Display[Building] = RGB{R: 192, G: 192, B: 192}
	p.Display[Vegetation] = RGB{R: 34, G: 139, B: 34}
	p.Display[Tunnel] = RGB{R: 70, G: 70, B: 70}
	p.Display[Unknown] = RGB{R: 255, G: 0, B: 255}
	return p
}

// DisplayBGR returns the display color of a category in BGR order.
func (p Palette) DisplayBGR(c Category) BGR {
	return p.Display[c].ToBGR()
}

// DisplayTable returns the display colors of the assignable categories as a
// BGR reference table, keyed by category. This is the table the color-image
// aggregation path matches re-loaded display images against.
func (p Palette) DisplayTable() map[Category]BGR {
	table := make(map[Category]BGR, NumAssignable)
	for _, c := range Assignable {
		table[c] = p.DisplayBGR(c)
	}
	return table
}
