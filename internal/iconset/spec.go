// Package iconset produces and repackages the macOS app-icon set:
// rendering every required size/scale variant into an .appiconset
// directory with its Contents.json manifest, and copying the result
// into the .iconset layout iconutil compiles into an .icns bundle.
package iconset

import "fmt"

// Spec names one required icon variant: the nominal point size and a
// 1x or 2x scale factor.
type Spec struct {
	Base  int
	Scale int
}

// Sizes is the full set of variants macOS expects in an app icon set.
var Sizes = []Spec{
	{16, 1}, {16, 2},
	{32, 1}, {32, 2},
	{128, 1}, {128, 2},
	{256, 1}, {256, 2},
	{512, 1}, {512, 2},
}

// PixelSize returns the actual raster dimension (base × scale).
func (s Spec) PixelSize() int { return s.Base * s.Scale }

// Filename returns the asset-catalog file name, e.g. "icon_32x32@2x.png".
func (s Spec) Filename() string {
	suffix := ""
	if s.Scale == 2 {
		suffix = "@2x"
	}
	return fmt.Sprintf("icon_%dx%d%s.png", s.Base, s.Base, suffix)
}

// SizeString returns the nominal size as written in the manifest,
// e.g. "32x32".
func (s Spec) SizeString() string { return fmt.Sprintf("%dx%d", s.Base, s.Base) }

// ScaleString returns the manifest scale tag, "1x" or "2x".
func (s Spec) ScaleString() string { return fmt.Sprintf("%dx", s.Scale) }
