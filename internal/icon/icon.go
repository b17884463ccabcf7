// Package icon renders the Kafeel app icon: a purple-to-blue vertical
// gradient with four white activity bars, clipped to the rounded-square
// silhouette macOS expects.
package icon

import (
	"image"

	"github.com/fogleman/gg"
)

// Gradient endpoints, top to bottom (#667eea → #764ba2).
var (
	gradientTop    = [3]int{102, 126, 234}
	gradientBottom = [3]int{118, 75, 162}
)

// Geometry as proportions of the icon size, so every variant from
// 16px to 1024px renders with identical composition.
const (
	cornerRatio     = 0.22 // rounded-square silhouette
	barWidthRatio   = 0.15
	barSpacingRatio = 0.05
	barCornerRatio  = 0.03
	bottomPadRatio  = 0.15 // gap between bars and the bottom edge
)

var (
	barHeightRatios = [4]float64{0.25, 0.45, 0.35, 0.38}
	barAlphas       = [4]float64{1.0, 1.0, 0.9, 0.85}
)

// Draw renders the icon at size×size pixels. The output is
// deterministic for a given size.
func Draw(size int) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)

	// Everything draws inside the rounded-square clip, which leaves
	// the corners fully transparent.
	dc.DrawRoundedRectangle(0, 0, s, s, s*cornerRatio)
	dc.Clip()

	// Vertical gradient, one full-width row per pixel line.
	for y := 0; y < size; y++ {
		t := float64(y) / s
		r := int(float64(gradientTop[0])*(1-t) + float64(gradientBottom[0])*t)
		g := int(float64(gradientTop[1])*(1-t) + float64(gradientBottom[1])*t)
		b := int(float64(gradientTop[2])*(1-t) + float64(gradientBottom[2])*t)
		dc.SetRGBA255(r, g, b, 255)
		dc.DrawRectangle(0, float64(y), s, 1)
		dc.Fill()
	}

	// Activity bars: bottom-aligned, centered as a group.
	barW := s * barWidthRatio
	spacing := s * barSpacingRatio
	radius := s * barCornerRatio
	groupW := 4*barW + 3*spacing
	startX := (s - groupW) / 2
	baseline := s - s*bottomPadRatio

	for i, hr := range barHeightRatios {
		h := s * hr
		x := startX + float64(i)*(barW+spacing)
		dc.SetRGBA(1, 1, 1, barAlphas[i])
		dc.DrawRoundedRectangle(x, baseline-h, barW, h, radius)
		dc.Fill()
	}

	return dc.Image()
}
