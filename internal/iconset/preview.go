package iconset

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/kafeel/icongen/internal/icon"
)

// PreviewCell is the pixel size of one tile in the preview sheet.
const PreviewCell = 128

// Preview renders each variant and scales it into a fixed-size cell
// of a horizontal contact sheet, so the whole set can be eyeballed in
// one image.
func Preview(specs []Spec) image.Image {
	sheet := image.NewRGBA(image.Rect(0, 0, PreviewCell*len(specs), PreviewCell))
	for i, s := range specs {
		img := icon.Draw(s.PixelSize())
		cell := image.Rect(i*PreviewCell, 0, (i+1)*PreviewCell, PreviewCell)
		draw.CatmullRom.Scale(sheet, cell, img, img.Bounds(), draw.Over, nil)
	}
	return sheet
}

// WritePreview writes the contact sheet for specs to path as a PNG.
func WritePreview(path string, specs []Spec) error {
	return writePNG(path, Preview(specs))
}
