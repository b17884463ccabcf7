package iconset

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/kafeel/icongen/internal/icon"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Generate renders every icon in Sizes into dir and writes the
// Contents.json manifest alongside them. The directory is created
// (including parents) if absent; existing files are overwritten.
// progress, if non-nil, is called with each file name as it lands.
func Generate(dir string, progress func(name string)) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return err
	}
	for _, spec := range Sizes {
		img := icon.Draw(spec.PixelSize())
		if err := writePNG(filepath.Join(dir, spec.Filename()), img); err != nil {
			return fmt.Errorf("write %s: %w", spec.Filename(), err)
		}
		if progress != nil {
			progress(spec.Filename())
		}
	}
	if err := WriteManifest(filepath.Join(dir, ManifestName), Manifest(Sizes)); err != nil {
		return fmt.Errorf("write %s: %w", ManifestName, err)
	}
	if progress != nil {
		progress(ManifestName)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
