package iconset

import (
	"io"
	"os"
	"path/filepath"
)

// repackNames maps asset-catalog file names to the names iconutil
// expects. The two conventions currently agree, but the table stays
// explicit so a future divergence is a one-line edit.
var repackNames = [][2]string{
	{"icon_16x16.png", "icon_16x16.png"},
	{"icon_16x16@2x.png", "icon_16x16@2x.png"},
	{"icon_32x32.png", "icon_32x32.png"},
	{"icon_32x32@2x.png", "icon_32x32@2x.png"},
	{"icon_128x128.png", "icon_128x128.png"},
	{"icon_128x128@2x.png", "icon_128x128@2x.png"},
	{"icon_256x256.png", "icon_256x256.png"},
	{"icon_256x256@2x.png", "icon_256x256@2x.png"},
	{"icon_512x512.png", "icon_512x512.png"},
	{"icon_512x512@2x.png", "icon_512x512@2x.png"},
}

// Repackage copies rendered icons from srcDir into destDir under the
// names iconutil expects. Missing source files are skipped silently;
// the pixel data is never touched. progress, if non-nil, is called
// with each destination name written.
func Repackage(srcDir, destDir string, progress func(name string)) error {
	if err := os.MkdirAll(destDir, dirPerm); err != nil {
		return err
	}
	for _, m := range repackNames {
		src := filepath.Join(srcDir, m[0])
		if _, err := os.Stat(src); err != nil {
			continue
		}
		if err := copyFile(src, filepath.Join(destDir, m[1])); err != nil {
			return err
		}
		if progress != nil {
			progress(m[1])
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
