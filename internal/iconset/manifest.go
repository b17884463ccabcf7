package iconset

import (
	"encoding/json"
	"os"
)

// ManifestName is the manifest file Xcode looks for inside an
// .appiconset directory.
const ManifestName = "Contents.json"

// Author is the tool tag written into the manifest info block.
const Author = "kafeel-icon-generator"

const idiomMac = "mac"

// Contents mirrors the Contents.json schema of an asset catalog
// icon set.
type Contents struct {
	Images []ImageEntry `json:"images"`
	Info   Info         `json:"info"`
}

// ImageEntry describes one icon file in the set.
type ImageEntry struct {
	Filename string `json:"filename"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
	Size     string `json:"size"`
}

// Info is the static manifest footer.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Manifest builds the Contents.json document for the given specs,
// listing all 1x entries before all 2x entries.
func Manifest(specs []Spec) Contents {
	c := Contents{
		Images: make([]ImageEntry, 0, len(specs)),
		Info:   Info{Author: Author, Version: 1},
	}
	for _, scale := range []int{1, 2} {
		for _, s := range specs {
			if s.Scale != scale {
				continue
			}
			c.Images = append(c.Images, ImageEntry{
				Filename: s.Filename(),
				Idiom:    idiomMac,
				Scale:    s.ScaleString(),
				Size:     s.SizeString(),
			})
		}
	}
	return c
}

// WriteManifest writes the manifest to path as indented JSON.
func WriteManifest(path string, c Contents) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, filePerm)
}
