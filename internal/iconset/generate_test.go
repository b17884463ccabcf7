package iconset

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateWritesEveryVariant(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(dir, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, spec := range Sizes {
		path := filepath.Join(dir, spec.Filename())
		f, err := os.Open(path)
		if err != nil {
			t.Errorf("missing %s: %v", spec.Filename(), err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("%s: not a valid PNG: %v", spec.Filename(), err)
			continue
		}
		if cfg.Width != spec.PixelSize() || cfg.Height != spec.PixelSize() {
			t.Errorf("%s: %dx%d px, want %dx%d",
				spec.Filename(), cfg.Width, cfg.Height, spec.PixelSize(), spec.PixelSize())
		}
	}
}

func TestGenerateManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	if err := Generate(dir, nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var c Contents
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("parse manifest: %v", err)
	}

	if len(c.Images) != 10 {
		t.Errorf("manifest lists %d images, want 10", len(c.Images))
	}
	if c.Info.Version != 1 {
		t.Errorf("info.version = %d, want 1", c.Info.Version)
	}

	// Every listed file must actually exist on disk.
	for _, e := range c.Images {
		if _, err := os.Stat(filepath.Join(dir, e.Filename)); err != nil {
			t.Errorf("manifest lists %s but file is missing: %v", e.Filename, err)
		}
	}
}

func TestGenerateCreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "assets", "AppIcon.appiconset")
	if err := Generate(dir, nil); err != nil {
		t.Fatalf("Generate into nested dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon_16x16.png")); err != nil {
		t.Errorf("icon_16x16.png not written: %v", err)
	}
}

func TestGenerateReportsProgress(t *testing.T) {
	dir := t.TempDir()
	var names []string
	err := Generate(dir, func(name string) { names = append(names, name) })
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	// Ten PNGs plus the manifest, manifest last.
	if len(names) != 11 {
		t.Fatalf("progress reported %d files, want 11", len(names))
	}
	if names[len(names)-1] != ManifestName {
		t.Errorf("last progress entry = %q, want %q", names[len(names)-1], ManifestName)
	}
}
