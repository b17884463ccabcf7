// repackage copies the rendered icon set into the .iconset layout
// iconutil consumes. Usage: repackage [source-dir [dest-dir]]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kafeel/icongen/internal/iconset"
)

const (
	defaultSourceDir = "AppIcon.appiconset"
	defaultDestDir   = "Kafeel.iconset"
)

func main() {
	srcDir := defaultSourceDir
	destDir := defaultDestDir

	args := os.Args[1:]
	switch len(args) {
	case 0:
	case 1:
		srcDir = args[0]
	case 2:
		srcDir, destDir = args[0], args[1]
	default:
		fmt.Fprintf(os.Stderr, "Error: expected [source-dir [dest-dir]]\n")
		os.Exit(1)
	}

	fmt.Println("Creating iconutil-compatible iconset...")
	err := iconset.Repackage(srcDir, destDir, func(name string) {
		fmt.Printf("Copied: %s\n", name)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	abs := destDir
	if a, err := filepath.Abs(destDir); err == nil {
		abs = a
	}
	fmt.Printf("\nIconset created at: %s\n", abs)
	fmt.Println("\nTo create .icns file, run:")
	fmt.Printf("  iconutil -c icns %s\n", destDir)
}
