// render-icons generates the Kafeel macOS app icon set: ten PNG
// variants plus Contents.json, ready to drop into Assets.xcassets.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kafeel/icongen/internal/iconset"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const defaultOutputDir = "AppIcon.appiconset"

func main() {
	args := os.Args[1:]
	preview := false

	filtered := args[:0]
	for _, a := range args {
		switch a {
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			printVersion()
			return
		case "--preview", "-p":
			preview = true
		default:
			filtered = append(filtered, a)
		}
	}

	dir := defaultOutputDir
	switch len(filtered) {
	case 0:
	case 1:
		dir = filtered[0]
	default:
		fmt.Fprintf(os.Stderr, "Error: expected at most one output directory\n")
		fmt.Fprintf(os.Stderr, "Run 'render-icons help' for usage.\n")
		os.Exit(1)
	}

	fmt.Println("Generating Kafeel app icons...")
	if abs, err := filepath.Abs(dir); err == nil {
		fmt.Printf("Output directory: %s\n", abs)
	}
	fmt.Println()

	err := iconset.Generate(dir, func(name string) {
		fmt.Printf("Generated: %s\n", name)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if preview {
		if err := iconset.WritePreview(filepath.Join(dir, "preview.png"), iconset.Sizes); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Generated: preview.png")
	}

	fmt.Println()
	fmt.Println("Success! Icons generated.")
	fmt.Println()
	fmt.Println("To use these icons:")
	fmt.Println("1. Create an Xcode project or add Assets.xcassets to your project")
	fmt.Printf("2. Copy the %s folder into Assets.xcassets/\n", defaultOutputDir)
	fmt.Println("3. The icons will be automatically detected by Xcode")
}

func printVersion() {
	fmt.Printf("render-icons %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("render-icons %s - Generate the Kafeel macOS app icon set\n", version)
	fmt.Println(`
Usage:
  render-icons [options] [output-dir]

Options:
  --preview, -p          Also write preview.png, a contact sheet of all variants

Commands:
  version, -V            Show version and build date
  help, -h, --help       Show this help message

The output directory defaults to AppIcon.appiconset and is created if
missing. Ten icon_<n>x<n>[@2x].png files and a Contents.json manifest
are written; existing files are overwritten.

Examples:
  render-icons                     Generate into ./AppIcon.appiconset
  render-icons build/icons         Generate into build/icons
  render-icons -p                  Generate plus a preview sheet`)
}
