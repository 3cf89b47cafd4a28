package cmd

import (
	"sync"

	"github.com/spf13/pflag"
)

var initFlagsOnce sync.Once

// InitFlags defines the pflags used for argument validation and help.
func InitFlags() {
	initFlagsOnce.Do(func() {
		// Modifiers
		pflag.BoolP("force", "f", false, "Overwrite existing files")
		pflag.BoolP("verbose", "v", false, "Verbose output")
		pflag.BoolP("debug", "x", false, "Debug output")
		pflag.BoolP("yes", "y", false, "Assume yes")
		pflag.BoolP("help", "h", false, "Show help")

		// Document generation
		pflag.StringP("generate", "g", "", "Render the catalog to Markdown")
		pflag.String("check", "", "Validate the catalog")
		pflag.String("html", "", "Render the catalog to HTML")
		pflag.StringP("import", "I", "", "Rebuild the catalog from a document")
		pflag.String("copy-images", "", "Copy project images next to the document")

		// Listing
		pflag.BoolP("list", "l", false, "List all projects")
		pflag.Bool("list-categories", false, "List categories in use")

		// Live preview
		pflag.StringP("watch", "w", "", "Regenerate on source changes")
		pflag.String("serve", "", "Serve an HTML preview over HTTP")

		// Configuration / Menu
		pflag.StringP("menu", "M", "", "Open the interactive browser")
		pflag.Bool("config-show", false, "Show configuration")
		pflag.BoolP("version", "V", false, "Show version")
	})
}
