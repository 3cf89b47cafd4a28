package constants

// AppConfigFileName is the name of the TOML configuration file.
const AppConfigFileName = "showcase.toml"

// LogFileName is the name of the application log file.
const LogFileName = "showcase.log"

// DefaultSourceFileName is the default catalog source file.
const DefaultSourceFileName = "projects.yaml"

// DefaultOutputFileName is the default rendered document.
const DefaultOutputFileName = "README.md"

// DefaultHTMLFileName is the default standalone preview page.
const DefaultHTMLFileName = "preview.html"

// ImagesDirName is the directory holding copied project images,
// laid out as images/<project-id>/{logo.ext,banner.ext,1.ext,2.ext,...}.
const ImagesDirName = "images"

// Link kinds, in badge display order.
const (
	LinkPlayStore = "playStore"
	LinkAppStore  = "appStore"
	LinkWebsite   = "website"
	LinkGitHub    = "github"
	LinkAPK       = "apk"
)

// LinkKinds is the badge display order for project links.
var LinkKinds = []string{LinkPlayStore, LinkAppStore, LinkWebsite, LinkGitHub, LinkAPK}

// KnownCategories are the category tags a project may carry.
var KnownCategories = []string{
	"Mobile App",
	"Website",
	"IoT",
	"Game",
	"AI/ML",
	"3D/AR/VR",
	"Other",
}

// Screenshot gallery layouts.
const (
	LayoutHorizontal = "horizontal"
	LayoutGrid       = "grid"
	LayoutVertical   = "vertical"
)

// DefaultScreenshotWidth is the rendered screenshot width in pixels.
const DefaultScreenshotWidth = 200

// DefaultThemeColor is the accent color for the website badge (hex, no '#').
const DefaultThemeColor = "000000"

// GridColumns is the column count for the grid screenshot layout.
const GridColumns = 2

// DefaultServeAddr is the listen address for the preview server.
const DefaultServeAddr = "127.0.0.1:8090"
