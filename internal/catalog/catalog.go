package catalog

import (
	"sort"

	"showcase/internal/strutil"
)

// Links holds the outbound URLs for a project. Absent kinds render no badge.
type Links struct {
	PlayStore string `yaml:"playStore,omitempty"`
	AppStore  string `yaml:"appStore,omitempty"`
	Website   string `yaml:"website,omitempty"`
	GitHub    string `yaml:"github,omitempty"`
	APK       string `yaml:"apk,omitempty"`
}

// Media holds image references for a project. Paths are opaque; no decoding
// happens anywhere in the tool.
type Media struct {
	Logo        string   `yaml:"logo,omitempty"`
	Banner      string   `yaml:"banner,omitempty"`
	Screenshots []string `yaml:"screenshots,omitempty"`
}

// Project is one portfolio entry. Records are write-once: the loader fills
// them and everything downstream treats them as read-only.
type Project struct {
	ID             string   `yaml:"id"`
	Title          string   `yaml:"title"`
	Tagline        string   `yaml:"tagline,omitempty"`
	Description    string   `yaml:"description,omitempty"`
	Categories     []string `yaml:"categories"`
	TechStack      []string `yaml:"techStack,omitempty"`
	Features       []string `yaml:"features,omitempty"`
	BusinessImpact []string `yaml:"businessImpact,omitempty"`
	Links          Links    `yaml:"links,omitempty"`
	Media          Media    `yaml:"media,omitempty"`

	// Per-project rendering options
	ScreenshotLayout string `yaml:"screenshotLayout,omitempty"`
	ScreenshotWidth  int    `yaml:"screenshotWidth,omitempty"`
	ThemeColor       string `yaml:"themeColor,omitempty"`
}

// Anchor returns the heading anchor for the project section,
// matching what GitHub derives from "## Title".
func (p *Project) Anchor() string {
	return strutil.Slugify(p.Title)
}

// Header is the catalog-level front matter rendered above the contents table.
type Header struct {
	Title   string `yaml:"title,omitempty"`
	About   string `yaml:"about,omitempty"`
	Logo    string `yaml:"logo,omitempty"`
	Website string `yaml:"website,omitempty"`
	GitHub  string `yaml:"github,omitempty"`
	// Updated is an optional date string for the footer line. Keeping it in
	// the source keeps output byte-identical across runs.
	Updated string `yaml:"updated,omitempty"`
}

// Catalog is an ordered collection of projects. Source order defines both
// the contents table order and the document section order.
type Catalog struct {
	Header   Header    `yaml:"header,omitempty"`
	Projects []Project `yaml:"projects"`
}

// Len returns the number of projects in the catalog.
func (c *Catalog) Len() int {
	return len(c.Projects)
}

// FindByID returns the project with the given id, or nil.
func (c *Catalog) FindByID(id string) *Project {
	for i := range c.Projects {
		if c.Projects[i].ID == id {
			return &c.Projects[i]
		}
	}
	return nil
}

// Categories returns the distinct category tags across all projects, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for i := range c.Projects {
		for _, cat := range c.Projects[i].Categories {
			if !seen[cat] {
				seen[cat] = true
				out = append(out, cat)
			}
		}
	}
	sort.Strings(out)
	return out
}
