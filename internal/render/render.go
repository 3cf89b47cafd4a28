package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"showcase/internal/catalog"
	"showcase/internal/constants"
)

// Options carries catalog-wide rendering defaults. Projects may override
// layout, width and theme color individually.
type Options struct {
	ScreenshotWidth  int
	ScreenshotLayout string
	ThemeColor       string
}

// Renderer turns a catalog into a Markdown document. Rendering is pure:
// the same catalog and options always produce the same bytes.
type Renderer struct {
	opts Options
}

// New returns a Renderer, filling unset options with defaults.
func New(opts Options) *Renderer {
	if opts.ScreenshotWidth <= 0 {
		opts.ScreenshotWidth = constants.DefaultScreenshotWidth
	}
	if opts.ScreenshotLayout == "" {
		opts.ScreenshotLayout = constants.LayoutHorizontal
	}
	if opts.ThemeColor == "" {
		opts.ThemeColor = constants.DefaultThemeColor
	}
	return &Renderer{opts: opts}
}

// Render produces the full Markdown document for a catalog.
func (r *Renderer) Render(c *catalog.Catalog) string {
	var lines []string

	lines = append(lines, r.renderHeader(&c.Header)...)

	if len(c.Projects) > 0 {
		lines = append(lines, r.renderContents(c)...)
	}

	for i := range c.Projects {
		if i > 0 {
			lines = append(lines, "", "<hr>", "")
		}
		lines = append(lines, r.RenderProject(&c.Projects[i]))
	}

	lines = append(lines, r.renderFooter(&c.Header)...)

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderHeader(h *catalog.Header) []string {
	lines := []string{`<div align="center">`, ""}

	if h.Logo != "" {
		lines = append(lines, fmt.Sprintf(`<img src="%s" alt="%s" height="120">`, h.Logo, h.Title), "")
	}

	title := h.Title
	if title == "" {
		title = "Projects"
	}
	lines = append(lines, "# "+title, "")

	if h.About != "" {
		lines = append(lines,
			"### About this Repository",
			"",
			h.About,
			"")
	}

	var badges []string
	if h.Website != "" {
		badges = append(badges, badgeLink(h.Website, siteBadgeLabel(h.Website), constants.DefaultThemeColor, "safari"))
	}
	if h.GitHub != "" {
		badges = append(badges, badgeLink(h.GitHub, "GitHub", "181717", "github"))
	}
	if len(badges) > 0 {
		lines = append(lines, "<p>")
		for _, b := range badges {
			lines = append(lines, "  "+b)
		}
		lines = append(lines, "</p>", "")
	}

	lines = append(lines, "</div>", "", "---", "")
	return lines
}

func (r *Renderer) renderContents(c *catalog.Catalog) []string {
	lines := []string{
		`<div align="center">`,
		"",
		"## 📋 Contents",
		"",
		"| # | Project | Categories |",
		"|:---:|:----------|:------------|",
	}

	for i := range c.Projects {
		p := &c.Projects[i]
		lines = append(lines, fmt.Sprintf("| %d | [%s](#%s) | %s |",
			i+1, p.Title, p.Anchor(), strings.Join(p.Categories, ", ")))
	}

	lines = append(lines, "", "</div>", "", "---", "")
	return lines
}

func (r *Renderer) renderFooter(h *catalog.Header) []string {
	if h.Updated == "" {
		return nil
	}
	return []string{
		"",
		"---",
		"",
		`<div align="center">`,
		"",
		fmt.Sprintf("<sub>Last updated: %s</sub>", h.Updated),
		"",
		"</div>",
	}
}

// RenderProject produces the Markdown section for a single project.
func (r *Renderer) RenderProject(p *catalog.Project) string {
	layout := p.ScreenshotLayout
	if layout == "" {
		layout = r.opts.ScreenshotLayout
	}
	width := p.ScreenshotWidth
	if width <= 0 {
		width = r.opts.ScreenshotWidth
	}
	themeColor := strings.TrimPrefix(p.ThemeColor, "#")
	if themeColor == "" {
		themeColor = r.opts.ThemeColor
	}

	lines := []string{`<div align="center">`, ""}

	if p.Media.Logo != "" {
		lines = append(lines, fmt.Sprintf(`<img src="%s" alt="%s logo" height="64">`,
			imagePath(p.ID, "logo", p.Media.Logo), p.Title), "")
	}

	lines = append(lines, "## "+p.Title, "")

	if len(p.Categories) > 0 {
		var tags []string
		for _, cat := range p.Categories {
			tags = append(tags, "`"+cat+"`")
		}
		lines = append(lines, strings.Join(tags, " "), "")
	}

	if p.Media.Banner != "" {
		lines = append(lines, fmt.Sprintf(`<img src="%s" alt="%s" width="100%%">`,
			imagePath(p.ID, "banner", p.Media.Banner), p.Title), "")
	}

	if p.Tagline != "" {
		lines = append(lines, "**"+p.Tagline+"**", "")
	}

	if p.Description != "" {
		lines = append(lines, "<p>"+p.Description+"</p>", "")
	}

	if badges := linkBadges(p.Links, themeColor); len(badges) > 0 {
		lines = append(lines, "<p>")
		for _, b := range badges {
			lines = append(lines, "  "+b)
		}
		lines = append(lines, "</p>", "")
	}

	if len(p.TechStack) > 0 {
		lines = append(lines, "### Tech Stack", "", "<p>")
		for _, tech := range p.TechStack {
			lines = append(lines, "  <code>"+tech+"</code>")
		}
		lines = append(lines, "</p>", "")
	}

	if len(p.Features) > 0 {
		lines = append(lines, "### Features", "")
		for _, f := range p.Features {
			lines = append(lines, "- "+f)
		}
		lines = append(lines, "")
	}

	if len(p.BusinessImpact) > 0 {
		lines = append(lines, "### Business Impact", "")
		for _, b := range p.BusinessImpact {
			lines = append(lines, "- "+b)
		}
		lines = append(lines, "")
	}

	if len(p.Media.Screenshots) > 0 {
		lines = append(lines, "### Screenshots", "")
		lines = append(lines, renderScreenshots(p, layout, width)...)
		lines = append(lines, "")
	}

	lines = append(lines, "</div>", "")

	return strings.Join(lines, "\n")
}

// renderScreenshots lays out the gallery. Screenshot files are addressed by
// 1-based position under images/<id>/, keeping each source extension.
func renderScreenshots(p *catalog.Project, layout string, width int) []string {
	var lines []string
	switch layout {
	case constants.LayoutGrid:
		lines = append(lines, `<table align="center">`)
		for i := 0; i < len(p.Media.Screenshots); i += constants.GridColumns {
			lines = append(lines, "  <tr>")
			for j := 0; j < constants.GridColumns; j++ {
				if i+j < len(p.Media.Screenshots) {
					lines = append(lines, fmt.Sprintf(`    <td align="center"><img src="%s" width="%d"></td>`,
						screenshotPath(p.ID, i+j+1, p.Media.Screenshots[i+j]), width))
				} else {
					lines = append(lines, "    <td></td>")
				}
			}
			lines = append(lines, "  </tr>")
		}
		lines = append(lines, "</table>")
	case constants.LayoutVertical:
		lines = append(lines, "<p>")
		for i, ss := range p.Media.Screenshots {
			lines = append(lines, fmt.Sprintf(`  <img src="%s" width="%d"><br>`,
				screenshotPath(p.ID, i+1, ss), width))
		}
		lines = append(lines, "</p>")
	default: // horizontal
		lines = append(lines, "<p>")
		for i, ss := range p.Media.Screenshots {
			lines = append(lines, fmt.Sprintf(`  <img src="%s" width="%d">`,
				screenshotPath(p.ID, i+1, ss), width))
		}
		lines = append(lines, "</p>")
	}
	return lines
}

// imagePath maps a named project image (logo, banner) to its copied location.
// Remote URLs pass through untouched.
func imagePath(projectID, name, src string) string {
	if isRemote(src) {
		return src
	}
	ext := filepath.Ext(src)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s/%s/%s%s", constants.ImagesDirName, projectID, name, ext)
}

// screenshotPath maps the n-th screenshot (1-based) to its copied location.
func screenshotPath(projectID string, n int, src string) string {
	if isRemote(src) {
		return src
	}
	ext := filepath.Ext(src)
	if ext == "" {
		ext = ".png"
	}
	return fmt.Sprintf("%s/%s/%d%s", constants.ImagesDirName, projectID, n, ext)
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
