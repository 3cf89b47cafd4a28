// Package mdparse recovers catalog records from a previously generated
// Markdown document, so an existing README can be turned back into a
// YAML source and edited from there.
package mdparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"showcase/internal/catalog"
	"showcase/internal/constants"
	"showcase/internal/strutil"
)

var (
	partSplitRe = regexp.MustCompile(`<hr>|\n---\n`)

	docTitleRe     = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	sectionTitleRe = regexp.MustCompile(`(?m)^##\s+(.+)$`)
	backtickRe     = regexp.MustCompile("`([^`]+)`")
	boldRe         = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	paragraphRe    = regexp.MustCompile(`<p>([^<]+)</p>`)
	codeRe         = regexp.MustCompile(`<code>([^<]+)</code>`)
	bulletRe       = regexp.MustCompile(`-\s+(.+)`)
	updatedRe      = regexp.MustCompile(`<sub>Last updated: (.+)</sub>`)

	techSectionRe     = regexp.MustCompile(`(?s)###\s*Tech Stack.*?<p>(.*?)</p>`)
	featuresSectionRe = regexp.MustCompile(`(?s)###\s*Features(.*?)(?:###|$)`)
	impactSectionRe   = regexp.MustCompile(`(?s)###\s*Business Impact(.*?)(?:###|$)`)

	playStoreRe = regexp.MustCompile(`href="(https://play\.google\.com[^"]+)"`)
	appStoreRe  = regexp.MustCompile(`href="(https://apps\.apple\.com[^"]+)"`)
	githubRe    = regexp.MustCompile(`href="(https://github\.com[^"]+)"`)
	websiteRe   = regexp.MustCompile(`href="([^"]+)"[^>]*>\s*<img[^>]*Website`)
	apkRe       = regexp.MustCompile(`href="([^"]+)"[^>]*>\s*<img[^>]*APK`)
	siteBadgeRe = regexp.MustCompile(`href="([^"]+)"[^>]*>\s*<img[^>]*img\.shields\.io`)

	screenshotRe = regexp.MustCompile(`images/[^/]+/(\d+)\.(png|jpg|jpeg|webp|gif)`)
	widthRe      = regexp.MustCompile(`width="(\d+)"`)
	bannerRe     = regexp.MustCompile(`<img src="([^"]+)"[^>]*alt="[^"]*"[^>]*width="100%"`)
	logoRe       = regexp.MustCompile(`<img src="([^"]+)"[^>]*alt="[^"]*logo"[^>]*height="64"`)
	headerLogoRe = regexp.MustCompile(`<img src="([^"]+)"[^>]*height="120"`)
)

// Parse recovers a catalog from generated Markdown. Parsing is best-effort
// for foreign documents, but a document produced by the renderer round-trips
// to records that regenerate an equivalent document.
func Parse(content string) (*catalog.Catalog, error) {
	c := &catalog.Catalog{}

	parts := partSplitRe.Split(content, -1)
	if len(parts) == 0 {
		return c, nil
	}

	parseHeader(parts[0], &c.Header)

	for _, part := range parts {
		if m := updatedRe.FindStringSubmatch(part); m != nil {
			c.Header.Updated = strings.TrimSpace(m[1])
		}

		p, ok := parseProject(part)
		if !ok {
			continue
		}
		if c.FindByID(p.ID) != nil {
			return nil, fmt.Errorf("document contains two sections titled %q", p.Title)
		}
		c.Projects = append(c.Projects, p)
	}

	return c, nil
}

func parseHeader(part string, h *catalog.Header) {
	if m := docTitleRe.FindStringSubmatch(part); m != nil {
		h.Title = strings.TrimSpace(m[1])
	}
	if m := headerLogoRe.FindStringSubmatch(part); m != nil {
		h.Logo = m[1]
	}
	if idx := strings.Index(part, "### About this Repository"); idx >= 0 {
		rest := part[idx+len("### About this Repository"):]
		for _, line := range strings.Split(rest, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "<") {
				continue
			}
			h.About = line
			break
		}
	}
	if m := githubRe.FindStringSubmatch(part); m != nil {
		h.GitHub = m[1]
	}
	if m := siteBadgeRe.FindStringSubmatch(part); m != nil && !strings.Contains(m[0], "GitHub") {
		h.Website = m[1]
	}
}

func parseProject(part string) (catalog.Project, bool) {
	var p catalog.Project

	m := sectionTitleRe.FindStringSubmatch(part)
	if m == nil {
		return p, false
	}
	p.Title = strings.TrimSpace(m[1])
	if p.Title == "" || strings.Contains(p.Title, "Contents") {
		return p, false
	}
	p.ID = strutil.Slugify(p.Title)

	// Category tags come from backtick spans, filtered against the known set
	// so inline code elsewhere doesn't leak in.
	known := make(map[string]bool, len(constants.KnownCategories))
	for _, c := range constants.KnownCategories {
		known[c] = true
	}
	for _, cm := range backtickRe.FindAllStringSubmatch(part, -1) {
		if known[cm[1]] {
			p.Categories = append(p.Categories, cm[1])
		}
	}
	if len(p.Categories) == 0 {
		p.Categories = []string{"Other"}
	}

	if m := boldRe.FindStringSubmatch(part); m != nil {
		p.Tagline = strings.TrimSpace(m[1])
	}

	for _, pm := range paragraphRe.FindAllStringSubmatch(part, -1) {
		text := strings.TrimSpace(pm[1])
		if text != "" {
			p.Description = text
			break
		}
	}

	if m := techSectionRe.FindStringSubmatch(part); m != nil {
		for _, cm := range codeRe.FindAllStringSubmatch(m[1], -1) {
			p.TechStack = append(p.TechStack, cm[1])
		}
	}

	if m := featuresSectionRe.FindStringSubmatch(part); m != nil {
		for _, bm := range bulletRe.FindAllStringSubmatch(m[1], -1) {
			p.Features = append(p.Features, strings.TrimSpace(bm[1]))
		}
	}

	if m := impactSectionRe.FindStringSubmatch(part); m != nil {
		for _, bm := range bulletRe.FindAllStringSubmatch(m[1], -1) {
			p.BusinessImpact = append(p.BusinessImpact, strings.TrimSpace(bm[1]))
		}
	}

	if m := playStoreRe.FindStringSubmatch(part); m != nil {
		p.Links.PlayStore = m[1]
	}
	if m := appStoreRe.FindStringSubmatch(part); m != nil {
		p.Links.AppStore = m[1]
	}
	if m := githubRe.FindStringSubmatch(part); m != nil {
		p.Links.GitHub = m[1]
	}
	if m := websiteRe.FindStringSubmatch(part); m != nil {
		p.Links.Website = m[1]
	}
	if m := apkRe.FindStringSubmatch(part); m != nil {
		p.Links.APK = m[1]
	}

	ssMatches := screenshotRe.FindAllStringSubmatch(part, -1)
	for _, sm := range ssMatches {
		p.Media.Screenshots = append(p.Media.Screenshots, fmt.Sprintf("screenshot_%s.%s", sm[1], sm[2]))
	}

	if m := bannerRe.FindStringSubmatch(part); m != nil {
		p.Media.Banner = m[1]
	}
	if m := logoRe.FindStringSubmatch(part); m != nil {
		p.Media.Logo = m[1]
	}

	if len(p.Media.Screenshots) > 0 {
		switch {
		case strings.Contains(part, "<table"):
			p.ScreenshotLayout = constants.LayoutGrid
		case strings.Contains(part, "<br>"):
			p.ScreenshotLayout = constants.LayoutVertical
		default:
			p.ScreenshotLayout = constants.LayoutHorizontal
		}

		if m := widthRe.FindStringSubmatch(part); m != nil {
			if w, err := strconv.Atoi(m[1]); err == nil {
				p.ScreenshotWidth = w
			}
		}
	}

	return p, true
}
