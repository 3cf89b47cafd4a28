package render

import (
	"fmt"
	"net/url"
	"strings"

	"showcase/internal/catalog"
	"showcase/internal/constants"
)

// badgeURL builds a shields.io for-the-badge image URL.
func badgeURL(label, color, logo string) string {
	return fmt.Sprintf("https://img.shields.io/badge/%s-%s?style=for-the-badge&logo=%s&logoColor=white", label, color, logo)
}

func badgeLink(href, label, color, logo string) string {
	return fmt.Sprintf(`<a href="%s"><img src="%s"></a>`, href, badgeURL(label, color, logo))
}

// badgeSpec is the shields label, color and logo for one link kind.
type badgeSpec struct {
	label string
	color string
	logo  string
}

var badgeSpecs = map[string]badgeSpec{
	constants.LinkPlayStore: {"Play_Store", "414141", "google-play"},
	constants.LinkAppStore:  {"App_Store", "0D96F6", "app-store"},
	constants.LinkWebsite:   {"Website", "", "safari"},
	constants.LinkGitHub:    {"GitHub", "181717", "github"},
	constants.LinkAPK:       {"APK", "3DDC84", "android"},
}

// linkBadges returns the badge anchors for the links present on a project,
// in constants.LinkKinds order. The website badge uses the project theme color.
func linkBadges(l catalog.Links, themeColor string) []string {
	hrefs := map[string]string{
		constants.LinkPlayStore: l.PlayStore,
		constants.LinkAppStore:  l.AppStore,
		constants.LinkWebsite:   l.Website,
		constants.LinkGitHub:    l.GitHub,
		constants.LinkAPK:       l.APK,
	}

	var badges []string
	for _, kind := range constants.LinkKinds {
		href := hrefs[kind]
		if href == "" {
			continue
		}
		spec := badgeSpecs[kind]
		color := spec.color
		if kind == constants.LinkWebsite {
			color = themeColor
		}
		badges = append(badges, badgeLink(href, spec.label, color, spec.logo))
	}
	return badges
}

// siteBadgeLabel derives a badge label from a site URL. Shields treats '-'
// as a field separator and '_' as a space, so both get escaped.
func siteBadgeLabel(rawURL string) string {
	label := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		label = u.Host
	}
	label = strings.TrimPrefix(label, "www.")
	label = strings.ReplaceAll(label, "-", "--")
	label = strings.ReplaceAll(label, "_", "__")
	label = strings.ReplaceAll(label, " ", "_")
	return label
}
