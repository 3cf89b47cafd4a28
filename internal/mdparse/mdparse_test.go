package mdparse

import (
	"strings"
	"testing"

	"showcase/internal/catalog"
	"showcase/internal/render"
)

func sourceCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Header: catalog.Header{
			Title:   "My Portfolio",
			About:   "Things I built.",
			Website: "https://example.com",
			GitHub:  "https://github.com/example",
			Updated: "June 01, 2025",
		},
		Projects: []catalog.Project{
			{
				ID:          "chatly-app",
				Title:       "Chatly App",
				Tagline:     "Realtime chat for teams",
				Description: "A cross-platform chat client.",
				Categories:  []string{"Mobile App", "AI/ML"},
				TechStack:   []string{"Flutter", "Firebase"},
				Features:    []string{"Group channels", "Push notifications"},
				Links: catalog.Links{
					PlayStore: "https://play.google.com/store/apps/details?id=com.chatly",
					GitHub:    "https://github.com/example/chatly",
				},
				Media: catalog.Media{
					Screenshots: []string{"a.png", "b.jpg"},
				},
			},
			{
				ID:             "gardenia-iot-hub",
				Title:          "Gardenia IoT Hub",
				Categories:     []string{"IoT"},
				BusinessImpact: []string{"Cut water usage by 30%"},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	r := render.New(render.Options{})
	doc := r.Render(sourceCatalog())

	parsed, err := Parse(doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if parsed.Len() != 2 {
		t.Fatalf("Expected 2 projects, got %d", parsed.Len())
	}

	if parsed.Header.Title != "My Portfolio" {
		t.Errorf("Header title = %q", parsed.Header.Title)
	}
	if parsed.Header.About != "Things I built." {
		t.Errorf("Header about = %q", parsed.Header.About)
	}
	if parsed.Header.Updated != "June 01, 2025" {
		t.Errorf("Header updated = %q", parsed.Header.Updated)
	}

	p := parsed.Projects[0]
	if p.Title != "Chatly App" {
		t.Errorf("Title = %q", p.Title)
	}
	if p.ID != "chatly-app" {
		t.Errorf("ID = %q", p.ID)
	}
	if strings.Join(p.Categories, ",") != "Mobile App,AI/ML" {
		t.Errorf("Categories = %v", p.Categories)
	}
	if p.Tagline != "Realtime chat for teams" {
		t.Errorf("Tagline = %q", p.Tagline)
	}
	if p.Description != "A cross-platform chat client." {
		t.Errorf("Description = %q", p.Description)
	}
	if strings.Join(p.TechStack, ",") != "Flutter,Firebase" {
		t.Errorf("TechStack = %v", p.TechStack)
	}
	if strings.Join(p.Features, ",") != "Group channels,Push notifications" {
		t.Errorf("Features = %v", p.Features)
	}
	if p.Links.PlayStore == "" || p.Links.GitHub == "" {
		t.Errorf("Links lost in round trip: %+v", p.Links)
	}
	if p.Links.AppStore != "" {
		t.Errorf("Unexpected App Store link: %q", p.Links.AppStore)
	}
	if len(p.Media.Screenshots) != 2 {
		t.Errorf("Screenshots = %v", p.Media.Screenshots)
	}
	if p.ScreenshotLayout != "horizontal" {
		t.Errorf("ScreenshotLayout = %q", p.ScreenshotLayout)
	}

	q := parsed.Projects[1]
	if q.Title != "Gardenia IoT Hub" {
		t.Errorf("Second title = %q", q.Title)
	}
	if strings.Join(q.BusinessImpact, ",") != "Cut water usage by 30%" {
		t.Errorf("BusinessImpact = %v", q.BusinessImpact)
	}

	// Regenerating from parsed records yields an equivalent document
	redoc := r.Render(parsed)
	reparsed, err := Parse(redoc)
	if err != nil {
		t.Fatalf("Reparse failed: %v", err)
	}
	if reparsed.Len() != parsed.Len() {
		t.Errorf("Project count changed across round trip: %d vs %d", reparsed.Len(), parsed.Len())
	}
	for i := range parsed.Projects {
		if reparsed.Projects[i].Title != parsed.Projects[i].Title {
			t.Errorf("Title changed across round trip: %q vs %q",
				reparsed.Projects[i].Title, parsed.Projects[i].Title)
		}
	}
}

func TestParseSkipsContents(t *testing.T) {
	doc := render.New(render.Options{}).Render(sourceCatalog())
	parsed, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range parsed.Projects {
		if strings.Contains(p.Title, "Contents") {
			t.Errorf("Contents heading parsed as project: %q", p.Title)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	parsed, err := Parse("")
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Len() != 0 {
		t.Errorf("Expected no projects, got %d", parsed.Len())
	}
}

func TestParseDuplicateTitles(t *testing.T) {
	doc := "## Same\n`Other`\n<hr>\n## Same\n`Other`\n"
	_, err := Parse(doc)
	if err == nil {
		t.Fatal("Expected error for duplicate section titles")
	}
}
