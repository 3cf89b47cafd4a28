package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"showcase/internal/render"
)

const testSource = `
header:
  title: Preview Test
projects:
  - id: demo
    title: Demo
    categories: [Other]
`

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	source := filepath.Join(dir, "projects.yaml")
	if err := os.WriteFile(source, []byte(testSource), 0644); err != nil {
		t.Fatal(err)
	}
	return New(source, dir, render.New(render.Options{})), source
}

func TestHandleIndex(t *testing.T) {
	s, _ := newTestServer(t)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "<title>Preview Test</title>") {
		t.Error("Expected rendered page title")
	}
	if !strings.Contains(body, "Demo") {
		t.Error("Expected project in rendered page")
	}
}

func TestHandleMarkdown(t *testing.T) {
	s, _ := newTestServer(t)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/README.md")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body := readBody(t, resp)
	if !strings.Contains(body, "## Demo") {
		t.Error("Expected markdown section heading")
	}
}

func TestServesLastGoodCatalogOnReloadFailure(t *testing.T) {
	s, source := newTestServer(t)
	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	// Prime the last good catalog
	if resp, err := http.Get(ts.URL + "/"); err == nil {
		resp.Body.Close()
	}

	// Break the source
	if err := os.WriteFile(source, []byte("projects:\n  - title: No Id\n    categories: [Other]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 from last good catalog, got %d", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Demo") {
		t.Error("Expected last good catalog content")
	}
}

func TestBrokenSourceWithNoHistoryFails(t *testing.T) {
	s, source := newTestServer(t)
	if err := os.WriteFile(source, []byte("projects:\n  - title: No Id\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ts := httptest.NewServer(s.Routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", resp.StatusCode)
	}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
