package paths

import (
	"path/filepath"
	"strings"
	"testing"

	"showcase/internal/constants"
)

func TestConfigFilePathOverride(t *testing.T) {
	dir := t.TempDir()
	ConfigHomeOverride = dir
	defer func() { ConfigHomeOverride = "" }()

	expected := filepath.Join(dir, constants.AppConfigFileName)
	if got := GetConfigFilePath(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestLogFilePathOverride(t *testing.T) {
	dir := t.TempDir()
	StateHomeOverride = dir
	defer func() { StateHomeOverride = "" }()

	expected := filepath.Join(dir, constants.LogFileName)
	if got := GetLogFilePath(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestCacheDirUsesAppName(t *testing.T) {
	if got := GetCacheDir(); !strings.HasSuffix(got, "showcase") {
		t.Errorf("Expected cache dir ending in 'showcase', got %q", got)
	}
}

func TestExecDirectory(t *testing.T) {
	if got := GetExecDirectory(); got == "" {
		t.Error("Expected a non-empty executable directory")
	}
}
