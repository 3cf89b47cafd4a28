package config

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"showcase/internal/constants"
	"showcase/internal/paths"
)

// AppConfig holds the application configuration settings.
type AppConfig struct {
	Paths  PathConfig   `toml:"paths"`
	Render RenderConfig `toml:"render"`

	// These are helper fields for runtime use, not saved to TOML
	SourcePath string `toml:"-"`
	OutputPath string `toml:"-"`
}

// PathConfig holds catalog file path settings.
type PathConfig struct {
	Source string `toml:"source"`
	Output string `toml:"output"`
}

// RenderConfig holds document rendering defaults.
type RenderConfig struct {
	ScreenshotWidth  int    `toml:"screenshot_width"`
	ScreenshotLayout string `toml:"screenshot_layout"`
	ThemeColor       string `toml:"theme_color"`
	LineCharacters   bool   `toml:"line_characters"`
}

// ExpandVariables expands environment variables in the config values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${XDG_CACHE_HOME}  -> xdg.CacheHome
// - ${HOME}            -> os.UserHomeDir()
// - ${USER}            -> Current username
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "XDG_CACHE_HOME":
			return xdg.CacheHome
		case "HOME":
			home, err := os.UserHomeDir()
			if err != nil {
				return ""
			}
			return home
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return ""
	}
	return os.Expand(val, mapper)
}

// LoadAppConfig reads the configuration file and returns the configuration.
func LoadAppConfig() AppConfig {
	conf := AppConfig{
		Paths: PathConfig{
			Source: constants.DefaultSourceFileName,
			Output: constants.DefaultOutputFileName,
		},
		Render: RenderConfig{
			ScreenshotWidth:  constants.DefaultScreenshotWidth,
			ScreenshotLayout: constants.LayoutHorizontal,
			ThemeColor:       constants.DefaultThemeColor,
			LineCharacters:   true,
		},
	}

	path := paths.GetConfigFilePath()
	data, err := os.ReadFile(path)
	if err == nil {
		if err := toml.Unmarshal(data, &conf); err == nil {
			conf.SourcePath = ExpandVariables(conf.Paths.Source)
			conf.OutputPath = ExpandVariables(conf.Paths.Output)
			return conf
		}
	}

	// If the file doesn't exist or is invalid, save defaults
	conf.SourcePath = ExpandVariables(conf.Paths.Source)
	conf.OutputPath = ExpandVariables(conf.Paths.Output)
	SaveAppConfig(conf)
	return conf
}

// SaveAppConfig writes the configuration to showcase.toml.
func SaveAppConfig(conf AppConfig) error {
	path := paths.GetConfigFilePath()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(conf)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
