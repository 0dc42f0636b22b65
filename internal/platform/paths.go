// Package platform resolves per-user configuration and data locations.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// AppName is the directory name used under the user's config and data dirs.
const AppName = "todo-tui"

// Paths holds the resolved file locations for the application.
type Paths struct {
	ConfigDir  string
	ConfigPath string
	DataDir    string
	TasksPath  string
	LogPath    string
}

// DefaultPaths resolves paths for the current platform and environment.
func DefaultPaths() (Paths, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return Paths{}, fmt.Errorf("failed to get user config dir: %w", err)
	}

	// os has no data-dir lookup; Linux data lives apart from config.
	dataDir := configDir
	if runtime.GOOS == "linux" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}

	env := map[string]string{
		"XDG_DATA_HOME": os.Getenv("XDG_DATA_HOME"),
		"LOCALAPPDATA":  os.Getenv("LOCALAPPDATA"),
	}
	return PathsFor(runtime.GOOS, env, configDir, dataDir, AppName)
}

// PathsFor builds Paths from explicit inputs so it can be tested per platform.
// userConfigDir is used as is; data-dir overrides come from env.
func PathsFor(goos string, env map[string]string, userConfigDir, userDataDir, appName string) (Paths, error) {
	if userConfigDir == "" || userDataDir == "" {
		return Paths{}, fmt.Errorf("empty base dirs")
	}
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return Paths{}, fmt.Errorf("empty app name")
	}

	dataBase := userDataDir
	switch goos {
	case "linux":
		if v := env["XDG_DATA_HOME"]; v != "" {
			dataBase = v
		}
	case "windows":
		if v := env["LOCALAPPDATA"]; v != "" {
			dataBase = v
		}
	}

	configDir := filepath.Join(userConfigDir, appName)
	dataDir := filepath.Join(dataBase, appName)
	return Paths{
		ConfigDir:  configDir,
		ConfigPath: filepath.Join(configDir, "config.yaml"),
		DataDir:    dataDir,
		TasksPath:  filepath.Join(dataDir, "tasks.json"),
		LogPath:    filepath.Join(dataDir, appName+".log"),
	}, nil
}
