package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds config and catalog files relative to the user's config
// dir, the binary and the working directory.
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver inspects the running binary and the user's home dir.
func NewPathResolver(appName string) (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir, appName),
	}
	log.Debugf("PathResolver: execDir=%s, configDir=%s", pr.executableDir, pr.configDir)
	return pr, nil
}

// configDirFor returns the platform config directory for appName.
func configDirFor(homeDir, appName string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appName)
		}
		return filepath.Join(homeDir, ".config", appName)
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appName)
	default:
		return filepath.Join(homeDir, ".config", appName)
	}
}

// ConfigDir returns the platform config directory for the app.
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// ResolveFile looks for a user-supplied file path in order:
//  1. as given (absolute, or relative to the working directory)
//  2. relative to the executable's directory
//  3. inside the config directory
//
// The path is returned unchanged if none of them exist so that callers
// report the name the user typed.
func (pr *PathResolver) ResolveFile(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	candidates := []string{
		path,
		filepath.Join(pr.executableDir, path),
		filepath.Join(pr.configDir, path),
	}
	for _, c := range candidates {
		if stat, err := os.Stat(c); err == nil && !stat.IsDir() {
			log.Debugf("Resolved %s to %s", path, c)
			return c
		}
	}
	return path
}
