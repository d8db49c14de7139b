package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver finds data files and the config dir regardless of where the
// binary is started from.
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver(appName string) (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		configDir:     getConfigDir(homeDir, appName),
	}
	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir, appName string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", appName)
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
		return filepath.Join(homeDir, "."+appName)
	}
}

// candidates lists where a relative data path may live, most specific first:
// as given, next to the executable, then under the config dir.
func (pr *PathResolver) candidates(path string) []string {
	if filepath.IsAbs(path) {
		return []string{path}
	}
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, path))
	}
	paths = append(paths,
		filepath.Join(pr.executableDir, path),
		filepath.Join(filepath.Dir(pr.executableDir), path),
		filepath.Join(pr.configDir, path),
	)
	return paths
}

// ResolveFile returns the first existing location of path. When none exists
// the cwd-relative path is returned so errors name what the user typed.
func (pr *PathResolver) ResolveFile(path string) string {
	for _, p := range pr.candidates(path) {
		if stat, err := os.Stat(p); err == nil && !stat.IsDir() {
			log.Debugf("Found %s at: %s", path, p)
			return p
		}
		log.Debugf("Candidate not found: %s", p)
	}
	return GetAbsolutePath(path)
}

// ResolveSibling places a relative path in the same dir as anchor. Used for
// the frequency file, which belongs next to the word list it was built from.
func (pr *PathResolver) ResolveSibling(anchor, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if existing := pr.ResolveFile(path); FileExists(existing) {
		return existing
	}
	return filepath.Join(filepath.Dir(anchor), filepath.Base(path))
}
