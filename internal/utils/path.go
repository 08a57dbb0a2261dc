package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver provides robust path resolution for the wfourth binary
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = "/tmp" // fallback
	}

	configDir := getConfigDir(homeDir)

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      configDir,
	}

	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordfourth")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordfourth")
		}
		return filepath.Join(homeDir, ".config", "wordfourth")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordfourth")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordfourth")
	default:
		return filepath.Join(homeDir, ".wordfourth")
	}
}

// GetCorpusPath resolves the corpus text path. Absolute paths are used as
// given; relative paths are tried against the executable directory first and
// the current working directory second.
func (pr *PathResolver) GetCorpusPath(userSpecifiedPath string) (string, error) {
	if filepath.IsAbs(userSpecifiedPath) {
		return userSpecifiedPath, nil
	}

	candidates := []string{
		filepath.Join(pr.executableDir, userSpecifiedPath),
	}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, userSpecifiedPath))
	}

	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found corpus path: %s", path)
			return path, nil
		}
		log.Debugf("Corpus path candidate not valid: %s", path)
	}

	// Return the most likely path so the caller's open error names it
	return candidates[0], nil
}

// GetConfigPath returns the full path for a config file name, creating the
// config directory when needed.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	if result := CheckDirStatus(pr.configDir); result.Writable {
		return filepath.Join(pr.configDir, filename), nil
	}
	// Fall back to the executable dir when the config dir is unusable
	return filepath.Join(pr.executableDir, filename), nil
}
