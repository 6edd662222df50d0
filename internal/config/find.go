package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ConfigEnv names the variable that selects an explicit config file.
const ConfigEnv = "GEARSCAN_CONFIG"

// Source labels returned by Find.
const (
	SourceExplicit = "explicit"
	SourceCwdUp    = "cwd-up"
	SourceXDG      = "xdg"
	SourceHome     = "home"
)

var extensions = []string{".yaml", ".yml", ".toml", ".json"}

func dotNames() []string {
	out := make([]string, len(extensions))
	for i, ext := range extensions {
		out[i] = ".gearscan" + ext
	}
	return out
}

func xdgNames() []string {
	out := make([]string, len(extensions))
	for i, ext := range extensions {
		out[i] = filepath.Join("gearscan", "config"+ext)
	}
	return out
}

// Find returns the config file to load and where it came from (one of the
// Source* labels). An empty path means no file was found.
//
// 探索順: explicitPath, startDir から親方向, $XDG_CONFIG_HOME/gearscan, $HOME。
func Find(startDir, explicitPath, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		candidate, err := filepath.Abs(explicit)
		if err != nil {
			return "", "", err
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", "", err
		}
		if info.IsDir() {
			return "", "", fmt.Errorf("%s %q points to a directory", ConfigEnv, candidate)
		}
		return candidate, SourceExplicit, nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", "", err
	}
	for {
		if found := firstExisting(dir, dotNames()); found != "" {
			return found, SourceCwdUp, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	homeDir := resolveHome(home)
	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" && homeDir != "" {
		xdgRoot = filepath.Join(homeDir, ".config")
	}
	if xdgRoot != "" {
		if found := firstExisting(xdgRoot, xdgNames()); found != "" {
			return found, SourceXDG, nil
		}
	}
	if homeDir != "" {
		if found := firstExisting(homeDir, dotNames()); found != "" {
			return found, SourceHome, nil
		}
	}
	return "", "", nil
}

func resolveHome(home string) string {
	if h := strings.TrimSpace(home); h != "" {
		return h
	}
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return ""
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		if fileExists(candidate) {
			return candidate
		}
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
