package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	configFilenames = []string{
		".cmtrans.yaml",
		".cmtrans.yml",
		".cmtrans.toml",
		".cmtrans.json",
	}
	xdgFilenames = []string{
		"config.yaml",
		"config.yml",
		"config.toml",
		"config.json",
	}
)

// Explicit is a config path given by the user. From names where it came
// from ("--config", "CMTRANS_CONFIG") for error messages.
type Explicit struct {
	Path string
	From string
}

func (e Explicit) from() string {
	if e.From == "" {
		return "config"
	}
	return e.From
}

// Find locates the configuration file. The second result names where it
// was found: explicit, cwd-up, xdg or home. No file is not an error.
func Find(startDir string, explicitPath Explicit, xdgHome, home string) (string, string, error) {
	if explicit := strings.TrimSpace(explicitPath.Path); explicit != "" {
		candidate := explicit
		if !filepath.IsAbs(candidate) {
			cwd, err := os.Getwd()
			if err != nil {
				return "", "", err
			}
			candidate = filepath.Join(cwd, candidate)
		}
		info, err := os.Stat(candidate)
		if err != nil {
			return "", "", fmt.Errorf("%s: %w", explicitPath.from(), err)
		}
		if info.IsDir() {
			return "", "", fmt.Errorf("%s %q points to a directory", explicitPath.from(), candidate)
		}
		return candidate, "explicit", nil
	}

	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	absStart, err := filepath.Abs(start)
	if err != nil {
		return "", "", err
	}
	dir := absStart
	for {
		for _, name := range configFilenames {
			candidate := filepath.Join(dir, name)
			if fileExists(candidate) {
				return candidate, "cwd-up", nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	xdgRoot := strings.TrimSpace(xdgHome)
	if xdgRoot == "" {
		if homeDir := homeOr(home); homeDir != "" {
			xdgRoot = filepath.Join(homeDir, ".config")
		}
	}
	if xdgRoot != "" {
		for _, name := range xdgFilenames {
			candidate := filepath.Join(xdgRoot, "cmtrans", name)
			if fileExists(candidate) {
				return candidate, "xdg", nil
			}
		}
	}

	if homeDir := homeOr(home); homeDir != "" {
		for _, name := range configFilenames {
			candidate := filepath.Join(homeDir, name)
			if fileExists(candidate) {
				return candidate, "home", nil
			}
		}
	}

	return "", "", nil
}

func homeOr(home string) string {
	if h := strings.TrimSpace(home); h != "" {
		return h
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return h
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
