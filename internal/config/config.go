package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds the application configuration
type Config struct {
	CustomPaths []string `json:"custom_paths"` // Specific Java installation paths
	SearchPaths []string `json:"search_paths"` // Base directories to scan for Java installations
	configPath  string
}

// Load loads the configuration from the user's config directory
func Load() (*Config, error) {
	configPath := Path()

	cfg := &Config{
		CustomPaths: make([]string, 0),
		SearchPaths: make([]string, 0),
		configPath:  configPath,
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Remove BOM if present (UTF-8 BOM is EF BB BF)
	// This handles files created by PowerShell with Set-Content -Encoding UTF8
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	cfg.CustomPaths = sanitize(cfg.CustomPaths)
	cfg.SearchPaths = sanitize(cfg.SearchPaths)
	return cfg, nil
}

// sanitize drops empty entries and case-insensitive duplicates
func sanitize(paths []string) []string {
	cleaned := make([]string, 0, len(paths))
	seen := make(map[string]bool)
	for _, p := range paths {
		p = normalize(p)
		if p == "" || p == "." {
			continue
		}
		key := strings.ToLower(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, p)
	}
	return cleaned
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = Path()
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.configPath, data, 0644)
}

// normalize trims and cleans a user-supplied path
func normalize(path string) string {
	return filepath.Clean(strings.TrimSpace(path))
}

// indexOf finds path in paths case-insensitively, -1 when absent
func indexOf(paths []string, path string) int {
	path = normalize(path)
	for i, p := range paths {
		if strings.EqualFold(p, path) {
			return i
		}
	}
	return -1
}

// AddCustomPath adds a custom Java installation path
func (c *Config) AddCustomPath(path string) {
	path = normalize(path)
	if path == "" || path == "." || c.HasCustomPath(path) {
		return
	}
	c.CustomPaths = append(c.CustomPaths, path)
}

// RemoveCustomPath removes a custom Java installation path and reports whether it was present
func (c *Config) RemoveCustomPath(path string) bool {
	i := indexOf(c.CustomPaths, path)
	if i < 0 {
		return false
	}
	c.CustomPaths = append(c.CustomPaths[:i], c.CustomPaths[i+1:]...)
	return true
}

// HasCustomPath checks if a path exists in custom paths
func (c *Config) HasCustomPath(path string) bool {
	return indexOf(c.CustomPaths, path) >= 0
}

// AddSearchPath adds a search path for auto-detection
func (c *Config) AddSearchPath(path string) {
	path = normalize(path)
	if path == "" || path == "." || c.HasSearchPath(path) {
		return
	}
	c.SearchPaths = append(c.SearchPaths, path)
}

// RemoveSearchPath removes a search path and reports whether it was present
func (c *Config) RemoveSearchPath(path string) bool {
	i := indexOf(c.SearchPaths, path)
	if i < 0 {
		return false
	}
	c.SearchPaths = append(c.SearchPaths[:i], c.SearchPaths[i+1:]...)
	return true
}

// HasSearchPath checks if a path exists in search paths
func (c *Config) HasSearchPath(path string) bool {
	return indexOf(c.SearchPaths, path) >= 0
}

// Path returns the path to the configuration file
// Following XDG Base Directory specification
func Path() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "jrt", "jrt.json")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return filepath.Join(homeDir, ".config", "jrt", "jrt.json")
}
