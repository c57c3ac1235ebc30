package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	CustomPaths  []string     `json:"custom_paths"`  // Pinned Java installation paths, classified directly
	SearchPaths  []string     `json:"search_paths"`  // Extra directories to scan for installations
	ScanDepth    int          `json:"scan_depth"`    // How deep to walk below each search path (0 = platform default)
	UpdateConfig UpdateConfig `json:"update_config"` // Auto-update configuration
	configPath   string
}

// UpdateConfig holds settings for the self-update feature
type UpdateConfig struct {
	Enabled     bool      `json:"enabled"`      // Master toggle for update functionality
	AutoCheck   bool      `json:"auto_check"`   // Check for updates on startup
	LastCheck   time.Time `json:"last_check"`   // Last time update check was performed
	SkipVersion string    `json:"skip_version"` // Version user chose to skip
}

// Load loads the configuration from the user's config directory
func Load() (*Config, error) {
	configPath := getConfigPath()

	cfg := &Config{
		CustomPaths: make([]string, 0),
		SearchPaths: make([]string, 0),
		UpdateConfig: UpdateConfig{
			Enabled:   true,
			AutoCheck: true,
		},
		configPath: configPath,
	}

	// If config file doesn't exist, return empty config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	// Remove BOM if present (UTF-8 BOM is EF BB BF)
	// This handles files created by PowerShell with Set-Content -Encoding UTF8
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.CustomPaths = sanitizePaths(cfg.CustomPaths)
	cfg.SearchPaths = sanitizePaths(cfg.SearchPaths)
	if cfg.ScanDepth < 0 {
		cfg.ScanDepth = 0
	}

	cfg.configPath = configPath
	return cfg, nil
}

// sanitizePaths cleans entries and drops blanks and duplicates
func sanitizePaths(paths []string) []string {
	cleaned := make([]string, 0, len(paths))
	seen := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(strings.TrimSpace(p))
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
	// Ensure config directory exists
	configDir := filepath.Dir(c.configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.configPath, data, 0644)
}

// AddCustomPath pins a specific Java installation path
func (c *Config) AddCustomPath(path string) {
	path = filepath.Clean(strings.TrimSpace(path))

	if path == "" || path == "." {
		return
	}

	for _, p := range c.CustomPaths {
		if strings.EqualFold(p, path) {
			return
		}
	}

	c.CustomPaths = append(c.CustomPaths, path)
}

// RemoveCustomPath removes a pinned Java installation path
func (c *Config) RemoveCustomPath(path string) {
	path = filepath.Clean(path)

	for i, p := range c.CustomPaths {
		if strings.EqualFold(p, path) {
			c.CustomPaths = append(c.CustomPaths[:i], c.CustomPaths[i+1:]...)
			return
		}
	}
}

// HasCustomPath checks if a path is already pinned
func (c *Config) HasCustomPath(path string) bool {
	path = filepath.Clean(path)

	for _, p := range c.CustomPaths {
		if strings.EqualFold(p, path) {
			return true
		}
	}
	return false
}

// AddSearchPath adds a search path for auto-detection
func (c *Config) AddSearchPath(path string) {
	path = filepath.Clean(path)

	for _, p := range c.SearchPaths {
		if strings.EqualFold(p, path) {
			return
		}
	}

	c.SearchPaths = append(c.SearchPaths, path)
}

// RemoveSearchPath removes a search path
func (c *Config) RemoveSearchPath(path string) {
	path = filepath.Clean(path)

	for i, p := range c.SearchPaths {
		if strings.EqualFold(p, path) {
			c.SearchPaths = append(c.SearchPaths[:i], c.SearchPaths[i+1:]...)
			return
		}
	}
}

// HasSearchPath checks if a path exists in search paths
func (c *Config) HasSearchPath(path string) bool {
	path = filepath.Clean(path)

	for _, p := range c.SearchPaths {
		if strings.EqualFold(p, path) {
			return true
		}
	}
	return false
}

// getConfigPath returns the path to the configuration file
// Following XDG Base Directory specification
func getConfigPath() string {
	// Try XDG_CONFIG_HOME first (standard on Unix systems)
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome != "" {
		return filepath.Join(configHome, "jrt", "jrt.json")
	}

	// Fallback to $HOME/.config/jrt/jrt.json (XDG default)
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return filepath.Join(homeDir, ".config", "jrt", "jrt.json")
}
