package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// AppDirName is the folder under the app-data directory that holds the
	// editor's own files
	AppDirName = "Pico Configurator"

	// BaseEnv names the variable that supplies the app-data directory
	BaseEnv = "APPDATA"

	configFile = "config.json"
	logFile    = "configurator.log"
)

var (
	// ErrMissingEnv is returned when the app-data variable is unset
	ErrMissingEnv = errors.New("environment variable not set")
	// ErrInvalid wraps validation failures
	ErrInvalid = errors.New("invalid configuration")
)

// Themes the editor ships with
var Themes = []string{"pico", "dark"}

// Log levels accepted in log_level
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds the editor preferences
type Config struct {
	// Settings file to edit, may reference $VAR or ${VAR}
	SettingsPath string `json:"settings_path"`

	// UI preferences
	Theme                string `json:"theme"`
	StatusTimeoutSeconds int    `json:"status_timeout_seconds"`

	LogLevel string `json:"log_level"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		SettingsPath:         "${" + BaseEnv + "}/Pico Connect/settings.json",
		Theme:                "pico",
		StatusTimeoutSeconds: 5,
		LogLevel:             "info",
	}
}

// Validate checks field values
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.SettingsPath, validation.Required),
		validation.Field(&c.Theme, validation.Required, validation.In(toAny(Themes)...)),
		validation.Field(&c.StatusTimeoutSeconds, validation.Min(0), validation.Max(3600)),
		validation.Field(&c.LogLevel, validation.Required, validation.In(toAny(LogLevels)...)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

func toAny(s []string) []interface{} {
	out := make([]interface{}, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}

// BaseDir returns the app-data directory named by env
func BaseDir(env string) (string, error) {
	dir := os.Getenv(env)
	if dir == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingEnv, env)
	}
	return dir, nil
}

// Manager handles configuration loading and saving
type Manager struct {
	dir        string
	configPath string
	config     *Config
}

// NewManager creates a manager for the editor folder under baseDir
func NewManager(baseDir string) *Manager {
	dir := filepath.Join(baseDir, AppDirName)
	return &Manager{
		dir:        dir,
		configPath: filepath.Join(dir, configFile),
		config:     DefaultConfig(),
	}
}

// Dir is the editor folder
func (m *Manager) Dir() string {
	return m.dir
}

// LogPath is where the editor writes its log
func (m *Manager) LogPath() string {
	return filepath.Join(m.dir, logFile)
}

// Load reads the configuration from disk, creating defaults if needed
func (m *Manager) Load() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return m.Save()
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Missing fields keep their defaults
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := config.Validate(); err != nil {
		return err
	}

	m.config = config
	return nil
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the current configuration
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a configuration value and saves
func (m *Manager) Set(key, value string) error {
	next := *m.config
	switch key {
	case "settings_path":
		next.SettingsPath = value
	case "theme":
		next.Theme = value
	case "log_level":
		next.LogLevel = value
	case "status_timeout_seconds":
		var n int
		if _, err := fmt.Sscanf(value, "%d", &n); err != nil {
			return fmt.Errorf("%w: status_timeout_seconds: %q is not a number", ErrInvalid, value)
		}
		next.StatusTimeoutSeconds = n
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	m.config = &next
	return m.Save()
}

// SettingsPath is the settings file with variables expanded. A variable that
// is not set is an error, the path would otherwise point somewhere odd.
func (m *Manager) SettingsPath() (string, error) {
	path := expandString(m.config.SettingsPath)
	if name := unexpanded.FindString(path); name != "" {
		return "", fmt.Errorf("%w: %s in settings_path", ErrMissingEnv, name)
	}
	return filepath.Clean(path), nil
}

// matches $VAR or ${VAR}
var unexpanded = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// expandString expands environment variables in a string.
// Supports $VAR and ${VAR} syntax; unknown variables are left as is.
func expandString(s string) string {
	return unexpanded.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match
	})
}
