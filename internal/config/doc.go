// Package config holds the editor's own preferences.
//
// Preferences live next to the edited settings, under the app-data
// directory:
//
//	<APPDATA>/Pico Configurator/
//	├── config.json        # preferences, created with defaults on first run
//	└── configurator.log   # log output
//
// The config.json file contains simple key-value settings:
//
//	{
//	  "settings_path": "${APPDATA}/Pico Connect/settings.json",
//	  "theme": "pico",
//	  "status_timeout_seconds": 5,
//	  "log_level": "info"
//	}
//
// settings_path may reference environment variables with $VAR or ${VAR}.
// Values are validated on Load and Set.
//
// Example usage:
//
//	base, err := config.BaseDir(config.BaseEnv)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := config.NewManager(base)
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//	path, err := manager.SettingsPath()
package config
