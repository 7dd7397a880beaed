// Package config provides configuration management for album-catalog.
//
// This package handles:
//   - Loading and saving settings from YAML files
//   - Default configuration values
//   - Validation of loaded values
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads data.json from the working directory
//	// Debounces search input by 300ms
//	// Keeps preferences and logs under ~/.config/album-catalog
//
// # Loading from File
//
//	settings, err := config.Load("/path/to/config.yaml")
//	if err != nil {
//	    // A missing file yields defaults; invalid files and values are errors
//	}
//
// # Saving Settings
//
//	settings.DataSource = "https://example.com/data.json"
//	err := settings.Save("/path/to/config.yaml")
//
// # Configuration Options
//
// Settings includes options for:
//   - The catalog data source (URL or path)
//   - Search debounce and card reveal timing
//   - Cover art thumbnails
//   - HTTP timeout and User-Agent
//   - Log level and state directory
package config
