package config

import (
	"os"
	"strconv"
)

// Config holds application configuration from environment variables.
type Config struct {
	Port       int
	DataSource string // URL or file path of the station data file
	PrefsPath  string // SQLite preference database
	Standort   string // home base address geocoded for route origins
	RefreshMin int    // data reload interval in minutes, 0 = load once
	Nominatim  string // geocoding server
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:       envInt("TANKVIEW_PORT", 8080),
		DataSource: envStr("TANKVIEW_DATA", "./tankstellen.json"),
		PrefsPath:  envStr("TANKVIEW_PREFS_PATH", "./tankview.db"),
		Standort:   envStr("TANKVIEW_STANDORT", ""),
		RefreshMin: envInt("TANKVIEW_REFRESH_MIN", 0),
		Nominatim:  envStr("TANKVIEW_NOMINATIM_URL", "https://nominatim.openstreetmap.org/"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
