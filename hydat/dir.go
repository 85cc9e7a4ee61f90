package hydat

import (
	"os"
	"path/filepath"
	"runtime"
)

// DBFileName is the name of the database file inside a HYDAT release
// archive.
const DBFileName = "Hydat.sqlite3"

// Dir returns the per-user application data directory where the HYDAT
// database lives by default. The directory is not created.
func Dir() string {
	return filepath.Join(userDataDir(), "tidyhydat")
}

// DefaultDBPath returns the default location of the HYDAT database file.
func DefaultDBPath() string {
	return filepath.Join(Dir(), DBFileName)
}

func userDataDir() string {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("APPDATA"); dir != "" {
			return dir
		}
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".local", "share")
		}
	}
	return "."
}
