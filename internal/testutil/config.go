package testutil

import (
	"testing"

	"github.com/lepinkainen/shelf/internal/config"
	"github.com/spf13/viper"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	LibraryFile    string
	OverwriteFiles bool
	YearMin        int
	YearMax        int
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		LibraryFile:    config.LibraryFile,
		OverwriteFiles: config.OverwriteFiles,
		YearMin:        config.YearMin,
		YearMax:        config.YearMax,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.LibraryFile = state.LibraryFile
	config.OverwriteFiles = state.OverwriteFiles
	config.YearMin = state.YearMin
	config.YearMax = state.YearMax
}

// SetTestConfig sets up a test configuration with common defaults.
// It saves the current state and restores it when the test completes.
func SetTestConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()

	viper.Reset()

	config.LibraryFile = "library.json"
	config.OverwriteFiles = true
	config.YearMin = 0
	config.YearMax = 2100

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// Note: viper doesn't have an Unset function, so we can't
		// restore the "unset" state. This is a known limitation.
	})
}
