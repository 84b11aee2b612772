package config

import (
	"time"

	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// LibraryFile is the JSON file the catalog persists to
	LibraryFile string
	// OverwriteFiles controls whether existing export files should be overwritten
	OverwriteFiles bool
	// YearMin is the lowest publication year a book may carry
	YearMin int
	// YearMax is the highest publication year a book may carry
	YearMax int
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("libraryfile", "./library.json")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)
	viper.SetDefault("year.min", 0)
	viper.SetDefault("year.max", time.Now().Year())

	// Get values from viper
	LibraryFile = viper.GetString("libraryfile")
	OverwriteFiles = viper.GetBool("OverwriteFiles")
	YearMin = viper.GetInt("year.min")
	YearMax = viper.GetInt("year.max")
}

// SetOverwriteFiles sets the OverwriteFiles flag
func SetOverwriteFiles(overwrite bool) {
	OverwriteFiles = overwrite
}

// SetLibraryFile sets the catalog file path
func SetLibraryFile(path string) {
	if path != "" {
		LibraryFile = path
	}
}
