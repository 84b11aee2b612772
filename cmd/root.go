package cmd

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/lepinkainen/shelf/internal/config"
	"github.com/lepinkainen/shelf/internal/library"
	"github.com/spf13/viper"
)

// CLI represents the complete command structure for the shelf application
type CLI struct {
	// Global flags
	Library   string `short:"l" help:"Path to the library JSON file (defaults to libraryfile in config)"`
	Overwrite bool   `help:"Overwrite existing export files when writing"`

	Add    AddCmd    `cmd:"" help:"Add a book to the catalog"`
	Remove RemoveCmd `cmd:"" help:"Remove a book from the catalog"`
	List   ListCmd   `cmd:"" help:"List all books, optionally sorted"`
	Search SearchCmd `cmd:"" help:"Search books by title or author"`
	Stats  StatsCmd  `cmd:"" help:"Show catalog statistics"`
	Import ImportCmd `cmd:"" help:"Import books from external sources"`
	Export ExportCmd `cmd:"" help:"Export the catalog to other formats"`
}

// ImportCmd represents the import command and its subcommands
type ImportCmd struct {
	Goodreads GoodreadsCmd   `cmd:"" help:"Import books from a Goodreads library export CSV"`
	Notes     ImportNotesCmd `cmd:"" help:"Import books from markdown notes"`
}

// ExportCmd represents the export command and its subcommands
type ExportCmd struct {
	Notes     ExportNotesCmd `cmd:"" help:"Export books as markdown notes"`
	JSON      ExportJSONCmd  `cmd:"" help:"Export the catalog to a JSON file"`
	Datasette DatasetteCmd   `cmd:"" help:"Export the catalog to a SQLite database for Datasette"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	// Create CLI instance
	var cli CLI

	// Parse command line with Kong
	ctx := kong.Parse(&cli,
		kong.Name("shelf"),
		kong.Description("A personal book catalog that persists to a local JSON file."),
		kong.UsageOnError(),
	)

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	// Execute the selected command
	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("libraryfile", "./library.json")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	// Datasette defaults
	viper.SetDefault("datasette.dbfile", "./shelf.db")

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("libraryfile", "SHELF_LIBRARY_FILE"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	// Update config based on CLI flags
	config.SetLibraryFile(cli.Library)
	config.SetOverwriteFiles(cli.Overwrite)
}

// openLibrary loads the persisted catalog into a fresh session. Load
// failures degrade to an empty catalog inside library.Open.
func openLibrary() *library.Library {
	store := library.NewStore(config.LibraryFile)
	return library.Open(store)
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
