package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/shelf/internal/cmdutil"
	"github.com/lepinkainen/shelf/internal/config"
	"github.com/lepinkainen/shelf/internal/export"
	"github.com/lepinkainen/shelf/internal/goodreads"
	"github.com/lepinkainen/shelf/internal/notes"
	"github.com/spf13/viper"
)

// GoodreadsCmd represents the goodreads import command
type GoodreadsCmd struct {
	Input string `short:"f" help:"Path to Goodreads library export CSV file"`
}

// ImportNotesCmd represents the notes import command
type ImportNotesCmd struct {
	Dir string `short:"d" help:"Directory containing markdown book notes"`
}

// ExportNotesCmd represents the notes export command
type ExportNotesCmd struct {
	Output string `short:"o" help:"Subdirectory under markdown output directory for book notes" default:"books"`
}

// ExportJSONCmd represents the JSON export command
type ExportJSONCmd struct {
	Output string `short:"o" help:"Path to JSON output file (defaults to json/books.json)"`
}

// DatasetteCmd represents the datasette export command
type DatasetteCmd struct {
	DBFile string `help:"Path to SQLite database file (defaults to datasette.dbfile in config)"`
}

func (g *GoodreadsCmd) Run() error {
	// Read from config if value not provided via flag
	input := g.Input
	if input == "" {
		input = viper.GetString("goodreads.csvfile")
	}

	// Check if required value is still missing
	if input == "" {
		return fmt.Errorf("input CSV file is required (provide via --input flag or goodreads.csvfile in config)")
	}

	books, err := goodreads.ImportCSV(input, config.YearMin, config.YearMax)
	if err != nil {
		return err
	}

	lib := openLibrary()
	if err := lib.AddAll(books); err != nil {
		slog.Warn("Books imported but the catalog could not be saved", "error", err)
		return nil
	}

	slog.Info("Import complete", "imported", len(books), "total", lib.Len())
	return nil
}

func (i *ImportNotesCmd) Run() error {
	dir := i.Dir
	if dir == "" {
		return fmt.Errorf("notes directory is required (provide via --dir flag)")
	}

	books, err := notes.Read(dir, config.YearMin, config.YearMax)
	if err != nil {
		return err
	}

	lib := openLibrary()
	if err := lib.AddAll(books); err != nil {
		slog.Warn("Books imported but the catalog could not be saved", "error", err)
		return nil
	}

	slog.Info("Import complete", "imported", len(books), "total", lib.Len())
	return nil
}

func (e *ExportNotesCmd) Run() error {
	cfg := &cmdutil.BaseCommandConfig{
		OutputDir: e.Output,
		ConfigKey: "books",
	}
	if err := cmdutil.SetupOutputDir(cfg); err != nil {
		return err
	}

	lib := openLibrary()
	written, err := notes.Write(lib.Books(), cfg.OutputDir, config.OverwriteFiles)
	if err != nil {
		return err
	}

	slog.Info("Wrote book notes", "directory", cfg.OutputDir, "written", written, "total", lib.Len())
	return nil
}

func (e *ExportJSONCmd) Run() error {
	cfg := &cmdutil.BaseCommandConfig{
		ConfigKey:  "books",
		JSONOutput: e.Output,
		WriteJSON:  true,
	}
	if err := cmdutil.SetupOutputDir(cfg); err != nil {
		return err
	}

	lib := openLibrary()
	return export.WriteJSON(lib.Books(), cfg.JSONOutput, config.OverwriteFiles)
}

func (d *DatasetteCmd) Run() error {
	dbFile := d.DBFile
	if dbFile == "" {
		dbFile = viper.GetString("datasette.dbfile")
	}

	lib := openLibrary()
	return export.WriteDatasette(lib.Books(), dbFile)
}
