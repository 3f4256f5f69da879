package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/students"
	"github.com/mrlokans/bookshelf/internal/exporters"
)

// ExportReportCommand writes the gradebook report workbook to disk.
type ExportReportCommand struct {
	OutputPath   string
	DatabasePath string

	out io.Writer
}

func NewExportReportCommand() *ExportReportCommand {
	return &ExportReportCommand{out: os.Stdout}
}

func (cmd *ExportReportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export-report", flag.ContinueOnError)

	fs.StringVar(&cmd.OutputPath, "out", "", "Output .xlsx path (defaults to a timestamped file in the current directory)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-report [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export per-student averages, per-subject averages and the summary to Excel.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputPath == "" {
		cmd.OutputPath = exporters.FileName(time.Now())
	}
	if filepath.Ext(cmd.OutputPath) != ".xlsx" {
		return fmt.Errorf("-out must end with .xlsx")
	}

	return nil
}

func (cmd *ExportReportCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database not found: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath, database.WithLogLevel("error"))
	if err != nil {
		return err
	}
	defer db.Close()

	exporter := exporters.NewReportExporter(students.NewRepository(db.DB))
	result, err := exporter.WriteFile(cmd.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	fmt.Fprintf(cmd.out, "Exported %d students and %d subjects to %s\n", result.Students, result.Subjects, cmd.OutputPath)
	return nil
}
