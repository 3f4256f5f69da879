package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/students"
	"github.com/mrlokans/bookshelf/internal/importers"
)

// ImportStudentsCommand loads a roster workbook into the database.
type ImportStudentsCommand struct {
	FilePath     string
	DatabasePath string

	out io.Writer
}

func NewImportStudentsCommand() *ImportStudentsCommand {
	return &ImportStudentsCommand{out: os.Stdout}
}

func (cmd *ImportStudentsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import-students", flag.ContinueOnError)

	fs.StringVar(&cmd.FilePath, "file", "", "Path to the roster .xlsx file (required)")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import-students -file <path> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import students and grades from the first sheet of an Excel workbook.\n")
		fmt.Fprintf(os.Stderr, "The header row must contain a name column; birth_year, subject and score are optional.\n")
		fmt.Fprintf(os.Stderr, "Nothing is written if any row is invalid.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.FilePath == "" {
		return fmt.Errorf("required flag -file not provided")
	}

	return nil
}

func (cmd *ImportStudentsCommand) Run() error {
	f, err := os.Open(cmd.FilePath)
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	db, err := database.NewDatabase(cmd.DatabasePath, database.WithLogLevel("error"))
	if err != nil {
		return err
	}
	defer db.Close()

	result, err := importers.NewPipeline(students.NewRepository(db.DB)).Import(f)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Fprintf(cmd.out, "Processed %d rows: %d students created, %d grades created\n",
		result.Rows, result.StudentsCreated, result.GradesCreated)
	return nil
}
