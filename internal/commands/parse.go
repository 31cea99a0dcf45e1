package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerforms/ledgerforms/internal/config"
	"github.com/ledgerforms/ledgerforms/internal/description"
)

func newParseCommand() *cobra.Command {
	var bookDir string
	var dateStr string

	cmd := &cobra.Command{
		Use:   "parse <description>",
		Short: "Parse a description into its shape and fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf := time.Now()
			if dateStr != "" {
				var err error
				asOf, err = time.Parse("2006-01-02", dateStr)
				if err != nil {
					return fmt.Errorf("parsing date %q: %w", dateStr, err)
				}
			}

			cfg, err := loadBookConfig(bookDir)
			if err != nil {
				return err
			}

			templates := make([]description.Template, 0, len(cfg.Recurring))
			for _, t := range cfg.Recurring {
				templates = append(templates, description.Template{Name: t.Name, Pattern: t.Template})
			}

			shape := description.Parse(args[0], description.ExpandTemplates(templates, asOf))
			printShape(cmd, shape)
			return nil
		},
	}

	cmd.Flags().StringVar(&bookDir, "book", ".", "book directory")
	cmd.Flags().StringVar(&dateStr, "date", "", "form date for recurring templates (YYYY-MM-DD, default today)")

	return cmd
}

// loadBookConfig loads the book's config, falling back to defaults when the
// directory has no ledgerforms.yaml.
func loadBookConfig(bookDir string) (*config.Config, error) {
	cfg, err := config.Load(filepath.Join(bookDir, "ledgerforms.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func printShape(cmd *cobra.Command, shape description.Shape) {
	out := cmd.OutOrStdout()

	var suffix description.Suffix
	switch s := shape.(type) {
	case description.Recurring:
		fmt.Fprintln(out, "shape: recurring")
		fmt.Fprintf(out, "name: %s\n", s.Name)
		fmt.Fprintf(out, "text: %s\n", s.Text)
		suffix = s.Suffix
	case description.BusTrip:
		fmt.Fprintln(out, "shape: bus-trip")
		fmt.Fprintf(out, "tag: %s\n", s.Tag)
		fmt.Fprintf(out, "route: %s\n", s.Route)
		fmt.Fprintf(out, "from: %s\n", s.From)
		fmt.Fprintf(out, "to: %s\n", s.To)
		suffix = s.Suffix
	case description.Trip:
		fmt.Fprintln(out, "shape: trip")
		fmt.Fprintf(out, "tag: %s\n", s.Tag)
		fmt.Fprintf(out, "from: %s\n", s.From)
		fmt.Fprintf(out, "direction: %s\n", s.Direction)
		fmt.Fprintf(out, "to: %s\n", s.To)
		suffix = s.Suffix
	case description.General:
		fmt.Fprintln(out, "shape: general")
		fmt.Fprintf(out, "tag: %s\n", s.Tag)
		fmt.Fprintf(out, "text: %s\n", s.Text)
		suffix = s.Suffix
	case description.Annotation:
		fmt.Fprintln(out, "shape: annotation")
		fmt.Fprintf(out, "text: %s\n", s.Text)
		suffix = s.Suffix
	}

	if suffix.Repeat > 1 {
		fmt.Fprintf(out, "repeat: %d\n", suffix.Repeat)
	}
	if suffix.Note != "" {
		fmt.Fprintf(out, "note: %s\n", suffix.Note)
	}
}
