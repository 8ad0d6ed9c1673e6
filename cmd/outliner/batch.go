package main

import (
	"log/slog"
	"os"

	"github.com/dgallion1/outliner/internal/batch"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/spf13/cobra"
)

func batchCmd() *cobra.Command {
	var input string
	var output string
	var pageLimit int
	var sections bool

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Process every supported document in a directory tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
			r := &batch.Runner{
				InputDir:   input,
				OutputDir:  output,
				Heuristics: outline.DefaultHeuristics(),
				PageLimit:  pageLimit,
				Sections:   sections,
				Log:        log,
			}
			_, err := r.Run(cmd.Context())
			return err
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "input", "directory to scan for documents")
	cmd.Flags().StringVarP(&output, "output", "o", "output", "directory for outline JSON files")
	cmd.Flags().IntVar(&pageLimit, "page-limit", 0, "max PDF pages to read per document (0 = all)")
	cmd.Flags().BoolVar(&sections, "sections", false, "also write grouped section content per document")
	return cmd
}
