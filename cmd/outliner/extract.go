package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dgallion1/outliner/internal/extractor"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	var pageLimit int
	var sections bool

	cmd := &cobra.Command{
		Use:   "extract <file>",
		Short: "Extract a single document's outline to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			name := filepath.Base(path)

			ext, err := extractor.ForFile(name, outline.DefaultHeuristics(), pageLimit)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", name, err)
			}
			defer f.Close()

			if sections {
				sp, ok := ext.(extractor.SectionProvider)
				if !ok {
					return fmt.Errorf("sections not supported for %s", filepath.Ext(name))
				}
				o, secs, err := sp.ExtractSections(f, name)
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(map[string]any{
					"title":    o.Title,
					"outline":  o.Headings,
					"sections": secs,
				}, "", "    ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			o, err := ext.Extract(f, name)
			if err != nil {
				return err
			}
			out, err := outline.EncodeJSON(o)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().IntVar(&pageLimit, "page-limit", 0, "max PDF pages to read (0 = all)")
	cmd.Flags().BoolVar(&sections, "sections", false, "include grouped section content")
	return cmd
}
