package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "outliner",
		Short: "Extract structural outlines from PDF, Markdown, HTML, and DOCX documents",
	}

	root.AddCommand(serveCmd())
	root.AddCommand(batchCmd())
	root.AddCommand(extractCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
