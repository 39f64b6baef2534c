package main

import (
	"os"

	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newJSONCmd())
}

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json <file>",
		Short: "Export the document as JSON",
		Long: `The json command projects the document's tag tree into a generic
{type, name, payload} structure and prints it as indented JSON.

Example:
  nbtctl json level.dat
  nbtctl json servers.dat > servers.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJSON(args[0])
		},
	}
}

func runJSON(path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.Format = printer.FormatJSON

	p := printer.New(os.Stdout, opts)
	return p.Print(doc)
}
