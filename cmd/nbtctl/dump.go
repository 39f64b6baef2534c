package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/printer"
	"github.com/spf13/cobra"
)

var (
	dumpDepth    int
	dumpNoTypes  bool
	dumpMaxElems int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	cmd.Flags().BoolVar(&dumpNoTypes, "no-types", false, "Hide TAG_* type names")
	cmd.Flags().IntVar(&dumpMaxElems, "max-elems", printer.DefaultMaxArrayElems,
		"Maximum array elements to display (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Display the tag tree",
		Long: `The dump command prints the document's tag tree in a human-readable
indented format.

Example:
  nbtctl dump level.dat
  nbtctl dump hello_world.nbt --depth 2 --no-types`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = dumpDepth
	opts.ShowTypes = !dumpNoTypes
	opts.MaxArrayElems = dumpMaxElems

	p := printer.New(os.Stdout, opts)
	return p.Print(doc)
}

// loadDocument opens an NBT file honoring the global gzip flag.
func loadDocument(path string) (*nbt.Document, error) {
	printVerbose("Opening NBT file: %s\n", path)

	var opts []nbt.LoadOption
	if gzipIn {
		opts = append(opts, nbt.WithGzip())
	}
	doc, err := nbt.Load(path, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load NBT file: %w", err)
	}
	return doc, nil
}
