package main

import (
	"fmt"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newPackCmd())
	rootCmd.AddCommand(newUnpackCmd())
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <in> <out>",
		Short: "Gzip-compress an NBT file",
		Long: `The pack command decodes an NBT file (validating its structure) and
writes it back gzip-compressed.

Example:
  nbtctl pack level.dat level.dat.gz`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args[0], args[1], true)
		},
	}
}

func newUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unpack <in> <out>",
		Short: "Decompress a gzipped NBT file",
		Long: `The unpack command decodes a gzipped NBT file and writes the raw
uncompressed encoding.

Example:
  nbtctl unpack level.dat.gz level.dat`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(args[0], args[1], false)
		},
	}
}

func runPack(in, out string, compress bool) error {
	doc, err := loadDocument(in)
	if err != nil {
		return err
	}

	var opts []nbt.SaveOption
	if compress {
		opts = append(opts, nbt.SaveGzipped())
	}
	if err := doc.Save(out, opts...); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	printVerbose("Wrote %s\n", out)
	return nil
}
