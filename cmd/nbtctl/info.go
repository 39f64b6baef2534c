package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show document statistics",
		Long: `The info command reports root tag count, encoded size, and per-variant
tag counts for an NBT file.

Example:
  nbtctl info level.dat`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	encoded, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("failed to re-encode document: %w", err)
	}

	counts := map[nbt.TypeID]int{}
	total := 0
	for _, t := range doc.Tags {
		countTags(t, counts, &total)
	}

	fmt.Fprintf(os.Stdout, "File:        %s\n", path)
	fmt.Fprintf(os.Stdout, "Root tags:   %d\n", len(doc.Tags))
	fmt.Fprintf(os.Stdout, "Total tags:  %d\n", total)
	fmt.Fprintf(os.Stdout, "Encoded:     %d bytes\n", len(encoded))

	ids := make([]nbt.TypeID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		fmt.Fprintf(os.Stdout, "  %-16s %d\n", id, counts[id])
	}
	return nil
}

// countTags walks the tree tallying every tag, containers included.
func countTags(t nbt.Tag, counts map[nbt.TypeID]int, total *int) {
	counts[t.Type()]++
	*total++
	switch v := t.(type) {
	case *nbt.List:
		for _, e := range v.Elems {
			countTags(e, counts, total)
		}
	case *nbt.Compound:
		for _, c := range v.Children {
			countTags(c, counts, total)
		}
	}
}
