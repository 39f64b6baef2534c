// Package printer renders decoded NBT documents for human consumption:
// an indented text tree, or JSON built from the document's structural
// dump. It sits outside the codec; nothing here can affect decoding.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/nbtkit/nbt"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxArrayElems = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs the structural dump as JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited). Deeper subtrees
	// render as an elision marker.
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowTypes includes TAG_* variant names in text output.
	// Default: true
	ShowTypes bool

	// MaxArrayElems limits how many array elements to display in text
	// output. Longer arrays are truncated with a count. 0 = no limit.
	// Default: 32
	MaxArrayElems int
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		ShowTypes:     true,
		MaxArrayElems: DefaultMaxArrayElems,
	}
}

// Printer handles formatted output of NBT documents.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, writer: w}
}

// Print renders the whole document in the configured format.
func (p *Printer) Print(doc *nbt.Document) error {
	switch p.opts.Format {
	case FormatText:
		return p.printText(doc)
	case FormatJSON:
		return p.printJSON(doc)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}
