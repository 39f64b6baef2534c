package nbt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/joshuapare/nbtkit/internal/mmfile"
	"github.com/joshuapare/nbtkit/internal/writer"
)

// gzipMagic is the two-byte header of every gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	forceGzip bool
}

// WithGzip forces gzip decompression even when the file does not start
// with the gzip magic. Without it, Load auto-detects compression.
func WithGzip() LoadOption {
	return func(o *loadOptions) { o.forceGzip = true }
}

// SaveOption configures Document.Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	gzip bool
}

// SaveGzipped compresses the output with gzip.
func SaveGzipped() SaveOption {
	return func(o *saveOptions) { o.gzip = true }
}

// Load reads and decodes the NBT file at path. Files are memory-mapped
// where the platform allows; gzip-compressed files (common for level
// data) are detected by their magic and decompressed transparently.
func Load(path string, opts ...LoadOption) (*Document, error) {
	var o loadOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	defer cleanup()

	if o.forceGzip || bytes.HasPrefix(data, gzipMagic) {
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("load %s: gzip: %w", path, err)
		}
		data, err = io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("load %s: gzip: %w", path, err)
		}
		if err := zr.Close(); err != nil {
			return nil, fmt.Errorf("load %s: gzip: %w", path, err)
		}
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}

// Save encodes the document and writes it to path, optionally gzipped.
func (doc *Document) Save(path string, opts ...SaveOption) error {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}

	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if o.gzip {
		var zbuf bytes.Buffer
		zw := gzip.NewWriter(&zbuf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("save %s: gzip: %w", path, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("save %s: gzip: %w", path, err)
		}
		data = zbuf.Bytes()
	}

	fw := writer.FileWriter{Path: path}
	if err := fw.Write(data); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
