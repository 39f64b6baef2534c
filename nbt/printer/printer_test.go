package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
)

func sampleDocument() *nbt.Document {
	doc := &nbt.Document{}
	doc.Add(&nbt.Compound{Name: "root", Children: []nbt.Tag{
		&nbt.Byte{Name: "flag", Value: 1},
		&nbt.String{Name: "motd", Value: "hi"},
		&nbt.IntArray{Name: "ids", Values: []int32{1, 2, 3, 4}},
		&nbt.List{Name: "xs", Elems: []nbt.Tag{
			&nbt.Float{Value: 0.5},
			&nbt.Float{Value: 1.5},
		}},
	}})
	return doc
}

func TestPrintText(t *testing.T) {
	var out bytes.Buffer
	p := New(&out, DefaultOptions())
	require.NoError(t, p.Print(sampleDocument()))

	text := out.String()
	assert.Contains(t, text, "[NBT]")
	assert.Contains(t, text, `TAG_Compound("root") (entries: 4)`)
	assert.Contains(t, text, `TAG_Byte("flag"): 1`)
	assert.Contains(t, text, `TAG_String("motd"): "hi"`)
	assert.Contains(t, text, `TAG_List("xs") [TAG_Float] (entries: 2)`)
	// Unnamed list elements fall back to the bare type name.
	assert.Contains(t, text, "TAG_Float: 0.5")
}

func TestPrintTextIndentation(t *testing.T) {
	var out bytes.Buffer
	opts := DefaultOptions()
	opts.IndentSize = 4
	p := New(&out, opts)
	require.NoError(t, p.Print(sampleDocument()))

	assert.Contains(t, out.String(), "\n    TAG_Byte")
}

func TestPrintTextMaxDepth(t *testing.T) {
	var out bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 1
	p := New(&out, opts)
	require.NoError(t, p.Print(sampleDocument()))

	text := out.String()
	assert.Contains(t, text, `TAG_Byte("flag") ...`)
	assert.NotContains(t, text, `: 1`)
}

func TestPrintTextArrayTruncation(t *testing.T) {
	var out bytes.Buffer
	opts := DefaultOptions()
	opts.MaxArrayElems = 2
	p := New(&out, opts)
	require.NoError(t, p.Print(sampleDocument()))

	assert.Contains(t, out.String(), "[1, 2, ... (4 total)]")
}

func TestPrintJSON(t *testing.T) {
	var out bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New(&out, opts)
	require.NoError(t, p.Print(sampleDocument()))

	var nodes []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &nodes))
	require.Len(t, nodes, 1)
	assert.Equal(t, "TAG_Compound", nodes[0]["type"])
	assert.Equal(t, "root", nodes[0]["name"])
}

func TestPrintUnknownFormat(t *testing.T) {
	p := New(&strings.Builder{}, Options{Format: "xml"})
	err := p.Print(sampleDocument())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}
