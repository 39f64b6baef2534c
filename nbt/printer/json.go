package printer

import (
	"encoding/json"

	"github.com/joshuapare/nbtkit/nbt"
)

// printJSON emits the document's structural dump as indented JSON.
// The dump carries {type, name, payload} per tag, with list elements
// collapsed to bare payload values.
func (p *Printer) printJSON(doc *nbt.Document) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc.Dump())
}
