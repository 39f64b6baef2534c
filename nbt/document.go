package nbt

import "fmt"

// Document is the ordered collection of root-level tags decoded from,
// or encoded to, one byte buffer. A buffer may carry any number of
// concatenated full-form root tags; all are preserved in order.
type Document struct {
	Tags []Tag
}

// Decode parses data into a Document by repeatedly decoding full named
// root tags until the buffer is exhausted. An empty buffer yields an
// empty document. Any structural error aborts the whole decode; the
// format has no way to resynchronize past a bad length prefix.
//
// A bare End byte at root level decodes to an *End root tag and is
// retained. End acts as a terminator only inside a Compound; at root
// there is nothing for it to terminate, and dropping it would make
// re-encoding lose bytes the input carried.
func Decode(data []byte) (*Document, error) {
	cur := NewCursor(data)
	d := &decoder{cur: cur}
	doc := &Document{}
	for cur.HasMore() {
		start := cur.Pos()
		t, err := d.decodeTag(true)
		if err != nil {
			return nil, fmt.Errorf("root tag at offset %d: %w", start, err)
		}
		doc.Tags = append(doc.Tags, t)
	}
	return doc, nil
}

// Encode flattens the document back to bytes: the concatenated
// full-form encoding of each root tag in order.
func (doc *Document) Encode() ([]byte, error) {
	var out []byte
	for i, t := range doc.Tags {
		var err error
		out, err = appendTag(out, t)
		if err != nil {
			return nil, fmt.Errorf("root tag %d: %w", i, err)
		}
	}
	return out, nil
}

// Add appends a root tag to the document.
func (doc *Document) Add(t Tag) {
	doc.Tags = append(doc.Tags, t)
}
