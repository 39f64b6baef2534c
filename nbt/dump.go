package nbt

// Node is the structural projection of one tag: variant display name,
// tag name, and payload, with children recursively projected. It is
// the bridge to generic consumers (JSON export, tree printers) and is
// total over any successfully decoded document.
type Node struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	// ElemType names the element variant of a List. Empty for all
	// other variants; "TAG_End" for an empty list.
	ElemType string `json:"data_type,omitempty"`
	Payload  any    `json:"payload,omitempty"`
}

// Dump projects every root tag of the document into a Node tree. No
// scalar or array value is lost; List elements collapse to their bare
// payload values, since the wrapper metadata of a homogeneous list
// element is fully determined by the list itself.
func (doc *Document) Dump() []Node {
	out := make([]Node, 0, len(doc.Tags))
	for _, t := range doc.Tags {
		out = append(out, DumpTag(t))
	}
	return out
}

// DumpTag projects a single tag into a Node.
func DumpTag(t Tag) Node {
	n := Node{Type: t.Type().String(), Name: t.TagName()}
	switch v := t.(type) {
	case *End:
		// Sentinel only: no name, no payload.
	case *List:
		n.ElemType = v.ElemType().String()
		elems := make([]any, 0, len(v.Elems))
		for _, e := range v.Elems {
			elems = append(elems, payloadValue(e))
		}
		n.Payload = elems
	case *Compound:
		children := make([]Node, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, DumpTag(c))
		}
		n.Payload = children
	default:
		n.Payload = payloadValue(t)
	}
	return n
}

// payloadValue returns the bare payload of a tag, without type or name
// metadata. Containers recurse: a List yields its element payloads, a
// Compound yields its children as full Nodes (their names matter).
func payloadValue(t Tag) any {
	switch v := t.(type) {
	case *End:
		return nil
	case *Byte:
		return v.Value
	case *Short:
		return v.Value
	case *Int:
		return v.Value
	case *Long:
		return v.Value
	case *Float:
		return v.Value
	case *Double:
		return v.Value
	case *ByteArray:
		return v.Values
	case *String:
		return v.Value
	case *IntArray:
		return v.Values
	case *LongArray:
		return v.Values
	case *List:
		elems := make([]any, 0, len(v.Elems))
		for _, e := range v.Elems {
			elems = append(elems, payloadValue(e))
		}
		return elems
	case *Compound:
		children := make([]Node, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, DumpTag(c))
		}
		return children
	default:
		return nil
	}
}
