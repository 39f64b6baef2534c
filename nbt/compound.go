package nbt

import "fmt"

// Compound is a container of named tags terminated on the wire by an
// End sentinel (id 0x0a). Children keep their wire arrival order; the
// format imposes no name uniqueness and neither does this package. The
// terminating End is consumed during decode, never stored as a child.
type Compound struct {
	Name     string
	Children []Tag
}

func (t *Compound) Type() TypeID    { return TypeCompound }
func (t *Compound) TagName() string { return t.Name }

// Get returns the first child with the given name, or nil.
func (t *Compound) Get(name string) Tag {
	for _, c := range t.Children {
		if c.TagName() == name {
			return c
		}
	}
	return nil
}

func (t *Compound) appendPayload(dst []byte) ([]byte, error) {
	for i, c := range t.Children {
		if c.Type() == TypeEnd {
			return nil, fmt.Errorf("compound child %d: End is a wire terminator, not content: %w",
				i, ErrUnsupportedType)
		}
		var err error
		dst, err = appendTag(dst, c)
		if err != nil {
			return nil, fmt.Errorf("compound child %d (%q): %w", i, c.TagName(), err)
		}
	}
	return append(dst, byte(TypeEnd)), nil
}

func decodeCompound(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	if err := d.enter(); err != nil {
		return nil, fmt.Errorf("compound %q: %w", name, err)
	}
	defer d.leave()

	var children []Tag
	for {
		// A compound missing its End terminator runs the cursor dry and
		// surfaces the out-of-bounds error from the child decode.
		child, err := d.decodeTag(true)
		if err != nil {
			return nil, fmt.Errorf("compound %q: %w", name, err)
		}
		if child.Type() == TypeEnd {
			break
		}
		children = append(children, child)
	}
	return &Compound{Name: name, Children: children}, nil
}
