package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
)

// printText renders the document as an indented tree, one root tag per
// block.
func (p *Printer) printText(doc *nbt.Document) error {
	if _, err := fmt.Fprintln(p.writer, "[NBT]"); err != nil {
		return err
	}
	for _, t := range doc.Tags {
		if err := p.printTagText(t, 0); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printTagText(t nbt.Tag, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		_, err := fmt.Fprintf(p.writer, "%s%s ...\n", indent, p.label(t))
		return err
	}

	switch v := t.(type) {
	case *nbt.End:
		_, err := fmt.Fprintf(p.writer, "%s[TAG_End]\n", indent)
		return err
	case *nbt.Compound:
		if _, err := fmt.Fprintf(p.writer, "%s%s (entries: %d)\n",
			indent, p.label(t), len(v.Children)); err != nil {
			return err
		}
		for _, c := range v.Children {
			if err := p.printTagText(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	case *nbt.List:
		if _, err := fmt.Fprintf(p.writer, "%s%s [%s] (entries: %d)\n",
			indent, p.label(t), v.ElemType(), len(v.Elems)); err != nil {
			return err
		}
		for _, e := range v.Elems {
			if err := p.printTagText(e, depth+1); err != nil {
				return err
			}
		}
		return nil
	case *nbt.ByteArray:
		return p.printArrayText(indent, t, len(v.Values), func(i int) string {
			return fmt.Sprintf("%d", v.Values[i])
		})
	case *nbt.IntArray:
		return p.printArrayText(indent, t, len(v.Values), func(i int) string {
			return fmt.Sprintf("%d", v.Values[i])
		})
	case *nbt.LongArray:
		return p.printArrayText(indent, t, len(v.Values), func(i int) string {
			return fmt.Sprintf("%d", v.Values[i])
		})
	case *nbt.String:
		_, err := fmt.Fprintf(p.writer, "%s%s: %q\n", indent, p.label(t), v.Value)
		return err
	case *nbt.Byte:
		_, err := fmt.Fprintf(p.writer, "%s%s: %d\n", indent, p.label(t), v.Value)
		return err
	case *nbt.Short:
		_, err := fmt.Fprintf(p.writer, "%s%s: %d\n", indent, p.label(t), v.Value)
		return err
	case *nbt.Int:
		_, err := fmt.Fprintf(p.writer, "%s%s: %d\n", indent, p.label(t), v.Value)
		return err
	case *nbt.Long:
		_, err := fmt.Fprintf(p.writer, "%s%s: %d\n", indent, p.label(t), v.Value)
		return err
	case *nbt.Float:
		_, err := fmt.Fprintf(p.writer, "%s%s: %v\n", indent, p.label(t), v.Value)
		return err
	case *nbt.Double:
		_, err := fmt.Fprintf(p.writer, "%s%s: %v\n", indent, p.label(t), v.Value)
		return err
	default:
		_, err := fmt.Fprintf(p.writer, "%s%s\n", indent, p.label(t))
		return err
	}
}

func (p *Printer) printArrayText(indent string, t nbt.Tag, n int, elem func(int) string) error {
	shown := n
	if p.opts.MaxArrayElems > 0 && shown > p.opts.MaxArrayElems {
		shown = p.opts.MaxArrayElems
	}
	parts := make([]string, 0, shown)
	for i := 0; i < shown; i++ {
		parts = append(parts, elem(i))
	}
	suffix := ""
	if shown < n {
		suffix = fmt.Sprintf(", ... (%d total)", n)
	}
	_, err := fmt.Fprintf(p.writer, "%s%s: [%s%s]\n",
		indent, p.label(t), strings.Join(parts, ", "), suffix)
	return err
}

// label renders "TAG_Byte(name)" or just "name" / "TAG_Byte" depending
// on what is available and requested.
func (p *Printer) label(t nbt.Tag) string {
	name := t.TagName()
	if !p.opts.ShowTypes {
		if name == "" {
			return "-"
		}
		return name
	}
	if name == "" {
		return t.Type().String()
	}
	return fmt.Sprintf("%s(%q)", t.Type(), name)
}
