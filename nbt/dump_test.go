package nbt

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpScalar(t *testing.T) {
	doc := &Document{}
	doc.Add(&Byte{Name: "a", Value: 5})

	nodes := doc.Dump()
	require.Len(t, nodes, 1)
	assert.Equal(t, "TAG_Byte", nodes[0].Type)
	assert.Equal(t, "a", nodes[0].Name)
	assert.Equal(t, int8(5), nodes[0].Payload)
}

func TestDumpListCollapsesElementMetadata(t *testing.T) {
	doc := &Document{}
	doc.Add(&List{Name: "l", Elems: []Tag{
		&Int{Value: 1},
		&Int{Value: 2},
	}})

	nodes := doc.Dump()
	require.Len(t, nodes, 1)
	assert.Equal(t, "TAG_List", nodes[0].Type)
	assert.Equal(t, "TAG_Int", nodes[0].ElemType)
	// List elements are bare payload values, not wrapped nodes.
	assert.Equal(t, []any{int32(1), int32(2)}, nodes[0].Payload)
}

func TestDumpEmptyList(t *testing.T) {
	node := DumpTag(&List{Name: "e"})
	assert.Equal(t, "TAG_End", node.ElemType)
	assert.Equal(t, []any{}, node.Payload)
}

func TestDumpCompound(t *testing.T) {
	node := DumpTag(&Compound{Name: "c", Children: []Tag{
		&String{Name: "s", Value: "v"},
		&Compound{Name: "inner", Children: []Tag{
			&Byte{Name: "b", Value: 1},
		}},
	}})

	children, ok := node.Payload.([]Node)
	require.True(t, ok)
	require.Len(t, children, 2)
	assert.Equal(t, "TAG_String", children[0].Type)
	assert.Equal(t, "v", children[0].Payload)

	inner, ok := children[1].Payload.([]Node)
	require.True(t, ok)
	require.Len(t, inner, 1)
	assert.Equal(t, int8(1), inner[0].Payload)
}

func TestDumpListOfCompounds(t *testing.T) {
	node := DumpTag(&List{Name: "lc", Elems: []Tag{
		&Compound{Children: []Tag{&Int{Name: "x", Value: 9}}},
	}})

	elems, ok := node.Payload.([]any)
	require.True(t, ok)
	require.Len(t, elems, 1)
	// A compound element collapses to its children, which keep their
	// names as full nodes.
	children, ok := elems[0].([]Node)
	require.True(t, ok)
	assert.Equal(t, "x", children[0].Name)
	assert.Equal(t, int32(9), children[0].Payload)
}

func TestDumpIsTotalAndJSONSerializable(t *testing.T) {
	doc := richDocument()
	nodes := doc.Dump()
	require.Len(t, nodes, len(doc.Tags))

	raw, err := json.Marshal(nodes)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"TAG_Compound"`)
	assert.Contains(t, string(raw), `"hello, world"`)
}
