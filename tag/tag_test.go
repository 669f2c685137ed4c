package tag

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/Tnze/go-mc/nbt"
)

func TestSetKeepsOrder(t *testing.T) {
	t.Parallel()

	c := NewCompound()
	c.SetString("type", "dust")
	c.SetFloat("r", 1)
	c.SetFloat("g", 0.5)
	c.SetString("type", "item")

	expected := []string{"type", "r", "g"}
	if names := c.Names(); !reflect.DeepEqual(names, expected) {
		t.Log("Expected: ", expected)
		t.Log("Actual  : ", names)
		t.Error("Overwriting a field should keep its position.")
	}
	if s, _ := c.GetString("type"); s != "item" {
		t.Errorf("Expected type to be overwritten with item, got %q", s)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c := NewCompound()
	c.SetInt("a", 1)
	c.SetInt("b", 2)
	c.SetInt("c", 3)
	c.Remove("b")
	c.Remove("missing")

	if c.Has("b") || c.Len() != 2 {
		t.Errorf("Remove left %v", c.Names())
	}
	if v, ok := c.GetInt("c"); !ok || v != 3 {
		t.Errorf("Field after the removed one is no longer reachable: %v %v", v, ok)
	}
	c.SetInt("d", 4)
	if !reflect.DeepEqual(c.Names(), []string{"a", "c", "d"}) {
		t.Errorf("Unexpected order after remove and append: %v", c.Names())
	}
}

func TestZeroValueUsable(t *testing.T) {
	t.Parallel()

	var c Compound
	if c.Has("x") || c.Len() != 0 {
		t.Error("Zero compound should be empty.")
	}
	c.SetString("x", "y")
	if s, ok := c.GetString("x"); !ok || s != "y" {
		t.Error("Zero compound should accept fields.")
	}
}

func TestTypedGettersRejectOtherTypes(t *testing.T) {
	t.Parallel()

	c := NewCompound()
	c.SetFloat("f", 1)
	if _, ok := c.GetString("f"); ok {
		t.Error("GetString returned a float field.")
	}
	if _, ok := c.GetCompound("missing"); ok {
		t.Error("GetCompound returned a missing field.")
	}
}

func TestCloneIsDeep(t *testing.T) {
	t.Parallel()

	inner := NewCompound()
	inner.SetString("k", "v")
	c := NewCompound()
	c.Set("inner", inner)
	c.Set("list", NewList(inner.Clone()))

	cp := c.Clone()
	inner.SetString("k", "changed")
	l, _ := c.GetList("list")
	l.At(0).SetString("k", "changed")

	sub, _ := cp.GetCompound("inner")
	if s, _ := sub.GetString("k"); s != "v" {
		t.Error("Clone shares nested compounds with the original.")
	}
	cl, _ := cp.GetList("list")
	if s, _ := cl.At(0).GetString("k"); s != "v" {
		t.Error("Clone shares list elements with the original.")
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := NewCompound()
	a.SetString("type", "dust")
	a.SetFloat("r", 1)
	b := NewCompound()
	b.SetFloat("r", 1)
	b.SetString("type", "dust")

	if !Equal(a, b) {
		t.Error("Compounds with the same fields in a different order should be equal.")
	}

	b.SetDouble("r", 1)
	if Equal(a, b) {
		t.Error("A float and a double field should not be equal.")
	}

	if !Equal(NewList(a, a.Clone()), NewList(a.Clone(), a)) {
		t.Error("Lists with equal elements should be equal.")
	}
	if Equal(NewList(a), NewList(a, a)) {
		t.Error("Lists of different length should not be equal.")
	}
}

func TestPlain(t *testing.T) {
	t.Parallel()

	opts := NewCompound()
	opts.SetString("type", "dust")
	opts.SetFloat("scale", 2)
	c := NewCompound()
	c.SetFloat("probability", 0.5)
	c.Set("options", opts)
	c.SetBool("flag", true)
	c.Set("list", NewList(opts))

	expected := map[string]any{
		"probability": float32(0.5),
		"options":     map[string]any{"type": "dust", "scale": float32(2)},
		"flag":        int8(1),
		"list":        []any{map[string]any{"type": "dust", "scale": float32(2)}},
	}
	if actual := c.Plain(); !reflect.DeepEqual(actual, expected) {
		t.Log("Expected: ", expected)
		t.Log("Actual  : ", actual)
		t.Error("Plain conversion is not working as expected.")
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	opts := NewCompound()
	opts.SetString("type", "minecraft:white_ash")
	c := NewCompound()
	c.SetFloat("probability", 0.25)
	c.Set("options", opts)
	c.SetInt("id", 3)
	c.SetByte("b", 1)
	c.SetDouble("offset", 2)
	c.SetString("quote", `a"b`)
	c.Set("value", NewList(NewCompound()))

	expected := `{probability:0.25f,options:{type:"minecraft:white_ash"},id:3,b:1b,offset:2d,quote:"a\"b",value:[{}]}`
	if s := c.String(); s != expected {
		t.Log("Expected: ", expected)
		t.Log("Actual  : ", s)
		t.Error("SNBT rendering is not working as expected.")
	}
}

func TestMarshalBytes(t *testing.T) {
	t.Parallel()

	c := NewCompound()
	c.SetString("type", "dust")
	c.Set("value", NewList())

	expected := []byte{
		nbt.TagCompound, 0, 0,
		nbt.TagString, 0, 4, 't', 'y', 'p', 'e', 0, 4, 'd', 'u', 's', 't',
		nbt.TagList, 0, 5, 'v', 'a', 'l', 'u', 'e', nbt.TagCompound, 0, 0, 0, 0,
		nbt.TagEnd,
	}
	actual, err := Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(actual, expected) {
		t.Log("Expected: ", expected)
		t.Log("Actual  : ", actual)
		t.Error("Compound is not being encoded properly.")
	}
}

func TestMarshalNestedCompound(t *testing.T) {
	t.Parallel()

	inner := &Compound{}
	inner.SetString("k", "v")
	c := NewCompound()
	c.Set("a", inner)

	expected := []byte{
		nbt.TagCompound, 0, 0,
		nbt.TagCompound, 0, 1, 'a',
		nbt.TagString, 0, 1, 'k', 0, 1, 'v',
		nbt.TagEnd,
		nbt.TagEnd,
	}
	var buf bytes.Buffer
	if err := nbt.NewEncoder(&buf).Encode(c, ""); err != nil {
		t.Fatal(err)
	}
	if actual := buf.Bytes(); !bytes.Equal(actual, expected) {
		t.Log("Expected: ", expected)
		t.Log("Actual  : ", actual)
		t.Error("Nested compound is not being encoded properly.")
	}
}

func TestMarshalDeterministic(t *testing.T) {
	t.Parallel()

	build := func() *Compound {
		c := NewCompound()
		for _, name := range []string{"z", "a", "m", "b", "y"} {
			c.SetString(name, name)
		}
		return c
	}
	a, err := Marshal(build())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		b, err := Marshal(build())
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Fatal("Encoding the same compound twice produced different bytes.")
		}
	}
}

type decodedRoot struct {
	Type  string         `nbt:"type"`
	Value []decodedEntry `nbt:"value"`
}

type decodedEntry struct {
	Name   string  `nbt:"name"`
	ID     int32   `nbt:"id"`
	Scale  float32 `nbt:"scale"`
	Offset float64 `nbt:"offset"`
	Flag   int8    `nbt:"flag"`
	Inner  struct {
		Key string `nbt:"key"`
	} `nbt:"inner"`
}

func TestMarshalDecodes(t *testing.T) {
	t.Parallel()

	root := NewCompound()
	root.SetString("type", "minecraft:worldgen/biome")
	list := NewList()
	for i, name := range []string{"minecraft:plains", "minecraft:desert"} {
		entry := NewCompound()
		entry.SetString("name", name)
		entry.SetInt("id", int32(i))
		entry.SetFloat("scale", 0.05)
		entry.SetDouble("offset", 2)
		entry.SetBool("flag", true)
		inner := NewCompound()
		inner.SetString("key", "value")
		entry.Set("inner", inner)
		list.Append(entry)
	}
	root.Set("value", list)

	data, err := Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	var decoded decodedRoot
	if err := nbt.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}

	if decoded.Type != "minecraft:worldgen/biome" || len(decoded.Value) != 2 {
		t.Fatalf("Unexpected decode: %+v", decoded)
	}
	second := decoded.Value[1]
	if second.Name != "minecraft:desert" || second.ID != 1 || second.Scale != 0.05 ||
		second.Offset != 2 || second.Flag != 1 || second.Inner.Key != "value" {
		t.Errorf("Unexpected entry: %+v", second)
	}
}

func BenchmarkMarshal(b *testing.B) {
	root := NewCompound()
	list := NewList()
	for i := 0; i < 64; i++ {
		entry := NewCompound()
		entry.SetInt("id", int32(i))
		entry.SetString("name", "minecraft:plains")
		entry.SetFloat("temperature", 0.8)
		list.Append(entry)
	}
	root.Set("value", list)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Marshal(root)
	}
}
