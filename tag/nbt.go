package tag

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/Tnze/go-mc/nbt"
)

var (
	_ nbt.Marshaler = (*Compound)(nil)
	_ nbt.Marshaler = (*List)(nil)
)

func (*Compound) TagType() byte { return nbt.TagCompound }

// MarshalNBT writes the compound payload, fields in order, followed by
// TAG_End.
func (c *Compound) MarshalNBT(w io.Writer) error {
	enc := nbt.NewEncoder(w)
	for _, f := range c.fields {
		if l, ok := f.value.(*List); ok {
			// go-mc sizes list headers by reflecting on the value, so lists
			// write their own.
			if err := writeName(w, nbt.TagList, f.name); err != nil {
				return err
			}
			if err := l.MarshalNBT(w); err != nil {
				return err
			}
			continue
		}
		if err := enc.Encode(native(f.value), f.name); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte{nbt.TagEnd})
	return err
}

func (*List) TagType() byte { return nbt.TagList }

// MarshalNBT writes the list payload: element type, length, elements.
func (l *List) MarshalNBT(w io.Writer) error {
	if _, err := w.Write([]byte{nbt.TagCompound}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, int32(len(l.items))); err != nil {
		return err
	}
	for _, c := range l.items {
		if err := c.MarshalNBT(w); err != nil {
			return err
		}
	}
	return nil
}

func writeName(w io.Writer, tagType byte, name string) error {
	if _, err := w.Write([]byte{tagType}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint16(len(name))); err != nil {
		return err
	}
	_, err := io.WriteString(w, name)
	return err
}

func native(v Value) any {
	switch t := v.(type) {
	case Byte:
		return int8(t)
	case Int:
		return int32(t)
	case Float:
		return float32(t)
	case Double:
		return float64(t)
	case String:
		return string(t)
	}
	return v
}

// Encode writes c as a named root compound.
func Encode(w io.Writer, name string, c *Compound) error {
	return nbt.NewEncoder(w).Encode(c, name)
}

// Marshal encodes c as an unnamed root compound.
func Marshal(c *Compound) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, "", c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
