package tag

import (
	"strconv"
	"strings"
)

// String renders the compound as SNBT, fields in order.
func (c *Compound) String() string {
	var b strings.Builder
	writeSNBT(&b, c)
	return b.String()
}

func writeSNBT(b *strings.Builder, v Value) {
	switch t := v.(type) {
	case *Compound:
		b.WriteByte('{')
		for i, f := range t.fields {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, f.name)
			b.WriteByte(':')
			writeSNBT(b, f.value)
		}
		b.WriteByte('}')
	case *List:
		b.WriteByte('[')
		for i, item := range t.items {
			if i > 0 {
				b.WriteByte(',')
			}
			writeSNBT(b, item)
		}
		b.WriteByte(']')
	case Byte:
		b.WriteString(strconv.FormatInt(int64(t), 10))
		b.WriteByte('b')
	case Int:
		b.WriteString(strconv.FormatInt(int64(t), 10))
	case Float:
		b.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 32))
		b.WriteByte('f')
	case Double:
		b.WriteString(strconv.FormatFloat(float64(t), 'g', -1, 64))
		b.WriteByte('d')
	case String:
		writeQuoted(b, string(t))
	}
}

func writeKey(b *strings.Builder, key string) {
	if key != "" && strings.IndexFunc(key, func(r rune) bool { return !bareRune(r) }) == -1 {
		b.WriteString(key)
		return
	}
	writeQuoted(b, key)
}

func bareRune(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' ||
		r == '_' || r == '-' || r == '.' || r == '+'
}

func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
}
