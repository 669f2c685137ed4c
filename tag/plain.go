package tag

import "fmt"

// Plain converts a value to ordinary Go values: compounds become
// map[string]any, lists become []any and scalars their underlying type.
func Plain(in Value) any {
	if in == nil {
		return nil
	}
	switch t := in.(type) {
	case *Compound:
		out := make(map[string]any, t.Len())
		for _, f := range t.fields {
			out[f.name] = Plain(f.value)
		}
		return out

	case *List:
		out := make([]any, 0, t.Len())
		for _, item := range t.items {
			out = append(out, Plain(item))
		}
		return out

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

	panic(fmt.Sprintf("Unknown tag type: %T!", in))
}

func (c *Compound) Plain() map[string]any {
	return Plain(c).(map[string]any)
}
