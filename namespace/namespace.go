// Namespaced identifiers, as used by resource locations ("minecraft:plains").
package namespace

import (
	"fmt"
	"strings"
)

const Default = "minecraft"

type ID struct {
	Namespace string
	Path      string
}

// Minecraft returns an ID in the default namespace.
func Minecraft(path string) ID {
	return ID{Namespace: Default, Path: path}
}

// Parse reads "namespace:path" or a bare "path" (default namespace).
func Parse(s string) (ID, error) {
	ns, path, found := strings.Cut(s, ":")
	if !found {
		ns, path = Default, s
	}
	if ns == "" {
		return ID{}, fmt.Errorf("namespace: empty namespace in %q", s)
	}
	if path == "" {
		return ID{}, fmt.Errorf("namespace: empty path in %q", s)
	}
	for _, r := range ns {
		if !validRune(r, false) {
			return ID{}, fmt.Errorf("namespace: illegal character %q in namespace of %q", r, s)
		}
	}
	for _, r := range path {
		if !validRune(r, true) {
			return ID{}, fmt.Errorf("namespace: illegal character %q in path of %q", r, s)
		}
	}
	return ID{Namespace: ns, Path: path}, nil
}

// From is Parse for literals. It panics on malformed input.
func From(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return id
}

func validRune(r rune, path bool) bool {
	switch {
	case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
		return true
	case r == '_', r == '-', r == '.':
		return true
	case r == '/':
		return path
	}
	return false
}

func (id ID) IsZero() bool {
	return id.Namespace == "" && id.Path == ""
}

func (id ID) String() string {
	return id.Namespace + ":" + id.Path
}
