package shapes

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one of the primitive solids the explorer can show.
type Kind int

const (
	Cube Kind = iota
	Sphere
	Cylinder
)

// ErrUnknownKind is returned by ParseKind for names that are not a known shape.
var ErrUnknownKind = errors.New("unknown shape")

var kindNames = [...]string{
	Cube:     "cube",
	Sphere:   "sphere",
	Cylinder: "cylinder",
}

// Kinds returns every shape in selector order.
func Kinds() []Kind {
	return []Kind{Cube, Sphere, Cylinder}
}

// String returns the selector value of k ("cube", "sphere", "cylinder").
// Out-of-range kinds report as "cube", matching the factory fallback.
func (k Kind) String() string {
	if k < Cube || k > Cylinder {
		return kindNames[Cube]
	}
	return kindNames[k]
}

// ParseKind maps a selector value to a Kind. Matching ignores case and surrounding space.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return Cube, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText implements encoding.TextMarshaler so kinds read naturally in config files.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
