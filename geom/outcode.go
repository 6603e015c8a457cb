package geom

import "strings"

// Outcode is a bitmask classifying a point's position relative to the
// four half-planes bounding a rectangle.
type Outcode uint32

const (
	OutNone Outcode = 0
	OutLeft Outcode = 1 << (iota - 1)
	OutTop
	OutRight
	OutBottom
)

// Has reports whether all of the bits in o2 are set in o.
func (o Outcode) Has(o2 Outcode) bool {
	return o&o2 == o2
}

func (o Outcode) String() string {
	if o == OutNone {
		return "none"
	}

	names := [...]string{"left", "top", "right", "bottom"}
	var parts []string
	for i, name := range names {
		if o.Has(1 << i) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
