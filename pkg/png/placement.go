package png

import "fmt"

// Placement controls where InsertChunk puts a new chunk.
type Placement int

const (
	// PlacementBeforeEnd inserts immediately before the first IEND chunk, or
	// appends when there is none.
	PlacementBeforeEnd Placement = iota

	// PlacementAppend always adds the chunk after the last one.
	PlacementAppend
)

// String implements fmt.Stringer.
func (p Placement) String() string {
	switch p {
	case PlacementBeforeEnd:
		return "before-iend"
	case PlacementAppend:
		return "append"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

// ParsePlacement parses the textual form used in configuration and flags.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "before-iend", "":
		return PlacementBeforeEnd, nil
	case "append":
		return PlacementAppend, nil
	default:
		return 0, fmt.Errorf("unknown placement %q (want before-iend or append)", s)
	}
}
