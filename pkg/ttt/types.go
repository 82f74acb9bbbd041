package ttt

// Side is the owner of a board cell. None doubles as the empty cell value.
type Side uint8

const (
	None Side = iota
	Cross
	Circle
)

// Get the opposite side. None swaps to itself.
func (s Side) Swap() Side {
	switch s {
	case Cross:
		return Circle
	case Circle:
		return Cross
	}
	return None
}

func (s Side) String() string {
	switch s {
	case Cross:
		return "x"
	case Circle:
		return "o"
	}
	return "."
}
