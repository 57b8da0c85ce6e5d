package carousel

// Descriptor is the target look of one item for one focus position.
// Lateral is measured in layout units; adapters pick the pixel size of a unit.
type Descriptor struct {
	Scale   float64
	Lateral float64
	Opacity float64
	Stack   int
	Visible bool
}

// Policy carries the tunable constants of the visual mapping. The structure
// of the mapping (one focused slot, two neighbours, everything else parked
// off-screen) is fixed.
type Policy struct {
	FocusedScale  float64
	NeighborScale float64
	HiddenScale   float64

	FocusedStack  int
	NeighborStack int
	HiddenStack   int

	// Unit is the lateral distance of a neighbour from the centre.
	Unit float64
}

// DefaultPolicy matches the reference look: a 1.4x centre flanked by 0.6x
// neighbours, hidden items shrunk to 0.3x two units out.
var DefaultPolicy = Policy{
	FocusedScale:  1.4,
	NeighborScale: 0.6,
	HiddenScale:   0.3,
	FocusedStack:  10,
	NeighborStack: 1,
	HiddenStack:   0,
	Unit:          1,
}

// Describe maps an offset with DefaultPolicy.
func Describe(offset int) Descriptor {
	return DefaultPolicy.Describe(offset)
}

// Describe maps a circular offset to its descriptor. Hidden items still get a
// full descriptor, parked on the side they will enter from or leave to, so a
// tween always has a defined start and end point.
func (p Policy) Describe(offset int) Descriptor {
	switch offset {
	case 0:
		return Descriptor{
			Scale:   p.FocusedScale,
			Lateral: 0,
			Opacity: 1,
			Stack:   p.FocusedStack,
			Visible: true,
		}
	case -1, 1:
		return Descriptor{
			Scale:   p.NeighborScale,
			Lateral: float64(offset) * p.Unit,
			Opacity: 1,
			Stack:   p.NeighborStack,
			Visible: true,
		}
	}

	side := 1.0
	if offset < 0 {
		side = -1
	}
	return Descriptor{
		Scale:   p.HiddenScale,
		Lateral: side * 2 * p.Unit,
		Opacity: 0,
		Stack:   p.HiddenStack,
		Visible: false,
	}
}
