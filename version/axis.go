package version

//go:generate go tool stringer -linecomment -type=Axis

// Axis selects one of the independently versioned parts of the bundle.
type Axis int

const (
	Package Axis = iota // package
	Data                // data
	Tool                // tool
)

// Axes lists every axis, in order.
var Axes = []Axis{Package, Data, Tool}

// MarshalText encodes the axis by name.
func (axis Axis) MarshalText() ([]byte, error) {
	return []byte(axis.String()), nil
}
