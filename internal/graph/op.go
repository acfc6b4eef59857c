package graph

// Op selects how an element-wise vertex combines its inputs.
type Op int

// Supported combination operators.
const (
	Add Op = iota
	Subtract
	Product
)

// String returns a human-readable operator name.
func (op Op) String() string {
	switch op {
	case Add:
		return "Add"
	case Subtract:
		return "Subtract"
	case Product:
		return "Product"
	default:
		return "Unknown"
	}
}
