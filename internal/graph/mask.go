package graph

// MaskState describes how a validity mask should be interpreted downstream.
// Vertices propagate the tag unchanged; only layers that reinterpret masks
// (e.g. sequence-to-fixed-size reductions) switch it.
type MaskState int

// Mask states.
const (
	// MaskStateActive means the mask marks which timesteps carry data and
	// downstream consumers should apply it.
	MaskStateActive MaskState = iota

	// MaskStatePassthrough means the mask is carried along for bookkeeping
	// but should not be applied by the immediate consumer.
	MaskStatePassthrough
)

// String returns a human-readable mask state name.
func (s MaskState) String() string {
	switch s {
	case MaskStateActive:
		return "Active"
	case MaskStatePassthrough:
		return "Passthrough"
	default:
		return "Unknown"
	}
}
