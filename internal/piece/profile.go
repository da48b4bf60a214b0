// FILE: internal/piece/profile.go
package piece

import "gridchess/internal/core"

// Descriptor is one movement capability: a direction vector, a distance
// limit (RangeUnbounded slides until blocked), whether the vector expands
// into all eight rotations/reflections, and whether a capture ray stops
// after its first capture.
type Descriptor struct {
	DX, DY           int
	Range            int
	AllDirections    bool
	StopAfterCapture bool
}

// RangeUnbounded is the sentinel for "slides until blocked".
const RangeUnbounded = 0

// Profile is the ordered movement capability of a piece kind, split into
// non-capturing moves and captures.
type Profile struct {
	Moves    []Descriptor
	Captures []Descriptor
}

var symmetric = map[core.Kind]Profile{}

func init() {
	// Kinds whose captures mirror their moves. Vectors are given for the
	// first side; the generator flips them for the second.
	shared := map[core.Kind][]Descriptor{
		core.King: {
			{DX: 1, DY: 0, Range: 1, AllDirections: true, StopAfterCapture: true},
			{DX: 1, DY: 1, Range: 1, AllDirections: true, StopAfterCapture: true},
		},
		core.Queen: {
			{DX: 1, DY: 0, Range: RangeUnbounded, AllDirections: true, StopAfterCapture: true},
			{DX: 1, DY: 1, Range: RangeUnbounded, AllDirections: true, StopAfterCapture: true},
		},
		core.Rook: {
			{DX: 1, DY: 0, Range: RangeUnbounded, AllDirections: true, StopAfterCapture: true},
		},
		core.Bishop: {
			{DX: 1, DY: 1, Range: RangeUnbounded, AllDirections: true, StopAfterCapture: true},
		},
		core.Knight: {
			{DX: 1, DY: 2, Range: 1, AllDirections: true, StopAfterCapture: true},
		},
	}
	for kind, descs := range shared {
		symmetric[kind] = Profile{Moves: descs, Captures: descs}
	}
	symmetric[core.Pawn] = Profile{
		Moves: []Descriptor{
			{DX: 0, DY: 1, Range: 1, StopAfterCapture: true},
		},
		Captures: []Descriptor{
			{DX: 1, DY: 1, Range: 1, StopAfterCapture: true},
			{DX: -1, DY: 1, Range: 1, StopAfterCapture: true},
		},
	}
}

// ProfileOf returns the movement profile for a kind. Unknown kinds get an
// empty profile and generate nothing.
func ProfileOf(kind core.Kind) Profile {
	return symmetric[kind]
}
