package semblance

import "errors"

// ErrBadHalfWidth - a smoothing half-width is negative.
var ErrBadHalfWidth = errors.New("semblance: half-width must be >= 0")

// ErrBadDirection - a direction value is outside its enum range.
var ErrBadDirection = errors.New("semblance: unknown smoothing direction")

// Direction2 selects 2D smoothing directions by eigenvector:
// U has the largest eigenvalue, V the smallest.
type Direction2 int

const (
	U2 Direction2 = iota
	V2
	UV2
)

// String implements fmt.Stringer.
func (d Direction2) String() string {
	switch d {
	case U2:
		return "U"
	case V2:
		return "V"
	case UV2:
		return "UV"
	default:
		return "Direction2(?)"
	}
}

// Orthogonal returns the complementary direction set, so that a
// d-smoothing followed by a d.Orthogonal()-smoothing covers the plane.
func (d Direction2) Orthogonal() Direction2 {
	if d == U2 {
		return V2
	}
	return U2
}

func (d Direction2) valid() bool { return d >= U2 && d <= UV2 }

// eigenvalues returns the (au,av) projection that keeps only the
// selected directions.
func (d Direction2) eigenvalues() (au, av float64) {
	if d == U2 || d == UV2 {
		au = 1.0
	}
	if d == V2 || d == UV2 {
		av = 1.0
	}
	return au, av
}

// Direction3 selects 3D smoothing directions by eigenvector:
// U has the largest eigenvalue, W the smallest.
type Direction3 int

const (
	U3 Direction3 = iota
	V3
	W3
	UV3
	UW3
	VW3
	UVW3
)

// String implements fmt.Stringer.
func (d Direction3) String() string {
	switch d {
	case U3:
		return "U"
	case V3:
		return "V"
	case W3:
		return "W"
	case UV3:
		return "UV"
	case UW3:
		return "UW"
	case VW3:
		return "VW"
	case UVW3:
		return "UVW"
	default:
		return "Direction3(?)"
	}
}

// Orthogonal returns the complementary direction set.
func (d Direction3) Orthogonal() Direction3 {
	switch d {
	case U3:
		return VW3
	case V3:
		return UW3
	case W3:
		return UV3
	case UV3:
		return W3
	case UW3:
		return V3
	default:
		return U3
	}
}

func (d Direction3) valid() bool { return d >= U3 && d <= UVW3 }

func (d Direction3) eigenvalues() (au, av, aw float64) {
	if d == U3 || d == UV3 || d == UW3 || d == UVW3 {
		au = 1.0
	}
	if d == V3 || d == UV3 || d == VW3 || d == UVW3 {
		av = 1.0
	}
	if d == W3 || d == UW3 || d == VW3 || d == UVW3 {
		aw = 1.0
	}
	return au, av, aw
}
