package julia

import (
	"errors"
	"fmt"
	"github.com/willbeason/julia-bitmap/pkg/transforms"
	"math"
)

var (
	// ErrInvalidParams is returned when Params cannot describe a render.
	ErrInvalidParams = errors.New("invalid render parameters")

	// ErrTooLarge is returned when the output buffer cannot be allocated.
	ErrTooLarge = errors.New("bitmap too large")

	// ErrBufferSize is returned when a caller-provided buffer is not Dim*Dim long.
	ErrBufferSize = errors.New("buffer size does not match grid")
)

// Params describes which Julia set to draw and how finely.
type Params struct {
	// Dim is the side length of the square output grid in pixels.
	Dim int

	// Scale is the half-width of the sampled region of the complex plane.
	// The grid covers [-Scale, Scale] on both axes.
	Scale float32

	// C is the additive constant of z -> z*z + C.
	C transforms.Complex

	// MaxIterations is how many steps a point may take without escaping
	// before it is considered a member.
	MaxIterations int

	// Threshold is the squared magnitude beyond which a point has escaped.
	Threshold float32
}

// Default returns the classic configuration: a 6000x6000 grid over
// [-1.5, 1.5]^2 with C = -0.8 + 0.156i.
func Default() Params {
	return Params{
		Dim:           6000,
		Scale:         1.5,
		C:             transforms.Complex{Re: -0.8, Im: 0.156},
		MaxIterations: 200,
		Threshold:     1000,
	}
}

// Validate reports the first field which makes p unusable.
func (p Params) Validate() error {
	switch {
	case p.Dim < 1:
		return fmt.Errorf("%w: dimension %d must be positive", ErrInvalidParams, p.Dim)
	case !isPositive(p.Scale):
		return fmt.Errorf("%w: scale %v must be positive and finite", ErrInvalidParams, p.Scale)
	case !p.C.IsFinite():
		return fmt.Errorf("%w: constant %v must be finite", ErrInvalidParams, p.C)
	case p.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations %d must be positive", ErrInvalidParams, p.MaxIterations)
	case !isPositive(p.Threshold):
		return fmt.Errorf("%w: threshold %v must be positive and finite", ErrInvalidParams, p.Threshold)
	}

	return nil
}

// Cells is the number of pixels in the grid, or ErrTooLarge if Dim*Dim does
// not fit in an int.
func (p Params) Cells() (int, error) {
	if p.Dim > 0 && p.Dim > math.MaxInt/p.Dim {
		return 0, fmt.Errorf("%w: %dx%d overflows", ErrTooLarge, p.Dim, p.Dim)
	}

	return p.Dim * p.Dim, nil
}

func isPositive(f float32) bool {
	return f > 0 && !math.IsInf(float64(f), 1)
}
