package transforms

import "math"

// Complex is a point in the complex plane, in single precision.
//
// It is a plain value; every operation returns a new Complex.
type Complex struct {
	Re, Im float32
}

func (a Complex) Add(b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

// Multiply rounds every product to float32 before summing, so no step is
// fused into a multiply-add.
func (a Complex) Multiply(b Complex) Complex {
	return Complex{
		Re: float32(a.Re*b.Re) - float32(a.Im*b.Im),
		Im: float32(a.Re*b.Im) + float32(a.Im*b.Re),
	}
}

// SquaredMagnitude is |a|^2. Compare it against a squared bound rather than
// taking the square root.
func (a Complex) SquaredMagnitude() float32 {
	return float32(a.Re*a.Re) + float32(a.Im*a.Im)
}

// IsFinite reports whether neither component is NaN or infinite.
func (a Complex) IsFinite() bool {
	re, im := float64(a.Re), float64(a.Im)
	return !math.IsNaN(re) && !math.IsInf(re, 0) &&
		!math.IsNaN(im) && !math.IsInf(im, 0)
}
