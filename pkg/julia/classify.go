package julia

import "github.com/willbeason/julia-bitmap/pkg/transforms"

// Membership is whether a sampled point stayed bounded.
type Membership int

const (
	NonMember Membership = iota
	Member
)

const (
	MemberIntensity    uint8 = 255
	NonMemberIntensity uint8 = 0
)

func (m Membership) String() string {
	switch m {
	case Member:
		return "member"
	case NonMember:
		return "non-member"
	}
	return "unknown"
}

// Intensity is the grayscale value written for m.
func (m Membership) Intensity() uint8 {
	if m == Member {
		return MemberIntensity
	}
	return NonMemberIntensity
}

// Project maps pixel (x, y) to the complex plane. The center pixel maps to
// the origin, the top-left corner to (Scale, Scale).
//
// Dim/2 truncates, so for odd Dim the grid is shifted by half a pixel. A
// single-pixel grid divides zero by zero and projects to NaN, which never
// escapes.
func Project(x, y int, p Params) transforms.Complex {
	half := float32(p.Dim / 2)

	return transforms.Complex{
		Re: float32(p.Scale*float32(p.Dim/2-x)) / half,
		Im: float32(p.Scale*float32(p.Dim/2-y)) / half,
	}
}

// EscapeTime iterates the Julia map from pixel (x, y) and returns the step,
// starting at 1, after which the point exceeded the threshold. Points which
// never escape within MaxIterations return 0.
func EscapeTime(x, y int, p Params) int {
	j := transforms.Julia2{C: p.C}
	z := Project(x, y, p)

	for i := 1; i <= p.MaxIterations; i++ {
		z = j.Next(z)
		if z.SquaredMagnitude() > p.Threshold {
			return i
		}
	}

	return 0
}

// Classify reports whether pixel (x, y) belongs to the Julia set described by p.
// x and y must lie in [0, p.Dim).
func Classify(x, y int, p Params) Membership {
	if EscapeTime(x, y, p) == 0 {
		return Member
	}
	return NonMember
}
