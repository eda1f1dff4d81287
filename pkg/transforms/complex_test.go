package transforms

import (
	"math"
	"testing"
)

func TestComplex_Multiply(t *testing.T) {
	tcs := []struct {
		name string
		a, b Complex
		want Complex
	}{
		{name: "i squared", a: Complex{Im: 1}, b: Complex{Im: 1}, want: Complex{Re: -1}},
		{name: "reals", a: Complex{Re: 2}, b: Complex{Re: -3}, want: Complex{Re: -6}},
		{name: "mixed", a: Complex{Re: 1, Im: 2}, b: Complex{Re: 3, Im: 4}, want: Complex{Re: -5, Im: 10}},
		{name: "zero", a: Complex{Re: 7, Im: -2}, b: Complex{}, want: Complex{}},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Multiply(tc.b)
			if got != tc.want {
				t.Errorf("(%v)*(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}

			// Multiplication commutes.
			if rev := tc.b.Multiply(tc.a); rev != got {
				t.Errorf("(%v)*(%v) = %v, want %v", tc.b, tc.a, rev, got)
			}
		})
	}
}

func TestComplex_Add(t *testing.T) {
	got := Complex{Re: 1.5, Im: -2}.Add(Complex{Re: -0.5, Im: 0.25})
	want := Complex{Re: 1, Im: -1.75}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestComplex_SquaredMagnitude(t *testing.T) {
	if got := (Complex{Re: 3, Im: -4}).SquaredMagnitude(); got != 25 {
		t.Errorf("got %v, want 25", got)
	}
}

func TestComplex_IsFinite(t *testing.T) {
	if !(Complex{Re: -0.8, Im: 0.156}).IsFinite() {
		t.Error("expected finite")
	}
	for _, c := range []Complex{
		{Re: float32(math.NaN())},
		{Im: float32(math.Inf(1))},
		{Re: float32(math.Inf(-1)), Im: 1},
	} {
		if c.IsFinite() {
			t.Errorf("%v reported finite", c)
		}
	}
}

func TestComplex_MultiplySinglePrecision(t *testing.T) {
	// 1+2^-12 squared is 1 + 2^-11 + 2^-24, and 2^-24 is half a float32 ulp
	// at 1, so the tie rounds to even.
	a := Complex{Re: 1 + 1.0/4096}
	got := a.Multiply(a)

	want := Complex{Re: 1 + 1.0/2048}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestJulia2_Next(t *testing.T) {
	j := Julia2{C: Complex{Re: -0.8, Im: 0.156}}

	got := j.Next(Complex{})
	if got != j.C {
		t.Errorf("Next(0) = %v, want %v", got, j.C)
	}

	// (1+i)^2 = 2i
	got = j.Next(Complex{Re: 1, Im: 1})
	want := Complex{Re: j.C.Re, Im: 2 + j.C.Im}
	if got != want {
		t.Errorf("Next(1+i) = %v, want %v", got, want)
	}
}
