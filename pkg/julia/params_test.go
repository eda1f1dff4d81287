package julia

import (
	"errors"
	"github.com/willbeason/julia-bitmap/pkg/transforms"
	"math"
	"testing"
)

func TestParams_Validate(t *testing.T) {
	tcs := []struct {
		name   string
		modify func(p *Params)
	}{
		{name: "zero dim", modify: func(p *Params) { p.Dim = 0 }},
		{name: "negative dim", modify: func(p *Params) { p.Dim = -4 }},
		{name: "zero scale", modify: func(p *Params) { p.Scale = 0 }},
		{name: "negative scale", modify: func(p *Params) { p.Scale = -1.5 }},
		{name: "NaN scale", modify: func(p *Params) { p.Scale = float32(math.NaN()) }},
		{name: "infinite scale", modify: func(p *Params) { p.Scale = float32(math.Inf(1)) }},
		{name: "NaN constant", modify: func(p *Params) { p.C = transforms.Complex{Re: float32(math.NaN())} }},
		{name: "zero iterations", modify: func(p *Params) { p.MaxIterations = 0 }},
		{name: "negative iterations", modify: func(p *Params) { p.MaxIterations = -200 }},
		{name: "zero threshold", modify: func(p *Params) { p.Threshold = 0 }},
		{name: "negative threshold", modify: func(p *Params) { p.Threshold = -1000 }},
		{name: "infinite threshold", modify: func(p *Params) { p.Threshold = float32(math.Inf(1)) }},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			p := Default()
			tc.modify(&p)

			err := p.Validate()
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("got error %v, want %v", err, ErrInvalidParams)
			}

			// Rejected before anything is allocated.
			buf, err := Render(p)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Render: got error %v, want %v", err, ErrInvalidParams)
			}
			if buf != nil {
				t.Errorf("Render: got %d cells, want nil", len(buf))
			}
		})
	}
}

func TestParams_ValidateDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParams_Cells(t *testing.T) {
	p := Default()
	got, err := p.Cells()
	if err != nil {
		t.Fatal(err)
	}
	if got != 36_000_000 {
		t.Errorf("got %d, want 36000000", got)
	}

	p.Dim = math.MaxInt/2 + 1
	_, err = p.Cells()
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("got error %v, want %v", err, ErrTooLarge)
	}
}
