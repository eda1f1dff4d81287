package main

import (
	"fmt"
	"github.com/spf13/pflag"
	"github.com/willbeason/julia-bitmap/pkg/transforms"
	"strconv"
	"strings"
)

// complexValue parses "re,im" into a single-precision transforms.Complex.
type complexValue transforms.Complex

var _ pflag.Value = (*complexValue)(nil)

func (c *complexValue) String() string {
	return strconv.FormatFloat(float64(c.Re), 'g', -1, 32) + "," + strconv.FormatFloat(float64(c.Im), 'g', -1, 32)
}

func (c *complexValue) Set(s string) error {
	re, im, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("%q is not of the form re,im", s)
	}

	r, err := strconv.ParseFloat(strings.TrimSpace(re), 32)
	if err != nil {
		return fmt.Errorf("real part: %w", err)
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), 32)
	if err != nil {
		return fmt.Errorf("imaginary part: %w", err)
	}

	c.Re, c.Im = float32(r), float32(i)
	return nil
}

func (c *complexValue) Type() string {
	return "complex"
}
