package transforms

// Julia2 is the quadratic Julia map z -> z*z + C.
type Julia2 struct {
	C Complex
}

func (j Julia2) Next(z Complex) Complex {
	return z.Multiply(z).Add(j.C)
}
