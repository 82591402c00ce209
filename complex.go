package mandel

import (
	"fmt"
	"math"
)

// Complex is an immutable point of the complex plane.
// All operations return new values and never modify their operands.
type Complex struct {
	Re, Im float64
}

// Abs returns the magnitude sqrt(re² + im²).
func (c Complex) Abs() float64 {
	return math.Sqrt(c.Re*c.Re + c.Im*c.Im)
}

func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

// Mul returns (a+bi)(c+di) = (ac-bd) + (bc+ad)i.
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Im*o.Re + c.Re*o.Im,
	}
}

// Complex128 converts c to the builtin complex type.
func (c Complex) Complex128() complex128 {
	return complex(c.Re, c.Im)
}

// String formats c in cartesian form, e.g. "-0.5 + 0.25 i".
func (c Complex) String() string {
	return fmt.Sprintf("%v + %v i", c.Re, c.Im)
}
