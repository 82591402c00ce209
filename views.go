package mandel

import (
	"fmt"
	"sort"
)

// View is a square region of the complex plane given by its center and side length.
type View struct {
	Center Complex
	Side   float64
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Full set
	Full = View{Center: Complex{-0.5, 0}, Side: 3}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = View{Center: Complex{-0.75, 0.10}, Side: 0.1}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = View{Center: Complex{-1.80, -0.06}, Side: 0.1}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = View{Center: Complex{-0.74275, 0.13175}, Side: 0.0015}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = View{Center: Complex{-0.7465, 0.0965}, Side: 0.003}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = View{Center: Complex{-0.7375, 0.1825}, Side: 0.005}

	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = View{Center: Complex{-1.73825, -0.02275}, Side: 0.0015}
)

var views = map[string]View{
	"full":               Full,
	"seahorse":           SeahorseValley,
	"elephant":           ElephantValley,
	"spiral-minibrot":    SpiralMinibrot,
	"triple-spiral":      TripleSpiral,
	"dragon":             ValleyOfTheDragon,
	"minibrot-in-spiral": MinibrotInMiniSpiral,
}

// LookupView returns the named landmark view.
func LookupView(name string) (View, error) {
	v, ok := views[name]
	if !ok {
		return View{}, fmt.Errorf("%w: unknown view %q", ErrInvalidArgument, name)
	}
	return v, nil
}

// ViewNames returns the names accepted by LookupView in sorted order.
func ViewNames() []string {
	names := make([]string, 0, len(views))
	for n := range views {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
