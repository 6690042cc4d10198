package grainstats_test

import (
	"fmt"

	"github.com/cwbudde/algo-noisegen/stats/grainstats"
)

func ExampleCalculate() {
	s := grainstats.Calculate([]float64{-2, -1, 1, 2})
	fmt.Printf("mean=%.1f var=%.1f peak=%.0f\n", s.Mean, s.Variance, s.Peak)

	// Output:
	// mean=0.0 var=2.5 peak=2
}

func ExampleFlatness() {
	fmt.Printf("%.2f\n", grainstats.Flatness([]float64{9, 1, 1, 1, 1}))
	fmt.Printf("%.2f\n", grainstats.Flatness([]float64{0, 1, 4}))

	// Output:
	// 1.00
	// 0.80
}
