package grain

import "fmt"

// Distribution selects the probability distribution of the grain.
// The numeric values match the "type" parameter of the command line tool.
type Distribution int

const (
	// Uniform draws from [mean-variance, mean+variance].
	Uniform Distribution = iota + 1
	// Normal draws from a Gaussian with the given mean and variance.
	Normal

	distributionEnd // sentinel for validation
)

var distributionNames = [distributionEnd]string{"", "Uniform", "Normal"}

// String returns the name of the distribution.
func (d Distribution) String() string {
	if d.Valid() {
		return distributionNames[d]
	}
	return fmt.Sprintf("Distribution(%d)", int(d))
}

// Valid reports whether d is a known distribution.
func (d Distribution) Valid() bool {
	return d >= Uniform && d < distributionEnd
}
