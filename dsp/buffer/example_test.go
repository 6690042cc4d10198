package buffer_test

import (
	"fmt"

	"github.com/cwbudde/algo-noisegen/dsp/buffer"
)

func ExampleNew() {
	b, err := buffer.New[int16](100, 2)
	if err != nil {
		panic(err)
	}

	fmt.Println(b.Width(), b.Stride(), len(b.Samples()), buffer.IsAligned(b.Row(1)))

	// Output:
	// 100 112 224 true
}
