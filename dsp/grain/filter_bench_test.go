package grain

import (
	"testing"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
	"github.com/cwbudde/algo-noisegen/internal/testutil"
)

func BenchmarkApply(b *testing.B) {
	formats := []frame.Format{frame.YUV420P8, frame.YUV420P10, frame.YUV444PS}

	for _, format := range formats {
		b.Run(format.String(), func(b *testing.B) {
			info := frame.StreamInfo{Format: format, Width: 1280, Height: 720, FPSNum: 25, FPSDen: 1}
			f, err := New(info, WithRNG(seeded(1)), WithPlanes(0, 1, 2))
			if err != nil {
				b.Fatal(err)
			}
			defer f.Close()

			dst := testutil.RandomFrame(b, info, 1)
			b.SetBytes(int64(info.Width*info.Height) * int64(format.BytesPerSample()) * 3 / 2)
			b.ResetTimer()

			n := 0
			for b.Loop() {
				f.Apply(n, dst)
				n++
			}
		})
	}
}

func BenchmarkNew(b *testing.B) {
	info := frame.StreamInfo{Format: frame.YUV420P8, Width: 640, Height: 360, FPSNum: 25, FPSDen: 1}

	for b.Loop() {
		f, err := New(info, WithRNG(seeded(1)))
		if err != nil {
			b.Fatal(err)
		}
		f.Close()
	}
}
