package grain

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-noisegen/dsp/buffer"
	"github.com/cwbudde/algo-noisegen/dsp/frame"
	"github.com/cwbudde/algo-noisegen/internal/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func yuvInfo(format frame.Format) frame.StreamInfo {
	return frame.StreamInfo{Format: format, Width: 64, Height: 48, FPSNum: 25, FPSDen: 1}
}

func newTestFilter(t *testing.T, info frame.StreamInfo, opts ...Option) *Filter {
	t.Helper()

	f, err := New(info, append([]Option{WithRNG(seeded(42))}, opts...)...)
	require.NoError(t, err)
	t.Cleanup(f.Close)

	return f
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		info    frame.StreamInfo
		opts    []Option
		param   string
		message string
	}{
		{"strength too large", yuvInfo(frame.YUV420P8), []Option{WithStrength(200)}, "str", "noisegen: str must be 0.0 ... 128"},
		{"strength negative", yuvInfo(frame.YUV420P8), []Option{WithStrength(-0.5)}, "str", "noisegen: str must be 0.0 ... 128"},
		{"strength NaN", yuvInfo(frame.YUV420P8), []Option{WithStrength(math.NaN())}, "str", "noisegen: str must be 0.0 ... 128"},
		{"limit too large", yuvInfo(frame.YUV420P8), []Option{WithLimit(128.5)}, "limit", "noisegen: limit must be 0.0 ... 128.0"},
		{"unknown type", yuvInfo(frame.YUV420P8), []Option{WithDistribution(3)}, "type", "noisegen: type must be 1: uniform, 2: normal"},
		{"zero type", yuvInfo(frame.YUV420P8), []Option{WithDistribution(0)}, "type", "noisegen: type must be 1: uniform, 2: normal"},
		{"variance too small", yuvInfo(frame.YUV420P8), []Option{WithVariance(0.0001)}, "var", "noisegen: var must be larger than 0.001"},
		{"variance at threshold", yuvInfo(frame.YUV420P8), []Option{WithVariance(0.001)}, "var", "noisegen: var must be larger than 0.001"},
		{"mean infinite", yuvInfo(frame.YUV420P8), []Option{WithMean(math.Inf(-1))}, "mean", "noisegen: mean must be finite"},
		{"plane out of bound", yuvInfo(frame.YUV420P8), []Option{WithPlanes(5)}, "planes", "noisegen: planes index out of bound"},
		{"negative plane", yuvInfo(frame.YUV420P8), []Option{WithPlanes(0, -1)}, "planes", "noisegen: planes index out of bound"},
		{"chroma plane on gray", yuvInfo(frame.Gray8), []Option{WithPlanes(1)}, "planes", "noisegen: planes index out of bound"},
		{
			"bad bit depth",
			frame.StreamInfo{Format: frame.Format{Family: frame.YUV, Type: frame.Integer, Bits: 7}, Width: 8, Height: 8, FPSNum: 25, FPSDen: 1},
			nil, "format", "noisegen: unsupported format: integer samples must be 8..16 bits: 7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.info, tt.opts...)
			require.Error(t, err)
			assert.Nil(t, f)
			assert.ErrorIs(t, err, ErrConfig)
			assert.EqualError(t, err, tt.message)

			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.param, ce.Param)
		})
	}
}

func TestNewDefaults(t *testing.T) {
	f := newTestFilter(t, yuvInfo(frame.YUV420P8))

	p := f.Params()
	assert.Equal(t, Normal, p.Distribution)
	assert.Equal(t, 1.0, p.Strength)
	assert.Equal(t, 128.0, p.Limit)
	assert.Equal(t, 0.0, p.Mean)
	assert.Equal(t, 1.0, p.Variance)
	assert.True(t, p.Dynamic)
	assert.False(t, p.FullRange)
	assert.Equal(t, []int{0}, p.Planes)

	assert.True(t, f.Active(0))
	assert.False(t, f.Active(1))
	assert.False(t, f.Active(2))
	assert.False(t, f.Active(3))

	assert.Equal(t, PixelRange{16, 235}, f.Range(0))
	assert.Equal(t, PixelRange{16, 240}, f.Range(1))
	assert.Equal(t, PixelRange{16, 240}, f.Range(2))

	assert.Equal(t, 250, f.TableSize())
	assert.Equal(t, yuvInfo(frame.YUV420P8), f.Info())

	np := f.NoisePlane(0)
	require.NotNil(t, np)
	assert.Equal(t, 64, np.Width())
	assert.Equal(t, 4*48, np.Height())
	assert.Nil(t, f.NoisePlane(1))
	assert.Nil(t, f.NoisePlane(-1))
}

func TestNewRGBForcesFullRangeAndAllPlanes(t *testing.T) {
	f := newTestFilter(t, yuvInfo(frame.RGB24), WithFullRange(false))

	p := f.Params()
	assert.True(t, p.FullRange)
	assert.Equal(t, []int{0, 1, 2}, p.Planes)

	for plane := range 3 {
		assert.Equal(t, PixelRange{0, 255}, f.Range(plane))
		assert.NotNil(t, f.NoisePlane(plane))
	}
}

func TestNewPlaneSelection(t *testing.T) {
	f := newTestFilter(t, yuvInfo(frame.YUV420P10), WithPlanes(2, 0, 2))

	assert.Equal(t, []int{0, 2}, f.Params().Planes)
	assert.True(t, f.Active(0))
	assert.False(t, f.Active(1))
	assert.True(t, f.Active(2))

	// Chroma noise follows the subsampled geometry.
	np := f.NoisePlane(2)
	require.NotNil(t, np)
	assert.Equal(t, 32, np.Width())
	assert.Equal(t, 4*24, np.Height())
	assert.Equal(t, 32, np.Stride())
}

func TestParamsReturnsCopy(t *testing.T) {
	f := newTestFilter(t, yuvInfo(frame.YUV444P8), WithPlanes(1))

	p := f.Params()
	p.Planes[0] = 2
	assert.Equal(t, []int{1}, f.Params().Planes)
}

func TestStaticModeOffsetIsZero(t *testing.T) {
	f := newTestFilter(t, yuvInfo(frame.YUV420P8), WithDynamic(false))

	for _, n := range []int{0, 1, 7, 249, 250, 100000, -3} {
		assert.Equal(t, 0, f.Offset(0, n), "frame %d", n)
	}
	assert.Equal(t, 48, f.NoisePlane(0).Height())
}

func TestDynamicOffsets(t *testing.T) {
	info := frame.StreamInfo{Format: frame.YUV420P8, Width: 64, Height: 48, FPSNum: 24000, FPSDen: 1001}
	f := newTestFilter(t, info, WithPlanes(0, 1))

	size := f.TableSize()
	require.Equal(t, 240, size)

	distinct := map[int]bool{}
	for n := range size {
		for plane, h := range []int{48, 24} {
			off := f.Offset(plane, n)
			assert.GreaterOrEqual(t, off, 0)
			assert.LessOrEqual(t, off, 3*h)
			assert.Equal(t, off, f.Offset(plane, n+size), "table repeats")
			assert.Equal(t, off, f.Offset(plane, n-size), "negative index wraps")
		}
		distinct[f.Offset(0, n)] = true
	}
	assert.Greater(t, len(distinct), 1)

	assert.Equal(t, 0, f.Offset(2, 5), "inactive plane")
}

func TestUnknownFrameRateFallsBack(t *testing.T) {
	info := frame.StreamInfo{Format: frame.Gray8, Width: 16, Height: 4}
	f := newTestFilter(t, info)

	assert.Equal(t, 250, f.TableSize())
}

func TestProcessFrameDeterministic(t *testing.T) {
	info := yuvInfo(frame.YUV420P10)
	src := testutil.RandomFrame(t, info, 1)

	a := newTestFilter(t, info, WithStrength(8))
	b := newTestFilter(t, info, WithStrength(8))

	for _, n := range []int{0, 3, 249, 250} {
		first := a.ProcessFrame(n, src)
		again := a.ProcessFrame(n, src)
		other := b.ProcessFrame(n, src)

		testutil.RequireFramesEqual(t, again, first)
		testutil.RequireFramesEqual(t, other, first)
	}
}

func TestProcessFrameLeavesSourceAndInactivePlanes(t *testing.T) {
	info := yuvInfo(frame.YUV420P8)
	src := testutil.RandomFrame(t, info, 2)
	orig := src.Clone()

	f := newTestFilter(t, info, WithStrength(20), WithPlanes(1))
	out := f.ProcessFrame(10, src)

	testutil.RequireFramesEqual(t, src, orig)
	assert.Equal(t, testutil.PlaneSamples(&orig.Planes[0]), testutil.PlaneSamples(&out.Planes[0]))
	assert.Equal(t, testutil.PlaneSamples(&orig.Planes[2]), testutil.PlaneSamples(&out.Planes[2]))
	assert.NotEqual(t, testutil.PlaneSamples(&orig.Planes[1]), testutil.PlaneSamples(&out.Planes[1]))
}

func TestProcessFrameStaysInRange(t *testing.T) {
	formats := []frame.Format{
		frame.YUV420P8, frame.YUV422P8, frame.YUV420P10, frame.YUV420P16, frame.YUV444P16,
		frame.YUV444PS, frame.Gray8, frame.GrayS, frame.RGB24, frame.RGB48, frame.RGBS,
	}

	for _, format := range formats {
		for _, full := range []bool{false, true} {
			t.Run(fmt.Sprintf("%v/full=%v", format, full), func(t *testing.T) {
				info := yuvInfo(format)
				opts := []Option{WithStrength(128), WithFullRange(full)}
				if format.NumPlanes() == 3 {
					opts = append(opts, WithPlanes(0, 1, 2))
				}
				f := newTestFilter(t, info, opts...)

				out := f.ProcessFrame(7, testutil.RandomFrame(t, info, 3))
				for p := range out.Planes {
					if !f.Active(p) {
						continue
					}
					r := f.Range(p)
					testutil.RequirePlaneWithin(t, &out.Planes[p], r.Min, r.Max)
				}
			})
		}
	}
}

func TestApplyInPlaceMatchesProcessFrame(t *testing.T) {
	info := yuvInfo(frame.YUV444P16)
	src := testutil.RandomFrame(t, info, 4)
	f := newTestFilter(t, info, WithDistribution(Uniform), WithStrength(3))

	want := f.ProcessFrame(12, src)
	f.Apply(12, src)

	testutil.RequireFramesEqual(t, src, want)
}

func TestConcurrentProcessFrame(t *testing.T) {
	info := yuvInfo(frame.YUV420P8)
	f := newTestFilter(t, info, WithStrength(6), WithPlanes(0, 1, 2))
	src := testutil.RandomFrame(t, info, 5)

	const frames = 32
	want := make([]*frame.Frame, frames)
	for n := range frames {
		want[n] = f.ProcessFrame(n, src)
	}

	got := make([]*frame.Frame, frames)
	var wg sync.WaitGroup
	for n := range frames {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[n] = f.ProcessFrame(n, src)
		}()
	}
	wg.Wait()

	for n := range frames {
		testutil.RequireFramesEqual(t, got[n], want[n])
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	info := yuvInfo(frame.Gray8)
	f, err := New(info, WithRNG(seeded(1)), WithStrength(30))
	require.NoError(t, err)

	f.Close()
	f.Close()

	assert.Nil(t, f.NoisePlane(0))
	assert.Equal(t, 0, f.Offset(0, 3))

	src := testutil.RandomFrame(t, info, 6)
	out := f.ProcessFrame(3, src)
	testutil.RequireFramesEqual(t, out, src)
}

func TestNewAllocationFailure(t *testing.T) {
	if math.MaxInt == math.MaxInt32 {
		t.Skip("needs 64-bit int")
	}

	info := frame.StreamInfo{Format: frame.Gray8, Width: math.MaxInt32, Height: 64, FPSNum: 25, FPSDen: 1}
	f, err := New(info, WithDynamic(false), WithRNG(seeded(1)))

	require.Error(t, err)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, buffer.ErrAllocation)
	assert.False(t, errors.Is(err, ErrConfig))
	assert.Contains(t, err.Error(), "noisegen: plane 0:")
}

func TestNewLogsConstruction(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	SetLogger(logger)
	defer SetLogger(nil)

	newTestFilter(t, frame.StreamInfo{Format: frame.Gray8, Width: 8, Height: 2})

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Contains(t, msgs, "Unknown frame rate, offset table sized for 25 fps")
	assert.Contains(t, msgs, "Allocated noise plane")
	assert.Contains(t, msgs, "Grain filter created")

	hook.Reset()
	_, err := New(yuvInfo(frame.Gray8), WithStrength(500))
	require.Error(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
