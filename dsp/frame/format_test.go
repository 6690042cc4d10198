package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDerived(t *testing.T) {
	tests := []struct {
		format  Format
		name    string
		planes  int
		storage Storage
		bytes   int
	}{
		{Gray8, "Gray8", 1, Storage8, 1},
		{Gray16, "Gray16", 1, Storage16, 2},
		{GrayS, "GrayS", 1, StorageF, 4},
		{YUV420P8, "YUV420P8", 3, Storage8, 1},
		{YUV420P10, "YUV420P10", 3, Storage16, 2},
		{YUV422P8, "YUV422P8", 3, Storage8, 1},
		{YUV444PS, "YUV444PS", 3, StorageF, 4},
		{RGB24, "RGB24", 3, Storage8, 1},
		{RGB30, "RGB30", 3, Storage16, 2},
		{RGBS, "RGBS", 3, StorageF, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.format.String())
			assert.Equal(t, tt.planes, tt.format.NumPlanes())
			assert.Equal(t, tt.storage, tt.format.Storage())
			assert.Equal(t, tt.bytes, tt.format.BytesPerSample())
			require.NoError(t, tt.format.Validate())
		})
	}
}

func TestFormatValidate(t *testing.T) {
	bad := []Format{
		{Family: YUV, Type: Integer, Bits: 7},
		{Family: YUV, Type: Integer, Bits: 17},
		{Family: YUV, Type: Float, Bits: 16},
		{Family: RGB, Type: Integer, Bits: 8, SubSamplingW: 1},
		{Family: Gray, Type: Integer, Bits: 8, SubSamplingH: 1},
		{Family: YUV, Type: Integer, Bits: 8, SubSamplingW: 3},
		{Family: ColorFamily(9), Type: Integer, Bits: 8},
		{Family: YUV, Type: SampleType(5), Bits: 8},
	}

	for _, f := range bad {
		assert.ErrorIs(t, f.Validate(), ErrUnsupportedFormat, "%+v", f)
	}
}

func TestStreamInfoPlanes(t *testing.T) {
	info := StreamInfo{Format: YUV420P8, Width: 1920, Height: 1080, FPSNum: 24000, FPSDen: 1001}
	require.NoError(t, info.Validate())

	assert.Equal(t, 1920, info.PlaneWidth(0))
	assert.Equal(t, 1080, info.PlaneHeight(0))
	assert.Equal(t, 960, info.PlaneWidth(1))
	assert.Equal(t, 540, info.PlaneHeight(2))
	assert.InDelta(t, 23.976, info.FrameRate(), 1e-3)
	assert.Equal(t, "YUV420P8 1920x1080 @ 24000/1001", info.String())

	assert.Zero(t, StreamInfo{Format: Gray8, Width: 4, Height: 4}.FrameRate())
}

func TestStreamInfoValidate(t *testing.T) {
	assert.ErrorIs(t, StreamInfo{Format: Gray8, Width: 0, Height: 4}.Validate(), ErrUnsupportedFormat)
	assert.ErrorIs(t, StreamInfo{Format: YUV420P8, Width: 7, Height: 4}.Validate(), ErrUnsupportedFormat)
	assert.ErrorIs(t, StreamInfo{Format: Format{Family: YUV, Bits: 4}, Width: 8, Height: 8}.Validate(), ErrUnsupportedFormat)
}
