package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-noisegen/dsp/frame"
	"github.com/cwbudde/algo-noisegen/dsp/grain"
	"golang.org/x/image/tiff"
)

const midGray = 1 << 15

// grainImage renders the first window of the first active plane as 16-bit
// gray centred on mid-gray. Deltas are scaled to 16-bit units: integer grain
// by 2^(16-bits), float grain by 65535.
func grainImage(f *grain.Filter) (*image.Gray16, error) {
	planes := f.Params().Planes
	if len(planes) == 0 {
		return nil, errors.New("no active plane")
	}

	p := planes[0]
	np := f.NoisePlane(p)
	if np == nil {
		return nil, fmt.Errorf("plane %d has no grain", p)
	}

	var scale float64
	switch np.Storage() {
	case frame.Storage8:
		scale = 256
	case frame.Storage16:
		scale = float64(int(1) << (16 - f.Info().Format.Bits))
	case frame.StorageF:
		scale = math.MaxUint16
	}

	width, height := np.Width(), f.Info().PlaneHeight(p)
	img := image.NewGray16(image.Rect(0, 0, width, height))

	var row []float64
	for y := range height {
		row = np.RowFloat64(y, row)
		for x, v := range row {
			g := math.Round(midGray + v*scale)
			img.SetGray16(x, y, color.Gray16{Y: uint16(min(max(g, 0), math.MaxUint16))})
		}
	}

	return img, nil
}

func writeGrainTIFF(w io.Writer, f *grain.Filter) error {
	img, err := grainImage(f)
	if err != nil {
		return err
	}
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}

func dumpGrainFile(name string, f *grain.Filter) error {
	fh, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := writeGrainTIFF(fh, f); err != nil {
		_ = fh.Close()
		return fmt.Errorf("dump grain: %w", err)
	}

	return fh.Close()
}
