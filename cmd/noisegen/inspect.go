package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-noisegen/dsp/grain"
	"github.com/cwbudde/algo-noisegen/stats/grainstats"
)

// printInspection writes one row of grain statistics per active plane.
func printInspection(w io.Writer, f *grain.Filter) error {
	info := f.Info()
	params := f.Params()

	lanes := "scalar"
	if width := grain.KernelWidth(); width > 0 {
		lanes = fmt.Sprintf("%d-byte lanes", width)
	}

	if _, err := fmt.Fprintf(w, "Stream: %v (%.3f fps)\nKernel: %s (%s)\nDistribution: %v  str=%g limit=%g mean=%g var=%g dyn=%v full=%v\nOffset table: %d\n\n",
		info, info.FrameRate(), grain.KernelName(), lanes, params.Distribution, params.Strength, params.Limit,
		params.Mean, params.Variance, params.Dynamic, params.FullRange, f.TableSize()); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Plane\tGrain\tStride\tRange\tMean\tVariance\tMin\tMax\tSkewness\tKurtosis\tFlatness\n")
	fmt.Fprintf(tw, "-----\t-----\t------\t-----\t----\t--------\t---\t---\t--------\t--------\t--------\n")

	for _, p := range params.Planes {
		np := f.NoisePlane(p)
		rep, err := grainstats.Analyze(np)
		if err != nil {
			return fmt.Errorf("plane %d: %w", p, err)
		}

		r := f.Range(p)
		fmt.Fprintf(tw, "%d\t%dx%d %v\t%d\t%g..%g\t%.4f\t%.4f\t%g\t%g\t%.4f\t%.4f\t%.4f\n",
			p, np.Width(), np.Height(), np.Storage(), np.Stride(), r.Min, r.Max,
			rep.Mean, rep.Variance, rep.Min, rep.Max, rep.Skewness, rep.Kurtosis, rep.Flatness)
	}

	return tw.Flush()
}
