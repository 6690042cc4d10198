// Command noisegen adds film grain to a YUV4MPEG2 stream.
//
// Usage:
//
//	noisegen [flags] < in.y4m > out.y4m
//
// Frames are processed by -workers goroutines and written in input order.
// The grain of frame n depends only on n and the seed, so a seeded run is
// reproducible regardless of the worker count.
//
// Examples:
//
//	noisegen -str 2 -planes 0 < in.y4m > out.y4m
//	noisegen -type 1 -var 0.5 -dyn=false -in in.y4m -out out.y4m
//	noisegen -seed 7 -inspect -in in.y4m
//	noisegen -seed 7 -dump-grain grain.tiff -in in.y4m
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-noisegen/dsp/grain"
	"github.com/cwbudde/algo-noisegen/internal/cpu"
	"github.com/cwbudde/algo-noisegen/internal/y4m"
	"github.com/sirupsen/logrus"
)

type options struct {
	str      float64
	limit    float64
	dist     int
	mean     float64
	variance float64
	dynamic  bool
	full     bool
	planes   []int

	in      string
	out     string
	workers int

	seed    uint64
	seedSet bool

	inspect   bool
	dumpGrain string
	kernel    string
	verbose   bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if err := run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	var planes string

	fs := flag.NewFlagSet("noisegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Float64Var(&o.str, "str", 1, "noise strength, 0 ... 128")
	fs.Float64Var(&o.limit, "limit", 128, "largest noise magnitude in 8-bit units, 0 ... 128")
	fs.IntVar(&o.dist, "type", int(grain.Normal), "distribution: 1 uniform, 2 normal")
	fs.Float64Var(&o.mean, "mean", 0, "distribution mean")
	fs.Float64Var(&o.variance, "var", 1, "distribution variance, > 0.001")
	fs.BoolVar(&o.dynamic, "dyn", true, "move the grain window from frame to frame")
	fs.BoolVar(&o.full, "full", false, "clamp to full range instead of studio range")
	fs.StringVar(&planes, "planes", "", "comma separated plane indices (default: luma, or all planes for RGB)")
	fs.StringVar(&o.in, "in", "-", "input Y4M file, - for stdin")
	fs.StringVar(&o.out, "out", "-", "output Y4M file, - for stdout")
	fs.IntVar(&o.workers, "workers", runtime.GOMAXPROCS(0), "frames processed concurrently")
	fs.Func("seed", "seed for reproducible grain (default: random)", func(s string) error {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		o.seed, o.seedSet = v, true
		return nil
	})
	fs.BoolVar(&o.inspect, "inspect", false, "print grain statistics and exit")
	fs.StringVar(&o.dumpGrain, "dump-grain", "", "write the first plane of grain to a 16-bit TIFF")
	fs.StringVar(&o.kernel, "kernel", "auto", "blend kernel: auto or generic")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: noisegen [flags] < in.y4m > out.y4m\n\n")
		fmt.Fprintf(stderr, "Adds film grain to a YUV4MPEG2 stream.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  noisegen -str 2 -planes 0 < in.y4m > out.y4m\n")
		fmt.Fprintf(stderr, "  noisegen -seed 7 -inspect -in in.y4m\n")
	}

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var err error
	if o.planes, err = parsePlanes(planes); err != nil {
		return options{}, err
	}
	if o.workers < 1 {
		return options{}, fmt.Errorf("-workers must be >= 1: %d", o.workers)
	}
	switch o.kernel {
	case "auto", "generic":
	default:
		return options{}, fmt.Errorf("-kernel must be auto or generic: %q", o.kernel)
	}

	return o, nil
}

// parsePlanes parses "0,2" into []int{0, 2}. An empty string yields nil so the
// filter applies its default selection.
func parsePlanes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	planes := make([]int, 0, len(parts))
	for _, part := range parts {
		p, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("-planes: %q is not a plane index", part)
		}
		planes = append(planes, p)
	}

	return planes, nil
}

// grainOptions maps the flags onto filter options.
func (o options) grainOptions() []grain.Option {
	opts := []grain.Option{
		grain.WithStrength(o.str),
		grain.WithLimit(o.limit),
		grain.WithDistribution(grain.Distribution(o.dist)),
		grain.WithMean(o.mean),
		grain.WithVariance(o.variance),
		grain.WithDynamic(o.dynamic),
		grain.WithFullRange(o.full),
	}
	if o.planes != nil {
		opts = append(opts, grain.WithPlanes(o.planes...))
	}
	if o.seedSet {
		opts = append(opts, grain.WithRNG(rand.New(rand.NewPCG(o.seed, 0))))
	}
	return opts
}

func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l
}

func run(o options, stdin io.Reader, stdout, stderr io.Writer) error {
	log := newLogger(stderr, o.verbose)
	grain.SetLogger(log)
	defer grain.SetLogger(nil)

	if o.kernel == "generic" {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true, Architecture: runtime.GOARCH})
	}

	in, closeIn, err := openInput(o.in, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	src, err := y4m.NewReader(in)
	if err != nil {
		return err
	}

	f, err := grain.New(src.Info(), o.grainOptions()...)
	if err != nil {
		return err
	}
	defer f.Close()

	if o.dumpGrain != "" {
		if err := dumpGrainFile(o.dumpGrain, f); err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"function": "run", "file": o.dumpGrain}).Info("Wrote grain image")
	}

	if o.inspect {
		return printInspection(stdout, f)
	}

	out, closeOut, err := openOutput(o.out, stdout)
	if err != nil {
		return err
	}

	dst, err := y4m.NewWriter(out, src.Header())
	if err != nil {
		_ = closeOut()
		return err
	}

	n, err := process(src, dst, f, o.workers)
	if err == nil {
		err = dst.Flush()
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"function": "run", "frames": n, "workers": o.workers}).Info("Stream processed")

	return nil
}

func openInput(name string, stdin io.Reader) (io.Reader, func(), error) {
	if name == "-" {
		return stdin, func() {}, nil
	}

	fh, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return fh, func() { _ = fh.Close() }, nil
}

func openOutput(name string, stdout io.Writer) (io.Writer, func() error, error) {
	if name == "-" {
		return stdout, func() error { return nil }, nil
	}

	fh, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}
