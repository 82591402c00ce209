package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	mandel "github.com/marben/mandelgrid"
)

type options struct {
	cfg mandel.Config

	palettePath string
	rainbow     int
	gradient    int

	workers   int
	sink      string
	out       string
	listViews bool
}

const usageHead = `Usage: mandel [options] centerRe centerIm sidelength
       mandel [options] -view name

Renders the Mandelbrot set over the square of side length sidelength centered at centerRe + centerIm i.
Options go before the coordinates.

Options:
`

// parseArgs parses the command line. Errors other than flag.ErrHelp wrap mandel.ErrInvalidArgument.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	opts := options{cfg: mandel.DefaultConfig(mandel.Full)}

	fs := flag.NewFlagSet("mandel", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usageHead)
		fs.PrintDefaults()
	}

	view := fs.String("view", "", "render a named view instead of positional coordinates (see -views)")
	fs.IntVar(&opts.cfg.MaxIter, "max", mandel.DefaultMaxIter, "escape iteration cap")
	fs.IntVar(&opts.cfg.GridSize, "grid", mandel.DefaultGridSize, "samples per axis")
	fs.StringVar(&opts.palettePath, "palette", "", "palette file, one 'R G B' line per color (default: bundled palette)")
	fs.IntVar(&opts.rainbow, "rainbow", 0, "use a generated rainbow palette of `n` colors instead of a palette file")
	fs.IntVar(&opts.gradient, "gradient", 0, "use a generated navy to gold gradient of `n` colors instead of a palette file")
	fs.IntVar(&opts.workers, "workers", runtime.NumCPU(), "goroutines evaluating grid columns")
	fs.StringVar(&opts.sink, "sink", "png", "output: png, term or window")
	fs.StringVar(&opts.out, "o", "mandel.png", "output file of the png sink")
	fs.BoolVar(&opts.listViews, "views", false, "list named views and exit")

	if err := fs.Parse(separateNumbers(fs, args)); err != nil {
		if err == flag.ErrHelp {
			return options{}, err
		}
		return options{}, fmt.Errorf("%w: %v", mandel.ErrInvalidArgument, err)
	}
	if opts.listViews {
		return opts, nil
	}

	fail := func(format string, a ...any) (options, error) {
		fs.Usage()
		return options{}, fmt.Errorf("%w: %s", mandel.ErrInvalidArgument, fmt.Sprintf(format, a...))
	}

	if name, ok := trailingFlag(fs); ok {
		return fail("option -%s must come before centerRe centerIm sidelength", name)
	}

	switch {
	case *view != "" && fs.NArg() > 0:
		return fail("give either -view or centerRe centerIm sidelength, not both")
	case *view != "":
		v, err := mandel.LookupView(*view)
		if err != nil {
			return fail("%v (known views: %s)", err, strings.Join(mandel.ViewNames(), ", "))
		}
		opts.cfg.Center, opts.cfg.Side = v.Center, v.Side
	case fs.NArg() == 3:
		var nums [3]float64
		for i, name := range [3]string{"centerRe", "centerIm", "sidelength"} {
			f, err := strconv.ParseFloat(fs.Arg(i), 64)
			if err != nil {
				return fail("%s %q is not a number", name, fs.Arg(i))
			}
			nums[i] = f
		}
		opts.cfg.Center = mandel.Complex{Re: nums[0], Im: nums[1]}
		opts.cfg.Side = nums[2]
	default:
		return fail("want 3 arguments centerRe centerIm sidelength, got %d", fs.NArg())
	}

	if err := opts.cfg.Validate(); err != nil {
		fs.Usage()
		return options{}, err
	}

	switch opts.sink {
	case "png", "term", "window":
	default:
		return fail("unknown sink %q", opts.sink)
	}
	if opts.rainbow < 0 || opts.gradient < 0 || (opts.rainbow > 0 && opts.gradient > 0) {
		return fail("-rainbow and -gradient take a positive count and exclude each other")
	}
	return opts, nil
}

// separateNumbers inserts "--" before the first positional argument so that
// negative coordinates such as -0.75 are not taken for flags.
func separateNumbers(fs *flag.FlagSet, args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil || !strings.HasPrefix(a, "-") {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		f := fs.Lookup(name)
		if f == nil || hasValue {
			continue
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		// skip the flag's value
		i++
	}
	return args
}

// trailingFlag reports a known flag left among the positional arguments.
func trailingFlag(fs *flag.FlagSet) (string, bool) {
	for _, a := range fs.Args() {
		if !strings.HasPrefix(a, "-") {
			continue
		}
		if _, err := strconv.ParseFloat(a, 64); err == nil {
			continue
		}
		name, _, _ := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if fs.Lookup(name) != nil {
			return name, true
		}
	}
	return "", false
}
