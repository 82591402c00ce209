package palette

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	mandel "github.com/marben/mandelgrid"
)

// ErrEmpty is returned for a palette resource without a single color line.
var ErrEmpty = errors.New("palette has no colors")

var errNotRegular = errors.New("not a regular file")

// LineError describes a palette line that could not be parsed.
type LineError struct {
	Line int    // 1-based line number within the resource
	Text string // the offending line
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%v: line %d %q: %v", mandel.ErrMalformedPaletteLine, e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() []error {
	return []error{mandel.ErrMalformedPaletteLine, e.Err}
}

// Parse reads a palette: one "R G B" color per line, channels are integers in [0,255]
// separated by any whitespace. Blank lines are skipped, tokens past the third are ignored.
func Parse(r io.Reader) (Palette, error) {
	var p Palette

	// lines may be arbitrarily long
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read palette: %w", err)
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			c, perr := parseColor(fields)
			if perr != nil {
				return nil, &LineError{Line: n, Text: strings.TrimRight(line, "\r\n"), Err: perr}
			}
			p = append(p, c)
		}
		if err == io.EOF {
			break
		}
	}

	if len(p) == 0 {
		return nil, fmt.Errorf("%w: %w", mandel.ErrMalformedPaletteLine, ErrEmpty)
	}
	return p, nil
}

func parseColor(fields []string) (color.RGBA, error) {
	if len(fields) < 3 {
		return color.RGBA{}, fmt.Errorf("want 3 channels, got %d", len(fields))
	}

	var ch [3]uint8
	for i, name := range [3]string{"red", "green", "blue"} {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%s channel: %w", name, err)
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("%s channel %d out of range [0,255]", name, v)
		}
		ch[i] = uint8(v)
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

// Load opens and parses the palette file at path.
// A missing, unreadable or non-regular file yields a *mandel.ResourceError.
func Load(path string) (Palette, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, &mandel.ResourceError{Path: abs, Hint: workdirHint(path), Err: err}
	}
	if !fi.Mode().IsRegular() {
		return nil, &mandel.ResourceError{Path: abs, Hint: workdirHint(path), Err: errNotRegular}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &mandel.ResourceError{Path: abs, Err: err}
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("palette %q: %w", abs, err)
	}
	return p, nil
}

// workdirHint guesses why a relative palette path did not resolve.
func workdirHint(path string) string {
	if filepath.IsAbs(path) {
		return ""
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	clean := filepath.ToSlash(filepath.Clean(path))
	dir, _, nested := strings.Cut(clean, "/")
	base := filepath.Base(wd)

	switch {
	case nested && dir != ".." && base == dir:
		return fmt.Sprintf("working directory %q already is %q, run from its parent", wd, dir)
	case base == "cmd" || filepath.Base(filepath.Dir(wd)) == "cmd":
		return fmt.Sprintf("working directory %q is inside cmd/, run from the module root", wd)
	}
	return ""
}
