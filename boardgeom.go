package boardgeom

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hnimtadd/boardgeom/config"
	"github.com/hnimtadd/boardgeom/geometry/point"
	"github.com/hnimtadd/boardgeom/geometry/pointset"
	"github.com/hnimtadd/boardgeom/logger"
)

var ErrTooManyPoints = errors.New("too many distinct points")

const defaultUniqueCap = 1 << 16

type Options struct {
	// Digits overrides the configured significant digits for every point
	// written. Nil means config.SignificantDigits() at NewProcessor time.
	Digits *int

	// Transform pipeline, applied in this order. Nil steps are skipped and a
	// zero Rotate leaves points untouched.
	Offset  *point.Point
	Scale   *float64
	Rotate  float64
	Center  point.Point
	Mode    point.RotationMode
	Round   bool
	InvertY bool

	// Unique drops points whose canonical output was already written.
	// UniqueCap bounds the number of distinct points tracked, 65536 if zero.
	Unique    bool
	UniqueCap uint64

	// Strict aborts on the first malformed line instead of skipping it.
	Strict bool

	Logger logger.Logger
}

// Stats summarizes one Process call.
type Stats struct {
	Read       int
	Written    int
	Skipped    int
	Duplicates int
}

// Processor turns lines of coordinates into their canonical output form.
type Processor struct {
	opts   Options
	digits int
	logger logger.Logger
}

func NewProcessor(opts Options) *Processor {
	digits := config.SignificantDigits()
	if opts.Digits != nil {
		digits = *opts.Digits
	}
	if opts.Logger == nil {
		opts.Logger = logger.DefaultLogger
	}
	if opts.UniqueCap == 0 {
		opts.UniqueCap = defaultUniqueCap
	}
	return &Processor{
		opts:   opts,
		digits: digits,
		logger: opts.Logger,
	}
}

// Transform runs the configured pipeline on a single point. The result
// carries the processor's digit count.
func (p *Processor) Transform(pt point.Point) point.Point {
	if p.opts.Offset != nil {
		pt = pt.Add(*p.opts.Offset)
	}
	if p.opts.Scale != nil {
		pt.Scale(*p.opts.Scale)
	}
	pt.RotateWith(p.opts.Mode, p.opts.Rotate, p.opts.Center)
	pt = point.NewWithDigits(pt.X, pt.Y, p.digits)
	if p.opts.Round {
		pt.Round()
	}
	return pt
}

// Process reads one point per line from r and writes a table of results to
// w. Lines may carry a label before an '=' sign ("U1=1.5,2"). Blank lines and
// lines starting with '#' are ignored.
func (p *Processor) Process(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var (
		stats Stats
		rows  []row
		seen  *pointset.Set[point.Point]
	)
	if p.opts.Unique {
		seen = pointset.New[point.Point](pointset.Options{Cap: &p.opts.UniqueCap})
	}

	scanner := bufio.NewScanner(decode(r))
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stats.Read++

		label, coords := splitLabel(line)
		pt, err := point.Parse(coords)
		if err != nil {
			if p.opts.Strict {
				return stats, fmt.Errorf("line %d: %w", lineNo, err)
			}
			p.logger.Warn("skipping invalid point", "line", lineNo, "err", err)
			stats.Skipped++
			continue
		}

		out := p.Transform(pt)
		if seen != nil {
			key := point.NewWithDigits(out.PX().Float, out.PY().Float, p.digits)
			if id, found := seen.Lookup(key); found {
				seen.Use(id)
				p.logger.Debug("duplicate point",
					"line", lineNo,
					"point", seen.Get(id),
					"refs", seen.Refs(id),
				)
				stats.Duplicates++
				continue
			}
			if seen.Count() >= int(p.opts.UniqueCap) {
				return stats, fmt.Errorf("line %d: %w (limit %d)", lineNo, ErrTooManyPoints, p.opts.UniqueCap)
			}
			seen.Add(key)
		}

		p.logger.Debug("point", "line", lineNo, "in", pt, "out", out)
		rows = append(rows, newRow(label, out, p.opts.InvertY))
		stats.Written++
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("read points: %w", err)
	}

	if err := writeTable(w, rows); err != nil {
		return stats, err
	}
	return stats, nil
}

func splitLabel(line string) (label, coords string) {
	label, coords, found := strings.Cut(line, "=")
	if !found {
		return "", line
	}
	return strings.TrimSpace(label), coords
}
