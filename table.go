package boardgeom

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	dw "github.com/mattn/go-runewidth"

	"github.com/hnimtadd/boardgeom/geometry/point"
)

const columnGap = "  "

var header = row{"label", "point", "px", "py", "transform"}

type row [5]string

func newRow(label string, pt point.Point, invertY bool) row {
	if label == "" {
		label = "-"
	}
	return row{
		label,
		pt.String(),
		pt.PX().String(),
		pt.PY().String(),
		pt.Translate(invertY),
	}
}

// writeTable writes rows under a header, padding every column but the last to
// its widest cell. Widths are measured in terminal cells so labels with wide
// runes stay aligned.
func writeTable(w io.Writer, rows []row) error {
	var widths [len(header)]int
	for _, r := range append([]row{header}, rows...) {
		for i, cell := range r {
			widths[i] = max(widths[i], dw.StringWidth(cell))
		}
	}

	bw := bufio.NewWriter(w)
	for _, r := range append([]row{header}, rows...) {
		cells := make([]string, len(r))
		for i, cell := range r {
			if i == len(r)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = dw.FillRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(bw, strings.Join(cells, columnGap)); err != nil {
			return fmt.Errorf("write table: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
