package paramslider

import (
	"strings"

	"github.com/alkime/paramctl/internal/slider"
	"github.com/alkime/paramctl/internal/tui/style"
	"github.com/chewxy/math32"
)

const (
	fullBlock  = '█'
	trackBlock = '░'
	rightHalf  = '▐'
	rightEdge  = '▕'
)

// Left-aligned partial blocks, 1/8 to 7/8 of a cell.
const partialBlocks = "▏▎▍▌▋▊▉"

// cell is one rendered column of the bar.
type cell struct {
	r      rune
	filled bool
}

// barCells lays the fill out over width columns. Column i covers
// [i/width, (i+1)/width) of the normalized range.
func barCells(f slider.Fill, width int) []cell {
	cells := make([]cell, width)
	partial := []rune(partialBlocks)
	start, end := f.Start, f.End()
	w := float32(width)

	for i := range cells {
		lo := float32(i) / w
		hi := float32(i+1) / w
		cover := (min(hi, end) - max(lo, start)) * w

		eighths := int(math32.Round(cover * 8))

		switch {
		case eighths <= 0:
			cells[i] = cell{r: trackBlock}
		case eighths >= 8:
			cells[i] = cell{r: fullBlock, filled: true}
		case start > lo:
			// fill starts inside this column; only right-aligned glyphs fit
			r := rightEdge
			if eighths >= 4 {
				r = rightHalf
			}
			cells[i] = cell{r: r, filled: true}
		default:
			cells[i] = cell{r: partial[eighths-1], filled: true}
		}
	}

	return cells
}

// renderBar renders the cells, styling filled and unfilled runs.
func renderBar(f slider.Fill, width int) string {
	var sb strings.Builder
	var run strings.Builder

	cells := barCells(f, width)
	flush := func(filled bool) {
		if run.Len() == 0 {
			return
		}

		if filled {
			sb.WriteString(style.Fill.Render(run.String()))
		} else {
			sb.WriteString(style.Track.Render(run.String()))
		}

		run.Reset()
	}

	for i, c := range cells {
		if i > 0 && c.filled != cells[i-1].filled {
			flush(cells[i-1].filled)
		}

		run.WriteRune(c.r)
	}

	if len(cells) > 0 {
		flush(cells[len(cells)-1].filled)
	}

	return sb.String()
}

// renderTicks returns the tick row and the label row. Labels that would
// overlap an earlier one are dropped. cols are offsets from the start of
// the bar.
func renderTicks(marks []slider.Mark, cols []int, width int) (string, string) {
	row := []rune(strings.Repeat(" ", width))
	labels := []rune(strings.Repeat(" ", width))
	nextFree := 0

	for i, mark := range marks {
		col := cols[i]
		if col < 0 || col >= width {
			continue
		}

		if mark.Short {
			row[col] = '\''
		} else {
			row[col] = '|'
		}

		if mark.Label == "" {
			continue
		}

		text := []rune(mark.Label)
		at := min(max(col-len(text)/2, 0), max(width-len(text), 0))

		if at < nextFree || at+len(text) > width {
			continue
		}

		copy(labels[at:], text)
		nextFree = at + len(text) + 1
	}

	return string(row), strings.TrimRight(string(labels), " ")
}
