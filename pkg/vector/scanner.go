package vector

import (
	"px2svg/pkg/raster"
)

// NewScanner returns a Scanner reading runs from src in row-major order.
func NewScanner(src raster.Source) *Scanner {
	w, h := src.Size()
	return &Scanner{src: src, width: w, height: h}
}

// Scanner splits a pixel grid into runs, one row at a time. Fully
// transparent pixels end the active run and are never part of one. Runs are
// always closed at the end of a row.
//
// Scanning is single pass; a Scanner cannot be rewound.
type Scanner struct {
	src    raster.Source
	width  int
	height int

	x, y int

	// active is the run being accumulated, nil between runs.
	active *Run
	out    Run
}

// Scan advances to the next run, which is then available through Run. It
// returns false when the grid is exhausted.
func (s *Scanner) Scan() bool {
	for s.y < s.height {
		for s.x < s.width {
			x := s.x
			s.x++

			p := s.src.At(x, s.y)
			if p.Transparent() {
				if s.flush() {
					return true
				}
				continue
			}

			c := colorOf(p)
			// the width check is a guard only; runs are closed at row end,
			// which is what keeps x+width within the grid
			if s.active != nil && s.active.Color == c && s.active.X+s.active.Width < s.width {
				s.active.Width++
				continue
			}

			closed := s.flush()
			s.active = &Run{Color: c, Width: 1, X: x, Y: s.y}
			if closed {
				return true
			}
		}

		s.x = 0
		s.y++
		if s.flush() {
			return true
		}
	}

	return false
}

// Run returns the run found by the most recent call to Scan.
func (s *Scanner) Run() Run {
	return s.out
}

func (s *Scanner) flush() bool {
	if s.active == nil {
		return false
	}
	s.out = *s.active
	s.active = nil
	return true
}

// Runs scans src to the end and returns every run in scan order.
func Runs(src raster.Source) []Run {
	var runs []Run
	s := NewScanner(src)
	for s.Scan() {
		runs = append(runs, s.Run())
	}
	return runs
}
