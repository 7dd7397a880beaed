// Package layout holds the geometry rules of the browser screen.
package layout

// FloatingBarHidden reports whether the floating bar should be hidden for
// the current scroll geometry: it hides once the footer has scrolled into
// view, that is when the bottom of the viewport reaches the top of the
// footer. The boundary is inclusive.
func FloatingBarHidden(viewportHeight, scrollOffset, pageHeight, footerHeight int) bool {
	return viewportHeight+scrollOffset >= pageHeight-footerHeight
}

// Rect is a cell rectangle on screen. Max is exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Centered returns a width×height rectangle centered in a
// containerWidth×containerHeight area, using the same rounding as
// lipgloss.Place: leftover space is split with the extra cell on the far side.
func Centered(containerWidth, containerHeight, width, height int) Rect {
	x := (containerWidth - width) / 2
	if x < 0 {
		x = 0
	}
	y := (containerHeight - height) / 2
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Span is a range of content lines, End exclusive.
type Span struct {
	Start, End int
}

// Contains reports whether line falls inside s.
func (s Span) Contains(line int) bool {
	return line >= s.Start && line < s.End
}

// SpanAt returns the index of the span containing line, or -1.
func SpanAt(spans []Span, line int) int {
	for i, s := range spans {
		if s.Contains(line) {
			return i
		}
	}
	return -1
}
