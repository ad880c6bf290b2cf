// Package view turns game state into coloured rectangles, window titles and
// key bindings. It has no graphics dependency; the desktop front-end paints
// what it returns.
package view

// Rect is in window pixels with the origin at the top-left.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inset shrinks r by m on every side.
func (r Rect) Inset(m int) Rect {
	if 2*m >= r.W || 2*m >= r.H {
		return Rect{X: r.X + r.W/2, Y: r.Y + r.H/2}
	}
	return Rect{X: r.X + m, Y: r.Y + m, W: r.W - 2*m, H: r.H - 2*m}
}

const (
	margin   = 16
	gutter   = 10
	headerHi = 8 // header is 1/headerHi of the height
)

// Header is the status strip across the top.
func Header(w, h int) Rect {
	return Rect{W: w, H: h / headerHi}
}

// Body is the play area under the header.
func Body(w, h int) Rect {
	top := h / headerHi
	return Rect{Y: top, W: w, H: h - top}.Inset(margin)
}

// Row splits area into n equal columns separated by gutter.
func Row(area Rect, n int) []Rect {
	if n <= 0 {
		return nil
	}
	cw := (area.W - (n-1)*gutter) / n
	out := make([]Rect, n)
	for i := range out {
		out[i] = Rect{X: area.X + i*(cw+gutter), Y: area.Y, W: cw, H: area.H}
	}
	return out
}

// Grid lays n cells out in rows of cols.
func Grid(area Rect, n, cols int) []Rect {
	if n <= 0 || cols <= 0 {
		return nil
	}
	rows := (n + cols - 1) / cols
	rh := (area.H - (rows-1)*gutter) / rows
	out := make([]Rect, 0, n)
	for r := 0; r < rows; r++ {
		line := Rect{X: area.X, Y: area.Y + r*(rh+gutter), W: area.W, H: rh}
		for _, c := range Row(line, cols) {
			if len(out) == n {
				break
			}
			out = append(out, c)
		}
	}
	return out
}

// Split cuts area horizontally, giving the top part frac/10 of the height.
func Split(area Rect, frac int) (top, bottom Rect) {
	th := area.H * frac / 10
	top = Rect{X: area.X, Y: area.Y, W: area.W, H: th - gutter/2}
	bottom = Rect{X: area.X, Y: area.Y + th + gutter/2, W: area.W, H: area.H - th - gutter/2}
	return top, bottom
}
