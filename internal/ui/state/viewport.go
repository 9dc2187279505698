package state

// Viewport is a scroll window over a list of lines.
type Viewport struct {
	Offset int
	Height int
}

// Bottom returns the first line below the window.
func (v Viewport) Bottom() int {
	return v.Offset + v.Height
}

// Contains reports whether line is inside the window.
func (v Viewport) Contains(line int) bool {
	return line >= v.Offset && line < v.Bottom()
}

// PageSize returns the number of lines a page move covers.
func (v Viewport) PageSize(total int) int {
	if total == 0 {
		return 0
	}
	size := v.Height
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// Clamp keeps the offset inside [0, total-Height].
func (v *Viewport) Clamp(total int) {
	maxOffset := total - v.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// ScrollBy moves the window by delta lines and reports whether it moved.
func (v *Viewport) ScrollBy(delta, total int) bool {
	old := v.Offset
	v.Offset += delta
	v.Clamp(total)
	return v.Offset != old
}

// EnsureVisible adjusts the offset so line stays inside the window.
func (v *Viewport) EnsureVisible(line, total int) {
	if total == 0 || v.Height <= 0 {
		v.Offset = 0
		return
	}
	v.Clamp(total)
	if line < v.Offset {
		v.Offset = line
	}
	upper := v.Offset + v.Height - 1
	if line > upper {
		v.Offset = line - v.Height + 1
	}
	v.Clamp(total)
}

// Center scrolls so line sits in the middle of the window, as far as the
// list bounds allow.
func (v *Viewport) Center(line, total int) {
	if total == 0 || v.Height <= 0 {
		v.Offset = 0
		return
	}
	v.Offset = line - (v.Height-1)/2
	v.Clamp(total)
}
