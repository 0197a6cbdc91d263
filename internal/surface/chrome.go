package surface

// Region names the part of a window under the pointer.
type Region int

const (
	RegionNone Region = iota
	RegionTitleBar
	RegionMinimize
	RegionMaximize
	RegionClose
	RegionBody
	RegionFrame
)

func (r Region) String() string {
	switch r {
	case RegionTitleBar:
		return "titlebar"
	case RegionMinimize:
		return "minimize"
	case RegionMaximize:
		return "maximize"
	case RegionClose:
		return "close"
	case RegionBody:
		return "body"
	case RegionFrame:
		return "frame"
	default:
		return "none"
	}
}

// Control buttons are three cells each, packed against a one-cell right margin:
// "[_][□][x] ".
const (
	controlWidth  = 3
	controlsWidth = 3*controlWidth + 1
)

// IsControl reports whether the region is one of the title-bar buttons.
func (r Region) IsControl() bool {
	return r == RegionMinimize || r == RegionMaximize || r == RegionClose
}

// HitTest classifies the cell (x, y) relative to a window drawn at r.
func HitTest(r Rect, x, y int) Region {
	if !r.Contains(x, y) {
		return RegionNone
	}
	if y == r.Y {
		if r.Width < MinWidth {
			return RegionTitleBar
		}
		col := x - r.X
		start := r.Width - controlsWidth
		switch {
		case col >= start && col < start+controlWidth:
			return RegionMinimize
		case col >= start+controlWidth && col < start+2*controlWidth:
			return RegionMaximize
		case col >= start+2*controlWidth && col < start+3*controlWidth:
			return RegionClose
		}
		return RegionTitleBar
	}
	if ContentRect(r).Contains(x, y) {
		return RegionBody
	}
	return RegionFrame
}
