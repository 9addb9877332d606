package pickr

import (
	"fmt"
	"strings"
)

// Alignment selects where the popup opens horizontally relative to its
// anchor.
type Alignment uint8

const (
	// AlignMiddle centers the popup under the anchor. It is the default.
	AlignMiddle Alignment = iota
	// AlignLeft extends the popup to the left; right edges line up.
	AlignLeft
	// AlignRight extends the popup to the right; left edges line up.
	AlignRight
)

// String returns the lowercase alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	}
	return fmt.Sprintf("Alignment(%d)", uint8(a))
}

// ParseAlignment parses "left", "middle" or "right", ignoring case.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "middle", "":
		return AlignMiddle, nil
	case "left":
		return AlignLeft, nil
	case "right":
		return AlignRight, nil
	}
	return AlignMiddle, fmt.Errorf("%w: unknown alignment %q", ErrInvalidOption, s)
}

// popupGap is the distance between anchor and popup.
const popupGap = 5

// Offset positions the popup relative to its default anchored position.
// Margin is only set when the popup is appended to the document root; it
// carries the anchor's viewport position.
type Offset struct {
	Top, Left float64
	Margin    Point
}

// Placement holds everything Place needs. All rectangles are in viewport
// coordinates; Popup is measured at the Current offset.
type Placement struct {
	Anchor       Rect
	Popup        Rect
	Current      Offset
	Viewport     Size
	Align        Alignment
	AppendToBody bool
}

// Place computes the popup offset that keeps it inside the viewport.
//
// Vertically the popup flips above the anchor when its bottom would leave
// the viewport, drops below the anchor when there is room, and otherwise
// keeps its current top so it does not oscillate.
//
// Horizontally the requested alignment is used unless it would push the
// popup past the left edge (then it opens to the right) or past the right
// edge (then it opens to the left). A popup wider than the viewport, or an
// anchor crowded by both edges, may still overflow.
func Place(in Placement) Offset {
	out := in.Current
	popup := in.Popup

	if in.AppendToBody {
		out.Margin = Pt(in.Anchor.X, in.Anchor.Y)
		popup = popup.Offset(out.Margin.Sub(in.Current.Margin))
	}

	switch {
	case popup.Bottom() > in.Viewport.H:
		out.Top = -popup.H - popupGap
	case in.Anchor.Bottom()+popup.H < in.Viewport.H:
		out.Top = in.Anchor.H + popupGap
	}

	// Left edge of the popup at Left == 0.
	base := popup.X - in.Current.Left
	left := alignedLeft(in.Align, in.Anchor.W, popup.W)
	switch {
	case base+left < 0:
		left = alignedLeft(AlignRight, in.Anchor.W, popup.W)
	case base+left+popup.W > in.Viewport.W:
		left = alignedLeft(AlignLeft, in.Anchor.W, popup.W)
	}
	out.Left = left

	return out
}

func alignedLeft(a Alignment, anchorW, popupW float64) float64 {
	switch a {
	case AlignLeft:
		return -popupW + anchorW
	case AlignRight:
		return 0
	default:
		return -popupW/2 + anchorW/2
	}
}
