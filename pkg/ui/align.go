package ui

import (
	"fmt"

	"github.com/Equilibrio22/Vorb/pkg/graphics"
)

// Align places a widget within its parent on a 3x3 grid. The alignment
// offset is added after raw position resolution, so a non-zero raw
// position acts as an offset from the aligned slot.
type Align int

const (
	AlignTopLeft Align = iota
	AlignTopCenter
	AlignTopRight
	AlignCenterLeft
	AlignCenter
	AlignCenterRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

var alignNames = map[Align]string{
	AlignTopLeft:      "top-left",
	AlignTopCenter:    "top-center",
	AlignTopRight:     "top-right",
	AlignCenterLeft:   "center-left",
	AlignCenter:       "center",
	AlignCenterRight:  "center-right",
	AlignBottomLeft:   "bottom-left",
	AlignBottomCenter: "bottom-center",
	AlignBottomRight:  "bottom-right",
}

// String returns the hyphenated name of the alignment.
func (a Align) String() string {
	if name, ok := alignNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Align(%d)", int(a))
}

// offset returns the shift that places a widget of the given size inside
// a parent of the given size.
func (a Align) offset(parent, own graphics.Size) graphics.Offset {
	var out graphics.Offset
	switch a {
	case AlignTopCenter, AlignCenter, AlignBottomCenter:
		out.X = (parent.Width - own.Width) / 2
	case AlignTopRight, AlignCenterRight, AlignBottomRight:
		out.X = parent.Width - own.Width
	}
	switch a {
	case AlignCenterLeft, AlignCenter, AlignCenterRight:
		out.Y = (parent.Height - own.Height) / 2
	case AlignBottomLeft, AlignBottomCenter, AlignBottomRight:
		out.Y = parent.Height - own.Height
	}
	return out
}

// AnchorStyle selects the parent edges a widget tracks when the parent
// resizes. Opposite flags together stretch the widget between both edges.
type AnchorStyle struct {
	Left   bool
	Right  bool
	Top    bool
	Bottom bool
}

// ControlStyle carries per-control styling flags.
type ControlStyle struct {
	// FixedWidth exempts the width from anchor stretching.
	FixedWidth bool
	// FixedHeight exempts the height from anchor stretching.
	FixedHeight bool
	// Selectable marks the control as focusable.
	Selectable bool
}

// PositionType selects the origin raw positions resolve against.
type PositionType int

const (
	// PositionStatic positions relative to the parent content origin.
	PositionStatic PositionType = iota
	// PositionRelative positions relative to the parent content origin.
	// It is kept distinct from PositionStatic for styling round-trips.
	PositionRelative
	// PositionAbsolute positions relative to the form viewport origin,
	// ignoring the parent chain.
	PositionAbsolute
	// PositionFixed behaves like PositionAbsolute. This core has no
	// ancestor scrolling, so there is nothing further to ignore.
	PositionFixed
)

// String returns a human-readable representation of the position type.
func (p PositionType) String() string {
	switch p {
	case PositionStatic:
		return "static"
	case PositionRelative:
		return "relative"
	case PositionAbsolute:
		return "absolute"
	case PositionFixed:
		return "fixed"
	default:
		return fmt.Sprintf("PositionType(%d)", int(p))
	}
}

// DockStyle selects the parent edge a docked widget consumes.
type DockStyle int

const (
	DockNone DockStyle = iota
	DockLeft
	DockTop
	DockRight
	DockBottom
	// DockFill consumes all space left after the edge docks.
	DockFill
)

// String returns a human-readable representation of the dock style.
func (d DockStyle) String() string {
	switch d {
	case DockNone:
		return "none"
	case DockLeft:
		return "left"
	case DockTop:
		return "top"
	case DockRight:
		return "right"
	case DockBottom:
		return "bottom"
	case DockFill:
		return "fill"
	default:
		return fmt.Sprintf("DockStyle(%d)", int(d))
	}
}

// DockingOptions describes how a widget docks into its parent. Size is
// the extent consumed along the docked axis and is ignored for DockFill.
type DockingOptions struct {
	Style DockStyle
	Size  Length
}
