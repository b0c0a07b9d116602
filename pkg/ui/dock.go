package ui

import "github.com/Equilibrio22/Vorb/pkg/graphics"

// Docking resolver. Edge-docked children consume slices of the parent's
// space in insertion order; Fill children take whatever remains after
// every edge dock in the sibling list has been resolved. Dock sizes that
// exceed the remaining space are clamped to it, so overfull layouts
// degrade to zero-extent slices instead of inverting.

// dockRect returns this widget's parent-relative dock rectangle, or
// false when the widget is not docked or has no parent.
func (w *Widget) dockRect() (graphics.Rect, bool) {
	if w.docking.Style == DockNone || w.parent == nil {
		return graphics.Rect{}, false
	}
	return w.parent.dockRectFor(w)
}

// dockRectFor resolves the rectangle a docked child occupies, relative
// to this widget's origin.
func (w *Widget) dockRectFor(target *Widget) (graphics.Rect, bool) {
	remaining := graphics.RectFromLTWH(0, 0, w.dimensions.Width, w.dimensions.Height)
	var targetRect graphics.Rect
	found := false

	for _, n := range w.children {
		c := n.Base()
		if c.docking.Style == DockNone || c.docking.Style == DockFill {
			continue
		}
		rect := consumeDockSlice(&remaining, c.docking.Style, c.processDockSize())
		if c == target {
			targetRect = rect
			found = true
		}
	}

	if !found && target.docking.Style == DockFill {
		targetRect = remaining
		found = true
	}
	return targetRect, found
}

// consumeDockSlice carves a slice off the remaining rectangle along the
// docked edge and returns it.
func consumeDockSlice(remaining *graphics.Rect, style DockStyle, size float64) graphics.Rect {
	if size < 0 {
		size = 0
	}
	var rect graphics.Rect
	switch style {
	case DockLeft:
		size = min(size, remaining.Width())
		rect = graphics.Rect{Left: remaining.Left, Top: remaining.Top, Right: remaining.Left + size, Bottom: remaining.Bottom}
		remaining.Left += size
	case DockRight:
		size = min(size, remaining.Width())
		rect = graphics.Rect{Left: remaining.Right - size, Top: remaining.Top, Right: remaining.Right, Bottom: remaining.Bottom}
		remaining.Right -= size
	case DockTop:
		size = min(size, remaining.Height())
		rect = graphics.Rect{Left: remaining.Left, Top: remaining.Top, Right: remaining.Right, Bottom: remaining.Top + size}
		remaining.Top += size
	case DockBottom:
		size = min(size, remaining.Height())
		rect = graphics.Rect{Left: remaining.Left, Top: remaining.Bottom - size, Right: remaining.Right, Bottom: remaining.Bottom}
		remaining.Bottom -= size
	}
	return rect
}

// processDockSize resolves the dock size against the parent extent along
// the docked axis.
func (w *Widget) processDockSize() float64 {
	switch w.docking.Style {
	case DockLeft, DockRight:
		return w.processLength(w.docking.Size, axisX)
	case DockTop, DockBottom:
		return w.processLength(w.docking.Size, axisY)
	default:
		return 0
	}
}
