package ui

import (
	"math"

	"github.com/Equilibrio22/Vorb/pkg/graphics"
)

type axis int

const (
	axisX axis = iota
	axisY
)

// parentExtent returns the percentage basis for this widget on the given
// axis: the parent's processed extent, the form viewport for a root
// attached to a form, and zero for a fully detached root.
func (w *Widget) parentExtent(ax axis) float64 {
	if w.parent != nil {
		if ax == axisX {
			return w.parent.dimensions.Width
		}
		return w.parent.dimensions.Height
	}
	return w.formExtent(ax)
}

func (w *Widget) formExtent(ax axis) float64 {
	if w.form == nil {
		return 0
	}
	if ax == axisX {
		return w.form.viewport.Width
	}
	return w.form.viewport.Height
}

// processLength resolves a unit-tagged scalar into pixels. Pixel values
// pass through; Percent resolves against the parent extent on the same
// axis; the form units resolve against the viewport regardless of axis.
func (w *Widget) processLength(l Length, ax axis) float64 {
	switch l.Unit {
	case Percent:
		return w.parentExtent(ax) * l.Value / 100
	case FormWidthPercent:
		return w.formExtent(axisX) * l.Value / 100
	case FormHeightPercent:
		return w.formExtent(axisY) * l.Value / 100
	default:
		return l.Value
	}
}

func (w *Widget) processOffset(l Length2) graphics.Offset {
	return graphics.Offset{
		X: w.processLength(l.X, axisX),
		Y: w.processLength(l.Y, axisY),
	}
}

func (w *Widget) processSize(l Length2) graphics.Size {
	return graphics.Size{
		Width:  w.processLength(l.X, axisX),
		Height: w.processLength(l.Y, axisY),
	}
}

// convertLength re-expresses a length in another unit so that its
// processed value is unchanged under the current parent extents. A zero
// extent converts to a zero value.
func (w *Widget) convertLength(l Length, unit Unit, ax axis) Length {
	if l.Unit == unit {
		return l
	}
	processed := w.processLength(l, ax)
	switch unit {
	case Percent:
		if extent := w.parentExtent(ax); extent != 0 {
			return Length{Value: processed / extent * 100, Unit: Percent}
		}
		return Length{Unit: Percent}
	case FormWidthPercent:
		if extent := w.formExtent(axisX); extent != 0 {
			return Length{Value: processed / extent * 100, Unit: FormWidthPercent}
		}
		return Length{Unit: FormWidthPercent}
	case FormHeightPercent:
		if extent := w.formExtent(axisY); extent != 0 {
			return Length{Value: processed / extent * 100, Unit: FormHeightPercent}
		}
		return Length{Unit: FormHeightPercent}
	default:
		return Length{Value: processed, Unit: Pixel}
	}
}

// convertLength2 re-expresses a pair in the units of the target pair.
func (w *Widget) convertLength2(l, target Length2) Length2 {
	return Length2{
		X: w.convertLength(l.X, target.X.Unit, axisX),
		Y: w.convertLength(l.Y, target.Y.Unit, axisY),
	}
}

// Raw geometry accessors.

func (w *Widget) RawPosition() Length2   { return w.rawPosition }
func (w *Widget) RawDimensions() Length2 { return w.rawDimensions }
func (w *Widget) RawMinSize() Length2    { return w.rawMinSize }

// RawMaxSize returns the raw maximum size and whether one was ever set.
func (w *Widget) RawMaxSize() (Length2, bool) { return w.rawMaxSize, w.maxSizeSet }

// Processed geometry accessors.

// Position returns the processed position in viewport coordinates.
func (w *Widget) Position() graphics.Offset { return w.position }

// RelativePosition returns the processed position relative to the parent
// content origin.
func (w *Widget) RelativePosition() graphics.Offset { return w.relativePosition }

// Dimensions returns the processed, min/max-clamped size.
func (w *Widget) Dimensions() graphics.Size { return w.dimensions }

// MinSize returns the processed minimum size.
func (w *Widget) MinSize() graphics.Size { return w.minSize }

// MaxSize returns the processed maximum size; both components are +Inf
// while no maximum has been set.
func (w *Widget) MaxSize() graphics.Size { return w.maxSize }

func (w *Widget) X() float64      { return w.position.X }
func (w *Widget) Y() float64      { return w.position.Y }
func (w *Widget) Width() float64  { return w.dimensions.Width }
func (w *Widget) Height() float64 { return w.dimensions.Height }

// SetRawPosition replaces the raw position, discarding any in-flight
// position transition, and re-resolves the subtree.
func (w *Widget) SetRawPosition(p Length2) {
	w.positionTransition = nil
	w.applyRawPosition(p)
}

// SetRawDimensions replaces the raw dimensions, discarding any in-flight
// dimension transition, and re-resolves the subtree.
func (w *Widget) SetRawDimensions(d Length2) {
	w.dimensionsTransition = nil
	w.applyRawDimensions(d)
}

// SetRawMinSize replaces the raw minimum size and re-resolves the subtree.
func (w *Widget) SetRawMinSize(m Length2) {
	w.minSizeTransition = nil
	w.applyRawMinSize(m)
}

// SetRawMaxSize replaces the raw maximum size and re-resolves the subtree.
func (w *Widget) SetRawMaxSize(m Length2) {
	w.maxSizeTransition = nil
	w.applyRawMaxSize(m)
}

// SetDestRect sets pixel position and dimensions in one call.
func (w *Widget) SetDestRect(destRect graphics.Rect) {
	w.positionTransition = nil
	w.dimensionsTransition = nil
	w.rawPosition = Px2(destRect.Left, destRect.Top)
	w.applyRawDimensions(Px2(destRect.Width(), destRect.Height()))
}

func (w *Widget) applyRawPosition(p Length2) {
	w.rawPosition = p
	w.needsDrawableReload.Store(true)
	if w.anchorActive() {
		w.captureAnchorOffsets()
	}
	w.node().UpdateDimensions()
}

func (w *Widget) applyRawDimensions(d Length2) {
	w.rawDimensions = d
	w.needsDrawableReload.Store(true)
	if w.anchorActive() {
		w.captureAnchorOffsets()
	}
	w.node().UpdateDimensions()
}

func (w *Widget) applyRawMinSize(m Length2) {
	w.rawMinSize = m
	w.needsDrawableReload.Store(true)
	w.node().UpdateDimensions()
}

func (w *Widget) applyRawMaxSize(m Length2) {
	w.rawMaxSize = m
	w.maxSizeSet = true
	w.needsDrawableReload.Store(true)
	w.node().UpdateDimensions()
}

// Align returns the 9-way alignment.
func (w *Widget) Align() Align { return w.align }

// SetAlign changes the alignment and re-resolves the subtree.
func (w *Widget) SetAlign(a Align) {
	w.align = a
	w.needsDrawableReload.Store(true)
	if w.anchorActive() {
		w.captureAnchorOffsets()
	}
	w.node().UpdateDimensions()
}

// Anchor returns the anchor flags.
func (w *Widget) Anchor() AnchorStyle { return w.anchor }

// SetAnchor changes the anchor flags. Edge distances are captured from
// the raw-resolved geometry against the parent's current extents; later
// parent resizes keep the anchored edges at those distances.
func (w *Widget) SetAnchor(a AnchorStyle) {
	w.anchor = a
	w.captureAnchorOffsets()
	w.node().UpdateDimensions()
}

// PositionType returns how raw positions are interpreted.
func (w *Widget) PositionType() PositionType { return w.positionType }

// SetPositionType changes the position interpretation and re-resolves
// the subtree.
func (w *Widget) SetPositionType(p PositionType) {
	w.positionType = p
	w.needsDrawableReload.Store(true)
	w.node().UpdateDimensions()
}

// Style returns the control style flags.
func (w *Widget) Style() ControlStyle { return w.style }

// SetStyle replaces the control style flags and re-resolves the subtree;
// the fixed-extent flags gate anchor stretching.
func (w *Widget) SetStyle(s ControlStyle) {
	w.style = s
	w.needsDrawableReload.Store(true)
	w.node().UpdateDimensions()
}

// Docking returns the docking options.
func (w *Widget) Docking() DockingOptions { return w.docking }

// SetDockingOptions changes how this widget docks into its parent.
// Dock layout stacks siblings, so the parent subtree re-resolves.
func (w *Widget) SetDockingOptions(o DockingOptions) {
	w.docking = o
	w.needsDrawableReload.Store(true)
	if w.parent != nil {
		w.parent.node().UpdateDimensions()
		return
	}
	w.node().UpdateDimensions()
}

// SetDockingStyle changes the dock style, keeping the dock size.
func (w *Widget) SetDockingStyle(s DockStyle) {
	w.SetDockingOptions(DockingOptions{Style: s, Size: w.docking.Size})
}

func (w *Widget) anchorActive() bool {
	return w.anchor.Left || w.anchor.Right || w.anchor.Top || w.anchor.Bottom
}

// captureAnchorOffsets snapshots the distances between this widget's
// edges and the parent's edges, using raw-resolved geometry so anchor
// stretching never feeds back into its own basis.
func (w *Widget) captureAnchorOffsets() {
	if w.parent == nil {
		w.anchorOffsets = graphics.Rect{}
		return
	}
	dims := w.processSize(w.rawDimensions)
	rel := w.processOffset(w.rawPosition).Add(w.align.offset(w.parent.dimensions, dims))
	p := w.parent.dimensions
	w.anchorOffsets = graphics.Rect{
		Left:   rel.X,
		Top:    rel.Y,
		Right:  p.Width - (rel.X + dims.Width),
		Bottom: p.Height - (rel.Y + dims.Height),
	}
}

// UpdateDimensions re-resolves dimensions from raw state: docking first,
// otherwise raw extents with opposite-edge anchor stretching, then the
// min/max clamp (min wins over max). A widget whose processed size
// changes schedules a drawable reload, so cascades flag descendants the
// raw setters never touched. Triggers UpdatePosition, which cascades
// through the subtree.
func (w *Widget) UpdateDimensions() {
	prev := w.dimensions
	dims := w.processSize(w.rawDimensions)

	if rect, docked := w.dockRect(); docked {
		dims = rect.Size()
	} else if w.parent != nil {
		if w.anchor.Left && w.anchor.Right && !w.style.FixedWidth {
			dims.Width = w.parent.dimensions.Width - w.anchorOffsets.Left - w.anchorOffsets.Right
		}
		if w.anchor.Top && w.anchor.Bottom && !w.style.FixedHeight {
			dims.Height = w.parent.dimensions.Height - w.anchorOffsets.Top - w.anchorOffsets.Bottom
		}
	}

	w.minSize = w.processSize(w.rawMinSize)
	if w.maxSizeSet {
		w.maxSize = w.processSize(w.rawMaxSize)
	} else {
		w.maxSize = graphics.Size{Width: math.Inf(1), Height: math.Inf(1)}
	}
	w.dimensions = dims.Clamp(w.minSize, w.maxSize)
	if w.dimensions != prev {
		w.needsDrawableReload.Store(true)
	}

	w.node().UpdatePosition()
}

// UpdatePosition re-resolves the processed position: dock rectangle if
// docked, otherwise raw position plus alignment, with anchored edges
// overriding the affected axis. A widget whose processed position changes
// schedules a drawable reload. Cascades into children.
func (w *Widget) UpdatePosition() {
	prevRel, prevPos := w.relativePosition, w.position
	var parentPos graphics.Offset
	if w.parent != nil {
		parentPos = w.parent.position
	}

	if rect, docked := w.dockRect(); docked {
		w.relativePosition = rect.Origin()
		w.position = parentPos.Add(w.relativePosition)
	} else {
		rel := w.processOffset(w.rawPosition)
		switch w.positionType {
		case PositionAbsolute, PositionFixed:
			// Viewport-origin positioning ignores the parent chain.
			w.relativePosition = rel
			w.position = rel
		default:
			if w.parent != nil {
				rel = rel.Add(w.align.offset(w.parent.dimensions, w.dimensions))
				if w.anchor.Left && w.anchor.Right {
					rel.X = w.anchorOffsets.Left
				} else if w.anchor.Right {
					rel.X = w.parent.dimensions.Width - w.anchorOffsets.Right - w.dimensions.Width
				}
				if w.anchor.Top && w.anchor.Bottom {
					rel.Y = w.anchorOffsets.Top
				} else if w.anchor.Bottom {
					rel.Y = w.parent.dimensions.Height - w.anchorOffsets.Bottom - w.dimensions.Height
				}
			}
			w.relativePosition = rel
			w.position = parentPos.Add(rel)
		}
	}

	if w.relativePosition != prevRel || w.position != prevPos {
		w.needsDrawableReload.Store(true)
	}

	for _, c := range w.children {
		c.UpdateDimensions()
	}
}
