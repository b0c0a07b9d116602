package ui

import "github.com/Equilibrio22/Vorb/pkg/graphics"

// Container capability: child ownership, bounds tests and interaction
// toggling. Widget and Form share this surface.

// AddWidget makes child a member of this widget's subtree.
//
// It returns false without side effects when child is nil, already has a
// parent, or adding it would create a cycle. Ownership is exclusive: a
// widget has at most one parent at a time, and callers must check the
// result. On success the child inherits the form, renderer and font
// linkage, is appended in insertion order, and the children re-resolve
// so dock stacking accounts for the newcomer.
func (w *Widget) AddWidget(child Node) bool {
	if child == nil || child.Base() == nil {
		return false
	}
	c := child.Base()
	if c == w || c.parent != nil || c.disposed || w.disposed {
		return false
	}
	for a := w; a != nil; a = a.parent {
		if a == c {
			return false
		}
	}

	c.parent = w
	w.children = append(w.children, child)
	c.attachForm(w.form)
	if c.font == nil {
		c.font = w.font
	}
	if w.renderer != nil {
		c.attachRenderer(w.renderer, w.font)
	}
	if c.anchorActive() {
		c.captureAnchorOffsets()
	}
	w.updateDrawableOrderState()
	for _, n := range w.children {
		n.UpdateDimensions()
	}
	return true
}

// RemoveWidget detaches child without disposing it. The child keeps its
// own subtree but loses form, renderer and font inheritance. Returns
// false when child is not a direct child of this widget.
func (w *Widget) RemoveWidget(child Node) bool {
	if child == nil || child.Base() == nil || child.Base().parent != w {
		return false
	}
	c := child.Base()
	w.detachChild(child)
	c.parent = nil
	c.detachRenderer()
	c.attachForm(nil)
	child.UpdateDimensions()
	for _, n := range w.children {
		n.UpdateDimensions()
	}
	return true
}

// detachChild removes child from the children and draw order lists.
func (w *Widget) detachChild(child Node) {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			break
		}
	}
	w.updateDrawableOrderState()
}

// Children returns the direct children in insertion order. The slice is
// shared and must not be mutated.
func (w *Widget) Children() []Node { return w.children }

// attachForm propagates the owning form through the subtree. Widgets
// enabled while detached bind their input handlers as soon as a form
// arrives; detaching from the form unbinds them.
func (w *Widget) attachForm(f *Form) {
	if w.form != nil && f == nil {
		w.unbindInput()
	}
	w.form = f
	if w.enabled {
		w.bindInput()
	}
	for _, c := range w.children {
		c.Base().attachForm(f)
	}
}

// InBounds reports whether the point lies inside the widget's processed
// rectangle. Edges are half-open: [minX, maxX) by [minY, maxY).
func (w *Widget) InBounds(x, y float64) bool {
	r := graphics.RectFromLTWH(w.position.X, w.position.Y, w.dimensions.Width, w.dimensions.Height)
	return r.Contains(x, y)
}

// InBoundsPoint is InBounds for an Offset.
func (w *Widget) InBoundsPoint(p graphics.Offset) bool {
	return w.InBounds(p.X, p.Y)
}

// IsEnabled reports whether the widget's mouse handlers are bound.
func (w *Widget) IsEnabled() bool { return w.enabled }

// IsMouseIn reports whether the pointer is currently over the widget.
func (w *Widget) IsMouseIn() bool { return w.isMouseIn }

// Enable binds this widget's mouse handlers to the ambient input source.
// Idempotent. Geometry and children are unaffected.
func (w *Widget) Enable() {
	if w.enabled || w.disposed {
		return
	}
	w.enabled = true
	w.bindInput()
}

// Disable unbinds the mouse handlers and clears transient interaction
// state. Idempotent. Geometry and children are unaffected.
func (w *Widget) Disable() {
	if !w.enabled {
		return
	}
	w.enabled = false
	w.unbindInput()
	w.isMouseIn = false
	w.isClicking = false
}

func (w *Widget) bindInput() {
	if len(w.unsubscribe) > 0 || w.form == nil {
		return
	}
	d := w.form.dispatcher
	w.unsubscribe = []func(){
		d.ButtonDown.Subscribe(w.onMouseDown),
		d.ButtonUp.Subscribe(w.onMouseUp),
		d.Motion.Subscribe(w.onMouseMove),
	}
}

func (w *Widget) unbindInput() {
	for _, unsub := range w.unsubscribe {
		unsub()
	}
	w.unsubscribe = nil
}
