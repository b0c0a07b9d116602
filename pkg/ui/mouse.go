package ui

import "github.com/Equilibrio22/Vorb/pkg/event"

// Internal mouse handlers, bound to the form's dispatcher while the
// widget is enabled. Every notification carries the widget as sender.
//
// Click policy: a press inside bounds arms the click; the click fires on
// release only if the release is also inside bounds. MouseUp itself fires
// only while the pointer is inside bounds, so a press-in/release-out
// sequence fires neither Up nor Click on this widget.

func (w *Widget) onMouseDown(_ any, e event.MouseButtonEvent) {
	if !w.InBounds(e.X, e.Y) {
		return
	}
	w.isClicking = true
	w.MouseDown.Fire(w.node(), e)
}

func (w *Widget) onMouseUp(_ any, e event.MouseButtonEvent) {
	if w.InBounds(e.X, e.Y) {
		w.MouseUp.Fire(w.node(), e)
		if w.isClicking {
			w.MouseClick.Fire(w.node(), e)
		}
	}
	w.isClicking = false
}

func (w *Widget) onMouseMove(_ any, e event.MouseMotionEvent) {
	if w.InBounds(e.X, e.Y) {
		if !w.isMouseIn {
			w.isMouseIn = true
			w.MouseEnter.Fire(w.node(), e)
		}
		w.MouseMove.Fire(w.node(), e)
		return
	}
	if w.isMouseIn {
		w.isMouseIn = false
		w.MouseLeave.Fire(w.node(), e)
	}
}
