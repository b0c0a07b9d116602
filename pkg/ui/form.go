package ui

import (
	"github.com/Equilibrio22/Vorb/pkg/event"
	"github.com/Equilibrio22/Vorb/pkg/graphics"
)

// Form is the root of a widget tree. It owns the viewport extents that
// root-level percentage units resolve against, the mouse dispatcher its
// subtree binds to, and the renderer registration entry point.
type Form struct {
	Widget
	viewport   graphics.Size
	dispatcher *event.MouseDispatcher
}

// NewForm creates a form covering the given viewport.
func NewForm(name string, viewport graphics.Size) *Form {
	f := &Form{
		viewport:   viewport,
		dispatcher: event.NewMouseDispatcher(),
	}
	f.Widget.name = name
	f.Widget.self = f
	f.Widget.form = f
	f.Widget.rawDimensions = Px2(viewport.Width, viewport.Height)
	f.UpdateDimensions()
	return f
}

// Viewport returns the form's viewport extents.
func (f *Form) Viewport() graphics.Size { return f.viewport }

// SetViewport resizes the form and re-resolves the whole tree.
func (f *Form) SetViewport(viewport graphics.Size) {
	f.viewport = viewport
	f.SetRawDimensions(Px2(viewport.Width, viewport.Height))
}

// Dispatcher returns the ambient input source for this form's subtree.
// The input backend pumps raw mouse events into it.
func (f *Form) Dispatcher() *event.MouseDispatcher { return f.dispatcher }

// SetRenderer registers the whole tree with a renderer: every widget
// gets its AddDrawables hook invoked and becomes drawable.
func (f *Form) SetRenderer(r Renderer) {
	f.attachRenderer(r, f.font)
}

// NewWidget creates a widget attached directly to the form.
func (f *Form) NewWidget(name string, destRect graphics.Rect) *Widget {
	w := NewWidgetAt(name, destRect)
	f.AddWidget(w)
	return w
}
