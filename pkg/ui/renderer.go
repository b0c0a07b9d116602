package ui

// DrawFunc is a visual primitive a widget registers with the renderer.
// The renderer invokes it during its own draw pass.
type DrawFunc func()

// Renderer is the external drawing collaborator.
//
// The core never draws. Widgets push their primitives to the renderer
// through AddDrawables/RemoveDrawables, and the renderer pulls draw order
// and the needs-drawable-reload flag from the tree during its pass,
// clearing the flag once drawables are rebuilt.
type Renderer interface {
	// Register adds a draw primitive owned by the widget.
	Register(owner Node, draw DrawFunc)
	// Unregister removes every primitive owned by the widget.
	Unregister(owner Node)
	// InvalidateOrder signals that the draw order of owner's children
	// changed and must be re-read via DrawOrder before the next pass.
	InvalidateOrder(owner Node)
}
