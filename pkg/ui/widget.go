package ui

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/Equilibrio22/Vorb/pkg/event"
	"github.com/Equilibrio22/Vorb/pkg/graphics"
)

// Node is the polymorphic capability every widget satisfies. Concrete
// widget types embed Widget and override the drawable and update hooks;
// the base implementations are no-ops or pure geometry.
//
// A type embedding Widget must call SetSelf with itself so the tree
// dispatches overridden methods instead of the base ones.
type Node interface {
	// Base returns the embedded Widget carrying the node's state.
	Base() *Widget
	// AddDrawables registers the node's visual primitives with the
	// renderer. The base widget has none.
	AddDrawables(r Renderer)
	// RemoveDrawables unregisters the node's visual primitives. The base
	// widget has none.
	RemoveDrawables()
	// Update advances active transitions by dt and recurses into
	// children in draw order.
	Update(dt time.Duration)
	// UpdatePosition re-derives the processed position from raw state.
	UpdatePosition()
	// UpdateDimensions re-derives the processed dimensions from raw
	// state, then updates the position.
	UpdateDimensions()
	// Dispose detaches the node and releases its subtree. Idempotent.
	Dispose()
}

// Widget is a node in the retained widget tree.
//
// Geometry is dual-represented: raw values are unit-tagged and
// authoritative, processed values are resolved pixels cached from the
// last resolution pass. Raw setters re-resolve synchronously and cascade
// depth-first through the subtree.
//
// All mutation happens on the owner thread. The single field shared with
// the render pass is the needs-drawable-reload flag, which uses atomic
// access; everything else assumes render reads happen between update
// passes.
type Widget struct {
	name string
	self Node

	parent    *Widget
	children  []Node
	drawOrder []Node
	form      *Form

	rawPosition   Length2
	rawDimensions Length2
	rawMinSize    Length2
	rawMaxSize    Length2
	maxSizeSet    bool

	relativePosition graphics.Offset
	position         graphics.Offset
	dimensions       graphics.Size
	minSize          graphics.Size
	maxSize          graphics.Size

	positionTransition   *Transition2
	dimensionsTransition *Transition2
	minSizeTransition    *Transition2
	maxSizeTransition    *Transition2

	align         Align
	anchor        AnchorStyle
	anchorOffsets graphics.Rect
	docking       DockingOptions
	positionType  PositionType
	style         ControlStyle
	zIndex        int

	renderer            Renderer
	font                *graphics.Font
	needsDrawableReload atomic.Bool

	enabled     bool
	isMouseIn   bool
	isClicking  bool
	disposed    bool
	unsubscribe []func()

	// Public notification events, fired per the mouse handler policy.
	MouseClick event.Event[event.MouseButtonEvent]
	MouseDown  event.Event[event.MouseButtonEvent]
	MouseUp    event.Event[event.MouseButtonEvent]
	MouseEnter event.Event[event.MouseMotionEvent]
	MouseLeave event.Event[event.MouseMotionEvent]
	MouseMove  event.Event[event.MouseMotionEvent]
}

// NewWidget creates a standalone widget with zero geometry.
func NewWidget(name string) *Widget {
	w := &Widget{name: name}
	w.self = w
	return w
}

// NewWidgetAt creates a standalone widget with a pixel destination
// rectangle.
func NewWidgetAt(name string, destRect graphics.Rect) *Widget {
	w := NewWidget(name)
	w.rawPosition = Px2(destRect.Left, destRect.Top)
	w.rawDimensions = Px2(destRect.Width(), destRect.Height())
	w.UpdateDimensions()
	return w
}

// NewChildWidget creates a widget and attaches it to parent. A nil
// parent, or one that rejects the attachment (see AddWidget), yields a
// standalone widget; check Parent when attachment must not fail.
func NewChildWidget(parent Node, name string, destRect graphics.Rect) *Widget {
	w := NewWidgetAt(name, destRect)
	if parent != nil && parent.Base() != nil {
		parent.Base().AddWidget(w)
	}
	return w
}

// SetSelf records the outermost concrete type so overridden Node methods
// dispatch through it. Types embedding Widget call this once after
// construction; NewWidget does it for plain widgets.
func (w *Widget) SetSelf(self Node) {
	w.self = self
}

// Base returns the widget itself. It satisfies Node for embedders.
func (w *Widget) Base() *Widget { return w }

func (w *Widget) node() Node {
	if w.self != nil {
		return w.self
	}
	return w
}

// Name returns the widget's display name. Names need not be unique.
func (w *Widget) Name() string { return w.name }

// Parent returns the widget this one is positioned relative to, or nil
// for a root.
func (w *Widget) Parent() *Widget { return w.parent }

// Font returns the opaque font handle, or nil when unset.
func (w *Widget) Font() *graphics.Font { return w.font }

// SetFont replaces the font handle and schedules a drawable reload.
func (w *Widget) SetFont(f *graphics.Font) {
	w.font = f
	w.needsDrawableReload.Store(true)
}

// Renderer returns the renderer this widget is registered with, or nil.
func (w *Widget) Renderer() Renderer { return w.renderer }

// NeedsDrawableReload reports whether the renderer must rebuild this
// widget's drawables. Safe to call from the render pass.
func (w *Widget) NeedsDrawableReload() bool {
	return w.needsDrawableReload.Load()
}

// SetNeedsDrawableReload sets or clears the reload flag. The renderer
// clears it after rebuilding drawables. Safe to call from the render pass.
func (w *Widget) SetNeedsDrawableReload(v bool) {
	w.needsDrawableReload.Store(v)
}

// AddDrawables registers visual primitives with the renderer. The base
// widget has none; concrete widget types override this.
func (w *Widget) AddDrawables(r Renderer) {}

// RemoveDrawables unregisters visual primitives. The base widget has
// none; concrete widget types override this.
func (w *Widget) RemoveDrawables() {}

// attachRenderer wires the subtree to a renderer, inheriting the parent
// font where a widget has none, and lets each node add its drawables.
func (w *Widget) attachRenderer(r Renderer, inherited *graphics.Font) {
	w.renderer = r
	if w.font == nil {
		w.font = inherited
	}
	w.node().AddDrawables(r)
	for _, c := range w.children {
		c.Base().attachRenderer(r, w.font)
	}
}

// detachRenderer removes the subtree's drawables and clears the linkage.
func (w *Widget) detachRenderer() {
	if w.renderer != nil {
		w.node().RemoveDrawables()
		w.renderer = nil
	}
	for _, c := range w.children {
		c.Base().detachRenderer()
	}
}

// ZIndex returns the explicit draw/update order override.
func (w *Widget) ZIndex() int { return w.zIndex }

// SetZIndex changes the draw/update order override and re-sorts the
// parent's draw order.
func (w *Widget) SetZIndex(z int) {
	if w.zIndex == z {
		return
	}
	w.zIndex = z
	w.needsDrawableReload.Store(true)
	if w.parent != nil {
		w.parent.updateDrawableOrderState()
	}
}

// DrawOrder returns the children sorted by z-index, insertion order
// breaking ties. The renderer reads this during its pass; the slice is
// shared and must not be mutated.
func (w *Widget) DrawOrder() []Node { return w.drawOrder }

// updateDrawableOrderState re-sorts children by z-index (stable, so
// insertion order breaks ties) and tells the renderer the order changed.
func (w *Widget) updateDrawableOrderState() {
	w.drawOrder = make([]Node, len(w.children))
	copy(w.drawOrder, w.children)
	sort.SliceStable(w.drawOrder, func(i, j int) bool {
		return w.drawOrder[i].Base().zIndex < w.drawOrder[j].Base().zIndex
	})
	if w.renderer != nil {
		w.renderer.InvalidateOrder(w.node())
	}
}

// Update advances active transitions by dt and recurses into children in
// draw order. A retired transition has no further effect.
func (w *Widget) Update(dt time.Duration) {
	w.stepTransition(&w.positionTransition, w.applyRawPosition, dt)
	w.stepTransition(&w.dimensionsTransition, w.applyRawDimensions, dt)
	w.stepTransition(&w.minSizeTransition, w.applyRawMinSize, dt)
	w.stepTransition(&w.maxSizeTransition, w.applyRawMaxSize, dt)
	for _, c := range w.drawOrder {
		c.Update(dt)
	}
}

func (w *Widget) stepTransition(tr **Transition2, apply func(Length2), dt time.Duration) {
	t := *tr
	if t == nil {
		return
	}
	t.Advance(dt)
	apply(t.CurrentRaw())
	if t.Done() {
		*tr = nil
	}
}

// SetTargetRawPosition starts an animated move of the raw position over
// the given window. A non-positive window applies the target at once.
// Issuing a new target discards any in-flight position transition.
func (w *Widget) SetTargetRawPosition(target Length2, final time.Duration, tween TweenFunc) {
	if final <= 0 {
		w.SetRawPosition(target)
		return
	}
	initial := w.convertLength2(w.rawPosition, target)
	w.positionTransition = &Transition2{
		RawInitial:       initial,
		RawTarget:        target,
		InitialProcessed: w.processOffset(initial),
		TargetProcessed:  w.processOffset(target),
		Final:            final,
		Tween:            tween,
	}
}

// SetTargetRawDimensions starts an animated resize of the raw dimensions.
func (w *Widget) SetTargetRawDimensions(target Length2, final time.Duration, tween TweenFunc) {
	if final <= 0 {
		w.SetRawDimensions(target)
		return
	}
	initial := w.convertLength2(w.rawDimensions, target)
	w.dimensionsTransition = &Transition2{
		RawInitial:       initial,
		RawTarget:        target,
		InitialProcessed: w.processOffset(initial),
		TargetProcessed:  w.processOffset(target),
		Final:            final,
		Tween:            tween,
	}
}

// SetTargetRawMinSize starts an animated change of the raw minimum size.
func (w *Widget) SetTargetRawMinSize(target Length2, final time.Duration, tween TweenFunc) {
	if final <= 0 {
		w.SetRawMinSize(target)
		return
	}
	initial := w.convertLength2(w.rawMinSize, target)
	w.minSizeTransition = &Transition2{
		RawInitial:       initial,
		RawTarget:        target,
		InitialProcessed: w.processOffset(initial),
		TargetProcessed:  w.processOffset(target),
		Final:            final,
		Tween:            tween,
	}
}

// SetTargetRawMaxSize starts an animated change of the raw maximum size.
func (w *Widget) SetTargetRawMaxSize(target Length2, final time.Duration, tween TweenFunc) {
	if final <= 0 {
		w.SetRawMaxSize(target)
		return
	}
	initial := w.rawMaxSize
	if !w.maxSizeSet {
		initial = target
	}
	initial = w.convertLength2(initial, target)
	w.maxSizeSet = true
	w.maxSizeTransition = &Transition2{
		RawInitial:       initial,
		RawTarget:        target,
		InitialProcessed: w.processOffset(initial),
		TargetProcessed:  w.processOffset(target),
		Final:            final,
		Tween:            tween,
	}
}

// Dispose detaches the widget from its parent, removes its drawables,
// disposes the whole subtree and clears all references. It is idempotent
// and discards in-flight transitions without waiting for them.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	w.disposed = true

	w.Disable()
	w.node().RemoveDrawables()
	if w.parent != nil {
		w.parent.detachChild(w.node())
		w.parent = nil
	}

	children := w.children
	w.children = nil
	w.drawOrder = nil
	for _, c := range children {
		c.Base().parent = nil
		c.Dispose()
	}

	w.renderer = nil
	w.font = nil
	w.form = nil
	w.positionTransition = nil
	w.dimensionsTransition = nil
	w.minSizeTransition = nil
	w.maxSizeTransition = nil
}
