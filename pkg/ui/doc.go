// Package ui implements the retained-mode widget layout and hierarchy
// core: unit-tagged geometry, parent/child composition, anchoring,
// docking, z-order, animated raw-value transitions, and mouse
// interaction dispatch.
//
// # Geometry model
//
// Every geometry field is dual-represented. The raw value is what the
// caller specified, tagged with its [Unit]; the processed value is the
// resolved pixel result, cached on the widget. Raw setters re-resolve
// synchronously: [Widget.UpdateDimensions] recomputes the clamped size,
// triggers [Widget.UpdatePosition] for docking, alignment and anchor
// adjustments, and the cascade recurses depth-first through the subtree.
//
// Resolution precedence on conflicts is deterministic, never an error:
// docking overrides position and dimensions, anchored edges override
// alignment on the affected axis, and the min clamp wins over max.
//
// # Roots
//
// A tree is rooted either in a [Form], whose viewport supplies the
// percentage basis for root-level units, or in a bare [Widget], where
// percentage units resolve against a zero extent until the widget is
// attached to something.
//
// # Animation
//
// SetTargetRaw* setters install a [Transition] window; [Widget.Update]
// advances it, re-deriving the raw value each tick through the tween and
// re-resolving the subtree. A finished transition is inert and a new
// target replaces an in-flight one wholesale.
//
// # Threads
//
// One owner goroutine mutates the tree and pumps input. The render pass
// may concurrently read the needs-drawable-reload flag, which is atomic;
// all other reads are assumed to happen between update passes.
package ui
