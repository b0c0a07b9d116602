package event

import "fmt"

// MouseButton identifies a pointer button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2
)

// String returns a human-readable representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonMiddle:
		return "middle"
	case MouseButtonRight:
		return "right"
	case MouseButtonX1:
		return "x1"
	case MouseButtonX2:
		return "x2"
	default:
		return fmt.Sprintf("MouseButton(%d)", int(b))
	}
}

// MouseEvent carries the pointer position shared by all mouse payloads.
type MouseEvent struct {
	X float64
	Y float64
}

// MouseButtonEvent is the payload for button press and release events.
type MouseButtonEvent struct {
	MouseEvent
	Button MouseButton
	// Clicks counts consecutive presses (2 for a double click).
	Clicks int
}

// MouseMotionEvent is the payload for pointer motion events.
type MouseMotionEvent struct {
	MouseEvent
	// DX and DY are the motion deltas since the previous event.
	DX float64
	DY float64
}
