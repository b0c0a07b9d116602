package event

import "github.com/Equilibrio22/Vorb/pkg/verrors"

// MouseDispatcher is the ambient input source widgets bind their mouse
// handlers to while enabled.
//
// The input backend pumps raw events into the Dispatch methods; widgets
// subscribe to the three broadcast events. A panic escaping a listener is
// recovered, reported through the error handler, and aborts the remaining
// listeners for that one dispatch only.
type MouseDispatcher struct {
	ButtonDown Event[MouseButtonEvent]
	ButtonUp   Event[MouseButtonEvent]
	Motion     Event[MouseMotionEvent]

	errors verrors.Handler
}

// NewMouseDispatcher creates a dispatcher reporting listener panics to stderr.
func NewMouseDispatcher() *MouseDispatcher {
	return &MouseDispatcher{errors: &verrors.LogHandler{}}
}

// SetErrorHandler replaces the destination for recovered listener panics.
// A nil handler restores the stderr default.
func (d *MouseDispatcher) SetErrorHandler(h verrors.Handler) {
	if h == nil {
		h = &verrors.LogHandler{}
	}
	d.errors = h
}

// DispatchButtonDown broadcasts a button press.
func (d *MouseDispatcher) DispatchButtonDown(e MouseButtonEvent) {
	defer verrors.Recover("event.DispatchButtonDown", d.errors)
	d.ButtonDown.Fire(d, e)
}

// DispatchButtonUp broadcasts a button release.
func (d *MouseDispatcher) DispatchButtonUp(e MouseButtonEvent) {
	defer verrors.Recover("event.DispatchButtonUp", d.errors)
	d.ButtonUp.Fire(d, e)
}

// DispatchMotion broadcasts pointer motion.
func (d *MouseDispatcher) DispatchMotion(e MouseMotionEvent) {
	defer verrors.Recover("event.DispatchMotion", d.errors)
	d.Motion.Fire(d, e)
}
