package event

import (
	"testing"

	"github.com/Equilibrio22/Vorb/pkg/verrors"
)

type captureHandler struct {
	errs []*verrors.Error
}

func (h *captureHandler) Handle(e *verrors.Error) { h.errs = append(h.errs, e) }

func TestDispatcherBroadcasts(t *testing.T) {
	d := NewMouseDispatcher()
	var downs, ups, moves int

	d.ButtonDown.Subscribe(func(any, MouseButtonEvent) { downs++ })
	d.ButtonUp.Subscribe(func(any, MouseButtonEvent) { ups++ })
	d.Motion.Subscribe(func(any, MouseMotionEvent) { moves++ })

	d.DispatchButtonDown(MouseButtonEvent{})
	d.DispatchButtonUp(MouseButtonEvent{})
	d.DispatchMotion(MouseMotionEvent{})
	d.DispatchMotion(MouseMotionEvent{})

	if downs != 1 || ups != 1 || moves != 2 {
		t.Fatalf("expected 1/1/2 dispatches, got %d/%d/%d", downs, ups, moves)
	}
}

func TestDispatcherRecoversListenerPanic(t *testing.T) {
	d := NewMouseDispatcher()
	h := &captureHandler{}
	d.SetErrorHandler(h)

	unsub := d.Motion.Subscribe(func(any, MouseMotionEvent) { panic("bad listener") })
	d.DispatchMotion(MouseMotionEvent{})
	unsub()

	if len(h.errs) != 1 {
		t.Fatalf("expected 1 recovered panic, got %d", len(h.errs))
	}
	if h.errs[0].Kind != verrors.KindPanic {
		t.Fatalf("expected KindPanic, got %v", h.errs[0].Kind)
	}

	// The dispatcher must stay usable after a recovered panic.
	moves := 0
	d.Motion.Subscribe(func(any, MouseMotionEvent) { moves++ })
	d.DispatchMotion(MouseMotionEvent{})
	if moves != 1 {
		t.Fatal("expected dispatch to keep working after a recovered panic")
	}
}
