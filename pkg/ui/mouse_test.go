package ui

import (
	"testing"

	"github.com/Equilibrio22/Vorb/pkg/event"
	"github.com/Equilibrio22/Vorb/pkg/graphics"
)

// eventLog records which notifications a widget fired, in order.
type eventLog struct {
	fired []string
}

func (l *eventLog) watch(w *Widget) {
	w.MouseDown.Subscribe(func(any, event.MouseButtonEvent) { l.fired = append(l.fired, "down") })
	w.MouseUp.Subscribe(func(any, event.MouseButtonEvent) { l.fired = append(l.fired, "up") })
	w.MouseClick.Subscribe(func(any, event.MouseButtonEvent) { l.fired = append(l.fired, "click") })
	w.MouseEnter.Subscribe(func(any, event.MouseMotionEvent) { l.fired = append(l.fired, "enter") })
	w.MouseLeave.Subscribe(func(any, event.MouseMotionEvent) { l.fired = append(l.fired, "leave") })
	w.MouseMove.Subscribe(func(any, event.MouseMotionEvent) { l.fired = append(l.fired, "move") })
}

func (l *eventLog) reset() { l.fired = nil }

func (l *eventLog) equals(want ...string) bool {
	if len(l.fired) != len(want) {
		return false
	}
	for i := range want {
		if l.fired[i] != want[i] {
			return false
		}
	}
	return true
}

func newMouseFixture(t *testing.T) (*Form, *Widget, *eventLog) {
	t.Helper()
	form := NewForm("root", graphics.Size{Width: 100, Height: 100})
	w := form.NewWidget("btn", graphics.RectFromLTWH(10, 10, 20, 20))
	w.Enable()
	log := &eventLog{}
	log.watch(w)
	return form, w, log
}

func motion(x, y float64) event.MouseMotionEvent {
	return event.MouseMotionEvent{MouseEvent: event.MouseEvent{X: x, Y: y}}
}

func button(x, y float64) event.MouseButtonEvent {
	return event.MouseButtonEvent{MouseEvent: event.MouseEvent{X: x, Y: y}, Button: event.MouseButtonLeft}
}

func TestMouseEnterMoveLeave(t *testing.T) {
	form, w, log := newMouseFixture(t)
	d := form.Dispatcher()

	d.DispatchMotion(motion(15, 15))
	if !log.equals("enter", "move") {
		t.Fatalf("expected enter+move, got %v", log.fired)
	}
	if !w.IsMouseIn() {
		t.Fatal("expected isMouseIn set")
	}

	log.reset()
	d.DispatchMotion(motion(20, 20))
	if !log.equals("move") {
		t.Fatalf("expected a bare move while inside, got %v", log.fired)
	}

	log.reset()
	d.DispatchMotion(motion(50, 50))
	if !log.equals("leave") {
		t.Fatalf("expected leave, got %v", log.fired)
	}
	if w.IsMouseIn() {
		t.Fatal("expected isMouseIn cleared")
	}

	log.reset()
	d.DispatchMotion(motion(60, 60))
	if !log.equals() {
		t.Fatalf("expected silence while outside, got %v", log.fired)
	}
}

func TestClickRequiresPressAndReleaseInBounds(t *testing.T) {
	form, _, log := newMouseFixture(t)
	d := form.Dispatcher()

	d.DispatchButtonDown(button(15, 15))
	d.DispatchButtonUp(button(25, 25))
	if !log.equals("down", "up", "click") {
		t.Fatalf("expected down+up+click, got %v", log.fired)
	}
}

func TestPressInReleaseOutFiresNeitherUpNorClick(t *testing.T) {
	form, _, log := newMouseFixture(t)
	d := form.Dispatcher()

	d.DispatchButtonDown(button(15, 15))
	d.DispatchMotion(motion(60, 60))
	d.DispatchButtonUp(button(60, 60))
	if !log.equals("down", "leave") {
		t.Fatalf("expected down+leave only, got %v", log.fired)
	}

	// The armed click must not survive into a later in-bounds release.
	log.reset()
	d.DispatchButtonUp(button(15, 15))
	if !log.equals("up") {
		t.Fatalf("expected a bare up, got %v", log.fired)
	}
}

func TestPressOutReleaseInFiresUpWithoutClick(t *testing.T) {
	form, _, log := newMouseFixture(t)
	d := form.Dispatcher()

	d.DispatchButtonDown(button(60, 60))
	d.DispatchButtonUp(button(15, 15))
	if !log.equals("up") {
		t.Fatalf("expected up without click, got %v", log.fired)
	}
}

func TestDisableStopsEventsAndEnableIsIdempotent(t *testing.T) {
	form, w, log := newMouseFixture(t)
	d := form.Dispatcher()

	w.Enable() // second enable must not double-subscribe
	d.DispatchMotion(motion(15, 15))
	if !log.equals("enter", "move") {
		t.Fatalf("expected single enter+move, got %v", log.fired)
	}

	log.reset()
	w.Disable()
	w.Disable()
	d.DispatchMotion(motion(16, 16))
	d.DispatchButtonDown(button(16, 16))
	if !log.equals() {
		t.Fatalf("expected no events while disabled, got %v", log.fired)
	}

	w.Enable()
	log.reset()
	d.DispatchButtonDown(button(16, 16))
	if !log.equals("down") {
		t.Fatalf("expected events after re-enable, got %v", log.fired)
	}
}

func TestEnableBeforeAttachmentBindsOnAttach(t *testing.T) {
	form := NewForm("root", graphics.Size{Width: 100, Height: 100})
	w := NewWidgetAt("btn", graphics.RectFromLTWH(0, 0, 50, 50))
	w.Enable() // no form yet, nothing to bind to
	log := &eventLog{}
	log.watch(w)

	form.Dispatcher().DispatchButtonDown(button(10, 10))
	if !log.equals() {
		t.Fatal("detached widget must not receive events")
	}

	form.AddWidget(w)
	form.Dispatcher().DispatchButtonDown(button(10, 10))
	if !log.equals("down") {
		t.Fatalf("expected binding on attachment, got %v", log.fired)
	}
}

func TestNotificationCarriesWidgetSender(t *testing.T) {
	form, w, _ := newMouseFixture(t)
	var sender any
	w.MouseDown.Subscribe(func(s any, _ event.MouseButtonEvent) { sender = s })

	form.Dispatcher().DispatchButtonDown(button(15, 15))
	if sender != Node(w) {
		t.Fatalf("expected the widget as sender, got %T", sender)
	}
}
