// Package event provides the publish/subscribe primitive the widget core
// is built on, together with the mouse event payloads and the ambient
// input dispatcher widgets subscribe to.
package event

// Event is a synchronous broadcast of T payloads.
//
// Listeners run in subscription order on the caller's goroutine. The zero
// value is ready to use. Event is not safe for concurrent mutation; the
// widget core drives all subscription and firing from its owner thread.
type Event[T any] struct {
	listeners []listener[T]
	nextID    int
}

type listener[T any] struct {
	id int
	fn func(sender any, payload T)
}

// Subscribe registers a listener and returns its unsubscribe function.
// Unsubscribing twice is a no-op.
func (e *Event[T]) Subscribe(fn func(sender any, payload T)) func() {
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: id, fn: fn})
	return func() {
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Fire invokes every listener with the sender and payload.
func (e *Event[T]) Fire(sender any, payload T) {
	// Snapshot so listeners can unsubscribe themselves mid-fire.
	snapshot := make([]listener[T], len(e.listeners))
	copy(snapshot, e.listeners)
	for _, l := range snapshot {
		l.fn(sender, payload)
	}
}

// Len returns the number of subscribed listeners.
func (e *Event[T]) Len() int {
	return len(e.listeners)
}
