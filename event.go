package tween

// Event is an ordered list of callbacks invoked with a single argument.
// Handlers run in registration order. Adding or removing handlers from inside
// a handler is safe: the change applies to the next Invoke.
type Event[T any] struct {
	handlers []eventHandler[T]
	nextID   uint32
}

type eventHandler[T any] struct {
	id uint32
	fn func(T)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	remove func(id uint32)
}

// Remove unregisters the callback so it no longer fires. Removing twice is a
// no-op, as is removing through a zero CallbackHandle.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

// Add appends fn to the handler list and returns a handle for removal.
// A nil fn is ignored and yields a zero handle.
func (e *Event[T]) Add(fn func(T)) CallbackHandle {
	if fn == nil {
		return CallbackHandle{}
	}
	e.nextID++
	id := e.nextID

	// Copy-on-write so an in-flight Invoke keeps its own slice.
	next := make([]eventHandler[T], len(e.handlers), len(e.handlers)+1)
	copy(next, e.handlers)
	e.handlers = append(next, eventHandler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: e.remove}
}

// Set replaces every registered handler with fn. Passing nil clears the list.
func (e *Event[T]) Set(fn func(T)) CallbackHandle {
	e.Clear()
	return e.Add(fn)
}

// Clear removes all handlers.
func (e *Event[T]) Clear() {
	e.handlers = nil
}

// Len returns the number of registered handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

// Invoke calls every handler with arg.
func (e *Event[T]) Invoke(arg T) {
	for _, h := range e.handlers {
		h.fn(arg)
	}
}

func (e *Event[T]) remove(id uint32) {
	for i := range e.handlers {
		if e.handlers[i].id == id {
			next := make([]eventHandler[T], 0, len(e.handlers)-1)
			next = append(next, e.handlers[:i]...)
			e.handlers = append(next, e.handlers[i+1:]...)
			return
		}
	}
}
