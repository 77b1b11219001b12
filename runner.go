package tween

import (
	"hash/maphash"
	"reflect"
)

// Runner is the host-supplied tick source. The engine never owns a loop of
// its own: it subscribes to a runner's Tick (and FixedTick, when supported)
// events and advances playing tweens from inside those callbacks.
//
// ObjectID and IDObject map arbitrary objects to integer IDs so tweens can be
// grouped for bulk cancellation. A runner that has no meaningful mapping may
// embed ObjectRegistry.
type Runner interface {
	// UnscaledDeltaTime is the wall time, in seconds, covered by the current tick.
	UnscaledDeltaTime() float64
	// TimeScale multiplies UnscaledDeltaTime for tweens that honor time scale.
	TimeScale() float64
	// ElapsedTickCount is the number of variable ticks fired so far.
	ElapsedTickCount() int64
	// SupportsFixedTick reports whether Events().FixedTick ever fires.
	SupportsFixedTick() bool
	// FixedTickRate is the number of fixed ticks per second.
	FixedTickRate() int
	// Events exposes the runner's lifecycle and tick events.
	Events() *RunnerEvents
	// Kill stops the runner and fires Exit.
	Kill()

	ObjectID(obj any) int
	IDObject(id int) any
}

// RunnerEvents are the hooks a runner fires. Tick and FixedTick receive the
// runner that fired them.
type RunnerEvents struct {
	Start     Event[Runner]
	Tick      Event[Runner]
	FixedTick Event[Runner]
	Exit      Event[Runner]
}

// IDObject resolves id through r and asserts the result to T.
func IDObject[T any](r Runner, id int) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}
	obj, ok := r.IDObject(id).(T)
	return obj, ok
}

// ObjectRegistry hands out sequential IDs (starting at 1) for comparable
// objects and remembers the reverse mapping. Non-comparable objects get their
// IdentityID and cannot be resolved back. The zero value is ready to use.
type ObjectRegistry struct {
	ids  map[any]int
	objs map[int]any
	next int
}

// ObjectID returns the ID for obj, assigning one on first use. A nil obj
// maps to 0.
func (r *ObjectRegistry) ObjectID(obj any) int {
	if obj == nil {
		return 0
	}
	if !reflect.TypeOf(obj).Comparable() {
		return IdentityID(obj)
	}
	if id, ok := r.ids[obj]; ok {
		return id
	}
	if r.ids == nil {
		r.ids = make(map[any]int)
		r.objs = make(map[int]any)
	}
	r.next++
	r.ids[obj] = r.next
	r.objs[r.next] = obj
	return r.next
}

// IDObject returns the object registered under id, or nil.
func (r *ObjectRegistry) IDObject(id int) any {
	return r.objs[id]
}

// Forget drops obj from the registry. Its ID is not reused.
func (r *ObjectRegistry) Forget(obj any) {
	if obj == nil || !reflect.TypeOf(obj).Comparable() {
		return
	}
	if id, ok := r.ids[obj]; ok {
		delete(r.ids, obj)
		delete(r.objs, id)
	}
}

var identitySeed = maphash.MakeSeed()

// IdentityID derives a stable integer from obj's identity: the address for
// reference kinds, a hash of the value for other comparable values, and 0
// for nil or anything else. It is the fallback when no runner is bound.
func IdentityID(obj any) int {
	if obj == nil {
		return 0
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		p := uint64(v.Pointer())
		return int(int32(p ^ p>>32))
	}
	if !v.Comparable() {
		return 0
	}
	h := maphash.Comparable(identitySeed, obj)
	return int(int32(h ^ h>>32))
}
