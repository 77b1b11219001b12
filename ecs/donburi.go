package ecs

import (
	"github.com/phanxgames/tween"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// LifecycleEventType is the Donburi event type for tween lifecycle events.
var LifecycleEventType = events.NewEventType[tween.LifecycleEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Lifecycle
// events are published to LifecycleEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) tween.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event tween.LifecycleEvent) {
	LifecycleEventType.Publish(s.world, event)
}

// Tween is a component holding a tween owned by an entity. Entities whose
// tween has finished can be cleaned up with RemoveFinished.
var Tween = donburi.NewComponentType[TweenData]()

// TweenData is the payload of the Tween component.
type TweenData struct {
	Tween *tween.Tweenable
	// RemoveWhenDone removes the entity once its tween stops.
	RemoveWhenDone bool
}

// AttachTween adds the Tween component to entry, correlating the tween with
// the entity so engine.StopByObject(entry.Entity()) cancels it.
func AttachTween(entry *donburi.Entry, tw *tween.Tweenable, removeWhenDone bool) {
	tw.SetIDObject(entry.Entity())
	if !entry.HasComponent(Tween) {
		entry.AddComponent(Tween)
	}
	Tween.SetValue(entry, TweenData{Tween: tw, RemoveWhenDone: removeWhenDone})
}

var tweenQuery = donburi.NewQuery(filter.Contains(Tween))

// RemoveFinished removes entities whose tween is no longer playing or paused
// and that asked to be removed when done. It returns how many were removed.
func RemoveFinished(world donburi.World) int {
	var done []donburi.Entity
	tweenQuery.Each(world, func(entry *donburi.Entry) {
		data := Tween.Get(entry)
		if data.RemoveWhenDone && data.Tween != nil && data.Tween.HasPlayedOnce() &&
			!data.Tween.IsPlaying() && !data.Tween.IsPaused() {
			done = append(done, entry.Entity())
		}
	})
	for _, e := range done {
		world.Remove(e)
	}
	return len(done)
}
