package planner

import (
	"slices"
	"sync"
)

type Topic string

const (
	TopicAll         Topic = "all"
	TopicAssignments Topic = "assignments"
	TopicClasses     Topic = "classes"
	TopicNotes       Topic = "notes"
	TopicProfile     Topic = "profile"
	TopicStats       Topic = "stats"
)

type Op string

const (
	OpAdded     Op = "added"
	OpUpdated   Op = "updated"
	OpDeleted   Op = "deleted"
	OpLoaded    Op = "loaded"
	OpRefreshed Op = "refreshed"
)

// Event describes one change to the store. Stats holds the stats computed right after it.
type Event struct {
	Topic Topic
	Op    Op
	ID    string // empty for profile, load and refresh events
	Stats Stats
}

// Listener is called synchronously, after the store lock is released,
// so it may read from the store.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

type subscribers struct {
	mu     sync.Mutex
	nextID int
	list   []subscription
}

// Subscribe registers fn for every subsequent change and returns a func that removes it.
// Calling the returned func more than once is harmless.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (subs *subscribers) add(fn Listener) func() {
	subs.mu.Lock()
	subs.nextID++
	id := subs.nextID
	subs.list = append(subs.list, subscription{id: id, fn: fn})
	subs.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { subs.remove(id) })
	}
}

func (subs *subscribers) remove(id int) {
	subs.mu.Lock()
	defer subs.mu.Unlock()
	subs.list = slices.DeleteFunc(subs.list, func(sub subscription) bool { return sub.id == id })
}

func (subs *subscribers) publish(evt Event) {
	subs.mu.Lock()
	list := slices.Clone(subs.list)
	subs.mu.Unlock()

	for _, sub := range list {
		sub.fn(evt)
	}
}
