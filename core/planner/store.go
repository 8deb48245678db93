// Package planner holds the student planner domain: assignments, the class schedule,
// notes and the profile, owned by a Store that persists every change write-through
// and derives Stats from the current collections.
package planner

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
)

// Persistence keys, one serialized collection each.
const (
	KeyAssignments = "assignments_data"
	KeySchedule    = "schedule_data"
	KeyNotes       = "notes_data"
	KeyProfile     = "profile_data"
)

// DefaultLimit applies to UpcomingAssignments and RecentNotes when limit <= 0.
const DefaultLimit = 5

var (
	newID   = uuid.NewString // mockable
	nowFunc = time.Now       // mockable
)

type Options struct {
	KV     core.KVStore // nil keeps everything in memory
	Codec  Codec        // defaults to JSONCodec
	Logger core.Logger  // defaults to a no-op logger
	Now    func() time.Time

	// Async moves KVStore writes to a single background writer.
	Async     bool
	QueueSize int

	// Seed starts from the sample collections instead of empty ones;
	// loaded collections still replace them.
	Seed bool
}

type Store struct {
	mu     sync.RWMutex
	kv     core.KVStore
	codec  Codec
	logger core.Logger
	now    func() time.Time
	writer writer
	closed bool
	seeded bool

	assignments []Assignment
	classes     []Class
	notes       []Note
	profile     Profile
	stats       Stats

	subs subscribers
}

func NewStore(opts Options) *Store {
	s := &Store{
		kv:          opts.KV,
		codec:       opts.Codec,
		logger:      opts.Logger,
		now:         opts.Now,
		assignments: []Assignment{},
		classes:     []Class{},
		notes:       []Note{},
		profile:     DefaultProfile(),
	}
	if s.codec == nil {
		s.codec = JSONCodec{}
	}
	if s.logger == nil {
		s.logger = nopLogger{}
	}
	if s.now == nil {
		s.now = nowFunc
	}
	if s.kv != nil {
		if opts.Async {
			s.writer = newAsyncWriter(s.kv, s.logger, opts.QueueSize)
		} else {
			s.writer = &syncWriter{kv: s.kv, logger: s.logger}
		}
	}
	if opts.Seed {
		s.assignments, s.classes, s.notes = SampleData(s.now())
		s.seeded = true
	}
	s.stats = ComputeStats(s.assignments, s.classes, s.notes, s.profile, s.now())
	return s
}

// Load replaces each collection with its persisted value. Missing keys keep the current
// value; read or decode failures are logged and also keep the current value.
// Seeded collections with no persisted value are written once, so their ids stay stable.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	if s.kv != nil {
		loadLocked(ctx, s, KeyAssignments, &s.assignments, s.seeded)
		loadLocked(ctx, s, KeySchedule, &s.classes, s.seeded)
		loadLocked(ctx, s, KeyNotes, &s.notes, s.seeded)
		loadLocked(ctx, s, KeyProfile, &s.profile, false)
		s.assignments = nonNil(s.assignments)
		s.classes = nonNil(s.classes)
		s.notes = nonNil(s.notes)
	}
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicAll, Op: OpLoaded, Stats: stats})
}

// loadLocked decodes key into dst. When the key is missing and persistMissing is set,
// the current value of dst is written instead. Must hold s.mu.
func loadLocked[T any](ctx context.Context, s *Store, key string, dst *T, persistMissing bool) {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		if !core.IsNotFound(err) {
			s.logger.Error("loading collection failed", errors.Wrapf(err, "loading %s", key))
			return
		}
		if persistMissing {
			s.persistLocked(key, *dst)
		}
		return
	}
	var out T
	if err := s.codec.Unmarshal(data, &out); err != nil {
		s.logger.Error("decoding collection failed", errors.Wrapf(err, "decoding %s (%s)", key, s.codec.Name()))
		return
	}
	*dst = out
}

// Close stops persisting and waits for queued writes until ctx is done.
// The KVStore itself is left open; it belongs to the caller.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if s.writer == nil {
		return nil
	}
	return s.writer.close(ctx)
}

// persistLocked encodes v and hands it to the writer. Must hold s.mu.
func (s *Store) persistLocked(key string, v interface{}) {
	if s.writer == nil {
		return
	}
	if s.closed {
		s.logger.Warn("store closed, dropping write", map[string]interface{}{"key": key})
		return
	}
	data, err := s.codec.Marshal(v)
	if err != nil {
		s.logger.Error("encoding collection failed", errors.Wrapf(err, "encoding %s (%s)", key, s.codec.Name()))
		return
	}
	s.writer.write(key, data)
}

// Assignments

func (s *Store) AddAssignment(a Assignment) Assignment {
	s.mu.Lock()
	a.ID = newID()
	s.assignments = append(s.assignments, a)
	s.persistLocked(KeyAssignments, s.assignments)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicAssignments, Op: OpAdded, ID: a.ID, Stats: stats})
	return a
}

// UpdateAssignment merges p into the assignment with the given id.
// It reports false, and changes nothing, when no such assignment exists.
func (s *Store) UpdateAssignment(id string, p AssignmentPatch) (Assignment, bool) {
	s.mu.Lock()
	idx := indexOf(s.assignments, id)
	if idx < 0 {
		s.mu.Unlock()
		return Assignment{}, false
	}
	p.apply(&s.assignments[idx])
	a := s.assignments[idx]
	s.persistLocked(KeyAssignments, s.assignments)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicAssignments, Op: OpUpdated, ID: id, Stats: stats})
	return a, true
}

// CycleAssignmentStatus moves an assignment to its next status (see Status.Next).
// The read and the write happen under one lock, so concurrent cycles each advance once.
func (s *Store) CycleAssignmentStatus(id string) (Assignment, bool) {
	s.mu.Lock()
	idx := indexOf(s.assignments, id)
	if idx < 0 {
		s.mu.Unlock()
		return Assignment{}, false
	}
	next := s.assignments[idx].Status.Next()
	s.assignments[idx].Status = next
	a := s.assignments[idx]
	s.persistLocked(KeyAssignments, s.assignments)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicAssignments, Op: OpUpdated, ID: id, Stats: stats})
	return a, true
}

func (s *Store) DeleteAssignment(id string) bool {
	s.mu.Lock()
	idx := indexOf(s.assignments, id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.assignments = slices.Delete(s.assignments, idx, idx+1)
	s.persistLocked(KeyAssignments, s.assignments)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicAssignments, Op: OpDeleted, ID: id, Stats: stats})
	return true
}

// Classes

func (s *Store) AddClass(c Class) Class {
	s.mu.Lock()
	c.ID = newID()
	s.classes = append(s.classes, c)
	s.persistLocked(KeySchedule, s.classes)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicClasses, Op: OpAdded, ID: c.ID, Stats: stats})
	return c
}

func (s *Store) UpdateClass(id string, p ClassPatch) (Class, bool) {
	s.mu.Lock()
	idx := indexOf(s.classes, id)
	if idx < 0 {
		s.mu.Unlock()
		return Class{}, false
	}
	p.apply(&s.classes[idx])
	c := s.classes[idx]
	s.persistLocked(KeySchedule, s.classes)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicClasses, Op: OpUpdated, ID: id, Stats: stats})
	return c, true
}

func (s *Store) DeleteClass(id string) bool {
	s.mu.Lock()
	idx := indexOf(s.classes, id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.classes = slices.Delete(s.classes, idx, idx+1)
	s.persistLocked(KeySchedule, s.classes)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicClasses, Op: OpDeleted, ID: id, Stats: stats})
	return true
}

// Notes

// AddNote stamps CreatedAt and UpdatedAt with the current time.
func (s *Store) AddNote(n Note) Note {
	s.mu.Lock()
	now := s.now()
	n.ID = newID()
	n.CreatedAt = now
	n.UpdatedAt = now
	s.notes = append(s.notes, n)
	s.persistLocked(KeyNotes, s.notes)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicNotes, Op: OpAdded, ID: n.ID, Stats: stats})
	return n
}

// UpdateNote merges p and always bumps UpdatedAt, even for an empty patch.
func (s *Store) UpdateNote(id string, p NotePatch) (Note, bool) {
	s.mu.Lock()
	idx := indexOf(s.notes, id)
	if idx < 0 {
		s.mu.Unlock()
		return Note{}, false
	}
	p.apply(&s.notes[idx])
	s.notes[idx].UpdatedAt = s.now()
	n := s.notes[idx]
	s.persistLocked(KeyNotes, s.notes)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicNotes, Op: OpUpdated, ID: id, Stats: stats})
	return n, true
}

func (s *Store) DeleteNote(id string) bool {
	s.mu.Lock()
	idx := indexOf(s.notes, id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.notes = slices.Delete(s.notes, idx, idx+1)
	s.persistLocked(KeyNotes, s.notes)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicNotes, Op: OpDeleted, ID: id, Stats: stats})
	return true
}

// Profile

func (s *Store) UpdateProfile(p ProfilePatch) Profile {
	s.mu.Lock()
	p.apply(&s.profile)
	pr := s.profile
	s.persistLocked(KeyProfile, s.profile)
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicProfile, Op: OpUpdated, Stats: stats})
	return pr
}

// Snapshots

func (s *Store) Assignments() []Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.assignments)
}

func (s *Store) Assignment(id string) (Assignment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := indexOf(s.assignments, id); idx >= 0 {
		return s.assignments[idx], true
	}
	return Assignment{}, false
}

func (s *Store) Classes() []Class {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.classes)
}

func (s *Store) Class(id string) (Class, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := indexOf(s.classes, id); idx >= 0 {
		return s.classes[idx], true
	}
	return Class{}, false
}

func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notes)
}

func (s *Store) Note(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx := indexOf(s.notes, id); idx >= 0 {
		return s.notes[idx], true
	}
	return Note{}, false
}

func (s *Store) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Stats returns the stats computed after the last mutation or refresh.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// RefreshStats recomputes the stats against the current time and notifies subscribers.
func (s *Store) RefreshStats() Stats {
	s.mu.Lock()
	stats := s.recomputeLocked()
	s.mu.Unlock()

	s.subs.publish(Event{Topic: TopicStats, Op: OpRefreshed, Stats: stats})
	return stats
}

func (s *Store) recomputeLocked() Stats {
	s.stats = ComputeStats(s.assignments, s.classes, s.notes, s.profile, s.now())
	return s.stats
}

type identified interface {
	entityID() string
}

func (a Assignment) entityID() string { return a.ID }
func (c Class) entityID() string      { return c.ID }
func (n Note) entityID() string       { return n.ID }

func indexOf[T identified](items []T, id string) int {
	return slices.IndexFunc(items, func(item T) bool { return item.entityID() == id })
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
