// Package binding binds named slices of a remote per-store document to local
// typed state. A binding is read-through only: Set writes upstream and the
// local value changes when the snapshot round-trips back, never
// optimistically. The write-then-wait latency window is part of the contract.
package binding

import (
	"context"
	"sync"

	"storehub/internal/domain/service"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Status describes the lifecycle of one slice binding. Initialized turns true
// on the first snapshot of an existing document and stays true afterwards; a
// later error does not revert it.
type Status struct {
	Loading     bool
	Initialized bool
	Err         error
}

// Slice is a reactive view over one named top-level field of the owner
// document. Each instance owns exactly one channel subscription; callers must
// Close it on teardown or the listener dangles.
type Slice[T any] struct {
	channel service.DocumentChannel
	ownerID string
	name    string
	def     T

	mu       sync.Mutex
	value    T
	status   Status
	watchers map[int]func(T)
	nextID   int

	unsubscribe service.Unsubscribe
	closeOnce   sync.Once
}

// Bind creates a slice binding. With an empty ownerID no subscription is
// attempted: the value is the default, loading is false immediately, and
// writes are silent no-ops.
func Bind[T any](ctx context.Context, channel service.DocumentChannel, ownerID, name string, defaultValue T) *Slice[T] {
	s := &Slice[T]{
		channel:  channel,
		ownerID:  ownerID,
		name:     name,
		def:      defaultValue,
		value:    defaultValue,
		watchers: make(map[int]func(T)),
	}
	if ownerID == "" {
		return s
	}

	s.status.Loading = true

	unsubscribe, err := channel.Subscribe(ctx, ownerID, s.onSnapshot, s.onError)
	if err != nil {
		s.mu.Lock()
		s.status.Loading = false
		s.status.Err = err
		s.mu.Unlock()

		return s
	}
	s.unsubscribe = unsubscribe

	return s
}

// Value returns the last known local value. It lags a Set until the remote
// snapshot comes back.
func (s *Slice[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Status returns the current binding status.
func (s *Slice[T]) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Name returns the bound slice name.
func (s *Slice[T]) Name() string {
	return s.name
}

// Set writes a fully-resolved replacement value for the slice. The local
// value is left untouched; it updates when the snapshot round-trips. Without
// a bound owner the call is a silent no-op.
func (s *Slice[T]) Set(ctx context.Context, value T) error {
	if s.ownerID == "" {
		return nil
	}

	return s.channel.MergeWrite(ctx, s.ownerID, map[string]any{s.name: value})
}

// Update resolves the value to write by applying fn to the last known local
// value. That value is not necessarily the latest remote state: two rapid
// Updates before any snapshot returns both see the pre-write value. Callers
// needing read-your-writes must wait for the snapshot between calls.
func (s *Slice[T]) Update(ctx context.Context, fn func(T) T) error {
	if s.ownerID == "" {
		return nil
	}
	s.mu.Lock()
	resolved := fn(s.value)
	s.mu.Unlock()

	return s.channel.MergeWrite(ctx, s.ownerID, map[string]any{s.name: resolved})
}

// Snapshot returns the local value once a snapshot has been applied. Before
// that it falls back to a direct read of the owner document so callers get an
// authoritative value instead of the default. The fallback never mutates the
// binding; the subscription stays the only writer of local state.
func (s *Slice[T]) Snapshot(ctx context.Context) (T, error) {
	s.mu.Lock()
	value, initialized := s.value, s.status.Initialized
	s.mu.Unlock()

	if initialized || s.ownerID == "" {
		return value, nil
	}

	doc, err := s.channel.Get(ctx, s.ownerID)
	if err != nil {
		return value, err
	}
	if doc == nil {
		return value, nil
	}
	raw, ok := doc[s.name]
	if !ok {
		return s.def, nil
	}

	return decodeSlice[T](raw)
}

// Watch registers fn to run after every applied snapshot, with the new value.
// Watchers run on the snapshot delivery goroutine and must not block. The
// returned cancel removes the watcher.
func (s *Slice[T]) Watch(fn func(T)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.watchers, id)
		s.mu.Unlock()
	}
}

// Close unsubscribes from the channel. Snapshots already in flight may still
// be applied; further delivery stops immediately.
func (s *Slice[T]) Close() {
	s.closeOnce.Do(func() {
		if s.unsubscribe != nil {
			s.unsubscribe()
		}
	})
}

func (s *Slice[T]) onSnapshot(doc service.Document) {
	s.mu.Lock()
	s.status.Loading = false
	if doc == nil {
		// Document does not exist yet; keep the default value and stay
		// uninitialized until provisioning creates it.
		s.mu.Unlock()

		return
	}

	next := s.def
	if raw, ok := doc[s.name]; ok && raw != nil {
		decoded, err := decodeSlice[T](raw)
		if err != nil {
			s.status.Err = err
			s.mu.Unlock()

			return
		}
		next = decoded
	}

	s.value = next
	s.status.Initialized = true
	s.status.Err = nil

	watchers := make([]func(T), 0, len(s.watchers))
	for _, fn := range s.watchers {
		watchers = append(watchers, fn)
	}
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(next)
	}
}

func (s *Slice[T]) onError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The last known value is kept; only the status degrades.
	s.status.Loading = false
	s.status.Err = err
}

// decodeSlice converts the dynamically typed document field into the concrete
// slice type. Remote numbers arrive as int64 or float64 depending on how they
// were written, so decoding is weakly typed.
func decodeSlice[T any](raw any) (T, error) {
	var out T

	// Already the concrete type (in-process channels deliver typed values).
	if typed, ok := raw.(T); ok {
		return typed, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return out, errors.Wrap(err, "build slice decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return out, errors.Wrapf(err, "decode slice value")
	}

	return out, nil
}
