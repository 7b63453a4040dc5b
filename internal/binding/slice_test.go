package binding

import (
	"context"
	"sync"
	"testing"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChannel is an in-process DocumentChannel that records calls and lets
// tests push snapshots and errors by hand.
type fakeChannel struct {
	mu             sync.Mutex
	subscribeCalls int
	writes         []map[string]any
	writeErr       error

	onSnapshot func(service.Document)
	onError    func(error)
	closed     bool
}

func (f *fakeChannel) Subscribe(_ context.Context, _ string, onSnapshot func(service.Document), onError func(error)) (service.Unsubscribe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.subscribeCalls++
	f.onSnapshot = onSnapshot
	f.onError = onError

	return func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.closed = true
	}, nil
}

func (f *fakeChannel) MergeWrite(_ context.Context, _ string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes = append(f.writes, fields)

	return nil
}

func (f *fakeChannel) Create(_ context.Context, _ string, fields map[string]any) error {
	return f.MergeWrite(context.Background(), "", fields)
}

func (f *fakeChannel) Get(context.Context, string) (service.Document, error) {
	return nil, nil
}

func (f *fakeChannel) emit(doc service.Document) {
	f.mu.Lock()
	deliver := f.onSnapshot
	closed := f.closed
	f.mu.Unlock()

	if deliver != nil && !closed {
		deliver(doc)
	}
}

func (f *fakeChannel) emitError(err error) {
	f.mu.Lock()
	deliver := f.onError
	f.mu.Unlock()

	if deliver != nil {
		deliver(err)
	}
}

func (f *fakeChannel) lastWrite(t *testing.T) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.writes)

	return f.writes[len(f.writes)-1]
}

func TestBind_NoOwnerNeverSubscribes(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "", entity.SliceProducts, []entity.Product{{ID: "d"}})

	assert.Equal(t, 0, ch.subscribeCalls, "no subscription attempted")
	st := s.Status()
	assert.False(t, st.Loading, "loading never turns true")
	assert.False(t, st.Initialized)
	assert.Equal(t, []entity.Product{{ID: "d"}}, s.Value())

	// Writes without an owner are silent no-ops.
	require.NoError(t, s.Set(context.Background(), []entity.Product{{ID: "x"}}))
	require.NoError(t, s.Update(context.Background(), func(v []entity.Product) []entity.Product { return nil }))
	assert.Empty(t, ch.writes)
}

func TestBind_LoadingUntilFirstSnapshot(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))

	assert.Equal(t, 1, ch.subscribeCalls)
	assert.True(t, s.Status().Loading)

	ch.emit(service.Document{entity.SliceProducts: []entity.Product{{ID: "1", Name: "Americano"}}})

	st := s.Status()
	assert.False(t, st.Loading)
	assert.True(t, st.Initialized)
	assert.Equal(t, "Americano", s.Value()[0].Name)
}

func TestBind_MissingFieldFallsBackToDefault(t *testing.T) {
	ch := &fakeChannel{}
	def := []entity.LedgerEntry{{Date: "2025-01-01"}}

	s := Bind(context.Background(), ch, "store-1", entity.SliceSalesData, def)
	ch.emit(service.Document{entity.SliceProducts: []entity.Product{}})

	assert.Equal(t, def, s.Value())
	assert.True(t, s.Status().Initialized, "document existed, binding is initialized")
}

func TestBind_MissingDocumentOnlyClearsLoading(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))
	ch.emit(nil)

	st := s.Status()
	assert.False(t, st.Loading)
	assert.False(t, st.Initialized)
}

func TestBind_WeaklyTypedDecode(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))

	// Remote snapshots carry dynamically typed values, with numbers as int64.
	ch.emit(service.Document{entity.SliceProducts: []any{
		map[string]any{"id": "1", "name": "Americano", "price": int64(4500), "quantity": 2.5, "minStock": int64(1)},
	}})

	v := s.Value()
	require.Len(t, v, 1)
	assert.Equal(t, 4500.0, v[0].Price)
	assert.Equal(t, 2.5, v[0].Quantity)
	assert.Equal(t, 1.0, v[0].MinStock)
}

func TestSlice_SetWritesThroughWithoutLocalUpdate(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))
	ch.emit(service.Document{entity.SliceProducts: []entity.Product{{ID: "1"}}})

	next := []entity.Product{{ID: "1"}, {ID: "2"}}
	require.NoError(t, s.Set(context.Background(), next))

	// The write goes upstream; the local value waits for the round trip.
	assert.Equal(t, map[string]any{entity.SliceProducts: next}, ch.lastWrite(t))
	assert.Len(t, s.Value(), 1)

	ch.emit(service.Document{entity.SliceProducts: next})
	assert.Len(t, s.Value(), 2)
}

func TestSlice_RapidUpdatesSeeStaleValue(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))
	ch.emit(service.Document{entity.SliceProducts: []entity.Product{{ID: "1"}}})

	appendOne := func(id string) func([]entity.Product) []entity.Product {
		return func(v []entity.Product) []entity.Product {
			out := make([]entity.Product, len(v))
			copy(out, v)

			return append(out, entity.Product{ID: id})
		}
	}

	// Two Updates before any snapshot returns: the second still sees the
	// pre-write value, so its write does not contain the first append.
	require.NoError(t, s.Update(context.Background(), appendOne("2")))
	require.NoError(t, s.Update(context.Background(), appendOne("3")))

	second := ch.lastWrite(t)[entity.SliceProducts].([]entity.Product)
	require.Len(t, second, 2)
	assert.Equal(t, "3", second[1].ID)
}

func TestSlice_WriteFailureLeavesLocalValue(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))
	ch.emit(service.Document{entity.SliceProducts: []entity.Product{{ID: "1"}}})

	ch.writeErr = errors.New("backend rejected")
	err := s.Set(context.Background(), []entity.Product{})
	require.Error(t, err)
	assert.Len(t, s.Value(), 1, "failed write is a no-op on local state")
}

func TestSlice_ErrorKeepsValueAndInitialized(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))
	ch.emit(service.Document{entity.SliceProducts: []entity.Product{{ID: "1"}}})

	ch.emitError(errors.New("permission denied"))

	st := s.Status()
	assert.Error(t, st.Err)
	assert.False(t, st.Loading)
	assert.True(t, st.Initialized, "a later error does not revert initialized")
	assert.Len(t, s.Value(), 1, "value remains at its last known state")
}

func TestSlice_ErrorBeforeFirstSnapshot(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product{{ID: "d"}})
	ch.emitError(errors.New("unreachable"))

	st := s.Status()
	assert.Error(t, st.Err)
	assert.False(t, st.Loading)
	assert.False(t, st.Initialized)
	assert.Equal(t, "d", s.Value()[0].ID, "default value remains")
}

func TestSlice_WatchAndCancel(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))

	var seen [][]entity.Product
	cancel := s.Watch(func(v []entity.Product) { seen = append(seen, v) })

	ch.emit(service.Document{entity.SliceProducts: []entity.Product{{ID: "1"}}})
	require.Len(t, seen, 1)

	cancel()
	ch.emit(service.Document{entity.SliceProducts: []entity.Product{{ID: "1"}, {ID: "2"}}})
	assert.Len(t, seen, 1, "cancelled watcher no longer fires")
}

func TestSlice_CloseUnsubscribes(t *testing.T) {
	ch := &fakeChannel{}

	s := Bind(context.Background(), ch, "store-1", entity.SliceProducts, []entity.Product(nil))
	s.Close()
	s.Close() // idempotent

	assert.True(t, ch.closed)

	ch.emit(service.Document{entity.SliceProducts: []entity.Product{{ID: "1"}}})
	assert.Empty(t, s.Value(), "snapshots after unsubscribe are not delivered")
}
