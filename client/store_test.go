package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore() *Store[testItem] {
	return NewStore(func(i testItem) string { return i.ID })
}

func TestStoreSetAllCopies(t *testing.T) {
	s := newTestStore()
	input := []testItem{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	s.SetAll(input)

	// Kaynak slice'ı değiştirmek store'u etkilememeli
	input[0].Name = "mutated"
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Name)

	// Items'ın döndüğü kopyayı değiştirmek de etkilememeli
	items[1].Name = "also mutated"
	assert.Equal(t, "b", s.Items()[1].Name)
}

func TestStoreSetAllNilBecomesEmpty(t *testing.T) {
	s := newTestStore()
	s.Append(testItem{ID: "1"})
	s.SetAll(nil)

	items := s.Items()
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestStoreAppendAndPrepend(t *testing.T) {
	s := newTestStore()
	s.Append(testItem{ID: "1"})
	s.Append(testItem{ID: "2"})
	s.Prepend(testItem{ID: "0"})

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "0", items[0].ID)
	assert.Equal(t, "1", items[1].ID)
	assert.Equal(t, "2", items[2].ID)
}

func TestStoreReplaceByID(t *testing.T) {
	s := newTestStore()
	s.SetAll([]testItem{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}, {ID: "3", Name: "c"}})

	s.ReplaceByID(testItem{ID: "2", Name: "updated"})

	items := s.Items()
	require.Len(t, items, 3)
	// Sıra değişmemeli, sadece içerik
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "updated", items[1].Name)
	assert.Equal(t, "3", items[2].ID)
}

func TestStoreReplaceByIDUnknownIsNoop(t *testing.T) {
	s := newTestStore()
	s.SetAll([]testItem{{ID: "1", Name: "a"}})

	s.ReplaceByID(testItem{ID: "missing", Name: "x"})

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a", items[0].Name)
}

func TestStoreRemoveByID(t *testing.T) {
	s := newTestStore()
	s.SetAll([]testItem{{ID: "1"}, {ID: "2"}, {ID: "3"}})

	s.RemoveByID("2")
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "3", items[1].ID)

	// Olmayan ID no-op
	s.RemoveByID("2")
	assert.Equal(t, 2, s.Len())
}

func TestStoreNotifiesListeners(t *testing.T) {
	s := newTestStore()
	calls := 0
	s.Subscribe(func() { calls++ })

	s.Append(testItem{ID: "1"})
	s.SetAll([]testItem{{ID: "2"}})
	s.RemoveByID("2")
	assert.Equal(t, 3, calls)

	// Olmayan ID silinmeye çalışılınca listener çağrılmamalı
	s.RemoveByID("nope")
	assert.Equal(t, 3, calls)
}

func TestStoreLoadingAndError(t *testing.T) {
	s := newTestStore()
	assert.False(t, s.Loading())
	assert.NoError(t, s.Err())

	s.SetLoading(true)
	assert.True(t, s.Loading())

	s.SetError(ErrTimeout)
	assert.ErrorIs(t, s.Err(), ErrTimeout)

	s.SetError(nil)
	assert.NoError(t, s.Err())
}
