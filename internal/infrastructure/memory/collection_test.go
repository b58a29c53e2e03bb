package memory

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEntity struct {
	ID   uuid.UUID
	Name string
}

func newTestCollection() *Collection[testEntity] {
	return NewCollection(func(e testEntity) uuid.UUID { return e.ID })
}

func TestCollectionInsertAndGet(t *testing.T) {
	c := newTestCollection()
	e := testEntity{ID: uuid.New(), Name: "first"}

	require.NoError(t, c.Insert(e))

	got, err := c.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.Equal(t, 1, c.Len())
}

func TestCollectionInsertDuplicateKey(t *testing.T) {
	c := newTestCollection()
	e := testEntity{ID: uuid.New(), Name: "first"}

	require.NoError(t, c.Insert(e))

	err := c.Insert(testEntity{ID: e.ID, Name: "second"})
	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), e.ID.String())
}

func TestCollectionGetNotFound(t *testing.T) {
	c := newTestCollection()

	_, err := c.Get(uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionUpdate(t *testing.T) {
	c := newTestCollection()
	e := testEntity{ID: uuid.New(), Name: "before"}
	require.NoError(t, c.Insert(e))

	updated, err := c.Update(e.ID, func(cur testEntity) testEntity {
		cur.Name = "after"
		return cur
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)

	got, err := c.Get(e.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
}

func TestCollectionUpdateNotFound(t *testing.T) {
	c := newTestCollection()

	_, err := c.Update(uuid.New(), func(cur testEntity) testEntity { return cur })
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCollectionDelete(t *testing.T) {
	c := newTestCollection()
	e := testEntity{ID: uuid.New(), Name: "gone"}
	require.NoError(t, c.Insert(e))

	require.NoError(t, c.Delete(e.ID))
	assert.Equal(t, 0, c.Len())

	// Second delete keeps failing identically.
	require.ErrorIs(t, c.Delete(e.ID), ErrNotFound)
}

func TestCollectionListInsertionOrderAndPagination(t *testing.T) {
	c := newTestCollection()
	names := []string{"a", "b", "c", "d", "e"}
	for _, name := range names {
		require.NoError(t, c.Insert(testEntity{ID: uuid.New(), Name: name}))
	}

	// limit=2, offset=3 returns exactly the 4th and 5th inserted.
	items, total, err := c.List(nil, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	require.Len(t, items, 2)
	assert.Equal(t, "d", items[0].Name)
	assert.Equal(t, "e", items[1].Name)
}

func TestCollectionListPredicateTotalIsPreSlice(t *testing.T) {
	c := newTestCollection()
	for i := 0; i < 10; i++ {
		name := "even"
		if i%2 == 1 {
			name = "odd"
		}
		require.NoError(t, c.Insert(testEntity{ID: uuid.New(), Name: name}))
	}

	items, total, err := c.List(func(e testEntity) bool { return e.Name == "even" }, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, items, 2)
}

func TestCollectionListOffsetPastEnd(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Insert(testEntity{ID: uuid.New(), Name: "only"}))

	items, total, err := c.List(nil, 50, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Empty(t, items)
}

func TestCollectionListInvalidArguments(t *testing.T) {
	c := newTestCollection()

	cases := []struct {
		name          string
		offset, limit int
	}{
		{"zero limit", 0, 0},
		{"negative limit", 0, -1},
		{"limit above max", 0, MaxLimit + 1},
		{"negative offset", -1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := c.List(nil, tc.offset, tc.limit)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestCollectionListIsStableWithoutMutation(t *testing.T) {
	c := newTestCollection()
	for i := 0; i < 4; i++ {
		require.NoError(t, c.Insert(testEntity{ID: uuid.New(), Name: fmt.Sprintf("e%d", i)}))
	}

	first, firstTotal, err := c.List(nil, 0, 10)
	require.NoError(t, err)
	second, secondTotal, err := c.List(nil, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)
}
