package article

import (
	"sync"
	"testing"

	"github.com/SergeyParamoshkin/articles/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCRUD(t *testing.T) {
	s := NewMemoryStore(model.Seed()...)
	require.Equal(t, 4, s.Len())

	id, err := s.Append(model.Article{Title: "x", FullText: "y"})
	require.NoError(t, err)
	assert.Equal(t, 5, id)

	got, err := s.Get(id - 1)
	require.NoError(t, err)
	assert.Equal(t, model.Article{Title: "x", FullText: "y"}, got)

	require.NoError(t, s.Replace(0, model.Article{Title: "z"}))
	got, err = s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, model.Article{Title: "z"}, got)

	require.NoError(t, s.RemoveAt(0))
	assert.Equal(t, 4, s.Len())

	got, err = s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "another article", got.Title)
}

func TestMemoryStoreOutOfRange(t *testing.T) {
	s := NewMemoryStore(model.Seed()...)

	for _, i := range []int{-1, 4, 100} {
		_, err := s.Get(i)
		assert.ErrorIs(t, err, ErrNotFound, "get %d", i)
		assert.ErrorIs(t, s.Replace(i, model.Article{}), ErrNotFound, "replace %d", i)
		assert.ErrorIs(t, s.RemoveAt(i), ErrNotFound, "remove %d", i)
	}
	assert.Equal(t, 4, s.Len())
}

func TestMemoryStoreDoesNotAlias(t *testing.T) {
	seed := model.Seed()
	s := NewMemoryStore(seed...)

	seed[0].Title = "changed"
	list := s.List()
	list[1].Title = "changed"

	first, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "hello article", first.Title)

	second, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "another article", second.Title)

	require.NoError(t, s.RemoveAt(0))
	assert.Equal(t, "coventry university ", list[2].Title, "earlier List result unchanged by removal")
}

func TestMemoryStoreConcurrentAppend(t *testing.T) {
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Append(model.Article{Title: "t"})
			_ = s.List()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
