package article

import (
	"errors"
	"sync"

	"github.com/SergeyParamoshkin/articles/internal/model"
)

var ErrNotFound = errors.New("article not found")

// Store is an ordered collection of articles addressed by 0-based index.
// Removing an article shifts every later article down by one.
type Store interface {
	List() []model.Article
	Get(i int) (model.Article, error)
	Append(a model.Article) (int, error)
	Replace(i int, a model.Article) error
	RemoveAt(i int) error
	Len() int
}

// MemoryStore keeps articles in a slice for the lifetime of the process.
// Each call is atomic on its own; a Get followed by a Replace is not.
type MemoryStore struct {
	mu       sync.RWMutex
	articles []model.Article
}

func NewMemoryStore(seed ...model.Article) *MemoryStore {
	articles := make([]model.Article, len(seed))
	copy(articles, seed)

	return &MemoryStore{articles: articles}
}

func (s *MemoryStore) List() []model.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Article, len(s.articles))
	copy(out, s.articles)

	return out
}

func (s *MemoryStore) Get(i int) (model.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inRange(i) {
		return model.Article{}, ErrNotFound
	}

	return s.articles[i], nil
}

// Append adds a to the end of the collection and returns its id.
func (s *MemoryStore) Append(a model.Article) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.articles = append(s.articles, a)

	return len(s.articles), nil
}

func (s *MemoryStore) Replace(i int, a model.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(i) {
		return ErrNotFound
	}
	s.articles[i] = a

	return nil
}

func (s *MemoryStore) RemoveAt(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(i) {
		return ErrNotFound
	}
	s.articles = append(s.articles[:i], s.articles[i+1:]...)

	return nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.articles)
}

func (s *MemoryStore) inRange(i int) bool {
	return i >= 0 && i < len(s.articles)
}
