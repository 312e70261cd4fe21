package books

import (
	"context"
	"log/slog"
	"sync"

	"bookregistry/internal/types"
)

func NewMemoryRepository(l *slog.Logger) Repository {
	return &memoryRepo{l: l}
}

type memoryRepo struct {
	mu    sync.RWMutex
	books []*types.Book
	l     *slog.Logger
}

func (m *memoryRepo) AddBook(ctx context.Context, title, publisher, author, edition, datePublished string) {
	m.add(ctx, types.NewBook(title, publisher, author, edition, datePublished))
}

func (m *memoryRepo) AddBookWithSeries(ctx context.Context, title, publisher, author, edition, datePublished,
	series string) {

	m.add(ctx, types.NewBookInSeries(title, publisher, author, edition, datePublished, series))
}

func (m *memoryRepo) add(ctx context.Context, book *types.Book) {
	m.mu.Lock()
	m.books = append(m.books, book)
	m.mu.Unlock()

	m.l.DebugContext(ctx, "Added book "+book.Title)
}

func (m *memoryRepo) RemoveBook(ctx context.Context, title string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(title)
	if idx < 0 {
		m.l.DebugContext(ctx, "Book to remove not found: "+title)
		return false
	}

	last := len(m.books) - 1
	copy(m.books[idx:], m.books[idx+1:])
	m.books[last] = nil
	m.books = m.books[:last]

	m.l.DebugContext(ctx, "Removed book "+title)
	return true
}

func (m *memoryRepo) AddBookToSeries(ctx context.Context, title, series string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(title)
	if idx < 0 {
		m.l.DebugContext(ctx, "Book to add to series not found: "+title)
		return false
	}

	m.books[idx].SetSeries(series)

	m.l.DebugContext(ctx, "Added book "+title+" to series "+series)
	return true
}

func (m *memoryRepo) GetBookByTitle(_ context.Context, title string) (types.Book, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	idx := m.indexOf(title)
	if idx < 0 {
		return types.Book{}, false
	}

	return *m.books[idx], true
}

func (m *memoryRepo) GetBooksByAuthor(_ context.Context, author string) []types.Book {
	return m.filter(func(b *types.Book) bool { return b.Author == author })
}

func (m *memoryRepo) GetBooksByPublisher(_ context.Context, publisher string) []types.Book {
	return m.filter(func(b *types.Book) bool { return b.Publisher == publisher })
}

func (m *memoryRepo) GetBooksInSeries(_ context.Context, series string) []types.Book {
	return m.filter(func(b *types.Book) bool { return b.Series != nil && *b.Series == series })
}

func (m *memoryRepo) GetAllBooks(_ context.Context) []types.Book {
	return m.filter(func(*types.Book) bool { return true })
}

func (m *memoryRepo) Authors(_ context.Context) []string {
	return m.distinct(func(b *types.Book) (string, bool) { return b.Author, true })
}

func (m *memoryRepo) Series(_ context.Context) []string {
	return m.distinct(func(b *types.Book) (string, bool) { return b.InSeries() })
}

// indexOf must be called with mu held
func (m *memoryRepo) indexOf(title string) int {
	for i, b := range m.books {
		if b.Title == title {
			return i
		}
	}

	return -1
}

func (m *memoryRepo) filter(match func(b *types.Book) bool) []types.Book {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ret := make([]types.Book, 0)
	for _, b := range m.books {
		if match(b) {
			ret = append(ret, *b)
		}
	}

	return ret
}

func (m *memoryRepo) distinct(key func(b *types.Book) (string, bool)) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ret := make([]string, 0)
	seen := make(map[string]struct{})
	for _, b := range m.books {
		k, ok := key(b)
		if !ok {
			continue
		}

		if _, dup := seen[k]; dup {
			continue
		}

		seen[k] = struct{}{}
		ret = append(ret, k)
	}

	return ret
}
