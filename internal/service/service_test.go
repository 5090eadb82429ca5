package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/venomous-dashboard/notes-service/internal/domain"
	"github.com/venomous-dashboard/notes-service/pkg/cache"
)

// fakeCache is an in-memory cache.Service that keeps the JSON
// serialization round trip of the real adapter, so the raw-storage-shape
// caching decision is exercised by the tests.
type fakeCache struct {
	data   map[string][]byte
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	if f.getErr != nil {
		return f.getErr
	}
	b, ok := f.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(b, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = b
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeCache) IsAvailable() bool           { return true }
func (f *fakeCache) Ping(_ context.Context) error { return nil }

func (f *fakeCache) has(key string) bool {
	_, ok := f.data[key]
	return ok
}

// put seeds a pre-serialized entry, bypassing the service under test
func (f *fakeCache) put(key string, value interface{}) {
	b, _ := json.Marshal(value)
	f.data[key] = b
}

// memoWithColorToken matches a memo whose color was mapped to the given
// storage token before persistence.
func memoWithColorToken(token string) interface{} {
	return mock.MatchedBy(func(m *domain.Memo) bool {
		return m.Color == token
	})
}

// hasChapterDefaults matches a chapter with trimmed text fields and a
// zero word count default.
func hasChapterDefaults() interface{} {
	return mock.MatchedBy(func(ch *domain.ArticleChapter) bool {
		return ch.Title == "One" && ch.Content == "body" && ch.WordCount == 0
	})
}

// hasUpdateKeys matches a sparse update map containing exactly the
// given keys.
func hasUpdateKeys(keys ...string) interface{} {
	return mock.MatchedBy(func(updates map[string]interface{}) bool {
		if len(updates) != len(keys) {
			return false
		}
		for _, k := range keys {
			if _, ok := updates[k]; !ok {
				return false
			}
		}
		return true
	})
}

// MockMemoRepository is a mock implementation of repository.MemoRepository
type MockMemoRepository struct {
	mock.Mock
}

func (m *MockMemoRepository) ListByUser(userID string) ([]domain.Memo, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Memo), args.Error(1)
}

func (m *MockMemoRepository) FindByID(id, userID string) (*domain.Memo, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Memo), args.Error(1)
}

func (m *MockMemoRepository) Create(memo *domain.Memo) error {
	args := m.Called(memo)
	return args.Error(0)
}

func (m *MockMemoRepository) Update(id, userID string, updates map[string]interface{}) (*domain.Memo, error) {
	args := m.Called(id, userID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Memo), args.Error(1)
}

func (m *MockMemoRepository) SoftDelete(id, userID string) (bool, error) {
	args := m.Called(id, userID)
	return args.Bool(0), args.Error(1)
}

// MockArticleRepository is a mock implementation of repository.ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) ListByUser(userID string) ([]domain.ArticleWithCount, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArticleWithCount), args.Error(1)
}

func (m *MockArticleRepository) FindByID(id, userID string) (*domain.Article, error) {
	args := m.Called(id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) Create(article *domain.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func (m *MockArticleRepository) Update(id, userID string, updates map[string]interface{}) (*domain.Article, error) {
	args := m.Called(id, userID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Article), args.Error(1)
}

func (m *MockArticleRepository) SoftDelete(id, userID string) (bool, error) {
	args := m.Called(id, userID)
	return args.Bool(0), args.Error(1)
}

// MockChapterRepository is a mock implementation of repository.ChapterRepository
type MockChapterRepository struct {
	mock.Mock
}

func (m *MockChapterRepository) ListByArticle(articleID string) ([]domain.ArticleChapter, error) {
	args := m.Called(articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArticleChapter), args.Error(1)
}

func (m *MockChapterRepository) FindByID(id, articleID string) (*domain.ArticleChapter, error) {
	args := m.Called(id, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticleChapter), args.Error(1)
}

func (m *MockChapterRepository) Create(chapter *domain.ArticleChapter) error {
	args := m.Called(chapter)
	return args.Error(0)
}

func (m *MockChapterRepository) Update(id, articleID string, updates map[string]interface{}) (*domain.ArticleChapter, error) {
	args := m.Called(id, articleID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArticleChapter), args.Error(1)
}

func (m *MockChapterRepository) SoftDelete(id, articleID string) (bool, error) {
	args := m.Called(id, articleID)
	return args.Bool(0), args.Error(1)
}
