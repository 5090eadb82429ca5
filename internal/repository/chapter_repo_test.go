package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/venomous-dashboard/notes-service/internal/domain"
)

func seedArticle(t *testing.T, repo ArticleRepository, userID string) *domain.Article {
	t.Helper()
	article := &domain.Article{UserID: userID, Title: "parent", Status: "draft"}
	require.NoError(t, repo.Create(article))
	return article
}

func TestChapterListOrderedByNumber(t *testing.T) {
	db := newTestDB(t)
	article := seedArticle(t, NewArticleRepository(db), "u1")
	repo := NewChapterRepository(db)

	// Inserted out of order on purpose
	for _, n := range []int{3, 1, 2} {
		ch := &domain.ArticleChapter{ArticleID: article.ID, Title: "ch", Content: "...", ChapterNumber: n}
		require.NoError(t, repo.Create(ch))
	}

	chapters, err := repo.ListByArticle(article.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 3)
	assert.Equal(t, 1, chapters[0].ChapterNumber)
	assert.Equal(t, 2, chapters[1].ChapterNumber)
	assert.Equal(t, 3, chapters[2].ChapterNumber)
}

func TestChapterFindScopedByArticle(t *testing.T) {
	db := newTestDB(t)
	articleRepo := NewArticleRepository(db)
	a1 := seedArticle(t, articleRepo, "u1")
	a2 := seedArticle(t, articleRepo, "u1")
	repo := NewChapterRepository(db)

	ch := &domain.ArticleChapter{ArticleID: a1.ID, Title: "ch", Content: "...", ChapterNumber: 1}
	require.NoError(t, repo.Create(ch))

	found, err := repo.FindByID(ch.ID, a2.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = repo.FindByID(ch.ID, a1.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestChapterUpdateSparse(t *testing.T) {
	db := newTestDB(t)
	article := seedArticle(t, NewArticleRepository(db), "u1")
	repo := NewChapterRepository(db)

	ch := &domain.ArticleChapter{ArticleID: article.ID, Title: "before", Content: "...", ChapterNumber: 1, WordCount: 10}
	require.NoError(t, repo.Create(ch))

	updated, err := repo.Update(ch.ID, article.ID, map[string]interface{}{
		"word_count": 250,
		"updated_at": time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 250, updated.WordCount)
	assert.Equal(t, "before", updated.Title)
}

func TestChapterSoftDeleteIdempotence(t *testing.T) {
	db := newTestDB(t)
	article := seedArticle(t, NewArticleRepository(db), "u1")
	repo := NewChapterRepository(db)

	ch := &domain.ArticleChapter{ArticleID: article.ID, Title: "doomed", Content: "...", ChapterNumber: 1}
	require.NoError(t, repo.Create(ch))

	deleted, err := repo.SoftDelete(ch.ID, article.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.SoftDelete(ch.ID, article.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	chapters, err := repo.ListByArticle(article.ID)
	require.NoError(t, err)
	assert.Empty(t, chapters)
}
