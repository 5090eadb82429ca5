package cache

import "fmt"

// Cache key derivation. Detail keys are scoped by entity id, list keys
// by owning user. Distinct prefixes keep logical resources from ever
// colliding.

// MemoListKey returns the cache key for a user's memo list
func MemoListKey(userID string) string {
	return fmt.Sprintf("user:%s:memos", userID)
}

// MemoKey returns the cache key for a single memo
func MemoKey(id string) string {
	return fmt.Sprintf("memo:%s", id)
}

// ArticleListKey returns the cache key for a user's article list
func ArticleListKey(userID string) string {
	return fmt.Sprintf("user:%s:articles", userID)
}

// ArticleKey returns the cache key for an article detail with chapters
func ArticleKey(id string) string {
	return fmt.Sprintf("article:%s", id)
}

// ChapterKey returns the cache key for a single chapter
func ChapterKey(id string) string {
	return fmt.Sprintf("chapter:%s", id)
}
