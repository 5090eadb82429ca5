package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/venomous-dashboard/notes-service/internal/handler"
	"github.com/venomous-dashboard/notes-service/internal/middleware"
)

// Setup registers all application routes. Business routes sit behind
// the identity middleware; /health is public.
func Setup(router *gin.Engine, memoH *handler.MemoHandler, articleH *handler.ArticleHandler, chapterH *handler.ChapterHandler, jwtSecret string) {
	router.GET("/health", handler.Health)

	identity := middleware.Identity(jwtSecret)

	memos := router.Group("/memos", identity)
	memos.GET("", memoH.List)
	memos.GET("/:id", memoH.Get)
	memos.POST("", memoH.Create)
	memos.PUT("/:id", memoH.Update)
	memos.DELETE("/:id", memoH.Delete)

	// The article id param is named articleId on every route so the
	// nested chapter routes can share the same tree segment.
	articles := router.Group("/articles", identity)
	articles.GET("", articleH.List)
	articles.GET("/:articleId", articleH.Get)
	articles.POST("", articleH.Create)
	articles.PUT("/:articleId", articleH.Update)
	articles.DELETE("/:articleId", articleH.Delete)

	chapters := router.Group("/articles/:articleId/chapters", identity)
	chapters.POST("", chapterH.Create)
	chapters.GET("/:chapterId", chapterH.Get)
	chapters.PUT("/:chapterId", chapterH.Update)
	chapters.DELETE("/:chapterId", chapterH.Delete)
}
