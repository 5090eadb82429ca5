package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/venomous-dashboard/notes-service/internal/common"
	"github.com/venomous-dashboard/notes-service/internal/domain"
)

func TestArticleListReturnsItemsWithCounts(t *testing.T) {
	svc := new(MockArticleService)
	r := newTestRouter("u1")
	h := NewArticleHandler(svc)
	r.GET("/articles", h.List)

	svc.On("List", mock.Anything, "u1").Return([]*domain.ArticleListItem{
		{Article: &domain.ArticleResponse{ID: "a1", UserID: "u1", Title: "x"}, ChapterCount: 2},
	}, nil)

	w, envelope := doJSON(t, r, http.MethodGet, "/articles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.NotNil(t, envelope.Data)
}

func TestArticleGetNotFoundCode(t *testing.T) {
	svc := new(MockArticleService)
	r := newTestRouter("u1")
	h := NewArticleHandler(svc)
	r.GET("/articles/:articleId", h.Get)

	svc.On("Get", mock.Anything, "u1", "missing").Return(nil, common.ErrArticleNotFound)

	w, envelope := doJSON(t, r, http.MethodGet, "/articles/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "ARTICLE_NOT_FOUND", envelope.Error.Code)
}

func TestArticleCreateReturns201(t *testing.T) {
	svc := new(MockArticleService)
	r := newTestRouter("u1")
	h := NewArticleHandler(svc)
	r.POST("/articles", h.Create)

	svc.On("Create", mock.Anything, "u1", mock.MatchedBy(func(req *domain.CreateArticleRequest) bool {
		return req.Title == "My Serial"
	})).Return(&domain.ArticleResponse{ID: "a1", UserID: "u1", Title: "My Serial"}, nil)

	w, envelope := doJSON(t, r, http.MethodPost, "/articles", `{"title":"My Serial"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, envelope.Success)
}

func TestArticleCreateWithoutIdentityIsUnauthorized(t *testing.T) {
	svc := new(MockArticleService)
	r := newTestRouter("")
	h := NewArticleHandler(svc)
	r.POST("/articles", h.Create)

	w, envelope := doJSON(t, r, http.MethodPost, "/articles", `{"title":"x"}`)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
	svc.AssertNotCalled(t, "Create")
}

func TestArticleUpdateValidationErrorCode(t *testing.T) {
	svc := new(MockArticleService)
	r := newTestRouter("u1")
	h := NewArticleHandler(svc)
	r.PUT("/articles/:articleId", h.Update)

	svc.On("Update", mock.Anything, "u1", "a1", mock.Anything).Return(nil, common.ErrTitleRequired)

	w, envelope := doJSON(t, r, http.MethodPut, "/articles/a1", `{"title":"  "}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestArticleDeleteEnvelope(t *testing.T) {
	svc := new(MockArticleService)
	r := newTestRouter("u1")
	h := NewArticleHandler(svc)
	r.DELETE("/articles/:articleId", h.Delete)

	svc.On("Delete", mock.Anything, "u1", "a1").Return(nil)

	w, envelope := doJSON(t, r, http.MethodDelete, "/articles/a1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Data)
}
