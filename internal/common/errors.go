package common

import "net/http"

// AppError is a business error with a stable machine-readable code, a
// default user-facing message, and the HTTP status it maps to. The set
// below is closed: handlers never invent codes at the call site.
type AppError struct {
	Code    string
	Message string
	Status  int
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Authentication errors
var (
	ErrUnauthorized = &AppError{
		Code:    "UNAUTHORIZED",
		Message: "Authentication required. Please log in to access this resource.",
		Status:  http.StatusUnauthorized,
	}
)

// Validation errors
var (
	ErrContentRequired = &AppError{
		Code:    "CONTENT_REQUIRED",
		Message: "Content is required and cannot be empty.",
		Status:  http.StatusBadRequest,
	}
	ErrTitleRequired = &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "Title is required and cannot be empty.",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidChapterNumber = &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "Valid chapter number is required.",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidInput = &AppError{
		Code:    "VALIDATION_ERROR",
		Message: "The information you provided is not valid. Please check all required fields.",
		Status:  http.StatusBadRequest,
	}
	ErrNoFieldsToUpdate = &AppError{
		Code:    "NO_FIELDS_TO_UPDATE",
		Message: "No fields provided for update. Please specify at least one field to update.",
		Status:  http.StatusBadRequest,
	}
)

// Resource errors. Rows owned by another user are reported with the
// same not-found errors so existence is never leaked.
var (
	ErrMemoNotFound = &AppError{
		Code:    "MEMO_NOT_FOUND",
		Message: "The memo you're looking for was not found or has been deleted.",
		Status:  http.StatusNotFound,
	}
	ErrArticleNotFound = &AppError{
		Code:    "ARTICLE_NOT_FOUND",
		Message: "The article you're looking for was not found or has been deleted.",
		Status:  http.StatusNotFound,
	}
	ErrChapterNotFound = &AppError{
		Code:    "CHAPTER_NOT_FOUND",
		Message: "The chapter you're looking for was not found or has been deleted.",
		Status:  http.StatusNotFound,
	}
)

// Internal errors
var (
	ErrDatabase = &AppError{
		Code:    "DATABASE_ERROR",
		Message: "A database error occurred. Please try again later.",
		Status:  http.StatusInternalServerError,
	}
	ErrInternal = &AppError{
		Code:    "INTERNAL_SERVER_ERROR",
		Message: "An internal server error occurred. Please try again later or contact support.",
		Status:  http.StatusInternalServerError,
	}
)
