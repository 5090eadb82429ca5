package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the uniform envelope returned by every handler
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success returns a 200 success response with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Created returns a 201 success response with the created resource
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
	})
}

// DeleteSuccess returns a success response with no data key
func DeleteSuccess(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
	})
}

// Error returns an error response for a known AppError
func Error(c *gin.Context, appErr *AppError) {
	c.JSON(appErr.Status, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    appErr.Code,
			Message: appErr.Message,
		},
	})
}

// Fail maps any error to the envelope. Unknown errors never leak raw
// storage details; they become an internal-error envelope.
func Fail(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		Error(c, appErr)
		return
	}
	Error(c, ErrInternal)
}
