package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope for every API reply
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type ResponseTotal struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	Data       interface{} `json:"data,omitempty"`
	Total      int         `json:"total"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Success returns a 200 reply
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// Created returns a 201 reply for newly inserted resources
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Success",
		Total: total,
		Data:  data,
	})
}

// SuccessWithPagination returns a 200 reply with paging info
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// Error returns a reply with an explicit status code
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Code: 0,
		Mess: message,
	})
}

// ServerError returns a 500 reply
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// Unauthorized returns a 401 reply
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Unauthorized",
	})
}

// Forbidden returns a 403 reply
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Forbidden",
	})
}

// NotFound returns a 404 reply
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

func NotFoundMessage(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: message,
	})
}

// ValidationError returns a 400 reply for invalid input
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// BadRequest returns a 400 reply
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// Conflict returns a 409 reply
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Code: 0,
		Mess: message,
	})
}
