package handler

import (
	"errors"
	"net/http"

	"github.com/blues/rfs/internal/ledger"
	"github.com/gin-gonic/gin"
)

// Response 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Pagination 分页信息结构
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// LedgerErrorResponse 按账本错误类型映射HTTP状态码
func LedgerErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, statusFromError(err), err.Error())
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrFinalized),
		errors.Is(err, ledger.ErrNotFinalized),
		errors.Is(err, ledger.ErrExpired),
		errors.Is(err, ledger.ErrNotYetEligible),
		errors.Is(err, ledger.ErrGoalNotMet),
		errors.Is(err, ledger.ErrGoalMet),
		errors.Is(err, ledger.ErrAlreadyWithdrawn),
		errors.Is(err, ledger.ErrAlreadyRefunded):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
