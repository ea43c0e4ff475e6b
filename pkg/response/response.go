// Package response 提供统一的 HTTP JSON 响应格式
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	// 业务状态码，0 表示成功
	Code int `json:"code"`
	// 提示信息
	Message string `json:"message"`
	// 详细信息（可选）
	Detail string `json:"detail,omitempty"`
	// 响应数据
	Data interface{} `json:"data,omitempty"`
}

// Success 返回成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "ok",
		Data:    data,
	})
}

// Error 返回 500 错误响应
func Error(c *gin.Context, err error) {
	ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
}

// ErrorWithStatus 返回指定状态码的错误响应
func ErrorWithStatus(c *gin.Context, status int, message string, detail string) {
	c.JSON(status, Response{
		Code:    status,
		Message: message,
		Detail:  detail,
	})
}
