package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 所有接口统一的响应包装
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Success 成功响应固定 HTTP 200 + {200, "OK", data}，data 可以为空
func Success(c *gin.Context, data ...any) {
	resp := Response{
		Code:    200,
		Message: "OK",
	}
	if len(data) > 0 {
		resp.Data = data[0]
	}
	c.JSON(http.StatusOK, resp)
}

// BadRequest 外层固定 400，内层 code/message 由 Resolve 决定
func BadRequest(c *gin.Context, code int, message ...string) {
	if code == 0 {
		code = http.StatusBadRequest
	}
	fail(c, http.StatusBadRequest, Resolve(code, message...))
}

// NotFound 外层固定 404
func NotFound(c *gin.Context, code int, message ...string) {
	if code == 0 {
		code = http.StatusNotFound
	}
	fail(c, http.StatusNotFound, Resolve(code, message...))
}

// InternalServerError 外层固定 500
func InternalServerError(c *gin.Context, code int, message ...string) {
	if code == 0 {
		code = http.StatusInternalServerError
	}
	fail(c, http.StatusInternalServerError, Resolve(code, message...))
}

// Fail 按 ApiError 自身的 code 选择外层状态码
func Fail(c *gin.Context, err *ApiError) {
	switch err.Code {
	case http.StatusNotFound:
		fail(c, http.StatusNotFound, err)
	case http.StatusInternalServerError:
		fail(c, http.StatusInternalServerError, err)
	default:
		fail(c, http.StatusBadRequest, err)
	}
}

func fail(c *gin.Context, httpStatus int, err *ApiError) {
	c.JSON(httpStatus, Response{
		Code:    err.Code,
		Message: err.Message,
	})
}

// Abort 在中间件里终止请求并写入错误响应
func Abort(c *gin.Context, httpStatus int, err *ApiError) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code:    err.Code,
		Message: err.Message,
	})
}
