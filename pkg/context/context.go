package context

import (
	"errors"
	"net/http"

	"Persona/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// CtxProfileID 校验中间件解析出的用户 ID
	CtxProfileID = "profile_id"
	// CtxUpdateReq 校验通过后的更新请求体
	CtxUpdateReq = "update_req"
	// CtxRequestID 链路追踪用的请求 ID
	CtxRequestID = "request_id"
)

// Wrap 把返回 error 的 handler 适配成 gin.HandlerFunc，
// 业务错误走统一的响应包装，其他错误一律 500
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 已经写过响应就不再处理
			if c.Writer.Written() {
				return
			}
			var ae *response.ApiError
			if errors.As(err, &ae) {
				response.Fail(c, ae)
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code:    500,
				Message: response.ReasonPhrase(500),
			})
		}
	}
}

// GetProfileID 取出校验中间件写入的用户 ID
func GetProfileID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxProfileID)
	if !ok {
		return 0, errors.New("profile_id 不存在")
	}

	id, ok := v.(int64)
	if !ok {
		return 0, errors.New("profile_id 类型错误")
	}

	return id, nil
}
