package middleware

import (
	"errors"
	"net/http"
	"strings"

	"Persona/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	// AvatarField 上传头像唯一合法的表单字段名
	AvatarField = "avatar"
	// MaxAvatarSize 头像大小上限 1MiB
	MaxAvatarSize = 1 << 20
)

// AvatarUpload 在 handler 之前拦截表单层面的错误：
// 超限、字段名不对、多文件、报文不合法。
// 没有附带文件属于业务错误，留给 handler 判定。
func AvatarUpload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseMultipartForm(MaxAvatarSize); err != nil {
			if errors.Is(err, http.ErrNotMultipart) || strings.Contains(err.Error(), "multipart") {
				abortBadRequest(c, "Invalid avatar file")
				return
			}
			// 报文本身没问题，是读取基础设施挂了
			response.Abort(c, http.StatusInternalServerError,
				response.Resolve(http.StatusInternalServerError, "The server is now unable to deal with this request"))
			return
		}

		form := c.Request.MultipartForm
		if form != nil {
			for field, files := range form.File {
				if field != AvatarField || len(files) > 1 {
					abortBadRequest(c, "Unexpected avatar file")
					return
				}
			}
			if files := form.File[AvatarField]; len(files) == 1 {
				if files[0].Size > MaxAvatarSize {
					abortBadRequest(c, "File size too large")
					return
				}
			}
		}

		c.Next()
	}
}
