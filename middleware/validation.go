package middleware

import (
	"net/http"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	pctx "Persona/pkg/context"
	"Persona/pkg/response"
	"Persona/types"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()

	// 大陆手机号，可带 +86 / 0086 前缀
	phonePattern = regexp.MustCompile(`^(?:(?:\+|00)86)?1\d{10}$`)
)

func abortBadRequest(c *gin.Context, message string) {
	response.Abort(c, http.StatusBadRequest, response.Resolve(http.StatusBadRequest, message))
}

// ValidateProfileID :id 必须是十进制整数，解析结果写入 context 供 handler 使用
func ValidateProfileID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			abortBadRequest(c, "User ID is invalid")
			return
		}
		c.Set(pctx.CtxProfileID, id)
		c.Next()
	}
}

// ValidateProfileUpdate 按声明顺序逐条校验，命中第一条错误即返回，
// 不聚合所有字段错误（有意为之）
func ValidateProfileUpdate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.UpdateProfileReq
		if err := c.ShouldBindJSON(&req); err != nil {
			abortBadRequest(c, "Request body is invalid")
			return
		}

		if msg := checkUpdateReq(&req); msg != "" {
			abortBadRequest(c, msg)
			return
		}

		c.Set(pctx.CtxUpdateReq, &req)
		c.Next()
	}
}

func checkUpdateReq(req *types.UpdateProfileReq) string {
	if utf8.RuneCountInString(req.Username) < 2 {
		return "User name must be at least 2 characters"
	}
	if utf8.RuneCountInString(req.Username) > 32 {
		// 上游的历史文案，阈值实际是 32
		return "User name must be less than or equal to 16 characters"
	}
	if validate.Var(req.Email, "required,email") != nil {
		return "Email is invalid"
	}
	if req.Phone != nil && !phonePattern.MatchString(*req.Phone) {
		return "Phone number is invalid"
	}
	if req.Gender != nil && (*req.Gender < -1 || *req.Gender > 1) {
		return "Gender is invalid"
	}
	if req.Birthday != nil {
		if _, err := time.Parse("2006-01-02", *req.Birthday); err != nil {
			return "Birthday is invalid"
		}
	}
	return ""
}
