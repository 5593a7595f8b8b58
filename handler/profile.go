package handler

import (
	"errors"
	"io"
	"net/http"

	"Persona/dao"
	"Persona/middleware"
	pctx "Persona/pkg/context"
	"Persona/pkg/response"
	"Persona/service"
	"Persona/types"

	"github.com/gin-gonic/gin"
)

type Profile struct {
	ProfileService service.IProfileService
}

func (h *Profile) RegisterRouter(r gin.IRouter) {
	g := r.Group("/profile")
	g.GET("/:id", middleware.ValidateProfileID(), pctx.Wrap(h.Get))
	g.PUT("/:id", middleware.ValidateProfileID(), middleware.ValidateProfileUpdate(), pctx.Wrap(h.Update))
	g.POST("/:id/avatar", middleware.ValidateProfileID(), middleware.AvatarUpload(), pctx.Wrap(h.UploadAvatar))
}

// mapStoreError 持久层失败的三分类：404 / 400（透传原始信息） / 兜底 500
func mapStoreError(err error) *response.ApiError {
	if errors.Is(err, dao.ErrNotFound) {
		return response.Resolve(http.StatusNotFound, "User record not found")
	}
	var ve *dao.ValidationError
	if errors.As(err, &ve) {
		return response.Resolve(http.StatusBadRequest, ve.Message)
	}
	return response.Resolve(http.StatusInternalServerError, "The server is now unable to deal with this request")
}

func (h *Profile) Get(c *gin.Context) error {
	id, err := pctx.GetProfileID(c)
	if err != nil {
		return err
	}

	profile, err := h.ProfileService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return response.Resolve(http.StatusNotFound)
		}
		return err
	}

	response.Success(c, profile)
	return nil
}

func (h *Profile) Update(c *gin.Context) error {
	id, err := pctx.GetProfileID(c)
	if err != nil {
		return err
	}

	v, ok := c.Get(pctx.CtxUpdateReq)
	if !ok {
		return response.Resolve(http.StatusBadRequest, "Request body is invalid")
	}
	req := v.(*types.UpdateProfileReq)

	if err := h.ProfileService.Update(c.Request.Context(), id, req); err != nil {
		return mapStoreError(err)
	}

	response.Success(c)
	return nil
}

func (h *Profile) UploadAvatar(c *gin.Context) error {
	id, err := pctx.GetProfileID(c)
	if err != nil {
		return err
	}

	header, err := c.FormFile(middleware.AvatarField)
	if err != nil {
		return response.Resolve(http.StatusBadRequest, "No avatarfile to uploaded")
	}

	file, err := header.Open()
	if err != nil {
		return response.Resolve(http.StatusBadRequest, "Invalid avatar file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.Resolve(http.StatusBadRequest, "Invalid avatar file")
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	avatar, err := h.ProfileService.UploadAvatar(c.Request.Context(), id, mimeType, data)
	if err != nil {
		return mapStoreError(err)
	}

	response.Success(c, types.UploadAvatarResp{Avatar: avatar})
	return nil
}
