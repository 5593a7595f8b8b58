package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"Persona/dao"
	"Persona/types"
)

const dateLayout = "2006-01-02"

type IProfileService interface {
	Get(ctx context.Context, id int64) (*types.ProfileResp, error)
	Update(ctx context.Context, id int64, req *types.UpdateProfileReq) error
	UploadAvatar(ctx context.Context, id int64, mimeType string, data []byte) (string, error)
}

type ProfileService struct {
	UserDao *dao.Users
}

func (s *ProfileService) Get(ctx context.Context, id int64) (*types.ProfileResp, error) {
	user, err := s.UserDao.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &types.ProfileResp{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Gender:   user.Gender,
		Avatar:   user.Avatar,
	}
	if user.Birthday != nil {
		birthday := user.Birthday.Format(dateLayout)
		resp.Birthday = &birthday
	}
	return resp, nil
}

func (s *ProfileService) Update(ctx context.Context, id int64, req *types.UpdateProfileReq) error {
	updates := map[string]any{
		"username": req.Username,
		"email":    req.Email,
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Birthday != nil {
		// 入库存完整时间戳，日期按 UTC 零点展开
		birthday, err := time.ParseInLocation(dateLayout, *req.Birthday, time.UTC)
		if err != nil {
			return &dao.ValidationError{Message: "Birthday is invalid"}
		}
		updates["birthday"] = birthday
	}

	return s.UserDao.UpdateProfile(ctx, id, updates)
}

// UploadAvatar 头像以 data URI 形态整体内联进用户行，不落对象存储
func (s *ProfileService) UploadAvatar(ctx context.Context, id int64, mimeType string, data []byte) (string, error) {
	encoded := base64.StdEncoding.EncodeToString(data)
	avatar := fmt.Sprintf("data:%s;base64,%s", mimeType, encoded)

	if err := s.UserDao.UpdateAvatar(ctx, id, avatar); err != nil {
		return "", err
	}
	return avatar, nil
}
