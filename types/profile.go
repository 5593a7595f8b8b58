package types

// ProfileResp 资料读取的完整投影，birthday 只下发日期部分
type ProfileResp struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"` // 用户名
	Email    string  `json:"email"`    // 邮箱
	Phone    *string `json:"phone"`    // 手机号
	Gender   *int    `json:"gender"`   // -1:未知 0:女 1:男
	Birthday *string `json:"birthday"` // YYYY-MM-DD
	Avatar   *string `json:"avatar"`   // data URI
}

// UpdateProfileReq username/email 必填，其余字段缺省时不更新
type UpdateProfileReq struct {
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Gender   *int    `json:"gender"`
	Birthday *string `json:"birthday"` // YYYY-MM-DD
}

// UploadAvatarResp 上传成功后只回传 data URI
type UploadAvatarResp struct {
	Avatar string `json:"avatar"`
}
