package models

import (
	"time"
)

// Users 用户资料表，行由种子/运维脚本创建，本服务只读和更新
type Users struct {
	ID        int64      `gorm:"column:id;primary_key" json:"id"`
	Username  string     `gorm:"column:username;type:varchar(32);not null" json:"username"`
	Email     string     `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone     *string    `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Gender    *int       `gorm:"column:gender" json:"gender"`
	Birthday  *time.Time `gorm:"column:birthday" json:"birthday"`
	Avatar    *string    `gorm:"column:avatar;type:longtext" json:"avatar"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (u Users) TableName() string {
	return "users"
}
