package dao

import (
	"context"
	"errors"
	"fmt"

	"Persona/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrNotFound 目标用户行不存在
var ErrNotFound = errors.New("user record not found")

// ValidationError 持久层拒绝了写入的数据，message 原样向上透传
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// mysql 侧的数据类错误码：1292 非法时间值, 1366 非法字段值, 1406 数据超长
func isDataError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1292, 1366, 1406:
			return true
		}
	}
	return errors.Is(err, gorm.ErrInvalidData) || errors.Is(err, gorm.ErrInvalidValue)
}

// classify 把 gorm/driver 错误归一到 NotFound / Validation / 其他 三类
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isDataError(err) {
		return &ValidationError{Message: err.Error()}
	}
	return err
}

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

func (u *Users) FindByID(ctx context.Context, id int64) (*models.Users, error) {
	user, err := u.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}

// UpdateProfile 按字段 map 更新，0 行受影响时再确认一次行是否存在，
// 避免把"值未变化"误判成 NotFound
func (u *Users) UpdateProfile(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	tx := u.Db.WithContext(ctx).
		Model(&models.Users{}).
		Where("id = ?", id).
		Updates(updates)

	if tx.Error != nil {
		return classify(fmt.Errorf("dao.Users.UpdateProfile: %w", tx.Error))
	}
	if tx.RowsAffected == 0 {
		exist, err := u.Repo.IsExist(ctx, "id = ?", id)
		if err != nil {
			return err
		}
		if !exist {
			return ErrNotFound
		}
	}
	return nil
}

// UpdateAvatar data URI 整体落库
func (u *Users) UpdateAvatar(ctx context.Context, id int64, avatar string) error {
	return u.UpdateProfile(ctx, id, map[string]any{"avatar": avatar})
}
