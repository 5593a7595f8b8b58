package dao

import (
	"context"

	"Persona/models"
)

func ptr[T any](v T) *T { return &v }

// SeedUsers 预置演示账号，按 email 幂等 upsert。
// 本服务自身从不创建用户行，建行只走这条种子路径。
func (u *Users) SeedUsers(ctx context.Context) ([]*models.Users, error) {
	seeds := []*models.Users{
		{
			Username: "Alice",
			Email:    "alice@example.com",
			Phone:    ptr("13888888888"),
			Gender:   ptr(0),
		},
		{
			Username: "Bob",
			Email:    "bob@example.com",
			Phone:    ptr("15888888888"),
			Gender:   ptr(1),
		},
	}

	for _, user := range seeds {
		err := u.Db.WithContext(ctx).
			Where("email = ?", user.Email).
			FirstOrCreate(user).Error
		if err != nil {
			return nil, err
		}
	}
	return seeds, nil
}
