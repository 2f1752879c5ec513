package dto

import (
	"time"

	"rongyi_backend/internal/model"
)

// UserCreate 注册与登录共用的请求体
// 空密码允许提交，登录时按密码错误处理
type UserCreate struct {
	Account  *string `json:"account" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// UserDTO 用户响应，不包含密码
type UserDTO struct {
	ID         uint      `json:"id"`
	Account    string    `json:"account"`
	CreateTime time.Time `json:"create_time"`
}

func ToUserDTO(u model.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Account:    u.Account,
		CreateTime: u.CreateTime,
	}
}
