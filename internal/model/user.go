package model

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey"`
	Account    string    `gorm:"uniqueIndex;not null"`
	Password   string    `gorm:"not null"` // bcrypt 哈希，不保存明文
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime"`

	// 删除用户不会级联删除反馈
	Feedbacks []Feedback `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
