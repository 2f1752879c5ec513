package model

import "time"

type Feedback struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;index"`
	Type       string    `gorm:"column:type;not null"`
	Content    string    `gorm:"not null"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime;index"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
