package dto

import (
	"time"

	"rongyi_backend/internal/model"
)

// FeedbackCreate 提交反馈请求
// user_id 为 0 时不在绑定阶段拒绝，交给访问层返回 404
type FeedbackCreate struct {
	UserID  *uint   `json:"user_id" binding:"required"`
	Type    *string `json:"type" binding:"required"`
	Content *string `json:"content" binding:"required"`
}

type FeedbackDTO struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	CreateTime time.Time `json:"create_time"`
}

func ToFeedbackDTO(f model.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:         f.ID,
		UserID:     f.UserID,
		Type:       f.Type,
		Content:    f.Content,
		CreateTime: f.CreateTime,
	}
}

func ToFeedbackDTOs(feedbacks []model.Feedback) []FeedbackDTO {
	result := make([]FeedbackDTO, 0, len(feedbacks))
	for _, f := range feedbacks {
		result = append(result, ToFeedbackDTO(f))
	}
	return result
}
