package dto

import (
	"rongyi_backend/internal/model"
)

// ========================================
// 手语词条 DTO
// ========================================

// SignWordCreate 创建词条请求
// 字段使用指针：缺失或 null 校验失败，空字符串允许
type SignWordCreate struct {
	Word        *string `json:"word" binding:"required"`
	Category    *string `json:"category" binding:"required"`
	Description *string `json:"description" binding:"required"`
	VideoPath   *string `json:"video_path" binding:"required"`
}

// SignWordDTO 词条响应
type SignWordDTO struct {
	ID          uint   `json:"id"`
	Word        string `json:"word"`
	Category    string `json:"category"`
	Description string `json:"description"`
	VideoPath   string `json:"video_path"`
}

// ToModel 将请求转换为待插入的 model.SignWord (ID 由数据库分配)
func (r SignWordCreate) ToModel() model.SignWord {
	return model.SignWord{
		Word:        *r.Word,
		Category:    *r.Category,
		Description: *r.Description,
		VideoPath:   *r.VideoPath,
	}
}

func ToSignWordDTO(w model.SignWord) SignWordDTO {
	return SignWordDTO{
		ID:          w.ID,
		Word:        w.Word,
		Category:    w.Category,
		Description: w.Description,
		VideoPath:   w.VideoPath,
	}
}

// ToSignWordDTOs 空结果返回 [] 而不是 null
func ToSignWordDTOs(words []model.SignWord) []SignWordDTO {
	result := make([]SignWordDTO, 0, len(words))
	for _, w := range words {
		result = append(result, ToSignWordDTO(w))
	}
	return result
}
