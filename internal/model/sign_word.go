package model

// SignWord 手语词条，创建后不可修改
type SignWord struct {
	ID          uint   `gorm:"primaryKey"`
	Word        string `gorm:"not null"`
	Category    string `gorm:"not null;index"`
	Description string `gorm:"not null"`
	VideoPath   string `gorm:"not null"` // 视频引用字符串，不校验路径
}

func (SignWord) TableName() string {
	return "sign_words"
}
