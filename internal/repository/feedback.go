package repository

import (
	"context"

	"rongyi_backend/internal/database"
	"rongyi_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	store *database.Store
}

func NewFeedbackRepository(store *database.Store) *FeedbackRepository {
	return &FeedbackRepository{store: store}
}

// Create 用户不存在时返回 ErrNotFound 且不写入任何数据
func (r *FeedbackRepository) Create(ctx context.Context, userID uint, typ, content string) (model.Feedback, error) {
	feedback := model.Feedback{UserID: userID, Type: typ, Content: content}
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return notFound("User with id %d not found", userID)
		}
		return tx.Create(&feedback).Error
	})
	if errors.Is(err, ErrNotFound) {
		return model.Feedback{}, err
	}
	if err != nil {
		return model.Feedback{}, errors.Wrap(err, "create feedback")
	}
	return feedback, nil
}

// ListByUser 最新的反馈在前，没有反馈时返回空切片
func (r *FeedbackRepository) ListByUser(ctx context.Context, userID uint) ([]model.Feedback, error) {
	feedbacks := []model.Feedback{}
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Where("user_id = ?", userID).
			Order("create_time DESC").
			Order("id DESC").
			Find(&feedbacks).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list feedbacks")
	}
	return feedbacks, nil
}

func (r *FeedbackRepository) DeleteByID(ctx context.Context, id uint) error {
	var affected int64
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		res := tx.Delete(&model.Feedback{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return errors.Wrap(err, "delete feedback")
	}
	if affected == 0 {
		return notFound("Feedback not found")
	}
	return nil
}

// ClearByUser 删除用户的全部反馈，没有匹配行时同样成功
func (r *FeedbackRepository) ClearByUser(ctx context.Context, userID uint) (int64, error) {
	var affected int64
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		res := tx.Where("user_id = ?", userID).Delete(&model.Feedback{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "clear feedbacks")
	}
	return affected, nil
}
