package repository

import (
	"context"

	"rongyi_backend/internal/database"
	"rongyi_backend/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SignWordRepository struct {
	store *database.Store
	match Matcher
}

func NewSignWordRepository(store *database.Store, matchMode string) *SignWordRepository {
	return &SignWordRepository{
		store: store,
		match: Matcher{Mode: matchMode, Dialect: store.Dialect()},
	}
}

// Create 插入词条，不做重复检查
func (r *SignWordRepository) Create(ctx context.Context, w model.SignWord) (model.SignWord, error) {
	w.ID = 0
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Create(&w).Error
	})
	if err != nil {
		return model.SignWord{}, errors.Wrap(err, "create sign word")
	}
	return w, nil
}

// ListByCategory 按分类筛选，按词条升序
func (r *SignWordRepository) ListByCategory(ctx context.Context, category string) ([]model.SignWord, error) {
	var words []model.SignWord
	cond, arg := r.match.Equal("category", category)
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Where(cond, arg).Order("word ASC").Order("id ASC").Find(&words).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list sign words by category")
	}
	return words, nil
}

// Search 词条包含 keyword 的子串匹配
func (r *SignWordRepository) Search(ctx context.Context, keyword string) ([]model.SignWord, error) {
	var words []model.SignWord
	cond, arg := r.match.Contains("word", keyword)
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Where(cond, arg).Order("id ASC").Find(&words).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "search sign words")
	}
	return words, nil
}

// Categories 去重后的全部分类，升序
func (r *SignWordRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Model(&model.SignWord{}).Distinct().Order("category ASC").Pluck("category", &categories).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (r *SignWordRepository) GetByID(ctx context.Context, id uint) (model.SignWord, error) {
	var w model.SignWord
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.First(&w, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.SignWord{}, notFound("Word not found")
	}
	if err != nil {
		return model.SignWord{}, errors.Wrap(err, "get sign word")
	}
	return w, nil
}
