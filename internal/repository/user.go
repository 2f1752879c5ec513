package repository

import (
	"context"

	"rongyi_backend/internal/database"
	"rongyi_backend/internal/model"
	"rongyi_backend/internal/pkg/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository struct {
	store      *database.Store
	bcryptCost int
}

func NewUserRepository(store *database.Store, bcryptCost int) *UserRepository {
	return &UserRepository{store: store, bcryptCost: bcryptCost}
}

// Register 账号已存在时返回 ErrConflict，密码以 bcrypt 哈希保存
func (r *UserRepository) Register(ctx context.Context, account, password string) (model.User, error) {
	// 哈希计算较慢，放在会话之外
	hashed, err := utils.HashPassword(password, r.bcryptCost)
	if err != nil {
		return model.User{}, errors.Wrap(err, "hash password")
	}

	user := model.User{Account: account, Password: hashed}
	err = r.store.WithSession(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("account = ?", account).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return conflict("账号已存在")
		}
		return tx.Create(&user).Error
	})
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, ErrConflict):
		return model.User{}, err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// 并发注册由唯一索引兜底
		return model.User{}, conflict("账号已存在")
	}
	return model.User{}, errors.Wrap(err, "register user")
}

// Login 账号不存在与密码错误返回同一个错误
func (r *UserRepository) Login(ctx context.Context, account, password string) (model.User, error) {
	var user model.User
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Where("account = ?", account).First(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, unauthorized("账号或密码错误")
	}
	if err != nil {
		return model.User{}, errors.Wrap(err, "login")
	}
	if !utils.CheckPassword(user.Password, password) {
		return model.User{}, unauthorized("账号或密码错误")
	}
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (model.User, error) {
	var user model.User
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.First(&user, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, notFound("User not found")
	}
	if err != nil {
		return model.User{}, errors.Wrap(err, "get user")
	}
	return user, nil
}

// List 全部用户，最新注册在前 (运维工具使用)
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.store.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Order("create_time DESC").Order("id DESC").Find(&users).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "list users")
	}
	return users, nil
}

// ResetPassword 重置密码 (运维工具使用)
func (r *UserRepository) ResetPassword(ctx context.Context, account, password string) error {
	hashed, err := utils.HashPassword(password, r.bcryptCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	var affected int64
	err = r.store.WithSession(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&model.User{}).Where("account = ?", account).Update("password", hashed)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return errors.Wrap(err, "reset password")
	}
	if affected == 0 {
		return notFound("User not found")
	}
	return nil
}
