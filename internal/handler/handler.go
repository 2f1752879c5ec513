package handler

import (
	"context"
	"net/http"
	"strconv"

	"rongyi_backend/internal/model"
	"rongyi_backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// --- 访问层接口 ---

type WordStore interface {
	Create(ctx context.Context, w model.SignWord) (model.SignWord, error)
	ListByCategory(ctx context.Context, category string) ([]model.SignWord, error)
	Search(ctx context.Context, keyword string) ([]model.SignWord, error)
	Categories(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id uint) (model.SignWord, error)
}

type UserStore interface {
	Register(ctx context.Context, account, password string) (model.User, error)
	Login(ctx context.Context, account, password string) (model.User, error)
	GetByID(ctx context.Context, id uint) (model.User, error)
}

type FeedbackStore interface {
	Create(ctx context.Context, userID uint, typ, content string) (model.Feedback, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Feedback, error)
	DeleteByID(ctx context.Context, id uint) error
	ClearByUser(ctx context.Context, userID uint) (int64, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

// --- 错误响应 ---

// abortWithError 将访问层错误映射为 HTTP 状态码，响应体为 {"detail": "..."}
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		// 与原接口保持一致，重复账号返回 400
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrUnauthorized):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		// 原因交给日志中间件记录，不返回给客户端
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, gin.H{"detail": "Internal Server Error"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"detail": err.Error()})
}

// abortValidation 请求体或参数校验失败
func abortValidation(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// pathID 解析路径中的整数 ID
// 负数是合法整数但不对应任何记录，按 0 交给访问层返回 404
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortValidation(c, errors.Errorf("%s must be an integer", name))
		return 0, false
	}
	if id < 0 {
		id = 0
	}
	return uint(id), true
}

// requiredQuery 参数必须出现，但允许为空字符串
func requiredQuery(c *gin.Context, name string) (string, bool) {
	value, ok := c.GetQuery(name)
	if !ok {
		abortValidation(c, errors.Errorf("query parameter %s is required", name))
		return "", false
	}
	return value, true
}
