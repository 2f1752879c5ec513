package repository

import (
	"fmt"

	"github.com/pkg/errors"
)

// 访问层错误分类，使用 errors.Is 判断
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error 带有面向客户端的提示信息
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Detail: fmt.Sprintf(format, args...)}
}

func conflict(detail string) error {
	return &Error{Kind: ErrConflict, Detail: detail}
}

func unauthorized(detail string) error {
	return &Error{Kind: ErrUnauthorized, Detail: detail}
}
