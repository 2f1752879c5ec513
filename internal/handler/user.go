package handler

import (
	"net/http"

	"rongyi_backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// RegisterUser 注册
func RegisterUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UserCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			abortValidation(c, err)
			return
		}

		user, err := users.Register(c.Request.Context(), *req.Account, *req.Password)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToUserDTO(user))
	}
}

// LoginUser 登录，仅校验账号密码，不签发会话
func LoginUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UserCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			abortValidation(c, err)
			return
		}

		user, err := users.Login(c.Request.Context(), *req.Account, *req.Password)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToUserDTO(user))
	}
}

func GetUser(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		user, err := users.GetByID(c.Request.Context(), id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToUserDTO(user))
	}
}
