package handler

import (
	"net/http"

	"rongyi_backend/internal/dto"

	"github.com/gin-gonic/gin"
)

// CreateWord 创建词条
func CreateWord(words WordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SignWordCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			abortValidation(c, err)
			return
		}

		created, err := words.Create(c.Request.Context(), req.ToModel())
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToSignWordDTO(created))
	}
}

// ListWordsByCategory 按分类获取词条
func ListWordsByCategory(words WordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, ok := requiredQuery(c, "category")
		if !ok {
			return
		}

		list, err := words.ListByCategory(c.Request.Context(), category)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToSignWordDTOs(list))
	}
}

// SearchWords 关键词子串搜索
func SearchWords(words WordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword, ok := requiredQuery(c, "keyword")
		if !ok {
			return
		}

		list, err := words.Search(c.Request.Context(), keyword)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToSignWordDTOs(list))
	}
}

// ListCategories 获取全部分类
func ListCategories(words WordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := words.Categories(c.Request.Context())
		if err != nil {
			abortWithError(c, err)
			return
		}
		if categories == nil {
			categories = []string{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GetWord 获取词条详情
func GetWord(words WordStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		w, err := words.GetByID(c.Request.Context(), id)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToSignWordDTO(w))
	}
}
