package handler

import (
	"net/http"

	"rongyi_backend/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CreateFeedback 提交反馈，用户不存在时返回 404
func CreateFeedback(feedbacks FeedbackStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.FeedbackCreate
		if err := c.ShouldBindJSON(&req); err != nil {
			abortValidation(c, err)
			return
		}

		fb, err := feedbacks.Create(c.Request.Context(), *req.UserID, *req.Type, *req.Content)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.ToFeedbackDTO(fb))
	}
}

// ListUserFeedbacks 用户的反馈列表，最新在前
func ListUserFeedbacks(feedbacks FeedbackStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "id")
		if !ok {
			return
		}

		list, err := feedbacks.ListByUser(c.Request.Context(), userID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToFeedbackDTOs(list))
	}
}

func DeleteFeedback(feedbacks FeedbackStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}

		if err := feedbacks.DeleteByID(c.Request.Context(), id); err != nil {
			abortWithError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ClearUserFeedbacks 清空用户反馈，即使没有反馈被删除也返回 204
func ClearUserFeedbacks(feedbacks FeedbackStore, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := pathID(c, "id")
		if !ok {
			return
		}

		n, err := feedbacks.ClearByUser(c.Request.Context(), userID)
		if err != nil {
			abortWithError(c, err)
			return
		}
		log.WithFields(logrus.Fields{"user_id": userID, "deleted": n}).Info("cleared feedbacks")
		c.Status(http.StatusNoContent)
	}
}
