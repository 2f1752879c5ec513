package handler

import (
	"rongyi_backend/internal/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps 路由依赖，由 main 显式注入
type Deps struct {
	Words       WordStore
	Users       UserStore
	Feedbacks   FeedbackStore
	DB          Pinger
	Log         *logrus.Logger
	CORSOrigins []string
}

// NewRouter 注册全部路由
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		gin.RecoveryWithWriter(d.Log.WriterLevel(logrus.ErrorLevel)),
		middleware.CORS(d.CORSOrigins),
	)

	r.GET("/", Root())
	r.GET("/healthz", Health(d.DB))

	// === 手语词条 ===
	r.POST("/words/", CreateWord(d.Words))
	r.GET("/words/", ListWordsByCategory(d.Words))
	r.GET("/words/search/", SearchWords(d.Words))
	r.GET("/words/:id", GetWord(d.Words))
	r.GET("/categories/", ListCategories(d.Words))

	// === 用户 ===
	r.POST("/users/", RegisterUser(d.Users))
	r.POST("/users/login", LoginUser(d.Users))
	r.GET("/users/:id", GetUser(d.Users))

	// === 反馈 ===
	r.POST("/feedbacks/", CreateFeedback(d.Feedbacks))
	r.DELETE("/feedbacks/:id", DeleteFeedback(d.Feedbacks))
	r.GET("/users/:id/feedbacks/", ListUserFeedbacks(d.Feedbacks))
	r.DELETE("/users/:id/feedbacks/", ClearUserFeedbacks(d.Feedbacks, d.Log))

	return r
}
