package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rongyi_backend/internal/config"
	"rongyi_backend/internal/database"
	"rongyi_backend/internal/handler"
	"rongyi_backend/internal/pkg/logger"
	"rongyi_backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("配置加载失败: %v", err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	gin.SetMode(cfg.GinMode)

	// 连接数据库，失败时拒绝启动
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := database.Open(ctx, database.Options{
		DSN:             cfg.DatabaseURL,
		SlowQuery:       cfg.DBSlowQuery,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		Log:             log,
	})
	cancel()
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}
	defer store.Close()

	// 自动建表 (已存在则跳过)
	log.Info("正在尝试创建数据库表...")
	if err := store.Migrate(context.Background()); err != nil {
		log.WithError(err).Error("创建数据库表时出错")
	} else {
		log.Info("数据库表创建成功（如果不存在）")
	}

	r := handler.NewRouter(handler.Deps{
		Words:       repository.NewSignWordRepository(store, cfg.TextMatch),
		Users:       repository.NewUserRepository(store, cfg.BcryptCost),
		Feedbacks:   repository.NewFeedbackRepository(store),
		DB:          store,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("服务器启动在 http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to serve: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Info("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
}
