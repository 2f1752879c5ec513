package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 日志文件轮转参数
const (
	MaxSizeMB  = 50
	MaxBackups = 5
	MaxAgeDays = 30
)

type Options struct {
	Level  string
	Format string // json | text
	File   string // 为空时只输出到 stdout
}

// New 创建进程日志器
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if opts.Format == "text" {
		log.Formatter = &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		}
	} else {
		log.Formatter = &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
			TimestampFormat: time.RFC3339Nano,
		}
	}

	log.Out = os.Stdout
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			log.WithError(err).WithField("path", opts.File).Warn("无法创建日志目录，仅输出到控制台")
			return log
		}
		log.Out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    MaxSizeMB,
			MaxBackups: MaxBackups,
			MaxAge:     MaxAgeDays,
			Compress:   true,
		})
	}
	return log
}

// Discard 返回丢弃所有输出的日志器 (测试用)
func Discard() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}
