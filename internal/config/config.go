package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// 文本匹配模式 (分类筛选与关键词搜索)
const (
	MatchEngine      = "engine"      // 跟随数据库默认排序规则
	MatchSensitive   = "sensitive"   // 强制区分大小写
	MatchInsensitive = "insensitive" // 强制不区分大小写
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Port        string `env:"PORT" envDefault:"8000"`
	GinMode     string `env:"GIN_MODE" envDefault:"release"`

	TextMatch  string `env:"TEXT_MATCH" envDefault:"engine"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"12"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
	LogFile   string `env:"LOG_FILE"`

	DBSlowQuery       time.Duration `env:"DB_SLOW_QUERY" envDefault:"200ms"`
	DBMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// LoadConfig 读取 .env (本地开发用) 与环境变量
// DATABASE_URL 未设置时直接返回错误，进程不应启动
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验枚举类配置
func (c *Config) Validate() error {
	c.TextMatch = strings.ToLower(strings.TrimSpace(c.TextMatch))
	switch c.TextMatch {
	case MatchEngine, MatchSensitive, MatchInsensitive:
	default:
		return fmt.Errorf("invalid TEXT_MATCH %q (engine|sensitive|insensitive)", c.TextMatch)
	}

	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("invalid LOG_FORMAT %q (json|text)", c.LogFormat)
	}

	// 与 bcrypt.MinCost / bcrypt.MaxCost 一致
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("invalid BCRYPT_COST %d (4-31)", c.BcryptCost)
	}
	return nil
}

// Addr 返回 http.Server 监听地址
func (c *Config) Addr() string {
	return ":" + c.Port
}
