package repository

import (
	"strings"

	"rongyi_backend/internal/config"
	"rongyi_backend/internal/database"
)

// likeEscape 作为 LIKE 的转义字符，三种数据库的字符串字面量中都无需再转义
const likeEscape = "!"

var likeReplacer = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// Matcher 生成文本比较的 SQL 片段
//
// engine 模式跟随数据库默认规则：PostgreSQL 区分大小写，SQLite 的 LIKE 与
// MySQL 的默认排序规则对 ASCII 不区分大小写。sensitive/insensitive 在所有
// 数据库上给出一致结果。insensitive 依赖 LOWER()，SQLite 只处理 ASCII。
type Matcher struct {
	Mode    string
	Dialect string
}

// Equal 返回 col 与单个参数相等的条件
func (m Matcher) Equal(col, value string) (string, any) {
	switch m.Mode {
	case config.MatchInsensitive:
		return "LOWER(" + col + ") = LOWER(?)", value
	case config.MatchSensitive:
		if m.Dialect == database.MySQL {
			return "CAST(" + col + " AS BINARY) = CAST(? AS BINARY)", value
		}
	}
	return col + " = ?", value
}

// Contains 返回 col 包含子串 keyword 的条件，keyword 中的通配符按字面匹配
func (m Matcher) Contains(col, keyword string) (string, any) {
	pattern := "%" + likeReplacer.Replace(keyword) + "%"

	switch m.Mode {
	case config.MatchInsensitive:
		return "LOWER(" + col + ") LIKE LOWER(?) ESCAPE '" + likeEscape + "'", pattern
	case config.MatchSensitive:
		switch m.Dialect {
		case database.SQLite:
			return "instr(" + col + ", ?) > 0", keyword
		case database.MySQL:
			return "LOCATE(CAST(? AS BINARY), CAST(" + col + " AS BINARY)) > 0", keyword
		}
	}
	return col + " LIKE ? ESCAPE '" + likeEscape + "'", pattern
}
