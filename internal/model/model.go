package model

// All 返回需要自动建表的模型 (按依赖顺序)
func All() []any {
	return []any{&SignWord{}, &User{}, &Feedback{}}
}
