package xacl

import "errors"

var (
	// ErrInvalidPrefix 表示通过 [ACL.AddPrefix] 传入的前缀无效。
	ErrInvalidPrefix = errors.New("xacl: invalid prefix")

	// ErrInvalidPolicy 表示无法识别的访问策略。
	ErrInvalidPolicy = errors.New("xacl: invalid policy")

	// ErrInvalidCacheSize 表示缓存容量不在 (0, 16777216] 范围内。
	ErrInvalidCacheSize = errors.New("xacl: invalid cache size")

	// ErrConfig 表示配置数据无法解析或反序列化。
	ErrConfig = errors.New("xacl: invalid config")
)
