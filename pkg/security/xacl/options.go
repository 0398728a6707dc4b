package xacl

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// maxCacheSize 判定缓存最大条目数上限。
const maxCacheSize = 1 << 24

// Option 定义 ACL 可选配置函数类型。
type Option func(*options)

type options struct {
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	policy        Policy
	cacheEnabled  bool
	cacheSize     int
}

func defaultOptions() options {
	return options{
		logger:        slog.Default(),
		meterProvider: otel.GetMeterProvider(),
		policy:        PolicyAllowlist,
	}
}

// WithLogger 设置自定义日志记录器。
// 默认使用 slog.Default()。传入 nil 将被忽略，保持使用默认值。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMeterProvider 设置 OTel MeterProvider。
// 默认使用 otel.GetMeterProvider()。传入 nil 将被忽略。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(o *options) {
		if provider != nil {
			o.meterProvider = provider
		}
	}
}

// WithPolicy 设置 [ACL.Permits] 使用的访问策略，默认 [PolicyAllowlist]。
func WithPolicy(p Policy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithCache 为查询结果启用容量为 size 的 LRU 缓存。
// 缓存以归一化后的地址为键，每次成功 Add 后整体清空。
// size 必须在 (0, 16777216] 范围内，否则 [New] 返回 [ErrInvalidCacheSize]。
func WithCache(size int) Option {
	return func(o *options) {
		o.cacheEnabled = true
		o.cacheSize = size
	}
}
