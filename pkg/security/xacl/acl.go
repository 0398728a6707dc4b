package xacl

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go4.org/netipx"

	"github.com/omeyang/ipacl/pkg/util/xnet"
)

// ACL 是按地址族分开存放的 CIDR 访问控制列表。
//
// 范围按插入顺序保存，查询时按同一顺序线性扫描，命中第一个包含的范围即停止。
// 必须通过 [New] 或 [NewFromConfig] 创建，零值不可用。
// 所有方法都是并发安全的：Add 独占写锁，查询方法共享读锁。
type ACL struct {
	mu      sync.RWMutex
	v4      family
	v6      family
	cache   *lru.Cache[netip.Addr, bool]
	metrics *metrics
	logger  *slog.Logger
	policy  Policy
}

// New 创建 ACL，并以 ranges 作为初始范围。ranges 可以为空。
// 范围写法见 [xnet.ParseRange]；任一范围无效时返回错误且不创建 ACL。
func New(ranges []string, opts ...Option) (*ACL, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if !o.policy.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPolicy, o.policy)
	}

	m, err := newMetrics(o.meterProvider)
	if err != nil {
		return nil, err
	}

	a := &ACL{
		v4:      family{version: xnet.V4},
		v6:      family{version: xnet.V6},
		metrics: m,
		logger:  o.logger,
		policy:  o.policy,
	}

	if o.cacheEnabled {
		if o.cacheSize <= 0 || o.cacheSize > maxCacheSize {
			return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, o.cacheSize)
		}
		cache, err := lru.New[netip.Addr, bool](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCacheSize, err)
		}
		a.cache = cache
	}

	if err := a.Add(ranges...); err != nil {
		return nil, err
	}
	return a, nil
}

// Add 追加一个或多个范围。
//
// 设计决策: 整批先校验后提交。任一范围无法解析时返回错误（可用 errors.As 取出
// [*xnet.ParseError]），该批次中的所有范围都不会写入；成功时全部按顺序追加。
// 静默漏掉一条规则属于安全问题，因此解析错误总是向上传递。
func (a *ACL) Add(ranges ...string) error {
	if len(ranges) == 0 {
		return nil
	}
	parsed := make([]netip.Prefix, 0, len(ranges))
	for i, s := range ranges {
		p, err := xnet.ParseRange(s)
		if err != nil {
			a.logger.Warn("xacl: range rejected, batch discarded",
				slog.Int("index", i), slog.String("range", s), slog.Any("error", err))
			return fmt.Errorf("xacl: range [%d]: %w", i, err)
		}
		parsed = append(parsed, p)
	}
	a.commit(parsed)
	return nil
}

// AddPrefix 追加已解析的前缀，提交策略与 [ACL.Add] 相同。
// 前缀会被归一化（主机位清零、IPv4-mapped 转换为 IPv4），无效前缀返回 [ErrInvalidPrefix]。
func (a *ACL) AddPrefix(prefixes ...netip.Prefix) error {
	if len(prefixes) == 0 {
		return nil
	}
	parsed := make([]netip.Prefix, 0, len(prefixes))
	for i, p := range prefixes {
		canon, err := xnet.CanonicalPrefix(p)
		if err != nil {
			a.logger.Warn("xacl: prefix rejected, batch discarded",
				slog.Int("index", i), slog.String("prefix", p.String()), slog.Any("error", err))
			return fmt.Errorf("%w: [%d] %s: %w", ErrInvalidPrefix, i, p, err)
		}
		parsed = append(parsed, canon)
	}
	a.commit(parsed)
	return nil
}

func (a *ACL) commit(prefixes []netip.Prefix) {
	var n4, n6 int64

	a.mu.Lock()
	for _, p := range prefixes {
		f := a.familyOf(xnet.PrefixVersion(p))
		f.prefixes = append(f.prefixes, p)
		if f.version == xnet.V4 {
			n4++
		} else {
			n6++
		}
	}
	if a.cache != nil {
		a.cache.Purge()
	}
	a.mu.Unlock()

	a.metrics.recordRanges(context.Background(), n4, n6)
	a.logger.Debug("xacl: ranges added", slog.Int64("ipv4", n4), slog.Int64("ipv6", n6))
}

// Check 返回 addrs 中命中任一范围的地址个数。
//
// 无法解析的地址（包括带 zone 的地址）计为未命中，不返回错误：
// 写入路径严格、查询路径宽松。IPv4-mapped IPv6 地址按 IPv4 匹配。
func (a *ACL) Check(addrs ...string) int {
	var (
		tally    checkTally
		firstBad string
		firstErr error
	)

	a.mu.RLock()
	for _, s := range addrs {
		addr, err := xnet.ParseAddr(s)
		if err != nil {
			if tally.invalid == 0 {
				firstBad, firstErr = s, err
			}
			tally.invalid++
			continue
		}
		if a.containsLocked(addr) {
			tally.matched++
		} else {
			tally.unmatched++
		}
	}
	a.mu.RUnlock()

	// 日志在锁外输出，慢 handler 不会阻塞 Add。
	if tally.invalid > 0 {
		a.logger.Debug("xacl: unparseable addresses treated as no match",
			slog.Int64("count", tally.invalid),
			slog.String("first", firstBad), slog.Any("error", firstErr))
	}
	a.metrics.recordChecks(context.Background(), tally)
	return int(tally.matched)
}

// CheckAddr 报告单个地址是否命中任一范围。
// 无效地址或带 zone 的地址返回 false。
func (a *ACL) CheckAddr(addr netip.Addr) bool {
	var tally checkTally
	matched := false

	if !addr.IsValid() || addr.Zone() != "" {
		tally.invalid++
	} else {
		a.mu.RLock()
		matched = a.containsLocked(xnet.UnmapToIPv4(addr))
		a.mu.RUnlock()
		if matched {
			tally.matched++
		} else {
			tally.unmatched++
		}
	}

	a.metrics.recordChecks(context.Background(), tally)
	return matched
}

// containsLocked 调用方必须持有读锁。addr 必须已归一化。
func (a *ACL) containsLocked(addr netip.Addr) bool {
	if a.cache != nil {
		if v, ok := a.cache.Get(addr); ok {
			return v
		}
	}
	matched := a.familyOf(xnet.AddrVersion(addr)).contains(addr)
	if a.cache != nil {
		a.cache.Add(addr, matched)
	}
	return matched
}

func (a *ACL) familyOf(v xnet.Version) *family {
	if v == xnet.V4 {
		return &a.v4
	}
	return &a.v6
}

// CheckAll 白名单语义：所有地址都命中时返回 true。
// 空输入返回 true。
func (a *ACL) CheckAll(addrs ...string) bool {
	return a.Check(addrs...) == len(addrs)
}

// CheckAny 黑名单语义：任一地址命中时返回 true。
func (a *ACL) CheckAny(addrs ...string) bool {
	return a.Check(addrs...) > 0
}

// Permits 按 ACL 的访问策略判断是否放行 addrs：
// [PolicyAllowlist] 等价于 CheckAll，[PolicyDenylist] 等价于 !CheckAny。
func (a *ACL) Permits(addrs ...string) bool {
	if a.policy == PolicyDenylist {
		return !a.CheckAny(addrs...)
	}
	return a.CheckAll(addrs...)
}

// Policy 返回 ACL 的访问策略。
func (a *ACL) Policy() Policy {
	return a.policy
}

// Len 返回已保存的范围总数。
func (a *ACL) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.v4.prefixes) + len(a.v6.prefixes)
}

// Prefixes 返回所有范围的副本，IPv4 在前，各自保持插入顺序。
func (a *ACL) Prefixes() []netip.Prefix {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]netip.Prefix, 0, len(a.v4.prefixes)+len(a.v6.prefixes))
	out = append(out, a.v4.prefixes...)
	return append(out, a.v6.prefixes...)
}

// IPSet 将当前范围编译为合并去重后的 [*netipx.IPSet]，支持 O(log n) 查询。
// 返回的是快照，之后的 Add 不会反映到其中。
// IPSet 不做 IPv4-mapped 归一化，查询前应先调用 [xnet.UnmapToIPv4]。
func (a *ACL) IPSet() (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, p := range a.Prefixes() {
		b.AddPrefix(p)
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("xacl: build IPSet: %w", err)
	}
	return set, nil
}

// String 以 ", " 连接所有范围的 CIDR 文本（IPv4 在前），仅用于日志与调试。
func (a *ACL) String() string {
	prefixes := a.Prefixes()
	parts := make([]string, len(prefixes))
	for i, p := range prefixes {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}
