package xacl

import (
	"fmt"
	"strings"
)

// Policy 决定 [ACL.Permits] 如何解释匹配结果。
type Policy uint8

const (
	// PolicyAllowlist 白名单：所有地址都命中才放行。
	PolicyAllowlist Policy = iota
	// PolicyDenylist 黑名单：任一地址命中即拒绝。
	PolicyDenylist
)

// String 返回策略名称。
func (p Policy) String() string {
	switch p {
	case PolicyAllowlist:
		return "allowlist"
	case PolicyDenylist:
		return "denylist"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

func (p Policy) valid() bool {
	return p == PolicyAllowlist || p == PolicyDenylist
}

// ParsePolicy 解析策略名称，大小写不敏感。
// 空字符串视为 [PolicyAllowlist]；"whitelist" / "blacklist" 作为别名接受。
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "allowlist", "whitelist":
		return PolicyAllowlist, nil
	case "denylist", "blacklist":
		return PolicyDenylist, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}
