package xnet

import (
	"fmt"
	"net/netip"
	"strings"
)

// ParseAddr 解析单个 IPv4 / IPv6 地址文本。
//
// IPv4-mapped IPv6 地址（如 "::ffff:10.0.0.5"）统一归一化为纯 IPv4，
// 这样以 IPv4 规则配置的访问控制列表也能匹配经双栈 socket 进入的客户端。
// 输入会自动去除首尾空白字符。失败时返回 [*ParseError]，其 Err 包装 [ErrInvalidAddress]。
func ParseAddr(s string) (netip.Addr, error) {
	s = strings.TrimSpace(s)
	addr, err := parseAddr(s)
	if err != nil {
		return netip.Addr{}, parseError(s, err)
	}
	return addr, nil
}

func parseAddr(s string) (netip.Addr, error) {
	// netip 会保留 zone，而前缀匹配对带 zone 的地址恒为 false，
	// 静默接受会造成规则看似生效实则失配。
	if strings.Contains(s, "%") {
		return netip.Addr{}, fmt.Errorf("%w: IPv6 zone ID is not supported", ErrInvalidAddress)
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return addr.Unmap(), nil
}

// ParseCIDR 解析 "address/prefix" 形式的 CIDR 文本。
//
// 前缀长度超过地址族位宽或地址部分非法时返回 [*ParseError]（包装 [ErrInvalidRange]）。
// 返回的前缀已清零主机位。IPv4-mapped IPv6 前缀在 bits ≥ 96 时转换为对应的
// IPv4 前缀（"::ffff:10.0.0.0/104" → "10.0.0.0/8"），bits < 96 无法用 IPv4 表达，直接拒绝。
func ParseCIDR(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	p, err := parseCIDR(s)
	if err != nil {
		return netip.Prefix{}, parseError(s, err)
	}
	return p, nil
}

func parseCIDR(s string) (netip.Prefix, error) {
	if strings.Contains(s, "%") {
		return netip.Prefix{}, fmt.Errorf("%w: IPv6 zone ID is not supported", ErrInvalidRange)
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
	}
	return CanonicalPrefix(p)
}

// CanonicalPrefix 返回 p 的规范形式：主机位清零，IPv4-mapped IPv6 前缀转换为 IPv4 前缀。
// 无效前缀、带 zone 的前缀以及 bits < 96 的 IPv4-mapped 前缀返回包装 [ErrInvalidRange] 的错误。
func CanonicalPrefix(p netip.Prefix) (netip.Prefix, error) {
	if !p.IsValid() {
		return netip.Prefix{}, fmt.Errorf("%w: invalid prefix", ErrInvalidRange)
	}
	if p.Addr().Zone() != "" {
		return netip.Prefix{}, fmt.Errorf("%w: IPv6 zone ID is not supported", ErrInvalidRange)
	}
	if p.Addr().Is4In6() {
		if p.Bits() < 96 {
			return netip.Prefix{}, fmt.Errorf("%w: IPv4-mapped prefix shorter than /96", ErrInvalidRange)
		}
		p = netip.PrefixFrom(p.Addr().Unmap(), p.Bits()-96)
	}
	return p.Masked(), nil
}
