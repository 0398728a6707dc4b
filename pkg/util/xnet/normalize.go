package xnet

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Normalize 将一条范围文本转换为规范 CIDR 文本。
// 支持的写法见 [ParseRange]。
//
//	Normalize("10")                          // "10.0.0.0/8"
//	Normalize("2001:db8")                    // "2001:db8::/32"
//	Normalize("8.12.144.0 - 8.12.144.255")   // "8.12.144.0/24"
func Normalize(s string) (string, error) {
	p, err := ParseRange(s)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// ParseRange 将一条范围文本解析为前缀。按顺序匹配以下规则：
//   - 含 "-"：视为起止区间，交给 [ParseInterval]
//   - 含 "/"：已经是 CIDR，交给 [ParseCIDR]
//   - 含 ":"：IPv6 部分地址，前缀长度 = 段数 × 16；以 "::" 开头的视为单个主机（/128）
//   - 其余：IPv4 部分地址，前缀长度 = 段数 × 8，缺失的段补 0
//
// "/" 出现在任意位置即按 CIDR 处理，不要求其后是数字；"/" 后的内容不合法时由 [ParseCIDR] 报错。
//
// 部分地址按给出的段数推断精度，而不是按末尾的零推断：
// "10.0" 得到 /16，"10.0.0.0" 得到 /32。
func ParseRange(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "-") {
		return ParseInterval(s)
	}
	if strings.Contains(s, "/") {
		return ParseCIDR(s)
	}

	var (
		cidr string
		err  error
	)
	if strings.Contains(s, ":") {
		cidr, err = inferV6(s)
	} else {
		cidr, err = inferV4(s)
	}
	if err != nil {
		return netip.Prefix{}, parseError(s, err)
	}
	p, err := parseCIDR(cidr)
	if err != nil {
		return netip.Prefix{}, parseError(s, err)
	}
	return p, nil
}

func inferV6(s string) (string, error) {
	if strings.HasPrefix(s, "::") {
		return s + "/128", nil
	}
	core := strings.TrimRight(s, ":")
	segments := strings.Count(core, ":") + 1
	bits := segments * 16
	if bits > 128 {
		return "", fmt.Errorf("%w: too many IPv6 segments", ErrInvalidRange)
	}
	if segments < 8 && !strings.Contains(core, "::") {
		core += "::"
	}
	return core + "/" + strconv.Itoa(bits), nil
}

func inferV4(s string) (string, error) {
	core := strings.TrimSuffix(s, ".")
	groups := strings.Count(core, ".") + 1
	if groups > 4 {
		return "", fmt.Errorf("%w: too many IPv4 octets", ErrInvalidRange)
	}
	return core + strings.Repeat(".0", 4-groups) + "/" + strconv.Itoa(groups*8), nil
}
