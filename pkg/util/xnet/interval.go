package xnet

import (
	"fmt"
	"math/big"
	"net/netip"
	"strings"

	"go4.org/netipx"
)

// ParseInterval 解析 "start - end" 形式的区间文本并转换为单个 CIDR 块。
// 分隔符两侧的空白会被忽略。转换规则见 [IntervalToPrefix]。
func ParseInterval(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	startStr, endStr, _ := strings.Cut(s, "-")
	startStr = strings.TrimSpace(startStr)
	endStr = strings.TrimSpace(endStr)
	if startStr == "" || endStr == "" || strings.Contains(endStr, "-") {
		return netip.Prefix{}, parseError(s, fmt.Errorf("%w: malformed interval", ErrInvalidRange))
	}

	start, err := parseAddr(startStr)
	if err != nil {
		return netip.Prefix{}, parseError(s, fmt.Errorf("%w: invalid range start: %w", ErrInvalidRange, err))
	}
	end, err := parseAddr(endStr)
	if err != nil {
		return netip.Prefix{}, parseError(s, fmt.Errorf("%w: invalid range end: %w", ErrInvalidRange, err))
	}
	p, err := IntervalToPrefix(start, end)
	if err != nil {
		return netip.Prefix{}, parseError(s, err)
	}
	return p, nil
}

// IntervalToPrefix 将起止地址区间转换为单个 CIDR 块。
//
// 计算方式：
//
//	count  = end - start + 1
//	bits   = floor(log2(count))
//	prefix = 位宽 - bits
//	base   = start 清零低 bits 位
//
// 这是尽力而为的转换：count 不是 2 的幂，或 start 未按块大小对齐时，
// 结果块与原区间不完全相等（可能少覆盖也可能多覆盖）。
// 需要精确覆盖的调用方应提供对齐的 2 的幂区间，可用 [IsExact] 校验；
// 单个 CIDR 无法表达任意区间，这里不做多块拆分。
//
// 两端必须属于同一地址族（IPv4-mapped IPv6 按 IPv4 处理），否则返回 [ErrFamilyMismatch]；
// end < start 返回 [ErrInvertedRange]。
func IntervalToPrefix(start, end netip.Addr) (netip.Prefix, error) {
	start, end = UnmapToIPv4(start), UnmapToIPv4(end)
	if !start.IsValid() || !end.IsValid() {
		return netip.Prefix{}, fmt.Errorf("%w: invalid range endpoint", ErrInvalidAddress)
	}
	ver := AddrVersion(start)
	if ver != AddrVersion(end) {
		return netip.Prefix{}, fmt.Errorf("%w: %s - %s", ErrFamilyMismatch, start, end)
	}
	start, end = start.WithZone(""), end.WithZone("")
	if end.Less(start) {
		return netip.Prefix{}, fmt.Errorf("%w: %s - %s", ErrInvertedRange, start, end)
	}
	base, bits, err := intervalBlock(start, end, ver)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(base, ver.Bits()-bits), nil
}

// intervalBlock 返回块基址与块大小的位数 floor(log2(end-start+1))，
// 调用方保证 start <= end 且同族。
// IPv4 与 IPv6 共用同一套 big.Int 运算，仅位宽不同。
func intervalBlock(start, end netip.Addr, ver Version) (netip.Addr, int, error) {
	lo := AddrToBigInt(start)
	count := new(big.Int).Sub(AddrToBigInt(end), lo)
	count.Add(count, big.NewInt(1))
	bits := count.BitLen() - 1

	mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	mask.Sub(mask, big.NewInt(1))
	base, err := AddrFromBigInt(lo.AndNot(lo, mask), ver)
	if err != nil {
		return netip.Addr{}, 0, err
	}
	return base, bits, nil
}

// IsExact 报告前缀 p 是否恰好覆盖 [start, end]。
// 用于识别 [IntervalToPrefix] 的近似结果。
func IsExact(p netip.Prefix, start, end netip.Addr) bool {
	if !p.IsValid() {
		return false
	}
	r := netipx.RangeOfPrefix(p.Masked())
	return r.From() == UnmapToIPv4(start) && r.To() == UnmapToIPv4(end)
}
