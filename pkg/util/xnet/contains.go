package xnet

import "net/netip"

// Contains 报告 addr 是否落在 p 内：两者按 p 的前缀长度截断后高位相等。
// addr 为 IPv4-mapped IPv6 时按 IPv4 比较；地址族不同或带 zone 的地址恒为 false。
func Contains(p netip.Prefix, addr netip.Addr) bool {
	return p.Contains(UnmapToIPv4(addr))
}
