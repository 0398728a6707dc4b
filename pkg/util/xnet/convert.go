package xnet

import (
	"encoding/binary"
	"math/big"
	"net/netip"
)

// AddrFromUint32 从 IPv4 的 uint32 表示创建 [netip.Addr]。
// 使用网络字节序（大端）。
func AddrFromUint32(v uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return netip.AddrFrom4(b)
}

// AddrToUint32 将 IPv4 地址转换为 uint32（网络字节序）。
// 非 IPv4 地址返回 (0, false)。
func AddrToUint32(addr netip.Addr) (uint32, bool) {
	if !addr.Is4() && !addr.Is4In6() {
		return 0, false
	}
	b := addr.Unmap().As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// AddrFromBigInt 从 [*big.Int] 创建 [netip.Addr]。
// 需指定目标 IP 版本，值必须落在该版本的位宽内。
func AddrFromBigInt(v *big.Int, ver Version) (netip.Addr, error) {
	if v == nil {
		return netip.Addr{}, ErrInvalidBigInt
	}
	width := ver.Bits()
	if width == 0 {
		return netip.Addr{}, ErrInvalidVersion
	}
	if v.Sign() < 0 || v.BitLen() > width {
		return netip.Addr{}, ErrInvalidBigInt
	}
	if ver == V4 {
		return AddrFromUint32(uint32(v.Uint64())), nil
	}
	// FillBytes 按大端填充定长缓冲区，不会出现符号扩展。
	var b [16]byte
	v.FillBytes(b[:])
	return netip.AddrFrom16(b), nil
}

// AddrToBigInt 将地址转换为 [*big.Int]。
// IPv4-mapped IPv6 按 IPv4 的 32 位值处理。
// 无效地址返回零值 big.Int。
func AddrToBigInt(addr netip.Addr) *big.Int {
	if !addr.IsValid() {
		return new(big.Int)
	}
	if addr.Is4() || addr.Is4In6() {
		v, _ := AddrToUint32(addr)
		return new(big.Int).SetUint64(uint64(v))
	}
	b := addr.As16()
	return new(big.Int).SetBytes(b[:])
}

// UnmapToIPv4 将 IPv4-mapped IPv6 地址转换为纯 IPv4 地址。
// 例如：::ffff:192.168.1.1 → 192.168.1.1
// 纯 IPv4 与非映射 IPv6 原样返回，无效地址返回零值。
func UnmapToIPv4(addr netip.Addr) netip.Addr {
	if !addr.IsValid() {
		return netip.Addr{}
	}
	if addr.Is4In6() {
		return addr.Unmap()
	}
	return addr
}
