// Package util 提供通用工具相关的子包。
//
// 子包列表：
//   - xnet: IP 地址与范围解析，基于 net/netip + go4.org/netipx（部分地址推断、区间转 CIDR、IPv4-mapped 归一化）
package util
