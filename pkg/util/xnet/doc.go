// Package xnet 提供访问控制列表所需的 IP 地址与范围解析工具。
//
// xnet 基于 Go 标准库 [net/netip] 和社区库 [go4.org/netipx] 构建，
// 直接以 [netip.Addr] / [netip.Prefix] 作为地址与 CIDR 块的表示。
//
// # 核心功能
//
//   - version.go: IP 版本类型 [Version]、位宽及 [AddrVersion] 判断
//   - parse.go: 地址与 CIDR 解析（[ParseAddr]、[ParseCIDR]），IPv4-mapped IPv6 归一化为 IPv4
//   - normalize.go: 宽松写法（部分地址、区间）归一化为规范 CIDR（[Normalize]、[ParseRange]）
//   - interval.go: 起止区间转换为单个 CIDR 块（[IntervalToPrefix]、[ParseInterval]）
//   - convert.go: uint32 / big.Int 与 [netip.Addr] 互转
//   - contains.go: 前缀包含判断
//
// # 支持的范围写法
//
//	"10.0.0.0/8"                  CIDR，原样解析
//	"10.1.2.3"                    单个 IPv4 主机，/32
//	"10" / "10.1" / "10.1.2"      部分 IPv4 地址，/8 /16 /24，缺失段补 0
//	"2001:db8" / "2001:db8::"     部分 IPv6 地址，前缀长度 = 段数 × 16（/32）
//	"::1" / "::ffff:10.0.0.5"     以 "::" 开头视为单个主机（/128）
//	"8.12.144.0 - 8.12.144.255"   起止区间，转换为 8.12.144.0/24
//
// # 区间转换的近似性
//
// 单个 CIDR 块只能表达对齐的 2 的幂大小区间。[IntervalToPrefix] 取
// floor(log2(区间大小)) 作为块的主机位数，块的基址为起始地址清零低位后的值，
// 因此非对齐或非 2 的幂的区间会得到近似结果：
//
//	p, _ := xnet.ParseInterval("8.12.144.1 - 8.12.144.255")
//	fmt.Println(p) // 8.12.144.0/25
//
// 调用方可用 [IsExact] 检查结果是否与区间完全一致。
//
// # IPv4-mapped IPv6 地址处理
//
// [ParseAddr] 与 [ParseCIDR] 将 IPv4-mapped IPv6 统一归一化为纯 IPv4：
//   - 地址: "::ffff:10.0.0.5" → 10.0.0.5
//   - CIDR: "::ffff:10.0.0.0/104" → 10.0.0.0/8（bits < 96 时拒绝）
//   - 区间: "::ffff:10.0.0.0 - ::ffff:10.0.0.255" → 10.0.0.0/24
//
// # IPv6 Zone ID 处理
//
// 所有解析函数拒绝包含 zone ID 的地址（如 "fe80::1%eth0"）。
// [netip.Prefix.Contains] 对带 zone 的地址恒返回 false，静默接受会导致 ACL 误判。
//
// # 错误处理
//
// 解析失败返回 [*ParseError]，记录原始输入；其内部错误包装预定义错误变量，
// 可用 errors.Is 分流：
//
//	_, err := xnet.ParseRange("10.0.0.9 - 10.0.0.1")
//	if errors.Is(err, xnet.ErrInvertedRange) {
//	    // 处理起止颠倒
//	}
package xnet
