// Package xacl 提供基于 IP 范围的访问控制列表。
//
// [ACL] 按地址族分别保存有序的 CIDR 列表，范围可以用多种宽松写法给出，
// 写入时统一由 [xnet.ParseRange] 归一化为规范 CIDR：
//
//	acl, err := xacl.New([]string{
//	    "10.0.0.0/8",                  // CIDR
//	    "192.168",                     // 部分地址 → 192.168.0.0/16
//	    "8.12.144.0 - 8.12.144.255",   // 区间 → 8.12.144.0/24
//	    "2001:db8",                    // 部分 IPv6 → 2001:db8::/32
//	})
//
// # 查询语义
//
//   - [ACL.Check] 返回命中的地址个数
//   - [ACL.CheckAll] 白名单语义，全部命中才为 true
//   - [ACL.CheckAny] 黑名单语义，任一命中即为 true
//   - [ACL.Permits] 按 [Policy] 选择以上两种语义之一
//
// IPv4-mapped IPv6 地址（"::ffff:10.0.0.5"）按 IPv4 匹配，
// 因此 IPv4 规则同样适用于经双栈 socket 接入的客户端。
//
// # 错误处理
//
// 写入严格、查询宽松：
//   - [ACL.Add] 遇到无法解析的范围返回错误，整批不生效（先校验后提交）
//   - [ACL.Check] 遇到无法解析的地址计为未命中，不返回错误
//
// # 区间近似
//
// 区间写法会被转换为单个 CIDR 块，块大小为不超过区间大小的最大 2 的幂，
// 基址为起始地址截断。非对齐或非 2 的幂的区间因此只是近似覆盖，
// 详见 [xnet.IntervalToPrefix]。
//
// # 可观测性
//
//   - 日志：[WithLogger]，默认 slog.Default()
//   - 指标：[WithMeterProvider]，计数器 ipacl.check.addresses（按 result 分类）
//     与 ipacl.ranges（按 family 分类）
//
// # 性能
//
// 查询为线性扫描，复杂度 O(范围数 × 地址数)。热点地址可通过 [WithCache] 启用 LRU 缓存；
// 范围较多时可用 [ACL.IPSet] 导出合并后的 [*netipx.IPSet] 做 O(log n) 查询。
package xacl
