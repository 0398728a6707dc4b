// Package security 提供访问控制相关的子包。
//
// 子包列表：
//   - xacl: 基于 IP 范围的访问控制列表，白名单 / 黑名单语义
package security
