package xacl

import (
	"net/netip"

	"github.com/omeyang/ipacl/pkg/util/xnet"
)

// family 是单一地址族的有序前缀列表。IPv4 与 IPv6 各持有一个实例，
// 匹配逻辑相同，仅位宽不同。
type family struct {
	version  xnet.Version
	prefixes []netip.Prefix
}

// contains 按插入顺序扫描，命中第一个包含 addr 的前缀即返回。
func (f *family) contains(addr netip.Addr) bool {
	for _, p := range f.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}
