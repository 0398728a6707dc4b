package xacl

import (
	"fmt"
	"net/netip"
	"testing"
)

func benchRanges(n int) []string {
	ranges := make([]string, 0, n)
	for i := range n {
		ranges = append(ranges, fmt.Sprintf("10.%d.%d.0/24", i/256, i%256))
	}
	return ranges
}

// =============================================================================
// 查询基准测试：线性扫描 vs LRU 缓存 vs IPSet
// =============================================================================

func BenchmarkCheck(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		ranges := benchRanges(n)
		// 最后一个范围，扫描最坏情况
		last := fmt.Sprintf("10.%d.%d.1", (n-1)/256, (n-1)%256)

		b.Run(fmt.Sprintf("scan/%d", n), func(b *testing.B) {
			acl, err := New(ranges, WithLogger(discardLogger()))
			if err != nil {
				b.Fatal(err)
			}
			for b.Loop() {
				_ = acl.Check(last)
			}
		})
		b.Run(fmt.Sprintf("cached/%d", n), func(b *testing.B) {
			acl, err := New(ranges, WithLogger(discardLogger()), WithCache(1024))
			if err != nil {
				b.Fatal(err)
			}
			for b.Loop() {
				_ = acl.Check(last)
			}
		})
		b.Run(fmt.Sprintf("ipset/%d", n), func(b *testing.B) {
			acl, err := New(ranges, WithLogger(discardLogger()))
			if err != nil {
				b.Fatal(err)
			}
			set, err := acl.IPSet()
			if err != nil {
				b.Fatal(err)
			}
			addr := netip.MustParseAddr(last)
			for b.Loop() {
				_ = set.Contains(addr)
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	ranges := []string{"10.0.0.0/8", "192.168", "8.12.144.0 - 8.12.144.255", "2001:db8"}
	for b.Loop() {
		acl, _ := New(nil, WithLogger(discardLogger()))
		_ = acl.Add(ranges...)
	}
}
