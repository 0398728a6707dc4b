package xnet_test

import (
	"errors"
	"fmt"
	"net/netip"

	"github.com/omeyang/ipacl/pkg/util/xnet"
)

func ExampleNormalize() {
	for _, s := range []string{"10", "10.1", "10.1.2.3", "2001:db8", "::1", "192.168.0.0/16"} {
		cidr, err := xnet.Normalize(s)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println(cidr)
	}
	// Output:
	// 10.0.0.0/8
	// 10.1.0.0/16
	// 10.1.2.3/32
	// 2001:db8::/32
	// ::1/128
	// 192.168.0.0/16
}

func ExampleParseInterval() {
	start := netip.MustParseAddr("8.12.144.1")
	end := netip.MustParseAddr("8.12.144.255")

	p, err := xnet.ParseInterval("8.12.144.1 - 8.12.144.255")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p)
	fmt.Println(xnet.IsExact(p, start, end))
	// Output:
	// 8.12.144.0/25
	// false
}

func ExampleParseAddr() {
	addr, err := xnet.ParseAddr("::ffff:10.0.0.5")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(addr)
	fmt.Println(xnet.AddrVersion(addr))
	// Output:
	// 10.0.0.5
	// IPv4
}

func ExampleParseRange_inverted() {
	_, err := xnet.ParseRange("10.0.0.9 - 10.0.0.1")
	fmt.Println(errors.Is(err, xnet.ErrInvertedRange))

	var pe *xnet.ParseError
	if errors.As(err, &pe) {
		fmt.Println(pe.Input)
	}
	// Output:
	// true
	// 10.0.0.9 - 10.0.0.1
}
