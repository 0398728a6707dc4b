package xnet

import "errors"

var (
	// ErrInvalidAddress 表示无效的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xnet: invalid IP address")

	// ErrInvalidRange 表示无效的 IP 范围格式（CIDR、部分地址或区间）。
	ErrInvalidRange = errors.New("xnet: invalid IP range")

	// ErrInvertedRange 表示区间的结束地址小于起始地址。
	ErrInvertedRange = errors.New("xnet: range end is before range start")

	// ErrFamilyMismatch 表示区间两端属于不同地址族。
	ErrFamilyMismatch = errors.New("xnet: range endpoints belong to different address families")

	// ErrInvalidVersion 表示无效的 IP 版本。
	ErrInvalidVersion = errors.New("xnet: invalid IP version")

	// ErrInvalidBigInt 表示 big.Int 值超出 IP 地址范围。
	ErrInvalidBigInt = errors.New("xnet: big.Int value out of range for IP address")
)

// ParseError 记录解析失败的原始输入。
// Err 为具体原因，通常包装了 [ErrInvalidAddress] 或 [ErrInvalidRange]，
// 可通过 errors.Is 判断。
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Err.Error() + ": " + e.Input
}

func (e *ParseError) Unwrap() error { return e.Err }

func parseError(input string, err error) error {
	return &ParseError{Input: input, Err: err}
}
