package month

import (
	"fmt"
	"strings"
)

// Hex formats n as at least two lowercase hexadecimal digits, or uppercase
// if upper is set.
func Hex(n int, upper bool) string {
	s := fmt.Sprintf("%02x", n)
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

// HexYear formats year as "0x" followed by its hexadecimal digits. With
// upper set both the prefix and the digits are uppercase.
func HexYear(year int, upper bool) string {
	s := fmt.Sprintf("%#x", year)
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}
