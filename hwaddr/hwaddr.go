// Package hwaddr assembles vendor-prefixed hardware addresses.
package hwaddr

import (
	"fmt"
	"strings"
)

// Rand is the source of uniform random integers for suffix generation.
// *math/rand.Rand satisfies it; the draws are deliberately non-cryptographic.
type Rand interface {
	Intn(n int) int
}

const zeroAddress = "00:00:00:00:00:00"

// Assemble appends three independently drawn random bytes to the 24-bit
// vendor prefix, producing a colon-separated 6-octet address. The reserved
// all-zero address is never emitted: it is corrected so the last octet is 01.
// The all-ones broadcast address needs no guard since no assigned vendor
// prefix is FF:FF:FF.
func Assemble(prefix [3]string, rng Rand) string {
	octets := []string{
		strings.ToUpper(prefix[0]),
		strings.ToUpper(prefix[1]),
		strings.ToUpper(prefix[2]),
		fmt.Sprintf("%02X", rng.Intn(256)),
		fmt.Sprintf("%02X", rng.Intn(256)),
		fmt.Sprintf("%02X", rng.Intn(256)),
	}

	addr := strings.Join(octets, ":")
	if addr == zeroAddress {
		addr = addr[:len(addr)-2] + "01"
	}

	return addr
}
