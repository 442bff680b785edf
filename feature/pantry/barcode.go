package pantry

import "strings"

// NormalizeCode canonicalizes a scanned barcode string into the key used for
// all inventory lookups and storage.
//
// An EAN-13 with a leading zero is the common encoding of a UPC-A product, so
// the zero is dropped to yield the 12-digit equivalent. Everything else,
// including other 13-digit codes and malformed input, passes through trimmed
// but otherwise unchanged. Checksum digits are not validated: a zero-prefixed
// alias of a distinct 12-digit code will merge with it.
func NormalizeCode(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) == 13 && strings.HasPrefix(s, "0") {
		return s[1:]
	}
	return s
}
