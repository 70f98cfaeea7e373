package pincode

import "strings"

const pincodeLen = 6

// ValidFormat reports whether s is exactly six ASCII digits.
func ValidFormat(s string) bool {
	if len(s) != pincodeLen {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// ExtractFromAddress pulls the pincode out of a free-text shipping address,
// assuming it is the last whitespace-delimited token. The second return
// value is false when the address has no token or the token is not a
// well-formed pincode.
func ExtractFromAddress(address string) (string, bool) {
	fields := strings.Fields(address)
	if len(fields) == 0 {
		return "", false
	}
	last := fields[len(fields)-1]
	if !ValidFormat(last) {
		return "", false
	}
	return last, true
}
