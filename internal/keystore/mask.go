package keystore

import "strings"

// Mask renders a key for display: the first five and last three characters
// with the middle blanked out. Keys too short to mask meaningfully are
// replaced entirely.
func Mask(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:5] + "******" + key[len(key)-3:]
}
