package helpers

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ClampLimitOffset normalizes caller-supplied limit/offset values for list
// queries. Zero or out-of-range limits fall back to the default.
func ClampLimitOffset(limit, offset int) (int, int) {
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
