package common

// Coalesce returns the first non-zero value from the provided values, or the
// zero value if all are zero. Used to pick builder defaults: an explicit key
// or name wins, then a source path, then a package fallback.
//
// Parameters:
//   - values: candidate values in priority order
//
// Returns:
//   - T: the first non-zero value, or the zero value if all are zero
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}
