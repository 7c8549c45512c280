// Package patch applies optional fields of partial updates.
package patch

// Coalesce returns *ptr when set, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Changed reports whether applying ptr would alter current.
func Changed[T comparable](ptr *T, current T) bool {
	return ptr != nil && *ptr != current
}
