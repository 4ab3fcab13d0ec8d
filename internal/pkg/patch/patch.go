package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalescePtr is Coalesce for optional fields that may be explicitly cleared.
func CoalescePtr[T any](set bool, ptr *T, fallback *T) *T {
	if set {
		return ptr
	}
	return fallback
}
