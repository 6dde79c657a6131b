package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[E any](buf []E, n int) []E {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]E, n)
}

// Zero sets all values in buf to their zero value.
func Zero[E any](buf []E) {
	clear(buf)
}
