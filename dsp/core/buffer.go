package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
// The contents of the returned slice are unspecified.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Snapshot copies src into scratch, growing scratch when needed, and
// returns the copy. src is never retained.
func Snapshot(scratch, src []float64) []float64 {
	scratch = EnsureLen(scratch, len(src))
	copy(scratch, src)
	return scratch
}
