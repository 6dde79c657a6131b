package transition

func identity[T Number]() Mat2[T] {
	return Mat2[T]{{1, 0}, {0, 1}}
}

// companion returns the single-step homogeneous transition [[a1, a2], [1, 0]].
func companion(a1, a2 float64) Mat2[float64] {
	return Mat2[float64]{{a1, a2}, {1, 0}}
}
