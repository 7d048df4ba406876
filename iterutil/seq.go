package iterutil

func Map[T any, Slice ~[]E, E any](s Slice, f func(i int, v E) T) []T {
	result := make([]T, len(s))
	for i, v := range s {
		result[i] = f(i, v)
	}
	return result
}

func Compact[Slice ~[]E, E any](s Slice, keep func(v E) bool) Slice {
	result := make(Slice, 0, len(s))
	for _, v := range s {
		if keep(v) {
			result = append(result, v)
		}
	}
	return result
}
