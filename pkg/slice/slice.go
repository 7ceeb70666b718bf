package slice

func ReverseInPlace[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func Contains[T comparable](s []T, value T) bool {
	for _, a := range s {
		if a == value {
			return true
		}
	}
	return false
}

// Remove the first occurrence of value, keeping the order of the remaining elements
func RemoveFirst[T any](s []T, match func(T) bool) ([]T, bool) {
	for i, a := range s {
		if match(a) {
			return append(s[:i], s[i+1:]...), true
		}
	}
	return s, false
}

// Count the elements satisfying the predicate
func Count[T any](s []T, match func(T) bool) int {
	count := 0
	for _, a := range s {
		if match(a) {
			count++
		}
	}
	return count
}
