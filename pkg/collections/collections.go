// Package collections holds small generic slice helpers.
package collections

// Apply applies the applicator function to each item in the input slice.
func Apply[T, V any](items []T, applicator func(T) V) []V {
	result := make([]V, len(items))
	for i, item := range items {
		result[i] = applicator(item)
	}

	return result
}

// ApplyVariadic is Apply over variadic arguments.
func ApplyVariadic[T, V any](applicator func(T) V, items ...T) []V {
	return Apply(items, applicator)
}

// SliceFromVariadic creates a slice from variadic arguments.
func SliceFromVariadic[T any](items ...T) []T {
	return items
}

// Filter returns the items keep accepts, in order.
func Filter[T any](items []T, keep func(T) bool) []T {
	var result []T
	for _, item := range items {
		if keep(item) {
			result = append(result, item)
		}
	}

	return result
}

// Any reports whether pred holds for at least one item.
func Any[T any](items []T, pred func(T) bool) bool {
	for _, item := range items {
		if pred(item) {
			return true
		}
	}

	return false
}
