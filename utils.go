package main

func mapSlice[T, U any](items []T, transform func(T) U) []U {
	result := make([]U, 0, len(items))
	for _, item := range items {
		result = append(result, transform(item))
	}
	return result
}

func filterSlice[T any](items []T, include func(T) bool) []T {
	var result []T
	for _, item := range items {
		if include(item) {
			result = append(result, item)
		}
	}
	return result
}

func findIndex[T comparable](items []T, item T) int {
	for idx, candidate := range items {
		if candidate == item {
			return idx
		}
	}
	return -1
}
