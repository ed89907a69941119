package util

// StringSliceIndexOf returns the index of target in slice, or -1.
func StringSliceIndexOf(slice []string, target string) int {
	for i, s := range slice {
		if s == target {
			return i
		}
	}
	return -1
}

// IntSliceIndexOf returns the index of target in slice, or -1.
func IntSliceIndexOf(slice []int, target int) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
