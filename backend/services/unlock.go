package services

// IsUnlocked reports whether the item at index may be opened.
// The first item is always open; any later item opens once its predecessor is completed.
// Out-of-range indexes are locked.
func IsUnlocked(items []string, completed map[string]bool, index int) bool {
	if index < 0 || index >= len(items) {
		return false
	}
	if index == 0 {
		return true
	}
	return completed[items[index-1]]
}
