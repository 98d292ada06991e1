package model

// NextID returns max(id)+1 over records, or 1 for an empty collection.
func NextID[T any](records []T, id func(T) int) int {
	highest := 0
	for _, r := range records {
		if v := id(r); v > highest {
			highest = v
		}
	}
	return highest + 1
}
