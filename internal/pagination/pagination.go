package pagination

// Paginate slices items into fixed-size pages and reports the total
// page count. Pages are 1-based. A page beyond the end yields an empty
// page rather than an error; clamping the page number is the caller's
// concern. The input slice is never modified.
func Paginate[T any](items []T, page, pageSize int) ([]T, int) {
	if pageSize < 1 {
		return nil, 0
	}
	totalPages := (len(items) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil, totalPages
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], totalPages
}

// Clamp bounds page to [1, totalPages]. Views clamp before paginating
// so the previous/next controls can never walk off the result set.
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}
