package pagination

// CalculateOffset calculates the OFFSET value from a 1-based page number.
//
// Formula: offset = (page - 1) * limit
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages calculates the total number of pages using ceiling
// division. A total of zero still counts as one page.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 || limit == 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
