package postgresql

// limitOffset normalizes pagination input: limit defaults to 20 and page
// floors to 1, so the OFFSET argument can never go negative.
func limitOffset(page, limit int) (int, int) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}
