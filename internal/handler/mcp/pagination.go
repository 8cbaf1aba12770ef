package mcp

// paginationInfo mirrors the pagination block every list tool returns.
type paginationInfo struct {
	TotalCount    int  `json:"total_count"`
	Limit         int  `json:"limit"`
	Offset        int  `json:"offset"`
	HasMore       bool `json:"has_more"`
	NextOffset    *int `json:"next_offset"`
	ReturnedCount int  `json:"returned_count"`
}

// paginate slices items at [offset, offset+limit) and describes the slice.
// Out-of-range offsets yield an empty page, not an error.
func paginate[T any](items []T, limit, offset int) ([]T, paginationInfo) {
	totalCount := len(items)

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	start := offset
	if start > totalCount {
		start = totalCount
	}
	end := offset + limit
	if end > totalCount {
		end = totalCount
	}

	page := items[start:end]

	info := paginationInfo{
		TotalCount:    totalCount,
		Limit:         limit,
		Offset:        offset,
		HasMore:       end < totalCount,
		ReturnedCount: len(page),
	}
	if info.HasMore {
		next := end
		info.NextOffset = &next
	}

	return page, info
}
