package utils

import "strconv"

func ParseBoolQuery(value string) (*bool, error) {
	if value == "" {
		return nil, nil // not provided
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func ParseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Page normalises page/limit query values: page starts at 1, limit falls
// back to def when out of (0, max].
func Page(pageRaw, limitRaw string, def, max int) (page, limit int) {
	page = ParseIntDefault(pageRaw, 1)
	limit = ParseIntDefault(limitRaw, def)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > max {
		limit = def
	}
	return page, limit
}

// TotalPages is the number of pages of size limit needed for total items.
func TotalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
