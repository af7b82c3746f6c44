package schedule

import (
	domain "mlb-companion/internal/domain/schedule"
)

// Page is one page of filtered day groups.
type Page struct {
	Days      []domain.DaySchedule
	Number    int
	PageCount int
	Total     int
}

// HasPrev reports whether an earlier page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a later page exists.
func (p Page) HasNext() bool { return p.Number < p.PageCount }

// Paginate slices the day groups at a fixed page size. Page numbers are
// clamped into [1, pageCount]; an empty result yields a single empty page.
func Paginate(days []domain.DaySchedule, page, size int) Page {
	if size <= 0 {
		size = 1
	}

	total := len(days)
	pageCount := (total + size - 1) / size
	if pageCount < 1 {
		pageCount = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Days:      days[start:end],
		Number:    page,
		PageCount: pageCount,
		Total:     total,
	}
}
