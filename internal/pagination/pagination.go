// Package pagination windows an ordered gorm query into fixed-size pages.
package pagination

import (
	"strconv"

	"gorm.io/gorm"
)

// Page is one window of an ordered listing plus the metadata templates need.
type Page struct {
	Number      int
	NumPages    int
	Count       int64
	HasNext     bool
	HasPrevious bool
}

// ParsePage turns a raw ?page= value into a page number clamped to
// [1, numPages]. Non-integer input falls back to the first page; integers
// outside the range, including zero and negatives, yield the last valid
// page instead of an error.
func ParsePage(raw string, numPages int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	if n < 1 || n > numPages {
		return numPages
	}
	return n
}

// NumPages never reports less than one page, even for an empty listing.
func NumPages(count int64, perPage int) int {
	if count == 0 {
		return 1
	}
	pages := int(count) / perPage
	if int(count)%perPage != 0 {
		pages++
	}
	return pages
}

// Paginate counts query's rows, clamps the requested page and fetches that
// window into dest. query must already carry its ordering.
func Paginate(query *gorm.DB, dest interface{}, rawPage string, perPage int) (Page, error) {
	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return Page{}, err
	}

	numPages := NumPages(count, perPage)
	number := ParsePage(rawPage, numPages)

	err := query.Session(&gorm.Session{}).
		Offset((number - 1) * perPage).
		Limit(perPage).
		Find(dest).Error
	if err != nil {
		return Page{}, err
	}

	return Page{
		Number:      number,
		NumPages:    numPages,
		Count:       count,
		HasNext:     number < numPages,
		HasPrevious: number > 1,
	}, nil
}
