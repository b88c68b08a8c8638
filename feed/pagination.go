package feed

import (
	"strconv"

	"github.com/pressfeed/pressfeed/model"
)

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

/*

Page is one slice of a feed plus the metadata needed to render pagination
controls.

Posts: the posts on this page, newest-first
Number: 1-based page number actually served (after clamping)
TotalPages: total page count, at least 1 even for an empty feed
TotalCount: total posts across all pages
HasNext, HasPrev: whether neighboring pages exist

*/

type Page struct {
	Posts      []*model.Post `json:"posts"`
	Number     int           `json:"number"`
	TotalPages int           `json:"total_pages"`
	TotalCount int           `json:"total_count"`
	HasNext    bool          `json:"has_next"`
	HasPrev    bool          `json:"has_prev"`
}

// Paginate slices an ordered post list into the requested page. The raw
// page value comes straight from an untrusted query string: anything that
// does not parse as a number serves page 1, out-of-range numbers are
// clamped to the nearest valid page instead of failing. An empty list
// yields a single empty page.
func Paginate(posts []*model.Post, rawPage string) Page {
	total := len(posts)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	number, err := strconv.Atoi(rawPage)
	if err != nil {
		number = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Posts:      posts[start:end],
		Number:     number,
		TotalPages: totalPages,
		TotalCount: total,
		HasNext:    number < totalPages,
		HasPrev:    number > 1,
	}
}
