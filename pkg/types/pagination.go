package types

import "github.com/aarondl/null/v8"

// PageMeta is the pagination block the payment API attaches to every list.
type PageMeta struct {
	CurrentPage int      `json:"current_page"`
	LastPage    int      `json:"last_page"`
	PerPage     int      `json:"per_page"`
	Total       int      `json:"total"`
	From        null.Int `json:"from"`
	To          null.Int `json:"to"`
	HasPrev     bool     `json:"has_prev"`
	HasNext     bool     `json:"has_next"`
	PrevPage    null.Int `json:"prev_page"`
	NextPage    null.Int `json:"next_page"`
}

// DefaultPageMeta is used when the API answers a list without meta.
func DefaultPageMeta(perPage int) PageMeta {
	return PageMeta{
		CurrentPage: 1,
		LastPage:    1,
		PerPage:     perPage,
		Total:       0,
	}
}

// ListPage is one page of entities together with its metadata.
type ListPage[T any] struct {
	Items []T
	Meta  PageMeta
}
